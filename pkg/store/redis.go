package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rikardjonsson/pylon/pkg/persist"
)

// redisKeyPrefix namespaces snapshot keys so a shared Redis instance can
// serve other tenants.
const redisKeyPrefix = "pylon:layout:"

// RedisStore keeps snapshots as JSON values under pylon:layout:<id>. It
// suits a dashboard whose layouts should roam between machines.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
// url is a redis:// connection string.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func redisKey(id string) string { return redisKeyPrefix + id }

// Put writes or replaces a snapshot.
func (s *RedisStore) Put(ctx context.Context, snap *persist.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(snap.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Get retrieves a snapshot by id.
func (s *RedisStore) Get(ctx context.Context, id string) (*persist.Snapshot, error) {
	data, err := s.client.Get(ctx, redisKey(id)).Bytes()
	if err == redis.Nil {
		return nil, persist.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var snap persist.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}

// Delete removes a snapshot. Absent keys are ignored.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// List scans for snapshot keys and fetches each one. Entries that fail to
// decode are skipped.
func (s *RedisStore) List(ctx context.Context) ([]*persist.Snapshot, error) {
	var snaps []*persist.Snapshot
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}
		var snap persist.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			continue
		}
		snaps = append(snaps, &snap)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	return snaps, nil
}

// Close releases the client's connections.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ persist.Store = (*RedisStore)(nil)
