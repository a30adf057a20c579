package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rikardjonsson/pylon/pkg/persist"
)

// MongoStore keeps snapshots as documents in a layouts collection, keyed by
// snapshot id as _id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
// uri is a mongodb:// connection string; database defaults to "pylon" when
// empty.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = "pylon"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection("layouts"),
	}, nil
}

// Put upserts the snapshot document.
func (s *MongoStore) Put(ctx context.Context, snap *persist.Snapshot) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": snap.ID}, snap,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo replace: %w", err)
	}
	return nil
}

// Get retrieves a snapshot by id.
func (s *MongoStore) Get(ctx context.Context, id string) (*persist.Snapshot, error) {
	var snap persist.Snapshot
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&snap)
	if err == mongo.ErrNoDocuments {
		return nil, persist.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	return &snap, nil
}

// Delete removes a snapshot document. Absent ids are ignored.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	return nil
}

// List returns all snapshot documents. Documents that fail to decode are
// skipped.
func (s *MongoStore) List(ctx context.Context) ([]*persist.Snapshot, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cursor.Close(ctx)

	var snaps []*persist.Snapshot
	for cursor.Next(ctx) {
		var snap persist.Snapshot
		if err := cursor.Decode(&snap); err != nil {
			continue
		}
		snaps = append(snaps, &snap)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongo cursor: %w", err)
	}
	return snaps, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ persist.Store = (*MongoStore)(nil)
