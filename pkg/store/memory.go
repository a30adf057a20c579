package store

import (
	"context"
	"sync"

	"github.com/rikardjonsson/pylon/pkg/persist"
)

// MemoryStore keeps snapshots in a map. Contents vanish with the process;
// it backs tests and ephemeral sessions.
type MemoryStore struct {
	mu    sync.RWMutex
	snaps map[string]*persist.Snapshot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]*persist.Snapshot)}
}

// Put stores a copy of the snapshot so later caller mutations don't leak in.
func (s *MemoryStore) Put(ctx context.Context, snap *persist.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *snap
	cp.Items = append([]persist.ItemRecord(nil), snap.Items...)
	s.snaps[snap.ID] = &cp
	return nil
}

// Get retrieves a snapshot by id.
func (s *MemoryStore) Get(ctx context.Context, id string) (*persist.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snaps[id]
	if !ok {
		return nil, persist.ErrNotFound
	}
	cp := *snap
	cp.Items = append([]persist.ItemRecord(nil), snap.Items...)
	return &cp, nil
}

// Delete removes a snapshot. Absent ids are ignored.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, id)
	return nil
}

// List returns all stored snapshots.
func (s *MemoryStore) List(ctx context.Context) ([]*persist.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snaps := make([]*persist.Snapshot, 0, len(s.snaps))
	for _, snap := range s.snaps {
		cp := *snap
		cp.Items = append([]persist.ItemRecord(nil), snap.Items...)
		snaps = append(snaps, &cp)
	}
	return snaps, nil
}

// Close does nothing.
func (s *MemoryStore) Close() error { return nil }

var _ persist.Store = (*MemoryStore)(nil)
