package store

import (
	"context"

	"github.com/rikardjonsson/pylon/pkg/persist"
)

// NullStore discards every write and reports nothing stored. Useful when
// persistence is disabled but the rest of the wiring expects a store.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() *NullStore { return &NullStore{} }

// Put does nothing.
func (*NullStore) Put(ctx context.Context, snap *persist.Snapshot) error { return nil }

// Get always reports the snapshot missing.
func (*NullStore) Get(ctx context.Context, id string) (*persist.Snapshot, error) {
	return nil, persist.ErrNotFound
}

// Delete does nothing.
func (*NullStore) Delete(ctx context.Context, id string) error { return nil }

// List always returns an empty listing.
func (*NullStore) List(ctx context.Context) ([]*persist.Snapshot, error) { return nil, nil }

// Close does nothing.
func (*NullStore) Close() error { return nil }

var _ persist.Store = (*NullStore)(nil)
