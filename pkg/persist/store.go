package persist

import (
	"context"
	"errors"
)

// Sentinel errors for snapshot storage.
var (
	// ErrNotFound is returned when a requested snapshot does not exist.
	ErrNotFound = errors.New("snapshot not found")
)

// Store is the interface for snapshot storage backends. Implementations live
// in pkg/store: file, in-memory, Redis, MongoDB, and a null store.
//
// Backends treat snapshots as opaque documents keyed by snapshot id; ordering
// and name-based policies (autosave retention, the newest-first index) are
// the Persister's concern.
type Store interface {
	// Put writes or replaces a snapshot.
	Put(ctx context.Context, snap *Snapshot) error

	// Get retrieves a snapshot by id.
	// Returns ErrNotFound when it does not exist.
	Get(ctx context.Context, id string) (*Snapshot, error)

	// Delete removes a snapshot. Deleting an absent snapshot is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all stored snapshots in unspecified order. Backends that
	// hit unreadable or undecodable entries skip them rather than failing
	// the whole listing.
	List(ctx context.Context) ([]*Snapshot, error)

	// Close releases backend resources.
	Close() error
}

// Backend names reported to store hooks and logs.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendNull   = "null"
)
