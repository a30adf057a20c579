// Package store provides the snapshot storage backends behind persist.Store:
// JSON files on disk, an in-memory map, Redis, MongoDB, and a null store that
// discards everything.
//
// Pick a backend with Open and a storage configuration, or construct one
// directly. All backends are safe for concurrent use.
package store
