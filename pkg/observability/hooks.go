// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about grid mutations and snapshot storage
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGridHooks(&myGridHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// The composition root forwards grid change notifications into the hooks:
//
//	manager.SetOnChange(func(ch grid.Change) {
//	    observability.Grid().OnChange(string(ch.Kind), ch.ItemID)
//	})
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Grid Hooks
// =============================================================================

// GridHooks receives events from grid mutations. Signatures use primitive
// types so the grid core never needs to import this package.
type GridHooks interface {
	// OnChange records a successful mutation (add, remove, move, clear,
	// optimize, config). itemID is empty for whole-grid mutations.
	OnChange(kind, itemID string)

	// OnPlacementRejected records a failed add or move.
	OnPlacementRejected(kind, itemID string)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from snapshot storage operations.
type StoreHooks interface {
	// OnSave records a snapshot write.
	OnSave(ctx context.Context, backend, snapshotID string, itemCount int, duration time.Duration, err error)

	// OnLoad records a snapshot read.
	OnLoad(ctx context.Context, backend, snapshotID string, duration time.Duration, err error)

	// OnDelete records a snapshot deletion.
	OnDelete(ctx context.Context, backend, snapshotID string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGridHooks is a no-op implementation of GridHooks.
type NoopGridHooks struct{}

func (NoopGridHooks) OnChange(string, string)            {}
func (NoopGridHooks) OnPlacementRejected(string, string) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnSave(context.Context, string, string, int, time.Duration, error) {}
func (NoopStoreHooks) OnLoad(context.Context, string, string, time.Duration, error)      {}
func (NoopStoreHooks) OnDelete(context.Context, string, string, error)                   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gridHooks  GridHooks  = NoopGridHooks{}
	storeHooks StoreHooks = NoopStoreHooks{}
	hooksMu    sync.RWMutex
)

// SetGridHooks registers custom grid hooks.
// This should be called once at application startup before any grid operations.
func SetGridHooks(h GridHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gridHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any storage operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Grid returns the registered grid hooks.
func Grid() GridHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gridHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gridHooks = NoopGridHooks{}
	storeHooks = NoopStoreHooks{}
}
