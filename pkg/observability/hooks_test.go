package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Grid hooks
	g := NoopGridHooks{}
	g.OnChange("add", "w-1")
	g.OnPlacementRejected("move", "w-1")

	// Store hooks
	s := NoopStoreHooks{}
	s.OnSave(ctx, "file", "snap-1", 12, time.Second, nil)
	s.OnLoad(ctx, "file", "snap-1", time.Second, nil)
	s.OnDelete(ctx, "file", "snap-1", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Grid().(NoopGridHooks); !ok {
		t.Error("Grid() should return NoopGridHooks by default")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}

	// Set custom hooks
	customGrid := &testGridHooks{}
	SetGridHooks(customGrid)
	if Grid() != customGrid {
		t.Error("SetGridHooks should set custom hooks")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Grid().(NoopGridHooks); !ok {
		t.Error("Reset() should restore NoopGridHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testGridHooks{}
	SetGridHooks(custom)

	// Setting nil should be ignored
	SetGridHooks(nil)

	if Grid() != custom {
		t.Error("SetGridHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testGridHooks struct{ NoopGridHooks }
type testStoreHooks struct{ NoopStoreHooks }
