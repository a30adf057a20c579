package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rikardjonsson/pylon/pkg/grid"
	"github.com/rikardjonsson/pylon/pkg/persist"
)

func sampleSnapshot(id, name string) *persist.Snapshot {
	return &persist.Snapshot{
		ID:     id,
		Name:   name,
		Config: grid.DefaultConfig(),
		Items: []persist.ItemRecord{
			{
				ID:        "w1",
				Title:     "Clock",
				Category:  "clock",
				Footprint: grid.MustFootprint(2, 2),
				Position:  grid.Coordinate{Row: 0, Col: 0},
				Enabled:   true,
			},
			{
				ID:        "w2",
				Title:     "Mail",
				Category:  "mail",
				Footprint: grid.MustFootprint(2, 1),
				Position:  grid.Coordinate{Row: 0, Col: 2},
				Enabled:   false,
			},
		},
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		ModifiedAt: time.Date(2026, 1, 2, 4, 4, 5, 0, time.UTC),
	}
}

// exerciseStore runs the Store contract against a backend.
func exerciseStore(t *testing.T, s persist.Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); err != persist.ErrNotFound {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}

	snap := sampleSnapshot("s1", "morning")
	if err := s.Put(ctx, snap); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "morning" || len(got.Items) != 2 {
		t.Fatalf("Get returned %q with %d items, want morning with 2", got.Name, len(got.Items))
	}
	if got.Items[0] != snap.Items[0] || got.Items[1] != snap.Items[1] {
		t.Error("item records did not round-trip")
	}
	if got.Config != snap.Config {
		t.Error("config did not round-trip")
	}
	if !got.CreatedAt.Equal(snap.CreatedAt) || !got.ModifiedAt.Equal(snap.ModifiedAt) {
		t.Error("timestamps did not round-trip")
	}

	// Put with the same id replaces.
	snap2 := sampleSnapshot("s1", "evening")
	if err := s.Put(ctx, snap2); err != nil {
		t.Fatalf("Put replace: %v", err)
	}
	got, err = s.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get after replace: %v", err)
	}
	if got.Name != "evening" {
		t.Errorf("Get after replace = %q, want evening", got.Name)
	}

	if err := s.Put(ctx, sampleSnapshot("s2", "other")); err != nil {
		t.Fatalf("Put second: %v", err)
	}
	snaps, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("List returned %d snapshots, want 2", len(snaps))
	}

	if err := s.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "s1"); err != persist.ErrNotFound {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "s1"); err != nil {
		t.Errorf("Delete of absent id: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	exerciseStore(t, s)
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestNullStore(t *testing.T) {
	ctx := context.Background()
	s := NewNullStore()
	defer s.Close()

	if err := s.Put(ctx, sampleSnapshot("s1", "morning")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := s.Get(ctx, "s1"); err != persist.ErrNotFound {
		t.Errorf("Get = %v, want ErrNotFound", err)
	}
	snaps, err := s.List(ctx)
	if err != nil || len(snaps) != 0 {
		t.Errorf("List = %d snapshots, %v; want empty", len(snaps), err)
	}
}

func TestMemoryStoreIsolatesCaller(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	snap := sampleSnapshot("s1", "morning")
	if err := s.Put(ctx, snap); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Mutating the caller's copy after Put must not affect the stored one,
	// and mutating a Get result must not affect later reads.
	snap.Name = "mutated"
	snap.Items[0].Title = "mutated"

	got, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "morning" || got.Items[0].Title != "Clock" {
		t.Error("stored snapshot shares memory with caller's copy")
	}

	got.Items[0].Title = "scribbled"
	again, err := s.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get again: %v", err)
	}
	if again.Items[0].Title != "Clock" {
		t.Error("Get result shares memory with the store")
	}
}

func TestFileStoreSkipsCorruptEntries(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Put(ctx, sampleSnapshot("good", "morning")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0600); err != nil {
		t.Fatalf("write stray file: %v", err)
	}

	snaps, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(snaps) != 1 || snaps[0].ID != "good" {
		t.Fatalf("List = %d snapshots, want just the good one", len(snaps))
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := s.Put(ctx, sampleSnapshot("s1", "morning")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	s.Close()

	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got.Name != "morning" {
		t.Errorf("Get after reopen = %q, want morning", got.Name)
	}
}
