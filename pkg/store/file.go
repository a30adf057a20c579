package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rikardjonsson/pylon/pkg/persist"
)

// FileStore keeps each snapshot as one JSON file in a directory, named
// <id>.json. It suits single-machine desktop use where layouts should
// survive restarts and be inspectable with a text editor.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed. If dir is empty, defaults to
// ~/.config/pylon/layouts/.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		dir = filepath.Join(home, ".config", "pylon", "layouts")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create layout dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Put writes or replaces a snapshot file.
func (s *FileStore) Put(ctx context.Context, snap *persist.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(s.path(snap.ID), data, 0600); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	return nil
}

// Get reads a snapshot by id.
func (s *FileStore) Get(ctx context.Context, id string) (*persist.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(id))
	if os.IsNotExist(err) {
		return nil, persist.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var snap persist.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}

// Delete removes a snapshot file. A missing file is not an error.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove snapshot file: %w", err)
	}
	return nil
}

// List reads every snapshot in the directory. Unreadable or undecodable
// files are skipped so one corrupt entry cannot hide the rest.
func (s *FileStore) List(ctx context.Context) ([]*persist.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read layout dir: %w", err)
	}

	var snaps []*persist.Snapshot
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		var snap persist.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			continue
		}
		snaps = append(snaps, &snap)
	}
	return snaps, nil
}

// Close does nothing; files hold no open handles between calls.
func (s *FileStore) Close() error { return nil }

var _ persist.Store = (*FileStore)(nil)
