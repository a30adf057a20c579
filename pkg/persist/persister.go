package persist

import (
	"context"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rikardjonsson/pylon/pkg/errors"
	"github.com/rikardjonsson/pylon/pkg/grid"
	"github.com/rikardjonsson/pylon/pkg/observability"
)

// =============================================================================
// Persister
// =============================================================================

// Persister saves and restores named layouts against a Store. It keeps an
// in-memory index of known snapshots sorted by last-modified descending, and
// remembers which snapshot is "current" (the one most recently saved or
// loaded).
//
// The Persister serializes its own state with a mutex-free design: all
// methods are expected to be called from the same goroutine that mutates the
// grid manager, matching the manager's single-caller model. The Autosaver is
// the one concurrent entry point and performs its writes through Save on its
// own goroutine with a state captured beforehand.
type Persister struct {
	store   Store
	backend string
	logger  *log.Logger
	index   []*Snapshot
	current string
}

// NewPersister creates a persister over the given store. backend is the
// name reported to hooks and logs (persist.BackendFile and friends). The
// index is primed from the store; unreadable entries are skipped and logged,
// never fatal.
func NewPersister(ctx context.Context, s Store, backend string, logger *log.Logger) (*Persister, error) {
	if logger == nil {
		logger = log.Default()
	}
	p := &Persister{store: s, backend: backend, logger: logger}

	snaps, err := s.List(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "failed to list stored layouts")
	}
	p.index = snaps
	p.sortIndex()
	return p, nil
}

// sortIndex orders the index by last-modified descending, most recent first.
func (p *Persister) sortIndex() {
	slices.SortFunc(p.index, func(a, b *Snapshot) int {
		return b.ModifiedAt.Compare(a.ModifiedAt)
	})
}

// List returns the known snapshots, most recently modified first.
func (p *Persister) List() []*Snapshot {
	return slices.Clone(p.index)
}

// Current returns the id of the current snapshot, or empty string.
func (p *Persister) Current() string { return p.current }

// Find returns the indexed snapshot with the given id, or nil.
func (p *Persister) Find(id string) *Snapshot {
	for _, s := range p.index {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// FindByName returns the most recently modified snapshot with the given
// name, or nil.
func (p *Persister) FindByName(name string) *Snapshot {
	for _, s := range p.index {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Save captures the manager's state under the given name and writes it to
// the store. Saving to an existing name reuses its snapshot id and creation
// time; a new name gets a fresh id. The saved snapshot becomes current.
func (p *Persister) Save(ctx context.Context, m *grid.Manager, name string) (*Snapshot, error) {
	if err := errors.ValidateLayoutName(name); err != nil {
		return nil, err
	}

	snap := Capture(m, name)
	now := time.Now()
	snap.CreatedAt = now
	snap.ModifiedAt = now
	snap.ID = NewSnapshotID()
	if prev := p.FindByName(name); prev != nil {
		snap.ID = prev.ID
		snap.CreatedAt = prev.CreatedAt
	}

	start := time.Now()
	err := p.store.Put(ctx, snap)
	observability.Store().OnSave(ctx, p.backend, snap.ID, len(snap.Items), time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "failed to save layout %q", name)
	}

	p.reindex(snap)
	p.current = snap.ID
	p.logger.Debug("saved layout", "name", name, "id", snap.ID, "items", len(snap.Items))
	return snap, nil
}

// SaveSnapshot writes an already-built snapshot, used by the autosaver with
// a state captured at request time. The same id-reuse rule as Save applies.
func (p *Persister) SaveSnapshot(ctx context.Context, snap *Snapshot) (*Snapshot, error) {
	if err := errors.ValidateLayoutName(snap.Name); err != nil {
		return nil, err
	}

	now := time.Now()
	snap.ModifiedAt = now
	if snap.ID == "" {
		snap.ID = NewSnapshotID()
		snap.CreatedAt = now
		if prev := p.FindByName(snap.Name); prev != nil {
			snap.ID = prev.ID
			snap.CreatedAt = prev.CreatedAt
		}
	}

	start := time.Now()
	err := p.store.Put(ctx, snap)
	observability.Store().OnSave(ctx, p.backend, snap.ID, len(snap.Items), time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "failed to save layout %q", snap.Name)
	}

	p.reindex(snap)
	p.current = snap.ID
	return snap, nil
}

// Load restores a snapshot into the manager: clear, apply the snapshot's
// configuration, then re-add every item in snapshot order through the
// factory. Items that fail to rebuild or no longer fit are skipped and
// counted, never fatal — a layout saved on a wider grid still loads
// partially on a narrower one. The loaded snapshot becomes current.
func (p *Persister) Load(ctx context.Context, id string, m *grid.Manager, factory ItemFactory) (skipped int, err error) {
	start := time.Now()
	snap, err := p.store.Get(ctx, id)
	observability.Store().OnLoad(ctx, p.backend, id, time.Since(start), err)
	if err == ErrNotFound {
		return 0, errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", id)
	}
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeStorage, err, "failed to read layout %s", id)
	}

	skipped = Restore(snap, m, factory, p.logger)
	p.current = snap.ID
	return skipped, nil
}

// Restore applies a snapshot to a manager without touching any store. It is
// shared by Load and the import path.
func Restore(snap *Snapshot, m *grid.Manager, factory ItemFactory, logger *log.Logger) (skipped int) {
	if logger == nil {
		logger = log.Default()
	}

	m.Clear()
	if snap.Config != m.Config() {
		m.SetConfig(snap.Config)
	}

	for _, rec := range snap.Items {
		it, err := factory.Make(rec.ID, rec.Title, rec.Category, rec.Footprint, rec.Enabled, rec.LastUpdated)
		if err != nil {
			logger.Warn("skipping unrestorable item", "id", rec.ID, "err", err)
			skipped++
			continue
		}
		it.SetPosition(rec.Position)
		if !m.Add(it) {
			logger.Warn("skipping item that no longer fits", "id", rec.ID, "position", rec.Position)
			skipped++
		}
	}
	return skipped
}

// Delete removes a snapshot from the store and the index. If the deleted
// snapshot was current, the marker is cleared. Deleting an unknown id is not
// an error.
func (p *Persister) Delete(ctx context.Context, id string) error {
	err := p.store.Delete(ctx, id)
	observability.Store().OnDelete(ctx, p.backend, id, err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "failed to delete layout %s", id)
	}

	p.index = slices.DeleteFunc(p.index, func(s *Snapshot) bool { return s.ID == id })
	if p.current == id {
		p.current = ""
	}
	return nil
}

// CleanupAutosaves deletes all but the keep most recent autosave snapshots.
// Named (manual) snapshots are never touched.
func (p *Persister) CleanupAutosaves(ctx context.Context, keep int) error {
	var autosaves []*Snapshot
	for _, s := range p.index { // index is already newest-first
		if s.IsAutosave() {
			autosaves = append(autosaves, s)
		}
	}
	if len(autosaves) <= keep {
		return nil
	}

	for _, s := range autosaves[keep:] {
		if err := p.Delete(ctx, s.ID); err != nil {
			return err
		}
		p.logger.Debug("pruned autosave", "id", s.ID, "modified", s.ModifiedAt)
	}
	return nil
}

// reindex replaces or inserts the snapshot in the index and re-sorts.
func (p *Persister) reindex(snap *Snapshot) {
	p.index = slices.DeleteFunc(p.index, func(s *Snapshot) bool { return s.ID == snap.ID })
	p.index = append(p.index, snap)
	p.sortIndex()
}
