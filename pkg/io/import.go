package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rikardjonsson/pylon/pkg/grid"
	"github.com/rikardjonsson/pylon/pkg/persist"
)

// recordItem adapts an ItemRecord to grid.Item for validation.
type recordItem struct {
	rec persist.ItemRecord
}

func (r recordItem) ID() string                { return r.rec.ID }
func (r recordItem) Footprint() grid.Footprint { return r.rec.Footprint }
func (r recordItem) Position() grid.Coordinate { return r.rec.Position }
func (recordItem) SetPosition(grid.Coordinate) {}

// ReadJSON decodes a snapshot from r and validates the layout it describes.
//
// A snapshot with no config block gets the default grid configuration. The
// decoded placements are checked against the layout rules (bounds, overlaps,
// duplicate ids, valid footprints); the first violation is returned as an
// error naming the offending item, so hand-edited files fail loudly rather
// than producing a corrupt grid.
//
// The returned snapshot is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*persist.Snapshot, error) {
	var snap persist.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if snap.Config == (grid.Config{}) {
		snap.Config = grid.DefaultConfig()
	}
	if _, err := grid.NewBounds(snap.Config.Bounds.Columns, snap.Config.Bounds.Rows); err != nil {
		return nil, fmt.Errorf("invalid bounds: %w", err)
	}

	items := make([]grid.Item, len(snap.Items))
	for i, rec := range snap.Items {
		items[i] = recordItem{rec: rec}
	}
	if errs := grid.ValidateLayout(items, snap.Config); len(errs) > 0 {
		return nil, fmt.Errorf("invalid layout: %w", errs[0])
	}

	return &snap, nil
}

// ImportJSON reads a JSON file at path and returns the decoded snapshot.
//
// It opens the file, decodes and validates it with [ReadJSON], and closes
// the file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*persist.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	snap, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return snap, nil
}
