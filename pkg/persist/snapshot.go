// Package persist provides durable save/load of named grid layouts.
//
// A Snapshot is a point-in-time capture of a grid manager's state: the grid
// configuration plus one record per placed item, ordered as placed. Snapshots
// round-trip losslessly through any Store backend (file, Redis, MongoDB,
// in-memory) and through the portable JSON encoding in pkg/io.
//
// The Persister orchestrates snapshots against a Store and keeps an
// in-memory index sorted newest-first. The Autosaver debounces save requests
// behind a restartable delay so bursts of grid mutations coalesce into one
// write.
package persist

import (
	"time"

	"github.com/google/uuid"

	"github.com/rikardjonsson/pylon/pkg/grid"
)

// AutosaveName is the snapshot name used by automatic saves. Cleanup of old
// autosaves matches on this name.
const AutosaveName = "Autosave"

// =============================================================================
// Snapshot
// =============================================================================

// Snapshot is the persisted form of a layout. All listed fields round-trip
// losslessly through every storage backend.
type Snapshot struct {
	ID         string       `json:"id" bson:"_id"`
	Name       string       `json:"name" bson:"name"`
	Config     grid.Config  `json:"config" bson:"config"`
	Items      []ItemRecord `json:"items" bson:"items"`
	CreatedAt  time.Time    `json:"created_at" bson:"created_at"`
	ModifiedAt time.Time    `json:"modified_at" bson:"modified_at"`
}

// ItemRecord is the serialized form of one placed item.
type ItemRecord struct {
	ID          string          `json:"id" bson:"id"`
	Title       string          `json:"title" bson:"title"`
	Category    string          `json:"category" bson:"category"`
	Footprint   grid.Footprint  `json:"footprint" bson:"footprint"`
	Position    grid.Coordinate `json:"position" bson:"position"`
	Enabled     bool            `json:"enabled" bson:"enabled"`
	LastUpdated time.Time       `json:"last_updated" bson:"last_updated"`
}

// IsAutosave reports whether the snapshot was produced by the autosaver.
func (s *Snapshot) IsAutosave() bool {
	return s.Name == AutosaveName
}

// NewSnapshotID returns a fresh snapshot identifier.
func NewSnapshotID() string {
	return uuid.NewString()
}

// =============================================================================
// Item Metadata
// =============================================================================

// ItemMeta supplies the display fields a grid.Item does not expose. The
// widget package's types implement it; items that do not are recorded with
// empty metadata and still round-trip their placement.
type ItemMeta interface {
	DisplayTitle() string
	CategoryTag() string
	IsEnabled() bool
	UpdatedAt() time.Time
}

// ItemFactory rebuilds a placeable item from its serialized record. The
// widget package provides the standard implementation; persistence itself
// never constructs concrete item types.
type ItemFactory interface {
	Make(id, title, category string, fp grid.Footprint, enabled bool, lastUpdated time.Time) (grid.Item, error)
}

// Capture builds a snapshot of the manager's current state. The snapshot id
// and timestamps are the caller's concern (Persister fills them in).
func Capture(m *grid.Manager, name string) *Snapshot {
	items := m.Items()
	records := make([]ItemRecord, 0, len(items))
	for _, it := range items {
		rec := ItemRecord{
			ID:        it.ID(),
			Footprint: it.Footprint(),
			Position:  it.Position(),
			Enabled:   true,
		}
		if meta, ok := it.(ItemMeta); ok {
			rec.Title = meta.DisplayTitle()
			rec.Category = meta.CategoryTag()
			rec.Enabled = meta.IsEnabled()
			rec.LastUpdated = meta.UpdatedAt()
		}
		records = append(records, rec)
	}
	return &Snapshot{
		Name:   name,
		Config: m.Config(),
		Items:  records,
	}
}
