// Package widget defines the dashboard's placeable items.
//
// A Widget is what the grid core calls an "item": a stable identifier, a
// footprint, and a position, plus the display fields the dashboard shell
// reads (title, category, enabled flag, refresh bookkeeping). The grid core
// only sees the grid.Item side of a Widget; everything else belongs to the
// surrounding application.
package widget

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rikardjonsson/pylon/pkg/grid"
)

// =============================================================================
// Category
// =============================================================================

// Category tags a widget with the data source it renders.
type Category string

// The dashboard's widget categories.
const (
	CategoryClock     Category = "clock"
	CategoryWeather   Category = "weather"
	CategoryCalendar  Category = "calendar"
	CategoryReminders Category = "reminders"
	CategoryMail      Category = "mail"
	CategoryNotes     Category = "notes"
	CategoryNews      Category = "news"
	CategoryCrypto    Category = "crypto"
	CategoryMusic     Category = "music"
	CategorySocial    Category = "social"
	CategoryPhotos    Category = "photos"
	CategorySystem    Category = "system"
)

// Categories lists all known categories in display order.
var Categories = []Category{
	CategoryClock, CategoryWeather, CategoryCalendar, CategoryReminders,
	CategoryMail, CategoryNotes, CategoryNews, CategoryCrypto,
	CategoryMusic, CategorySocial, CategoryPhotos, CategorySystem,
}

// Known reports whether the category is one of the defined constants.
func (c Category) Known() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// =============================================================================
// Size Presets
// =============================================================================

// Footprint presets in grid cells.
var (
	SizeSmall  = grid.MustFootprint(1, 1)
	SizeWide   = grid.MustFootprint(2, 1)
	SizeTall   = grid.MustFootprint(1, 2)
	SizeMedium = grid.MustFootprint(2, 2)
	SizeLarge  = grid.MustFootprint(4, 2)
)

// defaultFootprints maps each category to its preferred size. Categories not
// listed default to SizeMedium.
var defaultFootprints = map[Category]grid.Footprint{
	CategoryClock:     SizeMedium,
	CategoryWeather:   SizeMedium,
	CategoryCalendar:  SizeLarge,
	CategoryReminders: SizeTall,
	CategoryMail:      SizeWide,
	CategoryNotes:     SizeMedium,
	CategoryNews:      SizeLarge,
	CategoryCrypto:    SizeSmall,
	CategoryMusic:     SizeWide,
	CategorySocial:    SizeSmall,
	CategoryPhotos:    SizeMedium,
	CategorySystem:    SizeSmall,
}

// DefaultFootprint returns the preferred footprint for a category.
func DefaultFootprint(c Category) grid.Footprint {
	if fp, ok := defaultFootprints[c]; ok {
		return fp
	}
	return SizeMedium
}

// =============================================================================
// Widget
// =============================================================================

// Widget is one dashboard tile. The identifier is assigned at construction
// and never changes; the position is owned by the grid manager, which writes
// it back on successful placement and moves.
type Widget struct {
	id       string
	fp       grid.Footprint
	pos      grid.Coordinate
	Title    string
	Category Category
	Enabled  bool

	// Refresh bookkeeping owned by the data-plumbing layer.
	LastUpdated time.Time
	Loading     bool
	LastErr     error
}

// New creates an enabled widget with a fresh unique id and the category's
// default footprint.
func New(title string, category Category) *Widget {
	return &Widget{
		id:       uuid.NewString(),
		fp:       DefaultFootprint(category),
		Title:    title,
		Category: category,
		Enabled:  true,
	}
}

// NewWithFootprint creates an enabled widget with an explicit footprint.
func NewWithFootprint(title string, category Category, fp grid.Footprint) *Widget {
	w := New(title, category)
	w.fp = fp
	return w
}

// ID returns the widget's stable unique identifier.
func (w *Widget) ID() string { return w.id }

// Footprint returns the widget's span in grid cells.
func (w *Widget) Footprint() grid.Footprint { return w.fp }

// Position returns the widget's top-left cell.
func (w *Widget) Position() grid.Coordinate { return w.pos }

// SetPosition records a new top-left cell. Called by the grid manager.
func (w *Widget) SetPosition(c grid.Coordinate) { w.pos = c }

// Resize changes the widget's footprint. The caller re-validates placement
// afterwards; a grown widget may no longer fit at its position.
func (w *Widget) Resize(fp grid.Footprint) { w.fp = fp }

// MarkUpdated records a successful data refresh.
func (w *Widget) MarkUpdated(at time.Time) {
	w.LastUpdated = at
	w.Loading = false
	w.LastErr = nil
}

// MarkFailed records a failed data refresh.
func (w *Widget) MarkFailed(err error) {
	w.Loading = false
	w.LastErr = err
}

// DisplayTitle returns the widget's title for persistence.
func (w *Widget) DisplayTitle() string { return w.Title }

// CategoryTag returns the widget's category for persistence.
func (w *Widget) CategoryTag() string { return string(w.Category) }

// IsEnabled reports whether the widget is enabled.
func (w *Widget) IsEnabled() bool { return w.Enabled }

// UpdatedAt returns the last successful refresh time.
func (w *Widget) UpdatedAt() time.Time { return w.LastUpdated }

// String returns a short description for logs.
func (w *Widget) String() string {
	return fmt.Sprintf("%s %q %s@%s", w.Category, w.Title, w.fp, w.pos)
}

var _ grid.Item = (*Widget)(nil)

// =============================================================================
// Factory
// =============================================================================

// Factory rebuilds widgets from persisted layout records. The persistence
// layer hands it the serialized fields; the factory owns choosing the
// concrete type and filling category defaults.
type Factory struct{}

// NewFactory creates the standard widget factory.
func NewFactory() Factory { return Factory{} }

// Make reconstructs a widget from persisted fields, preserving its original
// id. Unknown categories are accepted as-is so layouts survive forward and
// backward across widget catalogs; an invalid footprint is rejected.
func (Factory) Make(id, title, category string, fp grid.Footprint, enabled bool, lastUpdated time.Time) (grid.Item, error) {
	if id == "" {
		return nil, fmt.Errorf("widget id cannot be empty")
	}
	if !fp.Valid() {
		return nil, fmt.Errorf("widget %s: invalid footprint %s", id, fp)
	}
	return &Widget{
		id:          id,
		fp:          fp,
		Title:       title,
		Category:    Category(category),
		Enabled:     enabled,
		LastUpdated: lastUpdated,
	}, nil
}
