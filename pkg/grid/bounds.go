package grid

import "fmt"

// Unbounded is the sentinel row count for grids that grow downward without
// limit. Column counts are always finite.
const Unbounded = 0

// =============================================================================
// Bounds
// =============================================================================

// Bounds describes the column and row limits of a grid. Columns is always
// finite and positive; Rows may be Unbounded, in which case any non-negative
// row is inside the grid.
type Bounds struct {
	Columns int `json:"columns" bson:"columns"`
	Rows    int `json:"rows" bson:"rows"`
}

// NewBounds creates bounds, rejecting a non-positive column count or a
// negative row count. rows == Unbounded means no row limit.
func NewBounds(columns, rows int) (Bounds, error) {
	if columns <= 0 {
		return Bounds{}, fmt.Errorf("bounds must have a positive column count, got %d", columns)
	}
	if rows < 0 {
		return Bounds{}, fmt.Errorf("bounds row count must be non-negative, got %d", rows)
	}
	return Bounds{Columns: columns, Rows: rows}, nil
}

// MustBounds creates bounds and panics on invalid dimensions.
func MustBounds(columns, rows int) Bounds {
	b, err := NewBounds(columns, rows)
	if err != nil {
		panic(err)
	}
	return b
}

// RowBounded reports whether the grid has a finite row count.
func (b Bounds) RowBounded() bool { return b.Rows != Unbounded }

// Contains reports whether the coordinate lies inside the bounds.
func (b Bounds) Contains(c Coordinate) bool {
	if c.Row < 0 || c.Col < 0 || c.Col >= b.Columns {
		return false
	}
	if b.RowBounded() && c.Row >= b.Rows {
		return false
	}
	return true
}

// Fits reports whether a footprint with its top-left corner at origin lies
// entirely inside the bounds. Both the origin and the bottom-right corner
// must be contained; full rectangles make checking the corners sufficient.
func (b Bounds) Fits(f Footprint, origin Coordinate) bool {
	if !b.Contains(origin) {
		return false
	}
	return b.Contains(origin.Offset(f.Height-1, f.Width-1))
}

// String returns the bounds as "CxR" with "∞" for unbounded rows.
func (b Bounds) String() string {
	if b.RowBounded() {
		return fmt.Sprintf("%dx%d", b.Columns, b.Rows)
	}
	return fmt.Sprintf("%dx∞", b.Columns)
}

// =============================================================================
// Config
// =============================================================================

// Default pixel geometry, matching the desktop dashboard's cell raster.
const (
	DefaultCellSize = 60.0
	DefaultSpacing  = 8.0
	DefaultColumns  = 8
)

// Config combines the grid bounds with the pixel geometry used for
// coordinate transforms. CellSize is the edge length of one square cell and
// Spacing the gap between adjacent cells, both in pixels.
type Config struct {
	Bounds   Bounds  `json:"bounds" bson:"bounds"`
	CellSize float64 `json:"cell_size" bson:"cell_size"`
	Spacing  float64 `json:"spacing" bson:"spacing"`
}

// DefaultConfig returns the standard dashboard configuration: eight columns,
// unbounded rows, 60px cells with 8px spacing.
func DefaultConfig() Config {
	return Config{
		Bounds:   Bounds{Columns: DefaultColumns, Rows: Unbounded},
		CellSize: DefaultCellSize,
		Spacing:  DefaultSpacing,
	}
}

// Pitch returns the distance between the origins of two adjacent cells.
func (c Config) Pitch() float64 {
	return c.CellSize + c.Spacing
}
