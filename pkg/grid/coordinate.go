package grid

import "fmt"

// =============================================================================
// Coordinate
// =============================================================================

// Coordinate is a cell address on the grid. The origin (0,0) is the top-left
// cell; rows grow downward and columns grow rightward.
type Coordinate struct {
	Row int `json:"row" bson:"row"`
	Col int `json:"col" bson:"col"`
}

// Origin is the top-left cell of the grid.
var Origin = Coordinate{Row: 0, Col: 0}

// Less orders coordinates row-major: by row first, then by column.
func (c Coordinate) Less(other Coordinate) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Compare returns -1, 0, or 1 according to row-major ordering.
// It is suitable for use with slices.SortFunc.
func (c Coordinate) Compare(other Coordinate) int {
	switch {
	case c.Less(other):
		return -1
	case other.Less(c):
		return 1
	default:
		return 0
	}
}

// Offset returns the coordinate shifted by the given number of rows and columns.
func (c Coordinate) Offset(rows, cols int) Coordinate {
	return Coordinate{Row: c.Row + rows, Col: c.Col + cols}
}

// Negative reports whether either component is below zero. Negative
// coordinates never lie on the grid.
func (c Coordinate) Negative() bool {
	return c.Row < 0 || c.Col < 0
}

// String returns the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// =============================================================================
// Footprint
// =============================================================================

// Footprint is the rectangular span, in whole cells, that an item covers.
// Both dimensions are strictly positive; use NewFootprint or MustFootprint to
// enforce this at construction rather than re-checking everywhere.
type Footprint struct {
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// NewFootprint creates a footprint, rejecting non-positive dimensions.
func NewFootprint(width, height int) (Footprint, error) {
	if width <= 0 || height <= 0 {
		return Footprint{}, fmt.Errorf("footprint dimensions must be positive, got %dx%d", width, height)
	}
	return Footprint{Width: width, Height: height}, nil
}

// MustFootprint creates a footprint and panics on non-positive dimensions.
// Intended for compile-time-known sizes such as the widget presets.
func MustFootprint(width, height int) Footprint {
	f, err := NewFootprint(width, height)
	if err != nil {
		panic(err)
	}
	return f
}

// Valid reports whether both dimensions are strictly positive. Footprints
// built through NewFootprint are always valid; this exists for auditing
// records that arrived through deserialization.
func (f Footprint) Valid() bool {
	return f.Width > 0 && f.Height > 0
}

// CellCount returns the number of cells the footprint covers.
func (f Footprint) CellCount() int {
	return f.Width * f.Height
}

// Cells enumerates the cells covered by the footprint when its top-left
// corner sits at origin, in row-major order.
func (f Footprint) Cells(origin Coordinate) []Coordinate {
	cells := make([]Coordinate, 0, f.CellCount())
	for r := 0; r < f.Height; r++ {
		for c := 0; c < f.Width; c++ {
			cells = append(cells, Coordinate{Row: origin.Row + r, Col: origin.Col + c})
		}
	}
	return cells
}

// CellSet returns the covered cells as a set, for intersection tests.
func (f Footprint) CellSet(origin Coordinate) CellSet {
	set := make(CellSet, f.CellCount())
	for r := 0; r < f.Height; r++ {
		for c := 0; c < f.Width; c++ {
			set.Add(Coordinate{Row: origin.Row + r, Col: origin.Col + c})
		}
	}
	return set
}

// String returns the footprint as "WxH".
func (f Footprint) String() string {
	return fmt.Sprintf("%dx%d", f.Width, f.Height)
}

// =============================================================================
// CellSet
// =============================================================================

// CellSet is a set of grid cells. The Manager maintains one as its occupancy
// cache; collision checks consult the set instead of iterating items.
type CellSet map[Coordinate]struct{}

// NewCellSet creates a set containing the given cells.
func NewCellSet(cells ...Coordinate) CellSet {
	set := make(CellSet, len(cells))
	for _, c := range cells {
		set.Add(c)
	}
	return set
}

// Add inserts a cell into the set.
func (s CellSet) Add(c Coordinate) { s[c] = struct{}{} }

// Remove deletes a cell from the set.
func (s CellSet) Remove(c Coordinate) { delete(s, c) }

// Contains reports whether the cell is in the set.
func (s CellSet) Contains(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of cells in the set.
func (s CellSet) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// MaxRow returns the largest row index of any cell in the set, or -1 for an
// empty set. The Tetris engine uses this to bound its scan on unbounded grids.
func (s CellSet) MaxRow() int {
	maxRow := -1
	for c := range s {
		if c.Row > maxRow {
			maxRow = c.Row
		}
	}
	return maxRow
}
