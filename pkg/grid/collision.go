package grid

// =============================================================================
// Detector
// =============================================================================

// Detector decides whether a footprint at a candidate position collides with
// already-occupied cells. Implementations must be pure: no hidden state, no
// I/O, same inputs always giving the same answer.
//
// The detector is injected into the Manager and the engines at the
// composition root rather than chosen internally, so automatic placement,
// interactive moves, and drag previews all share one collision authority.
type Detector interface {
	// Collides reports whether the footprint placed at origin overlaps any
	// cell in occupied.
	Collides(f Footprint, origin Coordinate, occupied CellSet) bool

	// Colliding returns the items whose cells overlap the footprint placed
	// at origin, skipping any item whose id is in exclude. Used for
	// diagnostics and merge decisions where a boolean is not enough.
	Colliding(f Footprint, origin Coordinate, items []Item, exclude map[string]bool) []Item
}

// RectDetector is the standard collision detector for axis-aligned
// rectangular footprints. It runs a bounding-box interval test as an early
// reject before the exact cell intersection; for full rectangles the two
// agree, so the interval test is also used pairwise in Colliding.
type RectDetector struct{}

// NewRectDetector creates the standard detector.
func NewRectDetector() RectDetector { return RectDetector{} }

// Collides reports whether any cell of the footprint at origin is occupied.
//
// The occupied set can contain cells from many items, so there is no single
// rectangle to interval-test against; the cell probe is O(area) in the
// footprint, which is small (widgets span a handful of cells).
func (RectDetector) Collides(f Footprint, origin Coordinate, occupied CellSet) bool {
	if occupied.Len() == 0 {
		return false
	}
	for r := 0; r < f.Height; r++ {
		for c := 0; c < f.Width; c++ {
			if occupied.Contains(Coordinate{Row: origin.Row + r, Col: origin.Col + c}) {
				return true
			}
		}
	}
	return false
}

// Colliding returns the items overlapping the footprint at origin, in the
// order they appear in items. Items whose id is in exclude are skipped, so a
// moved item does not report a collision with its own old cells.
func (RectDetector) Colliding(f Footprint, origin Coordinate, items []Item, exclude map[string]bool) []Item {
	var hits []Item
	for _, it := range items {
		if exclude[it.ID()] {
			continue
		}
		if rectsOverlap(f, origin, it.Footprint(), it.Position()) {
			hits = append(hits, it)
		}
	}
	return hits
}

// rectsOverlap is the interval test on row and column ranges. Because all
// footprints are full axis-aligned rectangles, this is exact, not just a
// bounding-box superset test.
func rectsOverlap(a Footprint, ao Coordinate, b Footprint, bo Coordinate) bool {
	if ao.Col+a.Width <= bo.Col || bo.Col+b.Width <= ao.Col {
		return false
	}
	if ao.Row+a.Height <= bo.Row || bo.Row+b.Height <= ao.Row {
		return false
	}
	return true
}

// OverlapCells returns the exact cells shared by two placed footprints, in
// row-major order. Empty when the rectangles do not intersect.
func OverlapCells(a Footprint, ao Coordinate, b Footprint, bo Coordinate) []Coordinate {
	if !rectsOverlap(a, ao, b, bo) {
		return nil
	}
	top := max(ao.Row, bo.Row)
	bottom := min(ao.Row+a.Height, bo.Row+b.Height)
	left := max(ao.Col, bo.Col)
	right := min(ao.Col+a.Width, bo.Col+b.Width)

	cells := make([]Coordinate, 0, (bottom-top)*(right-left))
	for r := top; r < bottom; r++ {
		for c := left; c < right; c++ {
			cells = append(cells, Coordinate{Row: r, Col: c})
		}
	}
	return cells
}

var _ Detector = RectDetector{}
