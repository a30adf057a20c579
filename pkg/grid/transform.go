package grid

import "math"

// =============================================================================
// Pixel Geometry
// =============================================================================

// Point is a position in pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CellOrigin returns the pixel position of the cell's top-left corner.
func (c Config) CellOrigin(coord Coordinate) Point {
	return Point{
		X: float64(coord.Col) * c.Pitch(),
		Y: float64(coord.Row) * c.Pitch(),
	}
}

// CellCenter returns the pixel position of the cell's center.
func (c Config) CellCenter(coord Coordinate) Point {
	origin := c.CellOrigin(coord)
	return Point{X: origin.X + c.CellSize/2, Y: origin.Y + c.CellSize/2}
}

// Frame returns the pixel rectangle covered by a footprint placed at origin.
// Interior spacing between the footprint's own cells is part of the frame.
func (c Config) Frame(f Footprint, origin Coordinate) Rect {
	p := c.CellOrigin(origin)
	return Rect{
		X:      p.X,
		Y:      p.Y,
		Width:  float64(f.Width)*c.CellSize + float64(f.Width-1)*c.Spacing,
		Height: float64(f.Height)*c.CellSize + float64(f.Height-1)*c.Spacing,
	}
}

// CellAt maps a pixel point to the grid cell containing it. Points left of or
// above the grid clamp to row/column zero; columns clamp to the last column.
// Rows are not clamped on unbounded grids.
func (c Config) CellAt(p Point) Coordinate {
	pitch := c.Pitch()
	coord := Coordinate{
		Row: int(math.Floor(p.Y / pitch)),
		Col: int(math.Floor(p.X / pitch)),
	}
	if coord.Row < 0 {
		coord.Row = 0
	}
	if coord.Col < 0 {
		coord.Col = 0
	}
	if coord.Col >= c.Bounds.Columns {
		coord.Col = c.Bounds.Columns - 1
	}
	if c.Bounds.RowBounded() && coord.Row >= c.Bounds.Rows {
		coord.Row = c.Bounds.Rows - 1
	}
	return coord
}

// Frame returns the item's pixel rectangle under the manager's configuration.
func (m *Manager) Frame(it Item) Rect {
	return m.cfg.Frame(it.Footprint(), it.Position())
}

// PixelOrigin returns the pixel position of the item's top-left corner.
func (m *Manager) PixelOrigin(it Item) Point {
	return m.cfg.CellOrigin(it.Position())
}

// CellAt maps a pixel point to a grid cell under the manager's configuration.
func (m *Manager) CellAt(p Point) Coordinate {
	return m.cfg.CellAt(p)
}

// =============================================================================
// Drag Hysteresis
// =============================================================================

// hysteresisFraction is how far, as a fraction of the cell size, the pointer
// must travel past the previous candidate cell before the candidate changes.
// Without it the candidate flickers when the pointer sits on a cell boundary.
const hysteresisFraction = 0.3

// DragTracker maps a moving pointer to a stable candidate cell during an
// interactive drag. The candidate only changes once the pointer has left the
// previous candidate's cell by at least hysteresisFraction of the cell size
// on either axis, measured from the cell center.
//
// A tracker is for one drag gesture; create a fresh one per drag.
type DragTracker struct {
	cfg       Config
	candidate Coordinate
	active    bool
}

// NewDragTracker creates a tracker for one drag gesture.
func NewDragTracker(cfg Config) *DragTracker {
	return &DragTracker{cfg: cfg}
}

// Candidate returns the candidate cell for the current pointer position,
// applying hysteresis against the previously returned candidate.
func (d *DragTracker) Candidate(p Point) Coordinate {
	if !d.active {
		d.candidate = d.cfg.CellAt(p)
		d.active = true
		return d.candidate
	}

	center := d.cfg.CellCenter(d.candidate)
	limit := d.cfg.Pitch()/2 + hysteresisFraction*d.cfg.CellSize
	if math.Abs(p.X-center.X) <= limit && math.Abs(p.Y-center.Y) <= limit {
		return d.candidate
	}

	d.candidate = d.cfg.CellAt(p)
	return d.candidate
}

// Reset clears the tracker so the next Candidate call starts fresh.
func (d *DragTracker) Reset() {
	d.active = false
}
