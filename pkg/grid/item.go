package grid

// Item is the minimal contract a placeable widget exposes to the grid core.
// The core reads the identifier, footprint, and position for placement, and
// writes a new position back on successful placement or move; everything else
// about a widget (payload, rendering, data sources) stays outside the engine.
//
// Identifiers must be globally unique and stable for the item's lifetime.
type Item interface {
	// ID returns the item's stable unique identifier.
	ID() string

	// Footprint returns the rectangular span the item occupies.
	Footprint() Footprint

	// Position returns the item's current top-left cell.
	Position() Coordinate

	// SetPosition records a new top-left cell for the item.
	SetPosition(Coordinate)
}

// Placement pairs an item with a position chosen for it, as produced by
// Optimize. The item's own position is untouched until the caller commits.
type Placement struct {
	Item     Item
	Position Coordinate
}

// OccupiedCells returns the union of all cells covered by the given items.
func OccupiedCells(items []Item) CellSet {
	set := make(CellSet)
	for _, it := range items {
		fp := it.Footprint()
		pos := it.Position()
		for r := 0; r < fp.Height; r++ {
			for c := 0; c < fp.Width; c++ {
				set.Add(Coordinate{Row: pos.Row + r, Col: pos.Col + c})
			}
		}
	}
	return set
}
