package grid

import "slices"

// Optimize recomputes positions for all items to remove gaps while keeping
// their relative visual order. Items are sorted by their current position
// row-major and re-placed one by one with the engine against a freshly
// accumulated occupancy set, so earlier items pack toward the origin and
// later items flow around them.
//
// When the engine exhausts its scan without finding a position, the item
// keeps its original position; compaction never drops an item. The input
// slice and the items themselves are not mutated; callers commit the
// returned placements explicitly.
func Optimize(items []Item, cfg Config, engine Engine) []Placement {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	slices.SortStableFunc(sorted, func(a, b Item) int {
		return a.Position().Compare(b.Position())
	})

	occupied := make(CellSet)
	placements := make([]Placement, 0, len(sorted))

	for _, it := range sorted {
		fp := it.Footprint()
		pos, ok := engine.FindPosition(fp, occupied, cfg)
		if !ok {
			pos = it.Position() // keep the original spot as fallback
		}
		for _, cell := range fp.Cells(pos) {
			occupied.Add(cell)
		}
		placements = append(placements, Placement{Item: it, Position: pos})
	}

	return placements
}
