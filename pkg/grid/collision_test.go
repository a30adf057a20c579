package grid

import "testing"

func TestDetectorCollides(t *testing.T) {
	det := NewRectDetector()
	occupied := MustFootprint(2, 2).CellSet(Origin) // {(0,0) (0,1) (1,0) (1,1)}

	tests := []struct {
		name  string
		f     Footprint
		at    Coordinate
		wants bool
	}{
		{"empty overlap", MustFootprint(1, 1), Coordinate{0, 2}, false},
		{"direct hit", MustFootprint(1, 1), Coordinate{0, 0}, true},
		{"partial overlap", MustFootprint(2, 2), Coordinate{1, 1}, true},
		{"adjacent right", MustFootprint(2, 2), Coordinate{0, 2}, false},
		{"adjacent below", MustFootprint(2, 1), Coordinate{2, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := det.Collides(tt.f, tt.at, occupied); got != tt.wants {
				t.Errorf("Collides(%v, %v) = %v, want %v", tt.f, tt.at, got, tt.wants)
			}
		})
	}

	if det.Collides(MustFootprint(3, 3), Origin, NewCellSet()) {
		t.Error("nothing collides with an empty occupancy set")
	}
}

func TestDetectorColliding(t *testing.T) {
	det := NewRectDetector()
	items := []Item{
		newStubAt("a", 2, 2, Coordinate{Row: 0, Col: 0}),
		newStubAt("b", 1, 1, Coordinate{Row: 0, Col: 4}),
		newStubAt("c", 2, 1, Coordinate{Row: 3, Col: 0}),
	}

	hits := det.Colliding(MustFootprint(2, 2), Coordinate{Row: 1, Col: 1}, items, nil)
	if len(hits) != 1 || hits[0].ID() != "a" {
		t.Fatalf("Colliding = %v, want [a]", ids(hits))
	}

	// Excluding the hit by id reports no collision even though its cells
	// still overlap; a moved item's old position must not self-collide.
	hits = det.Colliding(MustFootprint(2, 2), Coordinate{Row: 1, Col: 1}, items, map[string]bool{"a": true})
	if len(hits) != 0 {
		t.Errorf("Colliding with exclusion = %v, want none", ids(hits))
	}

	// A footprint spanning several items reports each of them.
	hits = det.Colliding(MustFootprint(8, 4), Origin, items, nil)
	if len(hits) != 3 {
		t.Errorf("Colliding spanning all = %v, want all three", ids(hits))
	}
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID()
	}
	return out
}

func TestOverlapCells(t *testing.T) {
	// Two 2x2 footprints offset diagonally share exactly one cell.
	cells := OverlapCells(MustFootprint(2, 2), Origin, MustFootprint(2, 2), Coordinate{Row: 1, Col: 1})
	if len(cells) != 1 || cells[0] != (Coordinate{Row: 1, Col: 1}) {
		t.Errorf("OverlapCells = %v, want [(1,1)]", cells)
	}

	// Horizontally offset 2x2 footprints share a 1x2 column strip.
	cells = OverlapCells(MustFootprint(2, 2), Origin, MustFootprint(2, 2), Coordinate{Row: 0, Col: 1})
	want := []Coordinate{{0, 1}, {1, 1}}
	if len(cells) != 2 || cells[0] != want[0] || cells[1] != want[1] {
		t.Errorf("OverlapCells = %v, want %v", cells, want)
	}

	if cells := OverlapCells(MustFootprint(1, 1), Origin, MustFootprint(1, 1), Coordinate{Row: 0, Col: 1}); cells != nil {
		t.Errorf("disjoint footprints should share no cells, got %v", cells)
	}
}

// TestIntervalMatchesCellIntersection cross-checks the interval fast path
// against brute-force cell-set intersection over a window of placements. For
// full rectangles the two must always agree.
func TestIntervalMatchesCellIntersection(t *testing.T) {
	a := MustFootprint(2, 3)
	b := MustFootprint(3, 2)
	bOrigin := Coordinate{Row: 2, Col: 2}
	bCells := b.CellSet(bOrigin)

	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			at := Coordinate{Row: row, Col: col}

			exact := false
			for _, c := range a.Cells(at) {
				if bCells.Contains(c) {
					exact = true
					break
				}
			}

			if fast := rectsOverlap(a, at, b, bOrigin); fast != exact {
				t.Errorf("at %v: interval test = %v, cell intersection = %v", at, fast, exact)
			}
		}
	}
}
