package grid

import "testing"

func TestOptimizeRemovesGaps(t *testing.T) {
	det := NewRectDetector()
	engine := NewTetrisEngine(det)
	items := []Item{
		newStubAt("a", 2, 1, Coordinate{Row: 4, Col: 2}),
		newStubAt("b", 1, 1, Coordinate{Row: 8, Col: 7}),
		newStubAt("c", 2, 2, Coordinate{Row: 12, Col: 0}),
	}

	placements := Optimize(items, DefaultConfig(), engine)

	want := map[string]Coordinate{
		"a": {Row: 0, Col: 0},
		"b": {Row: 0, Col: 2},
		"c": {Row: 0, Col: 3},
	}
	for _, p := range placements {
		if got := want[p.Item.ID()]; p.Position != got {
			t.Errorf("%s placed at %v, want %v", p.Item.ID(), p.Position, got)
		}
	}
}

func TestOptimizePreservesRelativeOrder(t *testing.T) {
	// Compaction re-places items in their current row-major order, so the
	// visually-first item ends up first again.
	det := NewRectDetector()
	engine := NewTetrisEngine(det)
	items := []Item{
		newStubAt("late", 1, 1, Coordinate{Row: 9, Col: 0}),
		newStubAt("early", 1, 1, Coordinate{Row: 2, Col: 5}),
	}

	placements := Optimize(items, DefaultConfig(), engine)

	got := map[string]Coordinate{}
	for _, p := range placements {
		got[p.Item.ID()] = p.Position
	}
	if !got["early"].Less(got["late"]) {
		t.Errorf("relative order lost: early at %v, late at %v", got["early"], got["late"])
	}
}

func TestOptimizeDoesNotMutateItems(t *testing.T) {
	det := NewRectDetector()
	engine := NewTetrisEngine(det)
	it := newStubAt("a", 1, 1, Coordinate{Row: 7, Col: 7})

	Optimize([]Item{it}, DefaultConfig(), engine)

	if got := it.Position(); got != (Coordinate{Row: 7, Col: 7}) {
		t.Errorf("Optimize mutated the item to %v; commit is the caller's job", got)
	}
}

func TestOptimizeKeepsPositionWhenScanExhausted(t *testing.T) {
	// A 2x1 grid can hold only one of the two 2x1 items; the loser keeps its
	// original spot instead of being dropped.
	det := NewRectDetector()
	engine := NewTetrisEngine(det)
	cfg := Config{Bounds: MustBounds(2, 1), CellSize: DefaultCellSize, Spacing: DefaultSpacing}
	items := []Item{
		newStubAt("a", 2, 1, Origin),
		newStubAt("b", 2, 1, Coordinate{Row: 0, Col: 0}),
	}

	placements := Optimize(items, cfg, engine)
	if len(placements) != 2 {
		t.Fatalf("got %d placements, want 2 (never drop an item)", len(placements))
	}

	got := map[string]Coordinate{}
	for _, p := range placements {
		got[p.Item.ID()] = p.Position
	}
	if got["a"] != Origin {
		t.Errorf("a placed at %v, want (0,0)", got["a"])
	}
	if got["b"] != Origin {
		t.Errorf("b should keep its original position as fallback, got %v", got["b"])
	}
}
