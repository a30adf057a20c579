package grid

import "testing"

func engines() map[string]Engine {
	det := NewRectDetector()
	return map[string]Engine{
		"tetris":     NewTetrisEngine(det),
		"sequential": NewSequentialEngine(det),
	}
}

func TestFindPositionEmptyGrid(t *testing.T) {
	cfg := DefaultConfig()
	for name, engine := range engines() {
		t.Run(name, func(t *testing.T) {
			pos, ok := engine.FindPosition(MustFootprint(1, 1), NewCellSet(), cfg)
			if !ok || pos != Origin {
				t.Errorf("FindPosition = %v, %v; want (0,0), true", pos, ok)
			}
		})
	}
}

func TestFindPositionSkipsOccupiedCells(t *testing.T) {
	// A 2x2 item at (0,0) occupies {(0,0) (0,1) (1,0) (1,1)}; the next free
	// cell in row-major order is (0,2).
	cfg := DefaultConfig()
	occupied := MustFootprint(2, 2).CellSet(Origin)

	for name, engine := range engines() {
		t.Run(name, func(t *testing.T) {
			pos, ok := engine.FindPosition(MustFootprint(1, 1), occupied, cfg)
			if !ok || pos != (Coordinate{Row: 0, Col: 2}) {
				t.Errorf("FindPosition = %v, %v; want (0,2), true", pos, ok)
			}
		})
	}
}

func TestFindPositionWrapsToNextRow(t *testing.T) {
	// Columns 0-7 of row 0 fully occupied: the scan must continue at (1,0).
	cfg := DefaultConfig()
	occupied := NewCellSet()
	for col := 0; col < 8; col++ {
		occupied.Add(Coordinate{Row: 0, Col: col})
	}

	for name, engine := range engines() {
		t.Run(name, func(t *testing.T) {
			pos, ok := engine.FindPosition(MustFootprint(1, 1), occupied, cfg)
			if !ok || pos != (Coordinate{Row: 1, Col: 0}) {
				t.Errorf("FindPosition = %v, %v; want (1,0), true", pos, ok)
			}
		})
	}
}

func TestFindPositionDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	occupied := NewCellSet(Coordinate{0, 0}, Coordinate{0, 1}, Coordinate{2, 3})

	for name, engine := range engines() {
		t.Run(name, func(t *testing.T) {
			first, ok1 := engine.FindPosition(MustFootprint(2, 2), occupied, cfg)
			second, ok2 := engine.FindPosition(MustFootprint(2, 2), occupied, cfg)
			if ok1 != ok2 || first != second {
				t.Errorf("engine is not deterministic: %v/%v vs %v/%v", first, ok1, second, ok2)
			}
		})
	}
}

func TestFindPositionRespectsBoundedRows(t *testing.T) {
	cfg := Config{Bounds: MustBounds(2, 1), CellSize: DefaultCellSize, Spacing: DefaultSpacing}
	occupied := MustFootprint(2, 1).CellSet(Origin)

	for name, engine := range engines() {
		t.Run(name, func(t *testing.T) {
			if pos, ok := engine.FindPosition(MustFootprint(1, 1), occupied, cfg); ok {
				t.Errorf("full bounded grid should reject, got %v", pos)
			}
		})
	}
}

func TestTetrisCeilingGrowsWithOccupancy(t *testing.T) {
	// With occupancy reaching row 24, the dynamic ceiling must extend past
	// the fixed floor so the scan still finds the free area below.
	det := NewRectDetector()
	engine := NewTetrisEngine(det)
	cfg := DefaultConfig()

	occupied := MustFootprint(8, 25).CellSet(Origin) // rows 0-24 fully packed
	pos, ok := engine.FindPosition(MustFootprint(1, 1), occupied, cfg)
	if !ok || pos != (Coordinate{Row: 25, Col: 0}) {
		t.Errorf("FindPosition = %v, %v; want (25,0), true", pos, ok)
	}
}

func TestTetrisCeilingFloor(t *testing.T) {
	// The ceiling never drops below the fixed floor: an empty unbounded grid
	// still accepts a footprint up to minScanRows tall.
	det := NewRectDetector()
	engine := NewTetrisEngine(det)
	cfg := DefaultConfig()

	if _, ok := engine.FindPosition(MustFootprint(1, minScanRows), NewCellSet(), cfg); !ok {
		t.Errorf("footprint of height %d should fit on an empty unbounded grid", minScanRows)
	}
}

// TestEnginesProduceOverlapFreeLayouts drives both engines through a mixed
// add sequence and verifies the resulting placements never overlap. Engines
// may pick different positions from each other; only overlap-freedom and
// per-engine determinism are promised.
func TestEnginesProduceOverlapFreeLayouts(t *testing.T) {
	specs := []struct{ w, h int }{{2, 2}, {3, 1}, {1, 1}, {4, 2}, {1, 3}, {2, 1}, {8, 1}, {1, 1}}
	cfg := DefaultConfig()

	for name, engine := range engines() {
		t.Run(name, func(t *testing.T) {
			occupied := NewCellSet()
			for i, spec := range specs {
				fp := MustFootprint(spec.w, spec.h)
				pos, ok := engine.FindPosition(fp, occupied, cfg)
				if !ok {
					t.Fatalf("placement %d (%v) found no position", i, fp)
				}
				for _, cell := range fp.Cells(pos) {
					if occupied.Contains(cell) {
						t.Fatalf("placement %d (%v at %v) overlaps cell %v", i, fp, pos, cell)
					}
					occupied.Add(cell)
				}
			}
		})
	}
}
