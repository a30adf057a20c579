package grid

import "testing"

func TestCoordinateOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b Coordinate
		less bool
	}{
		{"lower row wins", Coordinate{0, 5}, Coordinate{1, 0}, true},
		{"same row lower col wins", Coordinate{2, 1}, Coordinate{2, 3}, true},
		{"equal", Coordinate{2, 2}, Coordinate{2, 2}, false},
		{"higher row", Coordinate{3, 0}, Coordinate{2, 7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.less {
				t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.less)
			}
		})
	}
}

func TestCoordinateCompare(t *testing.T) {
	if got := (Coordinate{0, 0}).Compare(Coordinate{0, 1}); got != -1 {
		t.Errorf("Compare = %d, want -1", got)
	}
	if got := (Coordinate{1, 0}).Compare(Coordinate{0, 7}); got != 1 {
		t.Errorf("Compare = %d, want 1", got)
	}
	if got := (Coordinate{4, 4}).Compare(Coordinate{4, 4}); got != 0 {
		t.Errorf("Compare = %d, want 0", got)
	}
}

func TestNewFootprint(t *testing.T) {
	if _, err := NewFootprint(0, 1); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewFootprint(1, -2); err == nil {
		t.Error("expected error for negative height")
	}
	f, err := NewFootprint(2, 3)
	if err != nil {
		t.Fatalf("NewFootprint(2, 3): %v", err)
	}
	if f.CellCount() != 6 {
		t.Errorf("CellCount = %d, want 6", f.CellCount())
	}
}

func TestMustFootprintPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustFootprint(0, 0) should panic")
		}
	}()
	MustFootprint(0, 0)
}

func TestFootprintCellsRowMajor(t *testing.T) {
	f := MustFootprint(2, 2)
	got := f.Cells(Coordinate{Row: 1, Col: 3})
	want := []Coordinate{{1, 3}, {1, 4}, {2, 3}, {2, 4}}

	if len(got) != len(want) {
		t.Fatalf("got %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFootprintCellSet(t *testing.T) {
	f := MustFootprint(3, 1)
	set := f.CellSet(Origin)
	if set.Len() != 3 {
		t.Fatalf("Len = %d, want 3", set.Len())
	}
	for _, c := range []Coordinate{{0, 0}, {0, 1}, {0, 2}} {
		if !set.Contains(c) {
			t.Errorf("set should contain %v", c)
		}
	}
	if set.Contains(Coordinate{1, 0}) {
		t.Error("set should not contain (1,0)")
	}
}

func TestCellSetOperations(t *testing.T) {
	set := NewCellSet(Coordinate{0, 0}, Coordinate{2, 1})

	if set.Len() != 2 {
		t.Fatalf("Len = %d, want 2", set.Len())
	}
	if set.MaxRow() != 2 {
		t.Errorf("MaxRow = %d, want 2", set.MaxRow())
	}

	clone := set.Clone()
	clone.Remove(Coordinate{2, 1})
	if clone.Len() != 1 {
		t.Errorf("clone Len = %d, want 1", clone.Len())
	}
	if !set.Contains(Coordinate{2, 1}) {
		t.Error("removing from a clone must not affect the original")
	}

	if NewCellSet().MaxRow() != -1 {
		t.Error("empty set MaxRow should be -1")
	}
}
