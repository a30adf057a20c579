package grid_test

import (
	"fmt"

	"github.com/rikardjonsson/pylon/pkg/grid"
)

// tile is a minimal grid.Item used by the examples.
type tile struct {
	id  string
	fp  grid.Footprint
	pos grid.Coordinate
}

func (t *tile) ID() string                    { return t.id }
func (t *tile) Footprint() grid.Footprint     { return t.fp }
func (t *tile) Position() grid.Coordinate     { return t.pos }
func (t *tile) SetPosition(c grid.Coordinate) { t.pos = c }

func ExampleManager_Add() {
	det := grid.NewRectDetector()
	m := grid.NewManager(grid.DefaultConfig(), grid.NewTetrisEngine(det), det)

	clock := &tile{id: "clock", fp: grid.MustFootprint(2, 2)}
	weather := &tile{id: "weather", fp: grid.MustFootprint(1, 1)}

	m.Add(clock)
	m.Add(weather)

	fmt.Println("clock:", clock.Position())
	fmt.Println("weather:", weather.Position())
	// Output:
	// clock: (0,0)
	// weather: (0,2)
}

func ExampleValidateLayout() {
	items := []grid.Item{
		&tile{id: "a", fp: grid.MustFootprint(2, 2)},
		&tile{id: "b", fp: grid.MustFootprint(2, 2), pos: grid.Coordinate{Row: 0, Col: 1}},
	}

	for _, err := range grid.ValidateLayout(items, grid.DefaultConfig()) {
		fmt.Println(err)
	}
	// Output:
	// items b and a overlap at (0,1) (1,1)
}
