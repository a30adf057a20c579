package grid

// =============================================================================
// Engine
// =============================================================================

// Engine finds free positions for footprints. Implementations must be
// deterministic: the same footprint, occupancy, and config always yield the
// same answer. Different engines may legitimately choose different positions
// for the same inputs; determinism is only promised within one engine.
//
// The engine is injected into the Manager at the composition root.
type Engine interface {
	// FindPosition returns the first free position for the footprint under
	// the engine's scan policy, or ok=false when no position exists within
	// the engine's scan limit. "No space" is a normal outcome, not an error.
	FindPosition(f Footprint, occupied CellSet, cfg Config) (Coordinate, bool)
}

// minScanRows is the floor for the dynamic row ceiling on unbounded grids.
// The ceiling is max(maxOccupiedRow + footprint height, minScanRows), which
// bounds the scan while still letting the grid grow. A sparse layout with
// free space far below the ceiling can be rejected even though space exists;
// that scan-limit tradeoff is accepted rather than scanning forever.
const minScanRows = 20

// =============================================================================
// TetrisEngine
// =============================================================================

// TetrisEngine places footprints first-fit in row-major order: rows
// top-to-bottom, and columns left-to-right within each row. On unbounded
// grids it computes a dynamic row ceiling from the current occupancy.
type TetrisEngine struct {
	det Detector
}

// NewTetrisEngine creates the standard first-fit engine.
func NewTetrisEngine(det Detector) *TetrisEngine {
	return &TetrisEngine{det: det}
}

// FindPosition scans row-major and returns the first coordinate where the
// footprint fits within bounds and overlaps no occupied cell. Lower rows win,
// and within a row lower columns win; this tie-break is the deterministic
// "Tetris" policy.
func (e *TetrisEngine) FindPosition(f Footprint, occupied CellSet, cfg Config) (Coordinate, bool) {
	return scanFirstFit(e.det, f, occupied, cfg, scanCeiling(f, occupied, cfg.Bounds))
}

// scanCeiling returns the exclusive upper row limit for the scan. Bounded
// grids scan exactly their rows; unbounded grids scan to one footprint height
// past the lowest occupied row, with a minimum floor so early layouts have
// room to grow.
func scanCeiling(f Footprint, occupied CellSet, b Bounds) int {
	if b.RowBounded() {
		return b.Rows
	}
	ceiling := occupied.MaxRow() + 1 + f.Height
	if ceiling < minScanRows {
		ceiling = minScanRows
	}
	return ceiling
}

// =============================================================================
// SequentialEngine
// =============================================================================

// sequentialMaxRows is the fixed scan ceiling for the sequential engine on
// unbounded grids. Generous for a dashboard with tens of widgets.
const sequentialMaxRows = 100

// SequentialEngine is the simple fallback placement strategy: the same
// row-major first-fit scan as TetrisEngine, but with a fixed row ceiling
// instead of one derived from the occupancy. It exists as the second,
// interchangeable implementation behind the Engine contract.
type SequentialEngine struct {
	det Detector
}

// NewSequentialEngine creates the fixed-ceiling fallback engine.
func NewSequentialEngine(det Detector) *SequentialEngine {
	return &SequentialEngine{det: det}
}

// FindPosition scans row-major up to a fixed ceiling.
func (e *SequentialEngine) FindPosition(f Footprint, occupied CellSet, cfg Config) (Coordinate, bool) {
	ceiling := sequentialMaxRows
	if cfg.Bounds.RowBounded() {
		ceiling = cfg.Bounds.Rows
	}
	return scanFirstFit(e.det, f, occupied, cfg, ceiling)
}

// scanFirstFit is the shared row-major scan. The ceiling is exclusive and
// always finite, so the scan terminates even on unbounded grids.
func scanFirstFit(det Detector, f Footprint, occupied CellSet, cfg Config, ceiling int) (Coordinate, bool) {
	for row := 0; row < ceiling; row++ {
		for col := 0; col < cfg.Bounds.Columns; col++ {
			candidate := Coordinate{Row: row, Col: col}
			if !cfg.Bounds.Fits(f, candidate) {
				continue
			}
			if det.Collides(f, candidate, occupied) {
				continue
			}
			return candidate, true
		}
	}
	return Coordinate{}, false
}

var (
	_ Engine = (*TetrisEngine)(nil)
	_ Engine = (*SequentialEngine)(nil)
)
