// Package grid implements the placement and collision engine for the Pylon
// dashboard.
//
// The package is organized around a small set of value types and two pure
// computation layers that a stateful manager orchestrates:
//
//   - Coordinate, Footprint, Bounds, Config: integer grid geometry
//   - Detector: collision tests between footprints and occupied cells
//   - Engine: first-fit placement, with two interchangeable strategies
//   - ValidateLayout / Optimize: whole-layout auditing and compaction
//   - Manager: the stateful orchestrator owning items and the occupancy cache
//
// # Placement Model
//
// The grid has a fixed column count and an optionally unbounded row count.
// Items occupy axis-aligned rectangles of whole cells. Automatic placement
// scans candidates row-major (top-to-bottom, left-to-right) and picks the
// first position that fits within bounds and collides with nothing: the
// "Tetris" policy. Interactive moves skip the engine and test a user-chosen
// position against the same collision predicate, so automatic and manual
// placement accept exactly the same states.
//
// # Failure Model
//
// "No space" is a normal outcome, not an error: placement and mutation
// operations report success with booleans and never return errors. Malformed
// geometry (non-positive footprints or bounds) is a programmer error and is
// rejected at construction. Whole-layout problems are reported as a list of
// ValidationError values by ValidateLayout.
//
// # Concurrency
//
// The Manager is not safe for concurrent mutation; callers are expected to
// serialize access (a single UI event loop in the original application).
// Detector and Engine implementations are pure and safe to call from any
// goroutine as long as their inputs are not mutated concurrently.
package grid
