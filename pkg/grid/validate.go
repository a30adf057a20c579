package grid

import (
	"fmt"
	"strings"
)

// =============================================================================
// Validation Errors
// =============================================================================

// ValidationKind identifies the category of a layout validation finding.
type ValidationKind string

// The validation vocabulary. These are the machine-readable categories any
// diagnostic surface or test harness can rely on.
const (
	ValidationOutOfBounds      ValidationKind = "out_of_bounds"
	ValidationOverlapping      ValidationKind = "overlapping"
	ValidationDuplicateID      ValidationKind = "duplicate_id"
	ValidationInvalidPosition  ValidationKind = "invalid_position"
	ValidationInvalidFootprint ValidationKind = "invalid_footprint"
)

// ValidationError is one structural problem found in a layout. It is a value
// returned by ValidateLayout, never thrown; validation findings are
// diagnostics, not flow control.
//
// Populated fields depend on Kind:
//   - OutOfBounds: ItemID, Position, Footprint
//   - Overlapping: ItemID, OtherID, Cells (the exact shared cells)
//   - DuplicateID: ItemID
//   - InvalidPosition: ItemID, Position
//   - InvalidFootprint: ItemID, Footprint
type ValidationError struct {
	Kind      ValidationKind `json:"kind"`
	ItemID    string         `json:"item_id"`
	OtherID   string         `json:"other_id,omitempty"`
	Position  Coordinate     `json:"position,omitempty"`
	Footprint Footprint      `json:"footprint,omitempty"`
	Cells     []Coordinate   `json:"cells,omitempty"`
}

// Error implements the error interface with a human-readable description.
func (e ValidationError) Error() string {
	switch e.Kind {
	case ValidationOutOfBounds:
		return fmt.Sprintf("item %s: footprint %s at %s is out of bounds", e.ItemID, e.Footprint, e.Position)
	case ValidationOverlapping:
		cells := make([]string, len(e.Cells))
		for i, c := range e.Cells {
			cells[i] = c.String()
		}
		return fmt.Sprintf("items %s and %s overlap at %s", e.ItemID, e.OtherID, strings.Join(cells, " "))
	case ValidationDuplicateID:
		return fmt.Sprintf("duplicate item id %s", e.ItemID)
	case ValidationInvalidPosition:
		return fmt.Sprintf("item %s: invalid position %s", e.ItemID, e.Position)
	case ValidationInvalidFootprint:
		return fmt.Sprintf("item %s: invalid footprint %s", e.ItemID, e.Footprint)
	default:
		return fmt.Sprintf("item %s: unknown validation finding %q", e.ItemID, e.Kind)
	}
}

// =============================================================================
// ValidateLayout
// =============================================================================

// ValidateLayout audits a full layout and returns every structural problem
// found, in input order. It never mutates the items, so running it twice on
// the same list yields the same findings.
//
// Checks per item, in order: duplicate id (remaining checks for that item are
// skipped), negative position, non-positive footprint, footprint outside
// bounds at its recorded position, and overlap with each previously audited
// item (one finding per overlapping pair, naming both ids and the exact
// shared cells).
func ValidateLayout(items []Item, cfg Config) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]bool, len(items))
	var prior []Item

	for _, it := range items {
		id := it.ID()
		if seen[id] {
			errs = append(errs, ValidationError{Kind: ValidationDuplicateID, ItemID: id})
			continue
		}
		seen[id] = true

		pos := it.Position()
		fp := it.Footprint()

		if pos.Negative() {
			errs = append(errs, ValidationError{Kind: ValidationInvalidPosition, ItemID: id, Position: pos})
		}
		if !fp.Valid() {
			errs = append(errs, ValidationError{Kind: ValidationInvalidFootprint, ItemID: id, Footprint: fp})
		}
		if fp.Valid() && !pos.Negative() && !cfg.Bounds.Fits(fp, pos) {
			errs = append(errs, ValidationError{Kind: ValidationOutOfBounds, ItemID: id, Position: pos, Footprint: fp})
		}

		for _, other := range prior {
			cells := OverlapCells(fp, pos, other.Footprint(), other.Position())
			if len(cells) == 0 {
				continue
			}
			errs = append(errs, ValidationError{
				Kind:    ValidationOverlapping,
				ItemID:  id,
				OtherID: other.ID(),
				Cells:   cells,
			})
		}
		prior = append(prior, it)
	}

	return errs
}
