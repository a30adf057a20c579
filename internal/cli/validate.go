package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/rikardjonsson/pylon/pkg/errors"
	"github.com/rikardjonsson/pylon/pkg/grid"
	"github.com/rikardjonsson/pylon/pkg/persist"
)

// validateCommand audits a layout file against the placement rules.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a layout JSON file",
		Long: `Validate audits a layout file against the placement rules and reports
every finding: out-of-bounds footprints, overlapping widgets, duplicate ids,
negative positions, and invalid footprints. The exit status is non-zero when
any finding is reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read %s", args[0])
			}

			// Decode without the import-path validation so a broken layout
			// is reported finding-by-finding instead of rejected outright.
			var snap persist.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				return errors.Wrap(errors.ErrCodeDecode, err, "failed to parse %s", args[0])
			}
			if snap.Config == (grid.Config{}) {
				snap.Config = grid.DefaultConfig()
			}
			if _, err := grid.NewBounds(snap.Config.Bounds.Columns, snap.Config.Bounds.Rows); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidBounds, err, "invalid grid bounds in %s", args[0])
			}

			items := make([]grid.Item, len(snap.Items))
			for i, rec := range snap.Items {
				items[i] = snapshotItem{rec: rec}
			}

			findings := grid.ValidateLayout(items, snap.Config)
			if len(findings) == 0 {
				printSuccess("%s: %d widgets, no findings", args[0], len(items))
				return nil
			}

			for _, f := range findings {
				printError("%s: %s", f.Kind, f.Error())
			}
			return errors.New(errors.ErrCodeInvalidLayout,
				"%d validation findings in %s", len(findings), args[0])
		},
	}
}

// snapshotItem adapts a snapshot record to grid.Item for validation.
type snapshotItem struct {
	rec persist.ItemRecord
}

func (s snapshotItem) ID() string                { return s.rec.ID }
func (s snapshotItem) Footprint() grid.Footprint { return s.rec.Footprint }
func (s snapshotItem) Position() grid.Coordinate { return s.rec.Position }
func (snapshotItem) SetPosition(grid.Coordinate) {}
