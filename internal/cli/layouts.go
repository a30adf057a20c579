package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rikardjonsson/pylon/pkg/errors"
	pio "github.com/rikardjonsson/pylon/pkg/io"
	"github.com/rikardjonsson/pylon/pkg/persist"
)

// layoutsCommand groups the stored-layout management subcommands.
func (c *CLI) layoutsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Manage stored grid layouts",
		Long:  `List, inspect, delete, export, import, and prune the layouts in the configured storage backend.`,
	}

	cmd.AddCommand(c.layoutsListCommand())
	cmd.AddCommand(c.layoutsShowCommand())
	cmd.AddCommand(c.layoutsDeleteCommand())
	cmd.AddCommand(c.layoutsExportCommand())
	cmd.AddCommand(c.layoutsImportCommand())
	cmd.AddCommand(c.layoutsPruneCommand())

	return cmd
}

func (c *CLI) layoutsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored layouts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.LoadConfig()
			if err != nil {
				return err
			}
			p, closeStore, err := c.newPersister(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			snaps := p.List()
			if len(snaps) == 0 {
				printInfo("no stored layouts")
				return nil
			}
			for _, snap := range snaps {
				name := snap.Name
				if snap.IsAutosave() {
					name = StyleDim.Render(name)
				} else {
					name = StyleValue.Render(name)
				}
				fmt.Printf("%s  %s  %s\n",
					StyleHighlight.Render(snap.ID),
					name,
					StyleDim.Render(fmt.Sprintf("%d widgets, modified %s",
						len(snap.Items), snap.ModifiedAt.Format("2006-01-02 15:04"))))
			}
			return nil
		},
	}
}

func (c *CLI) layoutsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one stored layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.LoadConfig()
			if err != nil {
				return err
			}
			p, closeStore, err := c.newPersister(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			snap := p.Find(args[0])
			if snap == nil {
				return errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", args[0])
			}

			printKeyValue("id", snap.ID)
			printKeyValue("name", snap.Name)
			printKeyValue("grid", snap.Config.Bounds.String())
			printKeyValue("modified", snap.ModifiedAt.Format("2006-01-02 15:04:05"))
			printKeyValue("widgets", fmt.Sprintf("%d", len(snap.Items)))
			for _, rec := range snap.Items {
				title := rec.Title
				if title == "" {
					title = rec.Category
				}
				printDetail("%s %s %s at %s", rec.ID, title, rec.Footprint, rec.Position)
			}
			return nil
		},
	}
}

func (c *CLI) layoutsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.LoadConfig()
			if err != nil {
				return err
			}
			p, closeStore, err := c.newPersister(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			if p.Find(args[0]) == nil {
				return errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", args[0])
			}
			if err := p.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("deleted layout %s", args[0])
			return nil
		},
	}
}

func (c *CLI) layoutsExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a stored layout to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.LoadConfig()
			if err != nil {
				return err
			}
			p, closeStore, err := c.newPersister(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			snap := p.Find(args[0])
			if snap == nil {
				return errors.New(errors.ErrCodeLayoutNotFound, "layout %s not found", args[0])
			}

			path := output
			if path == "" {
				path = snap.Name + ".json"
			}
			if err := pio.ExportJSON(snap, path); err != nil {
				return errors.Wrap(errors.ErrCodeEncode, err, "failed to export layout %s", snap.ID)
			}
			printSuccess("exported layout %q", snap.Name)
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <name>.json)")
	return cmd
}

func (c *CLI) layoutsImportCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a layout JSON file into storage",
		Long:  `Import validates the file against the placement rules (bounds, overlaps, duplicate ids) and stores it under a fresh snapshot id.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.LoadConfig()
			if err != nil {
				return err
			}
			p, closeStore, err := c.newPersister(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			prog := newProgress(c.Logger)
			snap, err := pio.ImportJSON(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeDecode, err, "failed to import layout")
			}

			// Imported layouts always get a fresh identity so a re-import
			// never silently overwrites an existing snapshot.
			snap.ID = ""
			if name != "" {
				snap.Name = name
			}
			if snap.Name == "" {
				snap.Name = "Imported"
			}

			saved, err := p.SaveSnapshot(cmd.Context(), snap)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Imported %d widgets", len(saved.Items)))
			printSuccess("stored layout %q as %s", saved.Name, saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "store under this layout name")
	return cmd
}

func (c *CLI) layoutsPruneCommand() *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old autosave snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.LoadConfig()
			if err != nil {
				return err
			}
			p, closeStore, err := c.newPersister(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			if keep < 0 {
				keep = cfg.Autosave.Keep
			}
			before := countAutosaves(p)
			if err := p.CleanupAutosaves(cmd.Context(), keep); err != nil {
				return err
			}
			pruned := before - countAutosaves(p)
			if pruned == 0 {
				printInfo("nothing to prune (%d autosaves, keeping %d)", before, keep)
				return nil
			}
			printSuccess("pruned %d autosaves, %d kept", pruned, keep)
			return nil
		},
	}

	cmd.Flags().IntVar(&keep, "keep", -1, "autosaves to keep (default: [autosave].keep from config)")
	return cmd
}

func countAutosaves(p *persist.Persister) int {
	var n int
	for _, s := range p.List() {
		if s.IsAutosave() {
			n++
		}
	}
	return n
}
