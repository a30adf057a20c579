// Package cli implements the pylon command-line interface.
//
// This package provides commands for managing stored grid layouts, validating
// and rendering layout files, serving the layout HTTP API, and an interactive
// terminal demo of the placement engine. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - demo: Interactive terminal grid for trying placement and collision
//   - layouts: List, show, delete, export, import, and prune stored layouts
//   - validate: Audit a layout file against the placement rules
//   - render: Draw a layout as an SVG document
//   - serve: Run the layout HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rikardjonsson/pylon/pkg/buildinfo"
	"github.com/rikardjonsson/pylon/pkg/persist"
	"github.com/rikardjonsson/pylon/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "pylon"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides config discovery when set via --config.
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Pylon manages widget grid layouts",
		Long:         `Pylon is a grid placement and collision engine for widget dashboards: first-fit placement, drag-aware moves, layout validation, and durable named layouts.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "path to pylon.toml (default: config dir discovery)")

	// Register all subcommands
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.layoutsCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Persister Factory
// =============================================================================

// newPersister opens the configured storage backend and builds a persister
// over it. The returned closer releases the backend.
func (c *CLI) newPersister(ctx context.Context, cfg *Config) (*persist.Persister, func(), error) {
	backend, name, err := store.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return nil, nil, err
	}
	p, err := persist.NewPersister(ctx, backend, name, c.Logger)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	closer := func() {
		if err := backend.Close(); err != nil {
			c.Logger.Warn("failed to close store", "err", err)
		}
	}
	return p, closer, nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard
// (~/.config/pylon/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
