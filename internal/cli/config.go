package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/rikardjonsson/pylon/pkg/errors"
	"github.com/rikardjonsson/pylon/pkg/grid"
	"github.com/rikardjonsson/pylon/pkg/persist"
	"github.com/rikardjonsson/pylon/pkg/store"
)

// configFileName is the config file looked up in the config directory.
const configFileName = "pylon.toml"

// Config is the TOML configuration file (pylon.toml).
type Config struct {
	Grid     GridSection     `toml:"grid"`
	Storage  StorageSection  `toml:"storage"`
	Autosave AutosaveSection `toml:"autosave"`
}

// GridSection configures the grid bounds and pixel geometry.
type GridSection struct {
	Columns  int     `toml:"columns"`
	Rows     int     `toml:"rows"` // 0 means unbounded
	CellSize float64 `toml:"cell_size"`
	Spacing  float64 `toml:"spacing"`
}

// StorageSection selects and configures the snapshot backend.
type StorageSection struct {
	Backend       string `toml:"backend"` // file, memory, redis, mongo, null
	Dir           string `toml:"dir"`
	RedisURL      string `toml:"redis_url"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// AutosaveSection configures debounced automatic saves.
type AutosaveSection struct {
	Enabled      bool `toml:"enabled"`
	DelaySeconds int  `toml:"delay_seconds"`
	Keep         int  `toml:"keep"` // autosave snapshots retained by pruning
}

// DefaultCLIConfig returns the configuration used when no file is found.
func DefaultCLIConfig() *Config {
	return &Config{
		Grid: GridSection{
			Columns:  grid.DefaultColumns,
			Rows:     grid.Unbounded,
			CellSize: grid.DefaultCellSize,
			Spacing:  grid.DefaultSpacing,
		},
		Storage: StorageSection{
			Backend: persist.BackendFile,
		},
		Autosave: AutosaveSection{
			Enabled:      true,
			DelaySeconds: 2,
			Keep:         5,
		},
	}
}

// LoadConfig reads the configuration, discovering the file when path is
// empty: $XDG_CONFIG_HOME/pylon/pylon.toml, falling back to
// ~/.config/pylon/pylon.toml. A missing file yields the defaults; a file
// that exists but does not parse is an error.
func (c *CLI) LoadConfig() (*Config, error) {
	path := c.ConfigPath
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return DefaultCLIConfig(), nil
		}
		path = filepath.Join(dir, configFileName)
		if _, err := os.Stat(path); err != nil {
			return DefaultCLIConfig(), nil
		}
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read config %s", path)
	}

	cfg := DefaultCLIConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if _, err := grid.NewBounds(cfg.Grid.Columns, cfg.Grid.Rows); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidBounds, err, "invalid [grid] section")
	}
	if cfg.Grid.CellSize <= 0 || cfg.Grid.Spacing < 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid [grid] geometry: cell_size %.1f, spacing %.1f", cfg.Grid.CellSize, cfg.Grid.Spacing)
	}
	switch cfg.Storage.Backend {
	case "", persist.BackendFile, persist.BackendMemory, persist.BackendRedis,
		persist.BackendMongo, persist.BackendNull:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.Autosave.DelaySeconds < 0 || cfg.Autosave.Keep < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid [autosave] section")
	}
	return nil
}

// GridConfig converts the [grid] section to the engine configuration.
func (cfg *Config) GridConfig() grid.Config {
	return grid.Config{
		Bounds:   grid.Bounds{Columns: cfg.Grid.Columns, Rows: cfg.Grid.Rows},
		CellSize: cfg.Grid.CellSize,
		Spacing:  cfg.Grid.Spacing,
	}
}

// StoreOptions converts the [storage] section to backend options.
func (cfg *Config) StoreOptions() store.Options {
	return store.Options{
		Backend:       cfg.Storage.Backend,
		Dir:           cfg.Storage.Dir,
		RedisURL:      cfg.Storage.RedisURL,
		MongoURI:      cfg.Storage.MongoURI,
		MongoDatabase: cfg.Storage.MongoDatabase,
	}
}

// AutosaveDelay returns the configured debounce window.
func (cfg *Config) AutosaveDelay() time.Duration {
	return time.Duration(cfg.Autosave.DelaySeconds) * time.Second
}
