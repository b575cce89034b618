package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/runnerr0/beacon/internal/analytics"
	"github.com/runnerr0/beacon/internal/config"
)

// loadConfig resolves the effective configuration for a command.
// An explicit --config path must load cleanly; otherwise the default
// path is used, falling back to built-in defaults if unreadable.
func loadConfig(globals *GlobalFlags) *config.Config {
	if globals != nil && globals.Config != "" {
		cfg, err := config.Load(globals.Config)
		if err != nil {
			return config.DefaultConfig()
		}
		return cfg
	}

	cfg, err := config.LoadOrCreate()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// resolveDBPath determines the SQLite database file path.
// Priority: --db-path flag > BEACON_DB_PATH env > config file.
func resolveDBPath(globals *GlobalFlags, cfg *config.Config) (string, error) {
	if globals != nil && globals.DBPath != "" {
		return globals.DBPath, nil
	}
	return cfg.DatabasePath()
}

// newLogger builds the command's zerolog logger, honoring --verbose and
// the configured level.
func newLogger(globals *GlobalFlags, cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil && cfg.Logging.Level != "" {
		level = parsed
	}
	if globals != nil && globals.Verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// openStore opens the configured database, runs migrations, and returns
// a ready store plus the config it was resolved from.
func openStore(globals *GlobalFlags) (*analytics.SQLiteStore, *config.Config, error) {
	cfg := loadConfig(globals)

	dbPath, err := resolveDBPath(globals, cfg)
	if err != nil {
		return nil, nil, err
	}

	store, err := analytics.Open(dbPath, newLogger(globals, cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("open analytics store: %w", err)
	}

	return store, cfg, nil
}
