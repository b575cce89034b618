package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default config file path.
const DefaultConfigPath = "~/.config/beacon/config.yaml"

// EnvDBPath overrides the resolved database file path when set. It wins
// over everything in the config file.
const EnvDBPath = "BEACON_DB_PATH"

// Config holds all Beacon configuration.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type StorageConfig struct {
	Path       string `yaml:"path"`
	SQLiteFile string `yaml:"sqlite_file"`
}

// RateLimitConfig governs admission control in the HTTP server. The
// engine only reports counts; these numbers decide accept vs. reject.
type RateLimitConfig struct {
	MaxPerWindow  int `yaml:"max_per_window"`
	WindowMinutes int `yaml:"window_minutes"`
}

type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	AuthToken      string `yaml:"auth_token"`
	MaxRequestSize int    `yaml:"max_request_size"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML config file at path and merges it with defaults.
// Returns an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// LoadOrCreate loads the config from the default path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreate() (*Config, error) {
	path, err := expandPath(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return LoadOrCreateAt(path)
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling default config: %w", err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}

		return cfg, nil
	}

	return Load(path)
}

// DatabasePath resolves the SQLite file location. Priority: the
// BEACON_DB_PATH environment variable, then storage.path + sqlite_file
// from the config (with ~ expansion).
func (c *Config) DatabasePath() (string, error) {
	if envPath := os.Getenv(EnvDBPath); envPath != "" {
		return envPath, nil
	}

	storagePath, err := expandPath(c.Storage.Path)
	if err != nil {
		return "", err
	}
	return filepath.Join(storagePath, c.Storage.SQLiteFile), nil
}
