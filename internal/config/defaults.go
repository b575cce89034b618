package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:       "~/.config/beacon",
			SQLiteFile: "analytics.db",
		},
		RateLimit: RateLimitConfig{
			MaxPerWindow:  10,
			WindowMinutes: 1,
		},
		Server: ServerConfig{
			Host:           "127.0.0.1",
			Port:           3030,
			AuthToken:      "",
			MaxRequestSize: 1048576,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
