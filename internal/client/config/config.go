package config

import "time"

// Config holds runtime settings for the shopfront CLI.
//
// Fields:
//   - APIBaseURL: base URL of the storefront REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: path of the local SQLite database file.
//   - PageSize: default page size for listing commands.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	PageSize       int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "shopfront.db"
	c.PageSize = 12
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
