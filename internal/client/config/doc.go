// Package config loads runtime configuration for the shopfront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the storefront REST API
//	-t int      request timeout (seconds)
//	-d string   path of the local SQLite database file
//	-p int      default page size for listing commands
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8080",
//	  "request_timeout": "30s",
//	  "database_path": "shopfront.db",
//	  "page_size": 12
//	}
//
// Primary API
//
//   - type Config                     — holds APIBaseURL, RequestTimeout, DatabasePath, PageSize
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
