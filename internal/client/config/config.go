// Package config handles configuration for the auth client: defaults,
// JSON file overlay, environment overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the authgate CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the auth backend API, including the path
//     prefix (e.g. "http://localhost:8000/api").
//   - DatabaseDSN: path of the client-local SQLite database holding the
//     persisted session token.
//   - RequestTimeout: per-request timeout for the HTTP session client.
type Config struct {
	ServerBaseURL  string
	DatabaseDSN    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000/api"
	c.DatabaseDSN = "authgate.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
