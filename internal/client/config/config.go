package config

import "time"

// Config holds runtime settings for the Anonsen client.
//
// Fields:
//   - DatabasePath: path (or DSN) of the local SQLite database backing
//     durable storage.
//   - SessionSecret: key used to sign session tokens. Any change
//     invalidates existing sessions.
//   - SessionTTL: lifetime of non-remember-me sessions.
type Config struct {
	DatabasePath  string
	SessionSecret string
	SessionTTL    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "anonsen.db"
	c.SessionSecret = "anonsen-local-dev-secret"
	c.SessionTTL = 24 * time.Hour
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
