// Package config handles configuration for tokenkeeper: defaults, an optional
// JSON file, TOKENKEEPER_* environment variables and command-line flags,
// applied in that order.
package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/tokenkeeper/internal/server/storage"
)

// Config holds runtime settings.
//
// Fields:
//   - DBDriver: storage backend, "bolt" (default) or "sqlite".
//   - DBPath: on-disk location of the user collection.
//   - BcryptCost: bcrypt cost factor for new password hashes.
//   - LogLevel: debug, info, warn or error.
//   - LogFormat: text or json.
//   - ShowVersion: set by -version, flag only.
type Config struct {
	DBDriver    string `json:"db_driver"`
	DBPath      string `json:"db_path"`
	LogLevel    string `json:"log_level"`
	LogFormat   string `json:"log_format"`
	BcryptCost  int    `json:"bcrypt_cost"`
	ShowVersion bool   `json:"-"`
}

// Default values
const (
	DefaultDBPath     = "data/users.db"
	DefaultBcryptCost = 10
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// LoadDefaults populates Config with defaults.
func (c *Config) LoadDefaults() {
	c.DBDriver = storage.DriverBolt
	c.DBPath = DefaultDBPath
	c.BcryptCost = DefaultBcryptCost
	c.LogLevel = DefaultLogLevel
	c.LogFormat = DefaultLogFormat
}

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case storage.DriverBolt, storage.DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", storage.ErrUnknownDriver, c.DBDriver)
	}

	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("db path cannot be empty")
	}

	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	return nil
}

// Load builds a Config from defaults, the JSON file named by -c/-config or
// TOKENKEEPER_CONFIG, the environment and finally flags from args.
// It returns the positional arguments left after flag parsing.
func Load(args []string, getenv func(string) string) (*Config, []string, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	fl, rest, err := parseFlags(args)
	if err != nil {
		return nil, nil, err
	}

	path := fl.configPath
	if path == "" {
		path = getenv(envConfig)
	}
	if path != "" {
		if err := parseJSON(cfg, path); err != nil {
			return nil, nil, err
		}
	}

	if err := parseEnv(cfg, getenv); err != nil {
		return nil, nil, err
	}

	fl.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, rest, nil
}
