package config

import (
	"fmt"
	"strconv"
)

const (
	envConfig     = "TOKENKEEPER_CONFIG"
	envDBDriver   = "TOKENKEEPER_DB_DRIVER"
	envDBPath     = "TOKENKEEPER_DB_PATH"
	envBcryptCost = "TOKENKEEPER_BCRYPT_COST"
	envLogLevel   = "TOKENKEEPER_LOG_LEVEL"
	envLogFormat  = "TOKENKEEPER_LOG_FORMAT"
)

func parseEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(envDBDriver); v != "" {
		cfg.DBDriver = v
	}
	if v := getenv(envDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := getenv(envBcryptCost); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envBcryptCost, err)
		}
		cfg.BcryptCost = cost
	}
	if v := getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(envLogFormat); v != "" {
		cfg.LogFormat = v
	}

	return nil
}
