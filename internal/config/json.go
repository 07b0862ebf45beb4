package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON overlays non-zero values from the JSON file at path onto cfg.
func parseJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fileCfg.DBDriver != "" {
		cfg.DBDriver = fileCfg.DBDriver
	}
	if fileCfg.DBPath != "" {
		cfg.DBPath = fileCfg.DBPath
	}
	if fileCfg.BcryptCost != 0 {
		cfg.BcryptCost = fileCfg.BcryptCost
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogFormat != "" {
		cfg.LogFormat = fileCfg.LogFormat
	}

	return nil
}
