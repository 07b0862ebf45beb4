package config

import (
	"flag"
	"fmt"
	"io"
)

// flagValues keeps parsed flags until the lower-priority sources are applied.
type flagValues struct {
	set        map[string]bool
	configPath string
	dbDriver   string
	dbPath     string
	logLevel   string
	logFormat  string
	bcryptCost int
	version    bool
}

// parseFlags parses global flags from args.
//
// Supported flags:
//
//	-c, -config string   JSON config file
//	-driver string       storage backend (bolt, sqlite)
//	-db string           database path
//	-cost int            bcrypt cost
//	-log-level string    debug, info, warn, error
//	-log-format string   text, json
//	-version             print version and exit
func parseFlags(args []string) (*flagValues, []string, error) {
	fl := &flagValues{set: map[string]bool{}}

	fs := flag.NewFlagSet("tokenkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&fl.configPath, "c", "", "path to JSON config file")
	fs.StringVar(&fl.configPath, "config", "", "path to JSON config file")
	fs.StringVar(&fl.dbDriver, "driver", "", "storage driver (bolt, sqlite)")
	fs.StringVar(&fl.dbPath, "db", "", "path to user database")
	fs.IntVar(&fl.bcryptCost, "cost", 0, "bcrypt cost factor")
	fs.StringVar(&fl.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&fl.logFormat, "log-format", "", "log format (text, json)")
	fs.BoolVar(&fl.version, "version", false, "show version information")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		fl.set[f.Name] = true
	})

	return fl, fs.Args(), nil
}

// apply overrides cfg with flags that were given explicitly
func (fl *flagValues) apply(cfg *Config) {
	cfg.ShowVersion = fl.version
	if fl.set["driver"] {
		cfg.DBDriver = fl.dbDriver
	}
	if fl.set["db"] {
		cfg.DBPath = fl.dbPath
	}
	if fl.set["cost"] {
		cfg.BcryptCost = fl.bcryptCost
	}
	if fl.set["log-level"] {
		cfg.LogLevel = fl.logLevel
	}
	if fl.set["log-format"] {
		cfg.LogFormat = fl.logFormat
	}
}
