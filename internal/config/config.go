package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultDBPath      = "data/automation_hub.db"
	DefaultLogLevel    = "info"
	DefaultGraceWindow = 300 * time.Second

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the automation hub service.
type Config struct {
	// DBPath is the SQLite database file backing templates and jobs.
	DBPath string

	// MisfireGrace is the default tolerance for running jobs whose fire
	// time was missed while the process was down.
	MisfireGrace time.Duration

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DBPath:       DefaultDBPath,
		MisfireGrace: DefaultGraceWindow,
		LogLevel:     DefaultLogLevel,
	}
}

// Load reads configuration from the environment (AUTOHUB_* variables)
// on top of the defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix("AUTOHUB")
	v.AutomaticEnv()

	v.SetDefault("db_path", cfg.DBPath)
	v.SetDefault("misfire_grace", cfg.MisfireGrace)
	v.SetDefault("log_level", cfg.LogLevel)

	cfg.DBPath = v.GetString("db_path")
	cfg.MisfireGrace = v.GetDuration("misfire_grace")
	cfg.LogLevel = v.GetString("log_level")

	if abs, err := filepath.Abs(cfg.DBPath); err == nil {
		cfg.DBPath = abs
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for obvious misconfiguration.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.MisfireGrace < 0 {
		return fmt.Errorf("misfire_grace must not be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
