package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, 300*time.Second, cfg.MisfireGrace)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(cfg.DBPath), "db path is resolved to absolute")
	assert.Equal(t, DefaultGraceWindow, cfg.MisfireGrace)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AUTOHUB_DB_PATH", "/var/lib/autohub/hub.db")
	t.Setenv("AUTOHUB_MISFIRE_GRACE", "2m")
	t.Setenv("AUTOHUB_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/autohub/hub.db", cfg.DBPath)
	assert.Equal(t, 2*time.Minute, cfg.MisfireGrace)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	t.Setenv("AUTOHUB_LOG_LEVEL", "verbose")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"empty db path", func(c *Config) { c.DBPath = "" }, true},
		{"negative grace", func(c *Config) { c.MisfireGrace = -time.Second }, true},
		{"zero grace is allowed", func(c *Config) { c.MisfireGrace = 0 }, false},
		{"unknown log level", func(c *Config) { c.LogLevel = "trace" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
