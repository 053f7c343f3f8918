package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "database.json.gz", cfg.DatabasePath)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout())
	assert.Equal(t, 0.15, cfg.FloodProneProbability)
	assert.Equal(t, 0.10, cfg.FloodHotspotProbability)
	assert.Zero(t, cfg.RandomSeed)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FLOODRISK_DATABASE_PATH", "/data/sg.json.gz")
	t.Setenv("FLOODRISK_ADDR", ":9090")
	t.Setenv("FLOODRISK_LOG_LEVEL", "debug")
	t.Setenv("FLOODRISK_LOG_FORMAT", "text")
	t.Setenv("FLOODRISK_SHUTDOWN_TIMEOUT_SECONDS", "30")
	t.Setenv("FLOODRISK_FLOOD_PRONE_PROBABILITY", "0.5")
	t.Setenv("FLOODRISK_FLOOD_HOTSPOT_PROBABILITY", "0.25")
	t.Setenv("FLOODRISK_RANDOM_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/sg.json.gz", cfg.DatabasePath)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout())
	assert.Equal(t, 0.5, cfg.FloodProneProbability)
	assert.Equal(t, 0.25, cfg.FloodHotspotProbability)
	assert.Equal(t, int64(42), cfg.RandomSeed)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7000\"\nlog_level: warn\n"), 0o644))
	t.Setenv("FLOODRISK_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "warn", cfg.LogLevel)
	// Unset keys keep their defaults.
	assert.Equal(t, "database.json.gz", cfg.DatabasePath)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7000\"\n"), 0o644))
	t.Setenv("FLOODRISK_CONFIG", path)
	t.Setenv("FLOODRISK_ADDR", ":7001")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7001", cfg.Addr)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"empty database path", "FLOODRISK_DATABASE_PATH", ""},
		{"empty addr", "FLOODRISK_ADDR", ""},
		{"zero shutdown timeout", "FLOODRISK_SHUTDOWN_TIMEOUT_SECONDS", "0"},
		{"prone probability above one", "FLOODRISK_FLOOD_PRONE_PROBABILITY", "1.5"},
		{"negative hotspot probability", "FLOODRISK_FLOOD_HOTSPOT_PROBABILITY", "-0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("FLOODRISK_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	require.Error(t, err)
}
