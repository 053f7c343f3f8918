// Package config defines service configuration and its loading order:
// defaults, then an optional YAML file, then FLOODRISK_-prefixed environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the service's environment variables,
// e.g. FLOODRISK_ADDR, FLOODRISK_DATABASE_PATH.
const envPrefix = "FLOODRISK_"

// configPathEnv names an optional YAML config file to layer over defaults.
const configPathEnv = "FLOODRISK_CONFIG"

// Config contains process configuration.
type Config struct {
	// DatabasePath locates the gzip-compressed JSON address export.
	DatabasePath string `koanf:"database_path"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the slog handler: json or text.
	LogFormat string `koanf:"log_format"`

	// ShutdownTimeoutSeconds bounds graceful HTTP shutdown.
	ShutdownTimeoutSeconds int `koanf:"shutdown_timeout_seconds"`

	// FloodProneProbability and FloodHotspotProbability set the Bernoulli
	// probabilities for the load-time record flags.
	FloodProneProbability   float64 `koanf:"flood_prone_probability"`
	FloodHotspotProbability float64 `koanf:"flood_hotspot_probability"`

	// RandomSeed fixes the flag-sampling and depth-generation seed for
	// reproducible runs. Zero means seed from the current time.
	RandomSeed int64 `koanf:"random_seed"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		DatabasePath:            "database.json.gz",
		Addr:                    ":8080",
		LogLevel:                "info",
		LogFormat:               "json",
		ShutdownTimeoutSeconds:  10,
		FloodProneProbability:   0.15,
		FloodHotspotProbability: 0.10,
	}
}

// Load builds a Config by layering defaults, an optional YAML file named by
// FLOODRISK_CONFIG, and FLOODRISK_-prefixed environment variables, in that
// order of precedence.
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(configPathEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// FLOODRISK_DATABASE_PATH -> database_path, etc. Underscores are kept
	// to match the koanf tags on the struct.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DatabasePath == "" {
		return errors.New("database_path must not be empty")
	}
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.ShutdownTimeoutSeconds <= 0 {
		return errors.New("shutdown_timeout_seconds must be positive")
	}
	if c.FloodProneProbability < 0 || c.FloodProneProbability > 1 {
		return fmt.Errorf("flood_prone_probability %v out of range [0,1]", c.FloodProneProbability)
	}
	if c.FloodHotspotProbability < 0 || c.FloodHotspotProbability > 1 {
		return fmt.Errorf("flood_hotspot_probability %v out of range [0,1]", c.FloodHotspotProbability)
	}
	return nil
}

// ShutdownTimeout returns the graceful shutdown bound as a duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
