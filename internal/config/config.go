// Package config loads engine tunables from the environment, following
// the same prefix-scan-then-Unmarshal pattern used elsewhere in this
// codebase's Go services: no config file is required, every field has a
// sane default, and env vars override it.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "GRAPHMVCC_"

// Config holds engine tunables that aren't worth exposing as
// pkg/graph.Option parameters. None of it affects correctness — only
// observability and defaults.
type Config struct {
	// MetricsEnabled turns on the default prometheus registry when no
	// explicit WithMetrics option was given.
	MetricsEnabled bool `mapstructure:"metrics_enabled"`

	// LoggingEnabled turns on a default stdout JSON logger when no
	// explicit WithLogger option was given.
	LoggingEnabled bool `mapstructure:"logging_enabled"`

	// LogLevel is parsed by pkg/glog.ParseLevel when building the default
	// logger; it only takes effect when LoggingEnabled is set.
	LogLevel string `mapstructure:"log_level"`
}

func defaults() Config {
	return Config{
		MetricsEnabled: false,
		LoggingEnabled: false,
		LogLevel:       "info",
	}
}

// Load reads GRAPHMVCC_-prefixed environment variables over top of the
// defaults. Missing or malformed env vars never produce an error — an
// in-memory graph engine has no business failing to start over config.
func Load() Config {
	v := viper.New()
	cfg := defaults()
	v.SetDefault("metrics_enabled", cfg.MetricsEnabled)
	v.SetDefault("logging_enabled", cfg.LoggingEnabled)
	v.SetDefault("log_level", cfg.LogLevel)

	for _, envStr := range os.Environ() {
		key, value, ok := strings.Cut(envStr, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) {
			continue
		}
		propKey := strings.ToLower(strings.TrimPrefix(key, envPrefix))
		v.Set(propKey, value)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return defaults()
	}
	return cfg
}
