package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.MetricsEnabled {
		t.Errorf("MetricsEnabled = true, want false by default")
	}
	if cfg.LoggingEnabled {
		t.Errorf("LoggingEnabled = true, want false by default")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GRAPHMVCC_METRICS_ENABLED", "true")
	t.Setenv("GRAPHMVCC_LOGGING_ENABLED", "true")
	t.Setenv("GRAPHMVCC_LOG_LEVEL", "debug")

	cfg := Load()
	if !cfg.MetricsEnabled {
		t.Errorf("MetricsEnabled = false, want true after env override")
	}
	if !cfg.LoggingEnabled {
		t.Errorf("LoggingEnabled = false, want true after env override")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}
