package config

import (
	"log/slog"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
}

func TestDefaultLogConfig(t *testing.T) {
	cfg := Default()

	if cfg.Log.Level != slog.LevelWarn {
		t.Errorf("Log.Level = %v, want %v", cfg.Log.Level, slog.LevelWarn)
	}
	if cfg.Log.Format != FormatAuto {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, FormatAuto)
	}
	if cfg.Log.File != "" {
		t.Errorf("Log.File = %q, want empty (stderr)", cfg.Log.File)
	}
}

func TestDefaultLogRotationConfig(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"MaxSizeMB", cfg.LogRotation.MaxSizeMB, 10},
		{"MaxBackups", cfg.LogRotation.MaxBackups, 3},
		{"MaxAgeDays", cfg.LogRotation.MaxAgeDays, 7},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("LogRotation.%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if !cfg.LogRotation.Compress {
		t.Error("LogRotation.Compress = false, want true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"json format", func(c *Config) { c.Log.Format = FormatJSON }, false},
		{"upper case format", func(c *Config) { c.Log.Format = "TEXT" }, false},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"negative size", func(c *Config) { c.LogRotation.MaxSizeMB = -1 }, true},
		{"negative backups", func(c *Config) { c.LogRotation.MaxBackups = -2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
