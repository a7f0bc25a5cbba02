// Package config provides configuration types and defaults for terno.
package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Log output formats.
const (
	FormatAuto = "auto" // text on a terminal, JSON otherwise
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all configuration for terno.
type Config struct {
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level  slog.Level `yaml:"level" mapstructure:"level"`
	Format string     `yaml:"format" mapstructure:"format"`
	File   string     `yaml:"file" mapstructure:"file"` // Rotating log file; empty means stderr
}

// LogRotationConfig holds settings for log file rotation.
// Only used when Log.File is set.
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns a Config with sensible defaults. Logging stays at warn so
// ordinary runs print nothing but their own output.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  slog.LevelWarn,
			Format: FormatAuto,
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate reports settings that cannot be honoured.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case FormatAuto, FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: must be auto, text or json", c.Log.Format)
	}
	if c.LogRotation.MaxSizeMB < 0 || c.LogRotation.MaxBackups < 0 || c.LogRotation.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}
	return nil
}
