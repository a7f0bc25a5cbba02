package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terno-lang/terno/internal/config"
)

func fileConfig(path string, level slog.Level) *config.Config {
	cfg := config.Default()
	cfg.Log.File = path
	cfg.Log.Level = level
	return cfg
}

func TestSetupLogger_WritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "terno.log")

	result, err := SetupLogger(&bytes.Buffer{}, fileConfig(logPath, slog.LevelInfo))
	if err != nil {
		t.Fatalf("SetupLogger failed: %v", err)
	}

	if result.FilePath != logPath {
		t.Errorf("FilePath = %q, want %q", result.FilePath, logPath)
	}

	result.Logger.Info("test message", "key", "value")
	_ = result.Close()

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(content), "test message") {
		t.Errorf("log file should contain 'test message', got: %s", content)
	}
	if !strings.Contains(string(content), `"key":"value"`) {
		t.Errorf("log file should contain key=value, got: %s", content)
	}
}

func TestSetupLogger_FileModeDoesNotWriteToStderr(t *testing.T) {
	var stderr bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "terno.log")

	result, err := SetupLogger(&stderr, fileConfig(logPath, slog.LevelDebug))
	if err != nil {
		t.Fatalf("SetupLogger failed: %v", err)
	}
	result.Logger.Error("this should not appear on stderr")
	_ = result.Close()

	if stderr.Len() > 0 {
		t.Errorf("file logger wrote to stderr: %s", stderr.String())
	}
}

func TestSetupLogger_AppendsToExistingFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "terno.log")
	if err := os.WriteFile(logPath, []byte("existing content\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	result, err := SetupLogger(&bytes.Buffer{}, fileConfig(logPath, slog.LevelInfo))
	if err != nil {
		t.Fatalf("SetupLogger failed: %v", err)
	}
	result.Logger.Info("new message")
	_ = result.Close()

	content, _ := os.ReadFile(logPath)
	if !strings.Contains(string(content), "existing content") {
		t.Error("should preserve existing content")
	}
	if !strings.Contains(string(content), "new message") {
		t.Error("should append new message")
	}
}

func TestSetupLogger_FailsWhenDirectoryCannotBeCreated(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	result, err := SetupLogger(&bytes.Buffer{}, fileConfig(filepath.Join(blocker, "sub", "terno.log"), slog.LevelInfo))
	if err == nil {
		_ = result.Close()
		t.Error("expected error when the log directory sits under a regular file")
	}
}

func TestSetupLogger_RespectsLogLevel(t *testing.T) {
	var stderr bytes.Buffer
	cfg := config.Default()
	cfg.Log.Format = config.FormatJSON

	result, err := SetupLogger(&stderr, cfg)
	if err != nil {
		t.Fatalf("SetupLogger failed: %v", err)
	}

	result.Logger.Info("info message")
	result.Logger.Warn("warn message")

	if strings.Contains(stderr.String(), "info message") {
		t.Error("INFO message should be filtered out at WARN level")
	}
	if !strings.Contains(stderr.String(), "warn message") {
		t.Error("WARN message should appear")
	}
}

func TestSetupLogger_StderrFormats(t *testing.T) {
	tests := []struct {
		format   string
		wantJSON bool
	}{
		{config.FormatJSON, true},
		{config.FormatText, false},
		// a bytes.Buffer is never a terminal
		{config.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var stderr bytes.Buffer
			cfg := config.Default()
			cfg.Log.Format = tt.format

			result, err := SetupLogger(&stderr, cfg)
			if err != nil {
				t.Fatalf("SetupLogger failed: %v", err)
			}
			if result.LogFile != nil {
				t.Error("stderr logger should not own a log file")
			}
			result.Logger.Warn("hello", "n", 1)

			isJSON := strings.HasPrefix(stderr.String(), "{")
			if isJSON != tt.wantJSON {
				t.Errorf("format %s produced %q", tt.format, stderr.String())
			}
		})
	}
}
