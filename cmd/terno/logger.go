package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/terno-lang/terno/internal/config"
)

// LoggerResult contains the results of setting up logging.
type LoggerResult struct {
	Logger   *slog.Logger
	LogFile  io.WriteCloser
	FilePath string
}

// Close closes the log file if it was opened.
func (r *LoggerResult) Close() error {
	if r.LogFile != nil {
		return r.LogFile.Close()
	}
	return nil
}

// SetupLogger builds the process logger from cfg. With log.file set, JSON
// records go to a lumberjack-rotated file and stderr stays clean for
// diagnostics. Otherwise records go to stderr in the configured format.
func SetupLogger(stderr io.Writer, cfg *config.Config) (*LoggerResult, error) {
	opts := &slog.HandlerOptions{Level: cfg.Log.Level}

	if cfg.Log.File == "" {
		return &LoggerResult{Logger: slog.New(newStderrHandler(stderr, cfg.Log.Format, opts))}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	rotation := cfg.LogRotation
	fileWriter := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   rotation.Compress,
	}

	return &LoggerResult{
		Logger:   slog.New(slog.NewJSONHandler(fileWriter, opts)),
		LogFile:  fileWriter,
		FilePath: cfg.Log.File,
	}, nil
}

// newStderrHandler picks the handler for format; "auto" means text when w is
// a terminal and JSON otherwise.
func newStderrHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(format) {
	case config.FormatText:
		return slog.NewTextHandler(w, opts)
	case config.FormatJSON:
		return slog.NewJSONHandler(w, opts)
	}
	if isTerminal(w) {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
