package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/park285/leetcode-profile-go/internal/config"
)

func TestNewLoggerCreatesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.LoggingConfig{
		LogDir:     dir,
		Level:      "info",
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
		Compress:   true,
	}
	var console bytes.Buffer
	if _, err := newLoggerTo(&console, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(dir, defaultLogFileName)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected log file, got error: %v", err)
	}
	if !strings.Contains(console.String(), "file_logging_enabled") {
		t.Fatalf("expected console output, got: %q", console.String())
	}
}

func TestNewLoggerRejectsInvalidRotation(t *testing.T) {
	cfg := config.LoggingConfig{LogDir: t.TempDir(), MaxSizeMB: 0, MaxBackups: 1, MaxAgeDays: 1}
	if _, err := newLoggerTo(&bytes.Buffer{}, cfg); err == nil {
		t.Fatalf("expected error for zero max size")
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var console bytes.Buffer
	logger, err := newLoggerTo(&console, config.LoggingConfig{Level: "warn"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("hidden_event")
	logger.Warn("visible_event")
	if strings.Contains(console.String(), "hidden_event") {
		t.Fatalf("info should be filtered at warn level")
	}
	if !strings.Contains(console.String(), "visible_event") {
		t.Fatalf("expected warn output, got: %q", console.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range tests {
		if got := ParseLevel(input); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", input, got, want)
		}
	}
}
