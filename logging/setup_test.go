package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"WARN", slog.LevelWarn},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tc := range testCases {
		if got := ParseLevel(tc.in); got != tc.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestSetupLoggerCreatesDatedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger := SetupLogger(dir, "info")
	if logger == nil {
		t.Fatal("Expected a logger")
	}
	logger.Info("test entry")

	expected := filepath.Join(dir, fmt.Sprintf("app-%s.log", time.Now().Format("2006-01")))
	if _, err := os.Stat(expected); err != nil {
		t.Errorf("Expected log file %s to exist: %v", expected, err)
	}
}

func TestSetupLoggerFallsBackToConsole(t *testing.T) {
	// A regular file in place of the directory makes MkdirAll fail.
	blocked := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocked, []byte("x"), 0640); err != nil {
		t.Fatalf("Failed to create blocking file: %v", err)
	}

	logger := SetupLogger(filepath.Join(blocked, "logs"), "info")
	if logger == nil {
		t.Fatal("Expected a console-only logger, got nil")
	}
	logger.Info("still works")
}

func TestGlobalHelpersWithoutInit(t *testing.T) {
	// The global helpers must not panic before InitLogger runs.
	Info("message", "key", "value")
	Warn("message")
	Error("message")
	Debug("message")
}
