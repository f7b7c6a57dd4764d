package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withLogFlags(t *testing.T, level, file string) {
	t.Helper()
	oldLevel, oldFile := flagLogLevel, flagLogFile
	flagLogLevel, flagLogFile = level, file
	t.Cleanup(func() {
		flagLogLevel, flagLogFile = oldLevel, oldFile
	})
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level   string
		debug   bool
		wantErr bool
	}{
		{"debug", true, false},
		{"INFO", false, false},
		{"warn", false, false},
		{"loud", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			withLogFlags(t, tc.level, "")
			var buf bytes.Buffer

			logger, closeLog, err := newLogger("test", &buf)
			if tc.wantErr {
				if err == nil {
					t.Errorf("newLogger(%q) error = nil, expected an error", tc.level)
				}
				return
			}
			if err != nil {
				t.Fatalf("newLogger(%q) error = %v", tc.level, err)
			}
			defer closeLog()

			logger.Debug("debug marker")
			if got := strings.Contains(buf.String(), "debug marker"); got != tc.debug {
				t.Errorf("debug line written = %v, expected %v", got, tc.debug)
			}
		})
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grabber.log")
	withLogFlags(t, "info", path)

	var fallback bytes.Buffer
	logger, closeLog, err := newLogger("grabber", &fallback)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("round over", "winner", "player")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "round over") || !strings.Contains(string(data), "grabber") {
		t.Errorf("log file = %q, expected the message with its prefix", data)
	}
	if fallback.Len() != 0 {
		t.Errorf("fallback received %q, expected nothing when logging to a file", fallback.String())
	}
}

func TestNewLoggerDiscard(t *testing.T) {
	withLogFlags(t, "info", "")
	logger, closeLog, err := newLogger("grabber", nil)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer closeLog()
	logger.Info("dropped")
}

func TestNewLoggerBadFile(t *testing.T) {
	withLogFlags(t, "info", filepath.Join(t.TempDir(), "missing", "grabber.log"))
	if _, _, err := newLogger("grabber", nil); err == nil {
		t.Error("newLogger() error = nil, expected an error for an unwritable path")
	}
}
