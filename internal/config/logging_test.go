package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Info("turn complete", "locations", 2)
	logger.Debug("below level")

	if !strings.Contains(stderr.String(), "turn complete") {
		t.Errorf("stderr output missing message: %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "locations=2") {
		t.Errorf("stderr output missing attribute: %q", stderr.String())
	}

	var entry map[string]any
	if err := json.Unmarshal(file.Bytes(), &entry); err != nil {
		t.Fatalf("file output is not JSON: %v", err)
	}
	if entry["msg"] != "turn complete" {
		t.Errorf("file entry msg = %v, want %q", entry["msg"], "turn complete")
	}
	if entry["locations"] != float64(2) {
		t.Errorf("file entry locations = %v, want 2", entry["locations"])
	}

	if strings.Contains(stderr.String(), "below level") || strings.Contains(file.String(), "below level") {
		t.Error("debug record must be dropped at INFO level")
	}
}

func TestSetupLoggerWithoutFile(t *testing.T) {
	logger, cleanup := SetupLogger("", slog.LevelInfo)
	if logger == nil {
		t.Fatal("logger must not be nil")
	}
	if err := cleanup(); err != nil {
		t.Errorf("cleanup without a log file must be a no-op, got %v", err)
	}
}
