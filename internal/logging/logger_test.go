package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vanshika/finnet/internal/config"
)

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(config.LoggingConfig{Level: "warn", Format: "JSON"}, &buf)

	logger.Info("dropped")
	logger.Warn("kept", "vertex", "Apple")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %q", buf.String())
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record["msg"] != "kept" || record["vertex"] != "Apple" {
		t.Fatalf("unexpected record %v", record)
	}
}

func TestNewWritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finnet.log")
	logger, closeLog := New(config.LoggingConfig{Level: "debug", File: path, MaxSizeMB: 1})
	logger.Debug("graph loaded", "vertices", 10)
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "graph loaded") {
		t.Fatalf("log file missing record: %q", data)
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel(" Warning ") != parseLevel("warn") {
		t.Fatal("warning and warn should match")
	}
	if parseLevel("bogus") != parseLevel("info") {
		t.Fatal("unknown levels default to info")
	}
}
