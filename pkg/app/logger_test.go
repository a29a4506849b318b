package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "info", Format: "JSON", Output: &buf})
	logger.Info("saved", "date", "2024-03-10")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected a JSON line, got %q: %v", buf.String(), err)
	}
	if m["date"] != "2024-03-10" || m["msg"] != "saved" {
		t.Fatalf("unexpected record %v", m)
	}
	if slog.Default() != logger {
		t.Fatalf("logger should be the default")
	}
}

func TestNewLoggerDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "bogus", Output: &buf})
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "msg=shown") {
		t.Fatalf("unexpected text output %q", out)
	}
	if !logger.Enabled(context.Background(), slog.LevelWarn) || logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("level should default to warn")
	}
}
