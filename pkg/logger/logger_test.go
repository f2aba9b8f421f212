package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithWriter(&buf), WithLevel(slog.LevelDebug))

	log.Debug("cache miss", "key", "user:1")

	out := buf.String()
	if !strings.Contains(out, "DEBUG") {
		t.Errorf("level missing from output: %s", out)
	}
	if !strings.Contains(out, "cache miss") || !strings.Contains(out, `key="user:1"`) {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithWriter(&buf), WithLevel(slog.LevelWarn))

	log.Info("should be dropped")
	log.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn message missing")
	}
}

func TestCustomLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithWriter(&buf), WithLevel(levelTrace))

	log.Trace("trace msg")
	log.Critical("critical msg")

	out := buf.String()
	if !strings.Contains(out, "TRACE") {
		t.Errorf("trace level name missing: %s", out)
	}
	if !strings.Contains(out, "CRITICAL") {
		t.Errorf("critical level name missing: %s", out)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithWriter(&buf), WithJSON())

	log.Info("started", "version", "1.4.2")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if record["msg"] != "started" {
		t.Errorf("unexpected msg: %v", record["msg"])
	}
	if record["version"] != "1.4.2" {
		t.Errorf("unexpected version attr: %v", record["version"])
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithWriter(&buf)).With("component", "app")

	log.Info("hello")

	if !strings.Contains(buf.String(), `component="app"`) {
		t.Errorf("bound attr missing: %s", buf.String())
	}
}

func TestOddArgs(t *testing.T) {
	var buf bytes.Buffer
	log := New(WithWriter(&buf))

	log.Info("odd", "dangling")

	if !strings.Contains(buf.String(), "MISSING_VALUE") {
		t.Errorf("dangling key not flagged: %s", buf.String())
	}
}
