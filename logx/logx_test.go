package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go.eggybyte.com/egg/propgen/core/log"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf), WithColor(false))

	logger.Info("unit written", log.Str("unit", "conf.Config"))

	output := buf.String()
	if !strings.Contains(output, "level=INFO") {
		t.Errorf("expected level=INFO, got: %s", output)
	}
	if !strings.Contains(output, `msg="unit written"`) {
		t.Errorf("expected msg in output, got: %s", output)
	}
	if !strings.Contains(output, `unit="conf.Config"`) {
		t.Errorf("expected unit field in output, got: %s", output)
	}
}

func TestFieldSorting(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf))

	logger.Info("test", "zebra", "z", "alpha", "a", "beta", "b")

	output := buf.String()
	alphaPos := strings.Index(output, `alpha="a"`)
	betaPos := strings.Index(output, `beta="b"`)
	zebraPos := strings.Index(output, `zebra="z"`)

	if alphaPos == -1 || betaPos == -1 || zebraPos == -1 {
		t.Fatalf("missing fields in output: %s", output)
	}
	if alphaPos > betaPos || betaPos > zebraPos {
		t.Errorf("fields not sorted: %s", output)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf), WithLevel(slog.LevelWarn))

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("records below level should be dropped: %s", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("warn record missing: %s", output)
	}
}

func TestErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf))

	logger.Error(errors.New("disk full"), "write failed")

	if !strings.Contains(buf.String(), `error="disk full"`) {
		t.Errorf("expected error field, got: %s", buf.String())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf)).With("class", "Config")

	logger.Info("loaded", log.Strs("resources", []string{"a.properties", "b.xml"}))

	output := buf.String()
	if !strings.Contains(output, `class="Config"`) {
		t.Errorf("expected inherited field, got: %s", output)
	}
	if !strings.Contains(output, `resources="a.properties,b.xml"`) {
		t.Errorf("expected joined resources, got: %s", output)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf), WithFormat(FormatJSON))

	logger.Info("state", log.Str("state", "LOADED"), log.Int("keys", 4))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if record["msg"] != "state" || record["state"] != "LOADED" || record["level"] != "INFO" {
		t.Errorf("unexpected record: %v", record)
	}
	if _, ok := record["time"]; ok {
		t.Error("timestamp should be disabled by default")
	}
}

func TestColorization(t *testing.T) {
	var buf bytes.Buffer
	New(WithWriter(&buf), WithColor(true)).Info("test")

	if !strings.Contains(buf.String(), "\033[") {
		t.Errorf("expected ANSI color codes in output, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
