package internal

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHandler_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		level    slog.Level
		minLevel slog.Level
		want     bool
	}{
		{"debug below info", slog.LevelDebug, slog.LevelInfo, false},
		{"info at info", slog.LevelInfo, slog.LevelInfo, true},
		{"error above info", slog.LevelError, slog.LevelInfo, true},
		{"debug at debug", slog.LevelDebug, slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(Options{Level: tt.minLevel}, &bytes.Buffer{})
			if got := handler.Enabled(context.Background(), tt.level); got != tt.want {
				t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestHandler_HandleThroughSlog(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewHandler(Options{Format: "logfmt", Level: slog.LevelInfo, DisableTimestamp: true}, buf))

	logger.With("class", "Config").Info("generated", "accessors", 3)

	output := buf.String()
	want := `level=INFO msg="generated" accessors=3 class="Config"` + "\n"
	if output != want {
		t.Errorf("output = %q, want %q", output, want)
	}
}

func TestKVToAttrs(t *testing.T) {
	attrs := KVToAttrs([]any{[]any{"a", 1}, "b", "two", "dangling"})
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != "a" || attrs[1].Key != "b" {
		t.Errorf("unexpected keys: %v", attrs)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value slog.Value
		want  string
	}{
		{"string", slog.StringValue("x y"), `"x y"`},
		{"int", slog.IntValue(7), "7"},
		{"float", slog.Float64Value(1.50), "1.5"},
		{"bool", slog.BoolValue(true), "true"},
		{"duration", slog.DurationValue(2 * time.Second), "2000"},
		{"strings", slog.AnyValue([]string{"a", "b"}), `"a,b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value); got != tt.want {
				t.Errorf("FormatValue() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestColorizeLevel(t *testing.T) {
	if got := ColorizeLevel("TRACE"); got != "TRACE" {
		t.Errorf("unknown levels should pass through, got %q", got)
	}
	if got := ColorizeLevel("ERROR"); !strings.HasPrefix(got, "\033[31m") {
		t.Errorf("ERROR should be red, got %q", got)
	}
}
