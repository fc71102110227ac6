package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWritesPlainText(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := New(&out, slog.LevelInfo, true)
	logger.Info("reached static configuration", slog.Int("generation", 12))

	line := out.String()
	if !strings.Contains(line, "reached static configuration") {
		t.Fatalf("expected message, got: %s", line)
	}
	if !strings.Contains(line, "generation=12") {
		t.Fatalf("expected generation attr, got: %s", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("expected no color escapes with noColor, got: %q", line)
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := New(&out, slog.LevelWarn, true)
	logger.Info("hidden")
	logger.Warn("shown", slog.Any("err", errors.New("boom")))

	line := out.String()
	if strings.Contains(line, "hidden") {
		t.Fatalf("info record should be filtered, got: %s", line)
	}
	if !strings.Contains(line, "boom") {
		t.Fatalf("expected error attr, got: %s", line)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; expected %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
