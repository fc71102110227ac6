package app

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"mad-life/internal/life"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func TestConfigDefaultsAreValid(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Life.Width != 50 || cfg.Life.Height != 40 || cfg.Life.Policy != life.Wrapping {
		t.Fatalf("unexpected grid defaults %+v", cfg.Life)
	}
	if cfg.Delay != DefaultDelay || cfg.Scale != 15 {
		t.Fatalf("unexpected presentation defaults delay=%v scale=%d", cfg.Delay, cfg.Scale)
	}
}

func TestConfigFlags(t *testing.T) {
	cfg, err := parse(t, "-w", "20", "-h", "10", "-edge", "clamped", "-delay", "50ms", "-scale", "8", "-log-level", "debug")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Life.Width != 20 || cfg.Life.Height != 10 || cfg.Life.Policy != life.Clamped {
		t.Fatalf("unexpected grid config %+v", cfg.Life)
	}
	if cfg.Delay != 50*time.Millisecond || cfg.Scale != 8 || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestConfigValidation(t *testing.T) {
	if _, err := parse(t, "-w", "0"); !errors.Is(err, life.ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
	invalid := [][]string{
		{"-scale", "0"},
		{"-delay", "5ms"},
		{"-delay", "2s"},
		{"-density", "1.5"},
		{"-log-level", "loud"},
	}
	for _, args := range invalid {
		if _, err := parse(t, args...); err == nil {
			t.Fatalf("expected validation error for %v", args)
		}
	}
	if _, err := parse(t, "-edge", "mobius"); err == nil {
		t.Fatal("expected parse error for unknown edge policy")
	}
}
