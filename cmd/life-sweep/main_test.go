package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"mad-life/internal/life"
)

func TestSweepMatchesSequentialRuns(t *testing.T) {
	cfg := life.Config{Width: 16, Height: 16, Policy: life.Wrapping, Density: 0.3}
	seeds := []int64{1, 2, 3, 4, 5, 6}

	results, err := sweep(context.Background(), cfg, seeds, 300, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(seeds) {
		t.Fatalf("expected %d results, got %d", len(seeds), len(results))
	}
	for i, r := range results {
		sim, _ := life.NewWithConfig(cfg)
		sim.Reset(seeds[i])
		steps, static := sim.RunUntilStatic(300)
		if r.seed != seeds[i] || r.steps != steps || r.static != static || r.alive != sim.Alive() {
			t.Fatalf("seed %d: got %+v, expected steps=%d static=%v alive=%d", seeds[i], r, steps, static, sim.Alive())
		}
	}
}

func TestSweepRejectsInvalidGrid(t *testing.T) {
	_, err := sweep(context.Background(), life.Config{Width: 0, Height: 4}, []int64{1}, 10, 1)
	if !errors.Is(err, life.ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestParseOverrides(t *testing.T) {
	got := parseOverrides([]string{"w=12", " edge = clamped", "broken"})
	if len(got) != 2 || got["w"] != "12" || got["edge"] != "clamped" {
		t.Fatalf("unexpected overrides %v", got)
	}
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	report(&out, []scenarioResult{
		{seed: 1, steps: 10, static: true, alive: 4},
		{seed: 2, steps: 50, static: false, alive: 9},
		{seed: 3, steps: 30, static: true},
	}, 2)
	text := out.String()
	for _, want := range []string{
		"2/3 soups reached a static configuration",
		"mean generations to static: 20.0",
		"seed 2: 50 generations, still changing, 9 alive",
		"seed 3: 30 generations, static, 0 alive",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("report missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "seed 1:") {
		t.Fatalf("top=2 should omit seed 1:\n%s", text)
	}
}
