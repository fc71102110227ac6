package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"

	"mad-life/internal/life"
	"mad-life/internal/logging"

	"golang.org/x/sync/errgroup"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type scenarioResult struct {
	seed   int64
	steps  int
	static bool
	alive  int
}

func main() {
	from := flag.Int64("from", 1, "first seed to simulate")
	count := flag.Int("count", 64, "number of consecutive seeds")
	maxGen := flag.Int("max-gen", 2000, "generation cap per soup")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent soups")
	top := flag.Int("top", 5, "longest-lived soups to list")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	noColor := flag.Bool("no-color", false, "disable colored log output")
	var overrides kvList
	flag.Var(&overrides, "set", "grid override in key=value form, e.g. w=64 or edge=clamped (repeatable)")
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "life-sweep:", err)
		os.Exit(2)
	}
	logger := logging.New(os.Stderr, level, *noColor)

	cfg, err := life.FromMap(parseOverrides(overrides))
	if err != nil {
		logger.Error("invalid override", slog.Any("err", err))
		os.Exit(2)
	}

	seeds := make([]int64, max(*count, 0))
	for i := range seeds {
		seeds[i] = *from + int64(i)
	}

	logger.Info("sweeping soups",
		slog.Int("soups", len(seeds)),
		slog.Int("workers", *workers),
		slog.Int("max_gen", *maxGen),
		slog.String("grid", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)),
		slog.String("edge", cfg.Policy.String()),
		slog.Float64("density", cfg.Density))

	results, err := sweep(context.Background(), cfg, seeds, *maxGen, *workers)
	if err != nil {
		logger.Error("sweep failed", slog.Any("err", err))
		os.Exit(1)
	}
	report(os.Stdout, results, *top)
	logger.Info("sweep finished", slog.Int("soups", len(results)))
}

// parseOverrides turns key=value pairs into a config map; malformed entries
// are skipped.
func parseOverrides(kvs []string) map[string]string {
	m := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}

// sweep runs one soup per seed until it turns static or hits maxGen.
// Results keep the order of seeds.
func sweep(ctx context.Context, cfg life.Config, seeds []int64, maxGen, workers int) ([]scenarioResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]scenarioResult, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sim, err := life.NewWithConfig(cfg)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			sim.Reset(seed)
			steps, static := sim.RunUntilStatic(maxGen)
			results[i] = scenarioResult{seed: seed, steps: steps, static: static, alive: sim.Alive()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func report(w io.Writer, results []scenarioResult, top int) {
	staticCount, totalSteps := 0, 0
	for _, r := range results {
		if r.static {
			staticCount++
			totalSteps += r.steps
		}
	}
	fmt.Fprintf(w, "%d/%d soups reached a static configuration\n", staticCount, len(results))
	if staticCount > 0 {
		fmt.Fprintf(w, "mean generations to static: %.1f\n", float64(totalSteps)/float64(staticCount))
	}

	ranked := append([]scenarioResult(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].steps > ranked[j].steps })
	if top > len(ranked) {
		top = len(ranked)
	}
	for _, r := range ranked[:max(top, 0)] {
		state := "static"
		if !r.static {
			state = "still changing"
		}
		fmt.Fprintf(w, "seed %d: %d generations, %s, %d alive\n", r.seed, r.steps, state, r.alive)
	}
}
