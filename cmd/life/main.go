//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"mad-life/internal/app"
	"mad-life/internal/life"
	"mad-life/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(os.Stderr, level, cfg.NoColor)
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.Any("err", err))
		os.Exit(2)
	}

	sim, err := life.NewWithConfig(cfg.Life)
	if err != nil {
		logger.Error("create grid", slog.Any("err", err))
		os.Exit(1)
	}

	runner := app.NewRunner(sim, cfg.Delay, logger)
	game := app.New(runner, cfg.Scale, logger)

	ebiten.SetWindowTitle("mad-life: " + sim.Policy().String())
	ebiten.SetWindowSize(app.WindowSize(sim.Size(), cfg.Scale))
	ebiten.SetTPS(60)

	logger.Info("window opened",
		slog.Int("w", cfg.Life.Width),
		slog.Int("h", cfg.Life.Height),
		slog.String("edge", cfg.Life.Policy.String()))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop", slog.Any("err", err))
		os.Exit(1)
	}
}
