package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/life"
	"mad-life/internal/logging"
	"mad-life/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Life.Width = 40
	cfg.Life.Height = 20
	cfg.Bind(flag.CommandLine)
	soup := flag.Bool("soup", false, "start from a random soup instead of an empty grid")
	logFile := flag.String("log-file", "", "write logs to this file while the terminal is in use")
	flag.Parse()

	if err := run(cfg, *soup, *logFile); err != nil {
		fmt.Fprintln(os.Stderr, "life-term:", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config, soup bool, logFile string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.Discard()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		level, _ := logging.ParseLevel(cfg.LogLevel)
		logger = logging.New(f, level, true)
	}

	sim, err := life.NewWithConfig(cfg.Life)
	if err != nil {
		return err
	}
	runner := app.NewRunner(sim, cfg.Delay, logger)
	if soup {
		runner.Reset(cfg.Life.Seed)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("terminal session started",
		slog.Int("w", cfg.Life.Width),
		slog.Int("h", cfg.Life.Height),
		slog.String("edge", cfg.Life.Policy.String()))
	err = term.NewView(screen, runner, logger).Run(ctx, 10*time.Millisecond)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
