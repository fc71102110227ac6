package app

import (
	"flag"
	"fmt"
	"time"

	"mad-life/internal/life"
	"mad-life/internal/logging"
)

// Delay bounds for automatic runs, matching the speed slider of the classic UI.
const (
	MinDelay     = 20 * time.Millisecond
	MaxDelay     = time.Second
	DelayStep    = 10 * time.Millisecond
	DefaultDelay = 300 * time.Millisecond
)

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Life     life.Config
	Scale    int
	Delay    time.Duration
	LogLevel string
	NoColor  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Life:     life.DefaultConfig(),
		Scale:    15,
		Delay:    DefaultDelay,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Life.Width, "w", c.Life.Width, "grid width in cells")
	fs.IntVar(&c.Life.Height, "h", c.Life.Height, "grid height in cells")
	fs.Var((*edgeFlag)(&c.Life.Policy), "edge", "edge policy: wrapping or clamped")
	fs.Float64Var(&c.Life.Density, "density", c.Life.Density, "alive probability used when reseeding")
	fs.Int64Var(&c.Life.Seed, "seed", c.Life.Seed, "seed for random soups")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "delay between generations while running")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "disable colored log output")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Life.Width <= 0 || c.Life.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", life.ErrInvalidDimension, c.Life.Width, c.Life.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("parse scale: value must be > 0")
	}
	if c.Delay < MinDelay || c.Delay > MaxDelay {
		return fmt.Errorf("parse delay: %v outside [%v, %v]", c.Delay, MinDelay, MaxDelay)
	}
	if c.Life.Density < 0 || c.Life.Density > 1 {
		return fmt.Errorf("parse density: %v outside [0, 1]", c.Life.Density)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("parse log-level: %w", err)
	}
	return nil
}

type edgeFlag life.EdgePolicy

func (e *edgeFlag) String() string { return life.EdgePolicy(*e).String() }

func (e *edgeFlag) Set(s string) error {
	p, err := life.ParseEdgePolicy(s)
	if err != nil {
		return err
	}
	*e = edgeFlag(p)
	return nil
}
