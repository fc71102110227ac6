package life

import (
	"fmt"
	"strconv"
)

// Config holds parameters for constructing a Life simulation.
type Config struct {
	Width   int
	Height  int
	Policy  EdgePolicy
	Density float64
	Seed    int64
}

// DefaultConfig returns the default configuration: a 50×40 torus.
func DefaultConfig() Config {
	return Config{Width: 50, Height: 40, Policy: Wrapping, Density: 0.25, Seed: 42}
}

// FromMap populates a Config from a string map. Unlike the lenient flag
// defaults, malformed values are reported so overrides never fail silently.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse w: %w", err)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse h: %w", err)
		}
		c.Height = parsed
	}
	if v, ok := cfg["wrap"]; ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse wrap: %w", err)
		}
		c.Policy = Clamped
		if parsed {
			c.Policy = Wrapping
		}
	}
	if v, ok := cfg["edge"]; ok {
		parsed, err := ParseEdgePolicy(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse edge: %w", err)
		}
		c.Policy = parsed
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse density: %w", err)
		}
		c.Density = clampDensity(parsed)
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse seed: %w", err)
		}
		c.Seed = parsed
	}
	if c.Width <= 0 || c.Height <= 0 {
		return Config{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, c.Width, c.Height)
	}
	return c, nil
}

func clampDensity(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
