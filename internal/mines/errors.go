package mines

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// ErrInvalidConfiguration is returned when a board cannot be generated
// from the requested parameters.
var ErrInvalidConfiguration = errors.New("mines: invalid configuration")

// ConfigError describes which board parameter was rejected.
type ConfigError struct {
	Width   int
	Height  int
	Mines   int
	Seconds int
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mines: invalid configuration %dx%d with %d mines and %ds: %s",
		e.Width, e.Height, e.Mines, e.Seconds, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// ValidateConfig reports whether cfg describes a playable game.
// Mine placement needs at least one safe cell, so Mines must be
// strictly less than Width*Height.
func ValidateConfig(cfg core.BoardConfig) error {
	fail := func(reason string) error {
		return &ConfigError{
			Width:   cfg.Width,
			Height:  cfg.Height,
			Mines:   cfg.Mines,
			Seconds: cfg.Seconds,
			Reason:  reason,
		}
	}

	switch {
	case cfg.Width < 1 || cfg.Height < 1:
		return fail("board must be at least 1x1")
	case cfg.Mines < 0:
		return fail("mine count must not be negative")
	case cfg.Mines >= cfg.Width*cfg.Height:
		return fail("mine count must be less than the number of cells")
	case cfg.Seconds < 1:
		return fail("countdown must be at least one second")
	}
	return nil
}
