// Package config provides YAML-based configuration loading for the game
// and its terminal frontend.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Config is the full configuration file.
type Config struct {
	TickRate      int           `yaml:"tick_rate"`       // simulation ticks per second
	Seed          int64         `yaml:"seed"`            // 0 picks a seed from the clock
	StartStage    int           `yaml:"start_stage"`     // 1-based, preselected in the menu
	StartSubStage int           `yaml:"start_sub_stage"` // 1-based
	LogLevel      string        `yaml:"log_level"`
	Input         InputConfig   `yaml:"input"`
	Display       DisplayConfig `yaml:"display"`
}

// InputConfig tunes key handling in the terminal.
type InputConfig struct {
	// HoldTicks is how long a key counts as held after its last press or
	// auto-repeat event. Terminals report no key-up, so releases are inferred.
	HoldTicks int `yaml:"hold_ticks"`
}

// DisplayConfig tunes the terminal renderer.
type DisplayConfig struct {
	CellWidth int `yaml:"cell_width"` // terminal columns per block
}

// Validate checks ranges. Errors wrap ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.TickRate < 1 || c.TickRate > 240:
		return fmt.Errorf("%w: tick_rate %d out of range 1..240", ErrInvalid, c.TickRate)
	case c.StartStage < 1 || c.StartStage > 20:
		return fmt.Errorf("%w: start_stage %d out of range 1..20", ErrInvalid, c.StartStage)
	case c.StartSubStage < 1 || c.StartSubStage > 5:
		return fmt.Errorf("%w: start_sub_stage %d out of range 1..5", ErrInvalid, c.StartSubStage)
	case c.Input.HoldTicks < 1:
		return fmt.Errorf("%w: input.hold_ticks must be positive", ErrInvalid)
	case c.Display.CellWidth < 1 || c.Display.CellWidth > 4:
		return fmt.Errorf("%w: display.cell_width %d out of range 1..4", ErrInvalid, c.Display.CellWidth)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}
