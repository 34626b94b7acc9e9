package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate:      60,
		Seed:          0,
		StartStage:    1,
		StartSubStage: 1,
		LogLevel:      "info",
		Input: InputConfig{
			HoldTicks: 30, // 500 ms at 60 Hz, covers the terminal auto-repeat delay
		},
		Display: DisplayConfig{
			CellWidth: 2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
