package config

import (
	_ "embed"
)

//go:embed defaults/colordrop.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Circles: 5,
			Radius:  50,
		},
		Target: TargetConfig{
			Left:        100,
			BottomInset: 300,
			Width:       200,
			Height:      200,
		},
		Generator: GeneratorConfig{
			MaxAttempts: 1000,
		},
		Victory: VictoryConfig{
			Title:   "Congratulations!",
			Message: "Game over! You won!",
			Action:  "Restart",
		},
		Terminal: TerminalConfig{
			DotSize: 20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
