// Package config provides YAML-based configuration loading for color drop.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for the color drop game and its hosts.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Target    TargetConfig    `yaml:"target"`
	Generator GeneratorConfig `yaml:"generator"`
	Victory   VictoryConfig   `yaml:"victory"`
	Terminal  TerminalConfig  `yaml:"terminal"`
}

// BoardConfig defines the circles placed on each round.
type BoardConfig struct {
	Circles int     `yaml:"circles"` // Circles generated per round
	Radius  float64 `yaml:"radius"`  // Radius shared by every circle
}

// TargetConfig positions the drop zone relative to the surface bounds.
// The zone spans [Left, Left+Width) horizontally and
// [bottom-BottomInset, bottom-BottomInset+Height) vertically.
type TargetConfig struct {
	Left        float64 `yaml:"left"`
	BottomInset float64 `yaml:"bottom_inset"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
}

// GeneratorConfig bounds the rejection sampler.
type GeneratorConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Candidates tried per circle before forcing placement
}

// VictoryConfig holds the texts of the victory dialog.
type VictoryConfig struct {
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	Action  string `yaml:"action"`
}

// TerminalConfig maps surface pixels onto terminal cells.
type TerminalConfig struct {
	DotSize float64 `yaml:"dot_size"` // Surface pixels per half-block dot
}

// Validate checks that the configuration can produce a playable board.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Circles <= 0 {
		errs = append(errs, fmt.Errorf("board.circles must be positive, got %d", c.Board.Circles))
	}
	if c.Board.Radius <= 0 {
		errs = append(errs, fmt.Errorf("board.radius must be positive, got %g", c.Board.Radius))
	}
	if c.Target.Width <= 0 || c.Target.Height <= 0 {
		errs = append(errs, fmt.Errorf("target size must be positive, got %gx%g", c.Target.Width, c.Target.Height))
	}
	if c.Generator.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("generator.max_attempts must be positive, got %d", c.Generator.MaxAttempts))
	}
	if c.Terminal.DotSize <= 0 {
		errs = append(errs, fmt.Errorf("terminal.dot_size must be positive, got %g", c.Terminal.DotSize))
	}
	return errors.Join(errs...)
}
