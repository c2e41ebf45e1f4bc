// Package config provides YAML-based configuration loading for the aim trainer.
// Only presentation is configurable; gameplay constants live with the game.
package config

import (
	"fmt"

	"github.com/vovakirdan/aim-arcade/internal/core"
)

// Limits for the frame-rate cap.
const (
	MinFPS = 1
	MaxFPS = 240
)

// AimConfig contains all configuration for the aim trainer.
type AimConfig struct {
	Display DisplayConfig `yaml:"display"`
	Colors  ColorConfig   `yaml:"colors"`
	Fonts   FontConfig    `yaml:"fonts"`
}

// DisplayConfig defines window and pacing parameters.
type DisplayConfig struct {
	Title string `yaml:"title"`
	FPS   int    `yaml:"fps"`
}

// ColorConfig defines the palette. Values are written as "#rrggbb".
type ColorConfig struct {
	Background core.Color `yaml:"background"`
	Target     core.Color `yaml:"target"`
	Center     core.Color `yaml:"center"`
	Text       core.Color `yaml:"text"`
	Accent     core.Color `yaml:"accent"`
	Muted      core.Color `yaml:"muted"`
}

// FontConfig defines the two text faces.
type FontConfig struct {
	Main  FontSpec `yaml:"main"`
	Large FontSpec `yaml:"large"`
}

// FontSpec names candidate font files and sizes.
type FontSpec struct {
	Paths        []string `yaml:"paths"`         // Tried in order; first readable file wins
	Size         float64  `yaml:"size"`          // Size when a font file loads
	FallbackSize float64  `yaml:"fallback_size"` // Size of the built-in face
}

// Validate reports the first invalid setting.
func (c AimConfig) Validate() error {
	if c.Display.FPS < MinFPS || c.Display.FPS > MaxFPS {
		return fmt.Errorf("config: display.fps %d out of range [%d, %d]", c.Display.FPS, MinFPS, MaxFPS)
	}
	for name, spec := range map[string]FontSpec{"main": c.Fonts.Main, "large": c.Fonts.Large} {
		if spec.Size <= 0 || spec.FallbackSize <= 0 {
			return fmt.Errorf("config: fonts.%s sizes must be positive", name)
		}
	}
	return nil
}
