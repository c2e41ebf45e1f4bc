package config

import (
	_ "embed"

	"github.com/vovakirdan/aim-arcade/internal/core"
)

//go:embed defaults/aim.yaml
var defaultAimYAML []byte

// DefaultAimConfig returns the hardcoded configuration.
// It mirrors defaults/aim.yaml and backs it up if the embed fails to parse.
func DefaultAimConfig() AimConfig {
	return AimConfig{
		Display: DisplayConfig{
			Title: "Aim Trainer",
			FPS:   60,
		},
		Colors: ColorConfig{
			Background: core.RGB(30, 30, 30),
			Target:     core.RGB(0, 255, 255),
			Center:     core.RGB(255, 255, 255),
			Text:       core.RGB(255, 255, 255),
			Accent:     core.RGB(255, 100, 100),
			Muted:      core.RGB(150, 150, 150),
		},
		Fonts: FontConfig{
			Main:  FontSpec{Size: 30, FallbackSize: 36},
			Large: FontSpec{Size: 60, FallbackSize: 72},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAimYAML
}
