package window

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/aim-arcade/internal/config"
	"github.com/vovakirdan/aim-arcade/internal/core"
	"github.com/vovakirdan/aim-arcade/internal/fonts"
)

// face is a text face plus the scale it is drawn at.
type face struct {
	face  text.Face
	scale float64
}

// Faces holds the main and large faces.
type Faces struct {
	Main  face
	Large face
}

func (f Faces) get(font core.Font) face {
	if font == core.FontLarge {
		return f.Large
	}
	return f.Main
}

// LoadFaces resolves both faces. A font that cannot be loaded silently
// falls back to the built-in bitmap font; the reason is logged at debug level.
func LoadFaces(cfg config.FontConfig, logger *log.Logger) Faces {
	return Faces{
		Main:  loadFace(cfg.Main, logger),
		Large: loadFace(cfg.Large, logger),
	}
}

func loadFace(spec config.FontSpec, logger *log.Logger) face {
	file, err := fonts.Load(spec.Paths)
	if err == nil {
		src, parseErr := text.NewGoTextFaceSource(bytes.NewReader(file.Data))
		if parseErr == nil {
			logger.Debug("loaded font", "path", file.Path, "size", spec.Size)
			return face{face: &text.GoTextFace{Source: src, Size: spec.Size}, scale: 1}
		}
		err = fmt.Errorf("%w: %s: %v", fonts.ErrUnavailable, file.Path, parseErr)
	}

	logger.Debug("using built-in font", "size", spec.FallbackSize, "reason", err)
	return fallbackFace(spec.FallbackSize)
}

// fallbackFace scales the bitmap font so its line height matches size.
func fallbackFace(size float64) face {
	base := text.NewGoXFace(bitmapfont.Face)
	m := base.Metrics()
	height := m.HAscent + m.HDescent
	if height <= 0 {
		return face{face: base, scale: 1}
	}
	return face{face: base, scale: size / height}
}
