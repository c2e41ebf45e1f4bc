package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/aim-arcade/internal/core"
)

// Surface implements core.Surface on an Ebitengine image.
type Surface struct {
	dst   *ebiten.Image
	faces Faces
}

// Size returns the logical display size.
func (s *Surface) Size() (w, h float64) {
	return core.DisplayWidth, core.DisplayHeight
}

// Fill paints the whole image.
func (s *Surface) Fill(c core.Color) {
	s.dst.Fill(c)
}

// FillCircle draws an anti-aliased filled circle.
func (s *Surface) FillCircle(center core.Vec, radius float64, c core.Color) {
	vector.DrawFilledCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), c, true)
}

// DrawText draws str with its top-left corner at pos.
func (s *Surface) DrawText(str string, pos core.Vec, font core.Font, c core.Color) {
	f := s.faces.get(font)
	op := &text.DrawOptions{}
	op.GeoM.Scale(f.scale, f.scale)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, f.face, op)
}

// MeasureText returns the scaled size of str.
func (s *Surface) MeasureText(str string, font core.Font) (w, h float64) {
	f := s.faces.get(font)
	w, h = text.Measure(str, f.face, 0)
	return w * f.scale, h * f.scale
}
