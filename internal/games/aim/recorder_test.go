package aim

import "github.com/vovakirdan/aim-arcade/internal/core"

type circle struct {
	center core.Vec
	radius float64
	color  core.Color
}

// recorder is a core.Surface that remembers draw calls.
type recorder struct {
	fills   []core.Color
	circles []circle
	texts   map[string]core.Vec
}

func newRecorder() *recorder {
	return &recorder{texts: make(map[string]core.Vec)}
}

func (r *recorder) Size() (float64, float64) {
	return core.DisplayWidth, core.DisplayHeight
}

func (r *recorder) Fill(c core.Color) {
	r.fills = append(r.fills, c)
}

func (r *recorder) FillCircle(center core.Vec, radius float64, c core.Color) {
	r.circles = append(r.circles, circle{center, radius, c})
}

func (r *recorder) DrawText(text string, pos core.Vec, _ core.Font, _ core.Color) {
	r.texts[text] = pos
}

func (r *recorder) MeasureText(text string, _ core.Font) (float64, float64) {
	return float64(len(text)) * 15, 30
}
