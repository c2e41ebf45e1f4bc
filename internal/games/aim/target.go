package aim

import (
	"math/rand"

	"github.com/vovakirdan/aim-arcade/internal/config"
	"github.com/vovakirdan/aim-arcade/internal/core"
)

// Target geometry, in logical units.
const (
	TargetRadius = 30.0
	SpawnMargin  = 50.0 // Keeps the whole circle on screen; must be >= TargetRadius
	HUDOffset    = 60.0 // Extra top margin so targets never sit under the HUD

	middleRatio   = 0.8
	bullseyeRatio = 0.4
)

// Target is the circle the player clicks.
type Target struct {
	Pos    core.Vec
	Radius float64
	rng    *rand.Rand
}

// NewTarget creates a target at a random spawn position.
func NewTarget(rng *rand.Rand) *Target {
	t := &Target{Radius: TargetRadius, rng: rng}
	t.Respawn()
	return t
}

// SpawnArea returns the rectangle target centers are drawn from, edges included.
func SpawnArea() core.Rect {
	return core.DisplayRect().Inset(SpawnMargin, SpawnMargin+HUDOffset, SpawnMargin, SpawnMargin)
}

// Respawn moves the target to a uniformly random whole-unit position in the
// spawn area. The new position always differs from the old one.
func (t *Target) Respawn() {
	area := SpawnArea()
	prev := t.Pos
	for {
		next := core.V(t.randBetween(area.X, area.Right()), t.randBetween(area.Y, area.Bottom()))
		if next != prev {
			t.Pos = next
			return
		}
	}
}

// randBetween returns a whole number in [lo, hi].
func (t *Target) randBetween(lo, hi float64) float64 {
	return lo + float64(t.rng.Intn(int(hi-lo)+1))
}

// Draw renders the target as a bullseye.
func (t *Target) Draw(dst core.Surface, colors config.ColorConfig) {
	dst.FillCircle(t.Pos, t.Radius, colors.Target)
	dst.FillCircle(t.Pos, t.Radius*middleRatio, colors.Center)
	dst.FillCircle(t.Pos, t.Radius*bullseyeRatio, colors.Target)
}

// IsClicked reports whether p lies within the circle, border included.
func (t *Target) IsClicked(p core.Vec) bool {
	return t.Pos.Dist(p) <= t.Radius
}
