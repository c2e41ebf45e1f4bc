package aim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/aim-arcade/internal/config"
	"github.com/vovakirdan/aim-arcade/internal/core"
)

func TestRespawnStaysInBounds(t *testing.T) {
	tgt := NewTarget(rand.New(rand.NewSource(7)))

	for i := 0; i < 10000; i++ {
		tgt.Respawn()
		x, y := tgt.Pos.X, tgt.Pos.Y
		if x < SpawnMargin || x > core.DisplayWidth-SpawnMargin {
			t.Fatalf("respawn %d: x=%f outside [%f, %f]", i, x, SpawnMargin, core.DisplayWidth-SpawnMargin)
		}
		if y < SpawnMargin+HUDOffset || y > core.DisplayHeight-SpawnMargin {
			t.Fatalf("respawn %d: y=%f outside [%f, %f]", i, y, SpawnMargin+HUDOffset, core.DisplayHeight-SpawnMargin)
		}
		if x != math.Trunc(x) || y != math.Trunc(y) {
			t.Fatalf("respawn %d: position (%f, %f) should be whole units", i, x, y)
		}
	}
}

func TestSpawnAreaKeepsCircleOnScreen(t *testing.T) {
	area := SpawnArea()
	if area.X < TargetRadius || area.Y < TargetRadius {
		t.Errorf("spawn area %+v lets the circle cross the top-left edge", area)
	}
	if area.Right() > core.DisplayWidth-TargetRadius || area.Bottom() > core.DisplayHeight-TargetRadius {
		t.Errorf("spawn area %+v lets the circle cross the bottom-right edge", area)
	}
}

func TestRespawnAlwaysMoves(t *testing.T) {
	tgt := NewTarget(rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		prev := tgt.Pos
		tgt.Respawn()
		if tgt.Pos == prev {
			t.Fatalf("respawn %d kept position %v", i, prev)
		}
	}
}

func TestIsClicked(t *testing.T) {
	tgt := &Target{Pos: core.V(400, 300), Radius: TargetRadius}

	tests := []struct {
		name     string
		p        core.Vec
		expected bool
	}{
		{"center", core.V(400, 300), true},
		{"on the edge", core.V(430, 300), true},
		{"just outside", core.V(431, 300), false},
		{"inside diagonal", core.V(420, 320), true},      // ~28.3 away
		{"bounding box corner", core.V(428, 328), false}, // ~39.6 away
		{"far away", core.V(10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tgt.IsClicked(tc.p); got != tc.expected {
				t.Errorf("IsClicked(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestTargetDrawBullseye(t *testing.T) {
	colors := config.DefaultAimConfig().Colors
	tgt := &Target{Pos: core.V(100, 200), Radius: TargetRadius}
	r := newRecorder()

	tgt.Draw(r, colors)

	expected := []circle{
		{core.V(100, 200), 30, colors.Target},
		{core.V(100, 200), 24, colors.Center},
		{core.V(100, 200), 12, colors.Target},
	}
	if len(r.circles) != len(expected) {
		t.Fatalf("Draw made %d circles, expected %d", len(r.circles), len(expected))
	}
	for i, c := range expected {
		got := r.circles[i]
		if got.center != c.center || math.Abs(got.radius-c.radius) > 1e-9 || got.color != c.color {
			t.Errorf("circle %d = %+v, expected %+v", i, got, c)
		}
	}
}
