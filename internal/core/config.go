package core

import "time"

// Logical display size. Games draw and hit-test in these units; platforms
// scale them to whatever the backend provides.
const (
	DisplayWidth  = 800
	DisplayHeight = 600
)

// DisplayRect returns the whole logical display.
func DisplayRect() Rect {
	return NewRect(0, 0, DisplayWidth, DisplayHeight)
}

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (ignored by the window backend)
	ScreenH  int   // Terminal height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a read-only view of the game for the platform layer.
type GameState struct {
	Phase     string        // "menu", "playing" or "gameover"
	Score     int           // Current or final score; zero in the menu
	Remaining time.Duration // Session time left while playing
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
