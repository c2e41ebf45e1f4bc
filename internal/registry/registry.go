// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platforms
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/aim-arcade/internal/config"
	"github.com/vovakirdan/aim-arcade/internal/core"
)

// Game is the contract between a platform and a game.
// Games contain pure logic with no Bubble Tea or Ebiten imports.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "aim").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset returns the game to its initial state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one frame of input.
	// Time-based games read the frame timestamp from in.Now.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state onto the fixed-size logical surface.
	Render(dst core.Surface)

	// State returns the current phase, score and remaining time.
	State() core.GameState
}

// Deps carries what the CLI resolves before a game is created.
type Deps struct {
	Colors config.ColorConfig
	Logger *log.Logger
}

// Factory creates a new instance of a game.
type Factory func(deps Deps) Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
}

// Create instantiates a new game by its ID.
func Create(id string, deps Deps) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(deps), nil
}

