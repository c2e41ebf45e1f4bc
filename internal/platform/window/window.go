// Package window runs the aim trainer in a desktop window using Ebitengine.
package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/aim-arcade/internal/config"
	"github.com/vovakirdan/aim-arcade/internal/core"
	"github.com/vovakirdan/aim-arcade/internal/registry"
)

// runner adapts a registry.Game to ebiten.Game.
type runner struct {
	game    registry.Game
	surface *Surface
	input   core.InputFrame
	state   core.GameState
	logger  *log.Logger
}

// Update collects this frame's clicks and advances the game.
func (r *runner) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		r.input.Click(core.V(float64(x), float64(y)))
	}

	r.input.Now = time.Now()
	result := r.game.Step(r.input)
	if result.State.Phase != r.state.Phase {
		r.logger.Debug("phase changed", "from", r.state.Phase, "to", result.State.Phase, "score", result.State.Score)
	}
	r.state = result.State
	r.input.Clear()
	return nil
}

// Draw renders the game onto the window.
func (r *runner) Draw(screen *ebiten.Image) {
	r.surface.dst = screen
	r.game.Render(r.surface)
}

// Layout keeps the logical display size; Ebitengine scales it to the window.
func (r *runner) Layout(_, _ int) (int, int) {
	return core.DisplayWidth, core.DisplayHeight
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, cfg config.AimConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	ebiten.SetWindowSize(core.DisplayWidth, core.DisplayHeight)
	ebiten.SetWindowTitle(windowTitle(cfg.Display, game))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rt.TickRate)

	game.Reset(rt)
	logger.Debug("game reset", "game", game.ID(), "seed", rt.Seed)

	r := &runner{
		game:    game,
		surface: &Surface{faces: LoadFaces(cfg.Fonts, logger)},
		state:   game.State(),
		logger:  logger,
	}
	return ebiten.RunGame(r)
}

// windowTitle uses the configured title, or the game's own when it is empty.
func windowTitle(cfg config.DisplayConfig, game registry.Game) string {
	if cfg.Title != "" {
		return cfg.Title
	}
	return game.Title()
}
