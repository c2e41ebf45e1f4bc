// Package aim implements a reaction-time aim trainer.
// A bullseye appears at random positions and the player clicks it as many
// times as possible before the session clock runs out.
package aim

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/aim-arcade/internal/config"
	"github.com/vovakirdan/aim-arcade/internal/core"
	"github.com/vovakirdan/aim-arcade/internal/registry"
)

// SessionDuration is the length of one timed session.
const SessionDuration = 30 * time.Second

// HUD layout, in logical units.
const (
	hudMargin     = 20.0
	hudTimerWidth = 150.0
)

// Game implements the aim trainer state machine.
type Game struct {
	target *Target
	phase  phase
	colors config.ColorConfig
	config core.RuntimeConfig
	logger *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithColors sets the palette.
func WithColors(c config.ColorConfig) Option {
	return func(g *Game) { g.colors = c }
}

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a new aim trainer in the menu, seeded with the default config.
func New(opts ...Option) *Game {
	g := &Game{
		colors: config.DefaultAimConfig().Colors,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "aim"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Aim Trainer"
}

// Reset returns to the menu with a fresh target seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.target = NewTarget(rand.New(rand.NewSource(cfg.Seed)))
	g.phase = menuPhase{}
}

// Step processes the frame's clicks in order, then the session clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, p := range in.Clicks {
		g.click(p, in.Now)
	}
	g.tick(in.Now)
	return core.StepResult{State: g.State()}
}

// click applies one pointer press.
func (g *Game) click(pos core.Vec, now time.Time) {
	switch p := g.phase.(type) {
	case menuPhase:
		g.phase = &playingPhase{start: now, remaining: SessionDuration}
		g.target.Respawn()
		g.logger.Debug("session started", "target", g.target.Pos)

	case *playingPhase:
		if !g.target.IsClicked(pos) {
			return
		}
		p.score++
		g.target.Respawn()
		g.logger.Debug("hit", "score", p.score, "next", g.target.Pos)

	case gameOverPhase:
		g.phase = menuPhase{}
	}
}

// tick ends the session once the clock runs out.
func (g *Game) tick(now time.Time) {
	p, ok := g.phase.(*playingPhase)
	if !ok {
		return
	}
	p.remaining = Remaining(p.start, now)
	if p.remaining > 0 {
		return
	}
	g.phase = gameOverPhase{score: p.score}
	g.logger.Info("session complete", "score", p.score, "rate", fmt.Sprintf("%.2f", Rate(p.score)))
}

// Render draws the current phase.
func (g *Game) Render(dst core.Surface) {
	dst.Fill(g.colors.Background)

	switch p := g.phase.(type) {
	case menuPhase:
		core.DrawTextCentered(dst, "AIM TRAINER", core.FontLarge, g.colors.Target, -50)
		core.DrawTextCentered(dst, "Click anywhere to Start", core.FontMain, g.colors.Text, 50)

	case *playingPhase:
		g.target.Draw(dst, g.colors)
		w, _ := dst.Size()
		dst.DrawText(fmt.Sprintf("Score: %d", p.score), core.V(hudMargin, hudMargin), core.FontMain, g.colors.Text)
		dst.DrawText(fmt.Sprintf("Time: %.1f", p.remaining.Seconds()), core.V(w-hudTimerWidth, hudMargin), core.FontMain, g.colors.Text)

	case gameOverPhase:
		core.DrawTextCentered(dst, "SESSION COMPLETE", core.FontLarge, g.colors.Accent, -80)
		core.DrawTextCentered(dst, fmt.Sprintf("Final Score: %d", p.score), core.FontLarge, g.colors.Text, 0)
		core.DrawTextCentered(dst, fmt.Sprintf("Speed: %.2f hits/sec", Rate(p.score)), core.FontMain, g.colors.Text, 60)
		core.DrawTextCentered(dst, "Click to Menu", core.FontMain, g.colors.Muted, 120)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Phase: g.phase.name()}
	switch p := g.phase.(type) {
	case *playingPhase:
		st.Score = p.score
		st.Remaining = p.remaining
	case gameOverPhase:
		st.Score = p.score
	}
	return st
}

// Register the game with the registry
func init() {
	registry.Register("aim", func(deps registry.Deps) registry.Game {
		return New(WithColors(deps.Colors), WithLogger(deps.Logger))
	})
}
