package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/aim-arcade/internal/core"
	"github.com/vovakirdan/aim-arcade/internal/registry"
)

// footerHeight is the number of rows reserved under the canvas for help.
const footerHeight = 1

// Smallest canvas on which every target position still covers a cell center.
const (
	minCanvasCols = 40
	minCanvasRows = 14
)

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game      registry.Game
	surface   *core.CellSurface
	styles    styleCache
	config    core.RuntimeConfig
	input     core.InputFrame
	gameState core.GameState
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	quitting  bool
}

// NewModel creates a new Bubble Tea model and resets the game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	logger.Debug("game reset", "game", game.ID(), "seed", cfg.Seed)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		surface:   core.NewCellSurface(core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerHeight)),
		styles:    make(styleCache),
		config:    cfg,
		gameState: game.State(),
		keys:      DefaultKeyMap(),
		help:      h,
		logger:    logger,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Quitting is the only keyboard action.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.logger.Debug("quit requested", "phase", m.gameState.Phase)
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse queues left-button presses on the canvas for the next tick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.tooSmall() {
		return m, nil
	}
	// Cells outside the canvas map outside the display
	p := m.surface.ToLogical(msg.X, msg.Y)
	if !core.DisplayRect().Contains(p) {
		return m, nil
	}
	m.input.Click(p)
	return m, nil
}

// handleResize re-allocates the canvas. The session keeps running because
// the game only sees logical coordinates.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.surface.Screen().Resize(msg.Width, msg.Height-footerHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by one frame stamped with the tick time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.input.Now = now
	result := m.game.Step(m.input)
	if result.State.Phase != m.gameState.Phase {
		m.logger.Debug("phase changed", "from", m.gameState.Phase, "to", result.State.Phase, "score", result.State.Score)
	}
	m.gameState = result.State

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		screen := m.surface.Screen()
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d\n",
			minCanvasCols, minCanvasRows+footerHeight, screen.Width(), screen.Height()+footerHeight) +
			m.help.View(m.keys)
	}

	m.game.Render(m.surface)
	return RenderScreen(m.surface.Screen(), m.styles) + "\n" + m.footer()
}

// tooSmall reports whether cells are too coarse for every target position to
// cover a cell center.
func (m Model) tooSmall() bool {
	screen := m.surface.Screen()
	return screen.Width() < minCanvasCols || screen.Height() < minCanvasRows
}

// footer renders the click hint followed by the key help.
func (m Model) footer() string {
	styles := m.help.Styles
	return styles.ShortKey.Inline(true).Render("click") + " " +
		styles.ShortDesc.Inline(true).Render("shoot") +
		styles.ShortSeparator.Inline(true).Render(m.help.ShortSeparator) +
		m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Report clicks with cell coordinates
	)

	_, err := p.Run()
	return err
}
