package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// footerHeight is the number of rows reserved below the game for key help.
const footerHeight = 1

// Game is the interface the platform drives. Implementations contain pure
// logic with no Bubble Tea dependency; the platform handles input mapping,
// timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game, used in logs.
	ID() string

	// Reset initializes the game from the runtime configuration.
	Reset(cfg core.RuntimeConfig)

	// Resize tells the game how much screen space it has.
	Resize(screenW, screenH int)

	// RequiredSize returns the smallest screen the game can be drawn in.
	RequiredSize() (w, h int)

	// Step advances the simulation by one tick, applying queued input first.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Model is the Bubble Tea model running the game. Key presses and ticks both
// arrive as messages on the Bubble Tea event loop, so input handling and
// simulation never run at the same time.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	tooSmall   bool
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game and resets the game.
// cfg.ScreenW and cfg.ScreenH are the full terminal size.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Tick <= 0 {
		cfg.Tick = core.DefaultConfig().Tick
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}

	gameCfg := cfg
	gameCfg.ScreenH = gameHeight(cfg.ScreenH)
	m.game.Reset(gameCfg)
	m.gameState = m.game.State()

	m.logger.Info("game started",
		"game", game.ID(),
		"grid", fmt.Sprintf("%dx%d", cfg.Cols, cfg.Rows),
		"tick", cfg.Tick,
		"seed", cfg.Seed,
	)

	needW, needH := m.game.RequiredSize()
	m.tooSmall = cfg.ScreenW < needW || gameCfg.ScreenH < needH
	if m.tooSmall {
		m.logger.Warn("window too small", "width", cfg.ScreenW, "height", cfg.ScreenH, "need_width", needW, "need_height", needH+footerHeight)
	}

	return m
}

func gameHeight(screenH int) int {
	return max(screenH-footerHeight, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the mapped action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionRestart:
		// The restart key is only live on the game-over screen.
		if !m.gameState.GameOver {
			return m, nil
		}
	}

	m.inputFrame.Push(action)
	return m, nil
}

// handleResize lays the game out in the new terminal size. The round in
// progress is kept; the game pauses itself while it does not fit.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	h := gameHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)

	needW, needH := m.game.RequiredSize()
	tooSmall := msg.Width < needW || h < needH
	if tooSmall && !m.tooSmall {
		m.logger.Warn("window too small", "width", msg.Width, "height", msg.Height, "need_width", needW, "need_height", needH+footerHeight)
	}
	m.tooSmall = tooSmall

	return m, nil
}

// handleTick runs one simulation step with the input queued since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.Tick)
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventFoodEaten:
			m.logger.Debug("food eaten", "score", e.Score, "length", e.Length)
		case core.EventGameOver:
			m.logger.Info("game over", "reason", e.Reason, "score", e.Score, "length", e.Length)
		case core.EventBoardFull:
			m.logger.Info("board full", "score", e.Score, "length", e.Length)
		case core.EventRestarted:
			m.logger.Info("restarted")
		case core.EventPaused, core.EventResumed:
			m.logger.Debug(e.Kind.String(), "score", e.Score)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program with the given game and blocks until the
// player quits or ctx is cancelled.
func Run(ctx context.Context, game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
