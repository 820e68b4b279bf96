package tui

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// fakeGame records what the platform feeds it.
type fakeGame struct {
	resetCfg core.RuntimeConfig
	resized  [2]int
	steps    [][]core.Action
	state    core.GameState
	events   []core.Event
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resetCfg = cfg }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *fakeGame) RequiredSize() (int, int) { return 20, 10 }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, slices.Clone(in.Actions()))
	events := g.events
	g.events = nil
	return core.StepResult{State: g.state, Events: events}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Cols:      10,
		Rows:      10,
		CellWidth: 2,
		ScreenW:   40,
		ScreenH:   20,
		Tick:      100 * time.Millisecond,
		Seed:      1,
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestNewModelResetsGame(t *testing.T) {
	g := &fakeGame{}
	cfg := testConfig()
	cfg.Seed = 0

	m := NewModel(g, cfg, nil)

	if g.resetCfg.Seed == 0 {
		t.Error("A zero seed should be replaced with a time-based one")
	}
	if g.resetCfg.ScreenH != cfg.ScreenH-footerHeight {
		t.Errorf("Game height = %d, expected %d", g.resetCfg.ScreenH, cfg.ScreenH-footerHeight)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestKeysQueuedUntilTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), nil)

	m, _ = update(t, m, keyMsg("up"))
	m, _ = update(t, m, keyMsg("x"))
	m, _ = update(t, m, keyMsg("left"))

	if len(g.steps) != 0 {
		t.Fatal("Keys must not step the game")
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("A tick should schedule the next tick")
	}
	if len(g.steps) != 1 {
		t.Fatalf("Expected one step, got %d", len(g.steps))
	}
	expected := []core.Action{core.ActionUp, core.ActionLeft}
	if !slices.Equal(g.steps[0], expected) {
		t.Errorf("Step input = %v, expected %v", g.steps[0], expected)
	}

	update(t, m, TickMsg(time.Now()))
	if len(g.steps[1]) != 0 {
		t.Errorf("Input should be cleared after a tick, got %v", g.steps[1])
	}
}

func TestRestartKeyOnlyWhenGameOver(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), nil)

	m, _ = update(t, m, keyMsg("r"))
	m, _ = update(t, m, TickMsg(time.Now()))
	if slices.Contains(g.steps[0], core.ActionRestart) {
		t.Error("Restart should be dropped while the game is running")
	}

	// The game ends during this tick; the model learns about it from the result.
	g.state.GameOver = true
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, keyMsg("r"))
	update(t, m, TickMsg(time.Now()))
	if !slices.Contains(g.steps[2], core.ActionRestart) {
		t.Errorf("Restart should be forwarded on game over, got %v", g.steps[2])
	}
}

func TestQuit(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), nil)

	m, cmd := update(t, m, keyMsg("q"))
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}

	_, cmd = update(t, m, TickMsg(time.Now()))
	if cmd != nil || len(g.steps) != 0 {
		t.Error("Ticks after quitting should be ignored")
	}
}

func TestResize(t *testing.T) {
	var buf bytes.Buffer
	g := &fakeGame{}
	m := NewModel(g, testConfig(), log.New(&buf))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 15, Height: 6})
	if g.resized != [2]int{15, 6 - footerHeight} {
		t.Errorf("Game resized to %v, expected [15 %d]", g.resized, 6-footerHeight)
	}
	if !m.tooSmall {
		t.Error("Model should notice the window is too small")
	}
	if !strings.Contains(buf.String(), "window too small") {
		t.Errorf("Expected a warning in the log, got %q", buf.String())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	if m.tooSmall {
		t.Error("Model should notice the window fits again")
	}
	if m.screen.Width() != 80 || m.screen.Height() != 30-footerHeight {
		t.Errorf("Screen = %dx%d, expected 80x%d", m.screen.Width(), m.screen.Height(), 30-footerHeight)
	}
}

func TestEventsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	g := &fakeGame{}
	m := NewModel(g, testConfig(), logger)

	g.events = []core.Event{
		{Kind: core.EventFoodEaten, Score: 1, Length: 2},
		{Kind: core.EventGameOver, Reason: "wall", Score: 1, Length: 2},
	}
	update(t, m, TickMsg(time.Now()))

	out := buf.String()
	for _, want := range []string{"game started", "food eaten", "game over", "reason=wall"} {
		if !strings.Contains(out, want) {
			t.Errorf("log should contain %q:\n%s", want, out)
		}
	}
}

func TestSnakeGameOverAndRestart(t *testing.T) {
	var buf bytes.Buffer
	m := NewModel(snake.New(), testConfig(), log.New(&buf))

	if !strings.Contains(m.View(), "SNAKE") {
		t.Error("View should show the HUD")
	}

	// Heading right from the centre of a 10-wide board hits the wall on tick 5.
	for range 10 {
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	if !m.gameState.GameOver {
		t.Fatal("Snake should have hit the wall")
	}
	if view := m.View(); !strings.Contains(view, "Game Over!") {
		t.Errorf("View should show the game over banner:\n%s", view)
	}
	if !strings.Contains(buf.String(), "game over") {
		t.Errorf("Game over should be logged:\n%s", buf.String())
	}

	m, _ = update(t, m, keyMsg("r"))
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.gameState.GameOver {
		t.Error("Restart key should start a new round")
	}
	if !strings.Contains(buf.String(), "restarted") {
		t.Errorf("Restart should be logged:\n%s", buf.String())
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorGreen)
	s.DrawText(2, 0, "cd")
	s.SetColored(0, 1, '█', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("First line lost its text: %q", lines[0])
	}
	if !strings.Contains(lines[1], "█") {
		t.Errorf("Second line lost its cell: %q", lines[1])
	}
}
