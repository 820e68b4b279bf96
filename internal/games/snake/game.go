// Package snake implements the classic single-player Snake game as pure
// logic: the platform feeds it input frames and ticks and reads back a
// rendered screen.
package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned by PlaceFood when the snake covers every cell.
var ErrBoardFull = errors.New("snake: board full")

// maxFoodAttempts bounds the random draws before PlaceFood falls back to
// scanning the free cells.
const maxFoodAttempts = 64

// Status is the game's position in its state machine.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
	StatusWon // Board full, nowhere left to place food
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Collision reasons reported with EventGameOver.
const (
	ReasonWall = "wall"
	ReasonSelf = "self"
)

// Game holds the complete state of one Snake session.
type Game struct {
	rng  *rand.Rand
	tick uint64

	cols int
	rows int

	snake     []core.Point   // Head at index 0
	direction core.Direction // Requested direction for the next move
	heading   core.Direction // Direction of the last move
	food      core.Point
	hasFood   bool
	score     int

	status Status
	reason string
	paused bool

	// Screen layout
	cellWidth int
	screenW   int
	screenH   int
	tooSmall  bool

	events []core.Event
}

// New creates a Snake game. Call Reset before use.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes the board from cfg and starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.cols = max(cfg.Cols, 1)
	g.rows = max(cfg.Rows, 1)
	g.cellWidth = max(cfg.CellWidth, 1)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.Restart()
	g.events = nil
}

// Restart puts a single segment in the centre of the board heading right,
// clears the game-over state and places new food.
func (g *Game) Restart() {
	g.snake = []core.Point{{X: g.cols / 2, Y: g.rows / 2}}
	g.direction = core.DirRight
	g.heading = core.DirRight
	g.score = 0
	g.status = StatusRunning
	g.reason = ""
	g.paused = false

	// A board with a single cell is full from the start; status says so.
	//nolint:errcheck
	g.PlaceFood()

	g.emit(core.Event{Kind: core.EventRestarted, Length: len(g.snake)})
}

// Advance moves the snake one cell in its current direction. The new head is
// pushed to the front; the tail is dropped unless the head landed on food.
func (g *Game) Advance() {
	if len(g.snake) == 0 {
		return
	}

	head := g.snake[0].Add(g.direction.Delta())
	g.heading = g.direction

	g.snake = append(g.snake, core.Point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = head

	if g.hasFood && head == g.food {
		g.score++
		g.emit(core.Event{Kind: core.EventFoodEaten, Score: g.score, Length: len(g.snake)})
		if err := g.PlaceFood(); errors.Is(err, ErrBoardFull) {
			g.emit(core.Event{Kind: core.EventBoardFull, Score: g.score, Length: len(g.snake)})
		}
		return
	}

	g.snake = g.snake[:len(g.snake)-1]
}

// CheckCollisions ends the game when the head has left the board or runs
// into another segment.
func (g *Game) CheckCollisions() {
	if len(g.snake) == 0 {
		return
	}

	head := g.snake[0]
	switch {
	case !g.inBounds(head):
		g.endGame(ReasonWall)
	case g.hitsBody(head):
		g.endGame(ReasonSelf)
	}
}

func (g *Game) hitsBody(head core.Point) bool {
	for _, seg := range g.snake[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

func (g *Game) endGame(reason string) {
	if g.status != StatusRunning {
		return
	}
	g.status = StatusGameOver
	g.reason = reason
	g.emit(core.Event{Kind: core.EventGameOver, Reason: reason, Score: g.score, Length: len(g.snake)})
}

// PlaceFood puts food on a uniformly random cell not covered by the snake.
// Random draws are bounded; after maxFoodAttempts misses the free cells are
// enumerated instead. When no free cell is left the game is won and
// ErrBoardFull is returned.
func (g *Game) PlaceFood() error {
	for range maxFoodAttempts {
		p := core.Point{X: g.rng.Intn(g.cols), Y: g.rng.Intn(g.rows)}
		if !g.isSnakeAt(p) {
			g.food = p
			g.hasFood = true
			return nil
		}
	}

	free := g.freeCells()
	if len(free) == 0 {
		g.food = core.Point{X: -1, Y: -1}
		g.hasFood = false
		g.status = StatusWon
		return ErrBoardFull
	}

	g.food = free[g.rng.Intn(len(free))]
	g.hasFood = true
	return nil
}

// freeCells lists the in-bounds cells not covered by the snake, row by row.
func (g *Game) freeCells() []core.Point {
	occupied := make(map[core.Point]struct{}, len(g.snake))
	for _, seg := range g.snake {
		occupied[seg] = struct{}{}
	}

	free := make([]core.Point, 0, g.cols*g.rows-len(occupied))
	for y := range g.rows {
		for x := range g.cols {
			p := core.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

func (g *Game) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// SetDirection requests a new direction for the next move. A request that
// reverses the current direction, or the heading of the last move, is
// ignored.
func (g *Game) SetDirection(d core.Direction) {
	if d.IsOpposite(g.direction) || d.IsOpposite(g.heading) {
		return
	}
	g.direction = d
}

// Step advances the game by one tick. Queued actions are applied in arrival
// order before the snake moves.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	for _, a := range in.Actions() {
		switch a {
		case core.ActionRestart:
			if g.GameOver() {
				g.Restart()
				return g.result()
			}
		case core.ActionPause:
			g.togglePause()
		default:
			if dir, ok := a.Direction(); ok && g.status == StatusRunning && !g.paused {
				g.SetDirection(dir)
			}
		}
	}

	if g.status != StatusRunning || g.paused || g.tooSmall {
		return g.result()
	}

	g.Advance()
	if g.status == StatusRunning {
		g.CheckCollisions()
	}

	return g.result()
}

func (g *Game) togglePause() {
	if g.GameOver() {
		return
	}
	g.paused = !g.paused
	kind := core.EventResumed
	if g.paused {
		kind = core.EventPaused
	}
	g.emit(core.Event{Kind: kind, Score: g.score, Length: len(g.snake)})
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// Resize updates the screen dimensions the board is laid out in. The board
// itself keeps its size; the simulation pauses while it does not fit.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	requiredW, requiredH := g.RequiredSize()
	g.tooSmall = screenW < requiredW || screenH < requiredH
}

// RequiredSize returns the smallest screen that fits the HUD and the
// bordered board.
func (g *Game) RequiredSize() (int, int) {
	return g.cols*g.cellWidth + 2, g.rows + 2 + hudHeight
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.GameOver(),
		Paused:   g.paused,
	}
}

// GameOver reports whether the round has ended, by collision or full board.
func (g *Game) GameOver() bool {
	return g.status != StatusRunning
}

// Status returns the current state machine status.
func (g *Game) Status() Status {
	return g.status
}

// Direction returns the direction the snake will move on the next tick.
func (g *Game) Direction() core.Direction {
	return g.direction
}

// Snake returns a copy of the body, head first.
func (g *Game) Snake() []core.Point {
	body := make([]core.Point, len(g.snake))
	copy(body, g.snake)
	return body
}

// Food returns the food position; ok is false when the board is full.
func (g *Game) Food() (p core.Point, ok bool) {
	return g.food, g.hasFood
}

// Score returns the food eaten since the last restart.
func (g *Game) Score() int {
	return g.score
}

// Grid returns the board dimensions in cells.
func (g *Game) Grid() (cols, rows int) {
	return g.cols, g.rows
}
