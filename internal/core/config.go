package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	Cols      int           // Grid width in cells
	Rows      int           // Grid height in cells
	CellWidth int           // Terminal columns per grid cell
	ScreenW   int           // Screen width in characters
	ScreenH   int           // Screen height in characters
	Tick      time.Duration // Simulation tick period
	Seed      int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig matching the classic 30x30 board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Cols:      30,
		Rows:      30,
		CellWidth: 2,
		ScreenW:   80,
		ScreenH:   36,
		Tick:      100 * time.Millisecond,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState summarises the game for the platform layer.
type GameState struct {
	Score    int  // Food eaten since the last restart
	GameOver bool // Whether the game has ended (collision or full board)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Events lists what happened during the tick, oldest first.
	Events []Event
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventFoodEaten EventKind = iota + 1
	EventGameOver
	EventBoardFull
	EventRestarted
	EventPaused
	EventResumed
)

func (k EventKind) String() string {
	switch k {
	case EventFoodEaten:
		return "food_eaten"
	case EventGameOver:
		return "game_over"
	case EventBoardFull:
		return "board_full"
	case EventRestarted:
		return "restarted"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Event carries the details of a tick event.
type Event struct {
	Kind   EventKind
	Reason string // Collision reason for EventGameOver ("wall", "self")
	Score  int
	Length int
}
