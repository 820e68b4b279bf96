package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     core.Point
	Dir      core.Direction
	Food     core.Point
	HasFood  bool
	Paused   bool
	State    Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	var head core.Point
	if len(g.snake) > 0 {
		head = g.snake[0]
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: len(g.snake),
		Head:     head,
		Dir:      g.direction,
		Food:     g.food,
		HasFood:  g.hasFood,
		Paused:   g.paused,
		State:    g.status,
	}
}
