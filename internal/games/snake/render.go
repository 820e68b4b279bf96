package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 1

const (
	segmentRune = '█'
	foodRune    = '●'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.RequiredSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	board := g.boardRect(dst)
	dst.DrawBox(board, core.ColorGray)

	if g.hasFood {
		g.fillCell(dst, board, g.food, foodRune, ' ', core.ColorRed)
	}

	// Tail first so the head stays visible after a self collision.
	for i := len(g.snake) - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		g.fillCell(dst, board, g.snake[i], segmentRune, segmentRune, color)
	}

	switch {
	case g.status == StatusWon:
		g.renderOverlay(dst, "Board Full! You Win!", "Press R to Restart")
	case g.status == StatusGameOver:
		g.renderOverlay(dst, "Game Over!", "Press R to Restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// boardRect returns the bordered board area, centred horizontally below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	w, _ := g.RequiredSize()
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, g.rows+2)
}

// fillCell paints one grid cell: glyph in the first column, pad in the rest.
// Cells outside the grid are skipped so a head that left the board does not
// overwrite the border.
func (g *Game) fillCell(dst *core.Screen, board core.Rect, p core.Point, glyph, pad rune, c core.Color) {
	if !g.inBounds(p) {
		return
	}
	sx := board.X + 1 + p.X*g.cellWidth
	sy := board.Y + 1 + p.Y
	dst.SetColored(sx, sy, glyph, c)
	for i := 1; i < g.cellWidth; i++ {
		dst.SetColored(sx+i, sy, pad, c)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" SNAKE  Score: %d  Length: %d", g.score, len(g.snake))
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	textW := max(len([]rune(line1)), len([]rune(line2)))
	boxW := textW + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	blank := strings.Repeat(" ", boxW-2)
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		dst.DrawText(box.X+1, y, blank)
	}
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorYellow)
}
