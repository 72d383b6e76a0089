package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth = 2  // Terminal columns per board cell
	panelW    = 18 // Side panel width
	panelGap  = 2
)

// minScreenSize returns the smallest screen the well and side panel fit on.
func (g *Game) minScreenSize() (int, int) {
	wellW, wellH := g.wellSize()
	return wellW + panelGap + panelW, wellH
}

// wellSize returns the bordered board size in terminal cells.
func (g *Game) wellSize() (int, int) {
	w, h := DefaultWidth, DefaultHeight
	if g.session != nil {
		w, h = g.session.board.width, g.session.board.height
	}
	return w*cellWidth + 2, h + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	wellW, wellH := g.wellSize()
	totalW, _ := g.minScreenSize()
	well := core.NewRect(max(0, (g.screenW-totalW)/2), max(0, (g.screenH-wellH)/2), wellW, wellH)

	g.renderWell(dst, well)
	g.renderPanel(dst, well.Right()+panelGap, well.Y)
	g.renderOverlays(dst, well)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, "Please resize terminal")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderWell draws the border, settled blocks and the falling piece.
func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBox(well, PaletteColor(PaletteGrid))

	board := g.session.board
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			c := board.cells[y][x]
			if c == Empty {
				g.drawEmpty(dst, well, x, y)
				continue
			}
			g.drawBlock(dst, well, x, y, PaletteColor(c))
		}
	}

	if g.session.GameOver() {
		return
	}
	piece := g.session.piece
	for _, c := range piece.Cells() {
		if board.InBounds(c) {
			g.drawBlock(dst, well, c.X, c.Y, PaletteColor(piece.color))
		}
	}
}

func (g *Game) drawBlock(dst *core.Screen, well core.Rect, x, y int, c core.Color) {
	px := well.X + 1 + x*cellWidth
	py := well.Y + 1 + y
	for i := 0; i < cellWidth; i++ {
		dst.SetColored(px+i, py, '█', c)
	}
}

func (g *Game) drawEmpty(dst *core.Screen, well core.Rect, x, y int) {
	px := well.X + 1 + x*cellWidth
	py := well.Y + 1 + y
	dst.SetColored(px, py, '·', PaletteColor(PaletteGrid))
}

// renderPanel draws the title and counters beside the well.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	text := PaletteColor(PaletteText)
	s := g.session

	dst.DrawTextColored(x, y, "TETRIS", text)
	dst.DrawTextColored(x, y+2, fmt.Sprintf("Score: %d", s.Score()), text)
	dst.DrawTextColored(x, y+3, fmt.Sprintf("Level: %d", s.Level()), text)
	dst.DrawTextColored(x, y+4, fmt.Sprintf("Lines: %d", s.Lines()), text)
	dst.DrawTextColored(x, y+5, fmt.Sprintf("Speed: %dms", s.GravityInterval().Milliseconds()), text)

	if s.LastCleared() > 0 {
		dst.DrawTextColored(x, y+7, fmt.Sprintf("+%d lines", s.LastCleared()), PaletteColor(s.piece.color))
	}
}

// renderOverlays draws pause and game-over boxes over the well.
func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	centerX, centerY := well.Center()

	switch {
	case g.session.GameOver():
		scoreStr := fmt.Sprintf("Score: %d", g.session.Score())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, "R: restart")
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "P: resume")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, PaletteColor(PaletteText))

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawTextColored(x, box.Y+1+i, line, PaletteColor(PaletteText))
	}
}
