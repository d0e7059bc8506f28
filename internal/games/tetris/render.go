package tetris

import (
	"fmt"

	"github.com/vovakirdan/tetris-sim/internal/core"
	"github.com/vovakirdan/tetris-sim/internal/sim"
)

// Layout constants, in screen characters.
const (
	hudHeight      = 2 // title line plus separator
	cellWidth      = 2 // one board cell is two characters wide
	sidePanelWidth = 18
)

const (
	blockRune   = '█'
	frameColor  = core.ColorGray
	lockedColor = core.ColorBrightWhite
)

var kindColors = [sim.KindCount]core.Color{
	sim.KindI: core.ColorCyan,
	sim.KindO: core.ColorYellow,
	sim.KindT: core.ColorMagenta,
	sim.KindS: core.ColorGreen,
	sim.KindZ: core.ColorRed,
	sim.KindJ: core.ColorBlue,
	sim.KindL: core.ColorOrange,
}

var controlsHelp = []string{
	"←/→  move",
	"↑/x  rotate",
	"z    rotate back",
	"↓    fast fall",
	"p    pause",
	"q    quit",
}

// frameSize returns the board size including its border.
func (g *Game) frameSize() (w, h int) {
	return g.cfg.Board.Width*cellWidth + 2, g.cfg.Board.Height + 2
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.err != nil {
		g.renderOverlay(dst, "Engine error", g.err.Error())
		return
	}
	if g.tooSmall {
		w, h := g.frameSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h+hudHeight))
		return
	}
	if g.sim == nil {
		return
	}

	g.renderBoard(dst)
	g.renderPiece(dst)
	g.renderSidePanel(dst)

	switch {
	case g.sim.IsGameOver():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - press R", g.sim.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " " + g.Title()
	if g.sim != nil {
		hud = fmt.Sprintf(" %s  Score: %d  Lines: %d  Level: %d",
			g.Title(), g.sim.Score(), g.sim.Lines(), g.sim.Level())
	}
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws the frame and every locked cell.
func (g *Game) renderBoard(dst *core.Screen) {
	w, h := g.frameSize()
	dst.DrawBox(core.NewRect(g.boardX, g.boardY, w, h), frameColor)

	for y := range g.sim.MatrixHeight() {
		for x := range g.sim.MatrixWidth() {
			if g.sim.MatrixValue(x, y) {
				g.drawCell(dst, x, y, lockedColor)
			}
		}
	}
}

// renderPiece draws the active piece in its kind's colour.
func (g *Game) renderPiece(dst *core.Screen) {
	color := kindColors[g.sim.Kind()]
	px, py := g.sim.TetrominoPosX(), g.sim.TetrominoPosY()

	for ly := range g.sim.TetrominoMaxHeight() {
		for lx := range g.sim.TetrominoMaxWidth() {
			if g.sim.TetrominoValue(lx, ly) {
				g.drawCell(dst, px+lx, py+ly, color)
			}
		}
	}
}

// drawCell paints board cell (x, y), clipped to the board interior.
func (g *Game) drawCell(dst *core.Screen, x, y int, c core.Color) {
	interior := core.NewRect(0, 0, g.cfg.Board.Width, g.cfg.Board.Height)
	if !interior.Contains(x, y) {
		return
	}
	sx := g.boardX + 1 + x*cellWidth
	sy := g.boardY + 1 + y
	for i := range cellWidth {
		dst.SetColor(sx+i, sy, blockRune, c)
	}
}

// renderSidePanel draws stats and controls right of the board when there is room.
func (g *Game) renderSidePanel(dst *core.Screen) {
	w, _ := g.frameSize()
	x := g.boardX + w + 2
	if x+sidePanelWidth > dst.Width() {
		return
	}

	y := g.boardY
	stats := []struct {
		label string
		value int
	}{
		{"Score", g.sim.Score()},
		{"Lines", g.sim.Lines()},
		{"Level", g.sim.Level()},
		{"Pieces", g.sim.Pieces()},
	}
	for _, s := range stats {
		dst.DrawTextColor(x, y, s.label, core.ColorGray)
		dst.DrawText(x+8, y, fmt.Sprintf("%d", s.value))
		y++
	}

	y++
	dst.DrawTextColor(x, y, "Piece", core.ColorGray)
	dst.DrawTextColor(x+8, y, g.sim.Kind().String(), kindColors[g.sim.Kind()])
	y += 2

	for _, line := range controlsHelp {
		dst.DrawTextColor(x, y, line, core.ColorGray)
		y++
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.FillRect(box)
	dst.DrawBox(box, core.ColorDefault)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
