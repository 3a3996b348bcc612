package tetris

import (
	"fmt"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	EmptyChar = '·'
)

// EmptyColor paints empty cells; no piece kind uses it.
const EmptyColor = core.ColorGray

// cellWidth is the number of terminal columns per board cell; terminal
// glyphs are roughly twice as tall as they are wide.
const cellWidth = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.View()

	wellW := v.Width*cellWidth + 2
	wellH := v.Height + 2
	if wellW > dst.Width() || wellH+1 > dst.Height() {
		dst.DrawTextCentered(dst.Height()/2, "too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", wellW, wellH+1))
		return
	}

	left := (dst.Width() - wellW) / 2
	top := 1

	dst.DrawText(left, 0, fmt.Sprintf("SCORE: %d", v.Score))
	lines := fmt.Sprintf("LINES: %d", v.Lines)
	dst.DrawText(left+wellW-len(lines), 0, lines)

	dst.DrawBox(core.NewRect(left, top, wellW, wellH))
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			sx, sy := left+1+x*cellWidth, top+1+y
			color := v.ColorAt(x, y)
			if color == Empty {
				dst.SetColored(sx, sy, EmptyChar, EmptyColor)
				continue
			}
			for i := range cellWidth {
				dst.SetColored(sx+i, sy, BlockChar, color)
			}
		}
	}

	switch {
	case v.GameOver:
		drawCenteredMessage(dst, "GAME OVER", "(R) to Restart")
	case v.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
