package pong

import (
	"fmt"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Smallest screen that still shows both paddles and the ball apart.
const (
	minScreenW = 20
	minScreenH = 8
)

// tooSmallMsg fits a screen one column narrower than minScreenW.
const tooSmallMsg = "too small"

// Render draws the current game state to the screen. Row 0 holds the
// scores; the field is scaled onto the rows below it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, tooSmallMsg)
		return
	}

	v := g.Snapshot()
	vp := viewport{
		fieldW: g.cfg.Field.Width, fieldH: g.cfg.Field.Height,
		w: dst.Width(), h: dst.Height() - 1, top: 1,
	}

	centerX := dst.Width() / 2
	for y := vp.top; y < dst.Height(); y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	dst.DrawRectColored(vp.project(g.paddleRect(SidePlayer)), PaddleChar, core.ColorWhite)
	dst.DrawRectColored(vp.project(g.paddleRect(SideAI)), PaddleChar, core.ColorWhite)
	dst.DrawRectColored(vp.project(g.ballRect()), BallChar, core.ColorRed)

	dst.DrawTextCentered(0, fmt.Sprintf("YOU: %d  AI: %d", v.Score, v.AIScore))

	switch {
	case v.GameOver:
		title := "YOU WIN!"
		if v.Winner == SideAI {
			title = "AI WINS!"
		}
		drawCenteredMessage(dst, title, "(R) to Restart")
	case v.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// viewport maps field units onto a block of screen cells.
type viewport struct {
	fieldW, fieldH int
	w, h, top      int
}

// project converts a field rectangle to screen cells. Edges are rounded
// outward so nothing shrinks below one cell.
func (vp viewport) project(r core.Rect) core.Rect {
	x0 := r.X * vp.w / vp.fieldW
	y0 := r.Y * vp.h / vp.fieldH
	x1 := ceilDiv(r.Right()*vp.w, vp.fieldW)
	y1 := ceilDiv(r.Bottom()*vp.h, vp.fieldH)
	return core.NewRect(x0, vp.top+y0, max(x1-x0, 1), max(y1-y0, 1))
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
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
