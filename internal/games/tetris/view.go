package tetris

import "github.com/vovakirdan/pocket-arcade/internal/core"

// BoardView is a read-only projection of the game for drawing.
type BoardView struct {
	Width    int
	Height   int
	Cells    [][]core.Color // Locked cells, [row][column]
	Piece    *Piece         // Nil once the game is over
	Score    int
	Lines    int
	GameOver bool
	Paused   bool
}

// View returns a snapshot that shares no memory with the game.
func (g *Game) View() BoardView {
	v := BoardView{
		Width:    g.board.Width(),
		Height:   g.board.Height(),
		Cells:    g.board.Rows(),
		Score:    g.score,
		Lines:    g.lines,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if !g.gameOver {
		p := g.piece
		p.Shape = p.Shape.Clone()
		v.Piece = &p
	}
	return v
}

// ColorAt returns the color shown at a board cell, including the falling
// piece.
func (v BoardView) ColorAt(x, y int) core.Color {
	if v.Piece != nil {
		px, py := x-v.Piece.X, y-v.Piece.Y
		if py >= 0 && py < v.Piece.Shape.Height() && px >= 0 && px < v.Piece.Shape.Width() && v.Piece.Shape[py][px] {
			return v.Piece.Color()
		}
	}
	if y < 0 || y >= len(v.Cells) || x < 0 || x >= len(v.Cells[y]) {
		return Empty
	}
	return v.Cells[y][x]
}
