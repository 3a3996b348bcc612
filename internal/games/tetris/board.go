package tetris

import "github.com/vovakirdan/pocket-arcade/internal/core"

// Empty marks a cell with no locked block.
const Empty = core.ColorDefault

// lineScores maps the number of rows cleared by one lock to points.
var lineScores = map[int]int{1: 100, 2: 300, 3: 500, 4: 800}

// ScoreForLines returns the points for clearing n rows at once.
// Counts outside 1..4 are worth nothing.
func ScoreForLines(n int) int {
	return lineScores[n]
}

// Board is the well of locked cells. Its dimensions are fixed at creation.
type Board struct {
	width  int
	height int
	cells  [][]core.Color // [row][column]
}

// NewBoard creates an empty board. Negative sizes are treated as zero.
func NewBoard(width, height int) *Board {
	b := &Board{width: max(width, 0), height: max(height, 0)}
	b.cells = make([][]core.Color, b.height)
	for y := range b.cells {
		b.cells[y] = b.emptyRow()
	}
	return b
}

func (b *Board) emptyRow() []core.Color {
	return make([]core.Color, b.width)
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// At returns the cell color at column x, row y, or Empty outside the board.
func (b *Board) At(x, y int) core.Color {
	if !b.inside(x, y) {
		return Empty
	}
	return b.cells[y][x]
}

// Set writes a cell. Writes outside the board are dropped.
func (b *Board) Set(x, y int, c core.Color) {
	if b.inside(x, y) {
		b.cells[y][x] = c
	}
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Collides reports whether shape placed with its top-left cell at (x, y)
// would leave the board or overlap a locked cell. Rows above the top edge
// count as outside, same as the walls and the floor.
func (b *Board) Collides(shape Shape, x, y int) bool {
	hit := false
	shape.Cells(func(r, c int) bool {
		bx, by := x+c, y+r
		if !b.inside(bx, by) || b.cells[by][bx] != Empty {
			hit = true
		}
		return !hit
	})
	return hit
}

// Lock paints the piece into the grid without checking for overlap.
func (b *Board) Lock(p Piece) {
	color := p.Color()
	p.Shape.Cells(func(r, c int) bool {
		b.Set(p.X+c, p.Y+r, color)
		return true
	})
}

// ClearLines removes every full row, drops the rows above it, and refills
// the top with empty rows. It returns the number of rows removed.
func (b *Board) ClearLines() int {
	kept := make([][]core.Color, 0, b.height)
	for _, row := range b.cells {
		if !isFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]core.Color, 0, b.height)
	for range cleared {
		rows = append(rows, b.emptyRow())
	}
	b.cells = append(rows, kept...)
	return cleared
}

func isFull(row []core.Color) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return len(row) > 0
}

// Rows returns a copy of the grid, indexed [row][column].
func (b *Board) Rows() [][]core.Color {
	out := make([][]core.Color, b.height)
	for y, row := range b.cells {
		out[y] = append([]core.Color(nil), row...)
	}
	return out
}
