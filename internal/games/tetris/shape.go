package tetris

import "github.com/vovakirdan/pocket-arcade/internal/core"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// KindCount is the number of tetromino kinds.
const KindCount = 7

// Kinds lists every tetromino in spawn-table order.
var Kinds = [KindCount]Kind{KindI, KindO, KindT, KindL, KindJ, KindS, KindZ}

var kindNames = [KindCount]string{"I", "O", "T", "L", "J", "S", "Z"}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return kindNames[k]
}

// Shape is a rectangular occupancy matrix indexed [row][column].
type Shape [][]bool

// parseShape builds a shape from rows of '#' (occupied) and '.' (empty).
func parseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for r, row := range rows {
		s[r] = make([]bool, len(row))
		for c, ch := range row {
			s[r][c] = ch == '#'
		}
	}
	return s
}

var baseShapes = [KindCount]Shape{
	KindI: parseShape("####"),
	KindO: parseShape("##", "##"),
	KindT: parseShape(".#.", "###"),
	KindL: parseShape("..#", "###"),
	KindJ: parseShape("#..", "###"),
	KindS: parseShape(".##", "##."),
	KindZ: parseShape("##.", ".##"),
}

var kindColors = [KindCount]core.Color{
	KindI: core.ColorRed,
	KindO: core.ColorOrange,
	KindT: core.ColorYellow,
	KindL: core.ColorGreen,
	KindJ: core.ColorBrightBlue,
	KindS: core.ColorCyan,
	KindZ: core.ColorBrightMagenta,
}

// BaseShape returns a fresh copy of the kind's spawn orientation.
func (k Kind) BaseShape() Shape {
	return baseShapes[k].Clone()
}

// Color returns the color locked cells of this kind are painted with.
func (k Kind) Color() core.Color {
	return kindColors[k]
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for r := range s {
		c[r] = append([]bool(nil), s[r]...)
	}
	return c
}

// Rotate returns the shape turned 90 degrees clockwise. The receiver is not
// modified. Row r, column c moves to row c, column height-1-r.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for c := range out {
		out[c] = make([]bool, h)
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			out[c][h-1-r] = s[r][c]
		}
	}
	return out
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// Cells calls fn with the offset of every occupied cell, stopping early
// when fn returns false.
func (s Shape) Cells(fn func(row, col int) bool) {
	for r, line := range s {
		for c, filled := range line {
			if filled && !fn(r, c) {
				return
			}
		}
	}
}

// Piece is the falling tetromino: its current orientation and the board
// position of the shape's top-left cell.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
}

// Color returns the piece color.
func (p Piece) Color() core.Color {
	return p.Kind.Color()
}
