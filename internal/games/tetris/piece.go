package tetris

// Kind identifies a tetromino. It doubles as the piece's color index.
type Kind uint8

const (
	KindI Kind = iota + 1
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// NumKinds is the number of tetromino kinds.
const NumKinds = 7

var kindNames = [...]string{"", "I", "O", "T", "S", "Z", "J", "L"}

// String returns the letter of the piece.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Shape is a square grid of 0/1 cells.
type Shape [][]uint8

// spawnShapes holds each kind in spawn orientation.
var spawnShapes = [NumKinds + 1]Shape{
	KindI: {{0, 0, 0, 0}, {1, 1, 1, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}},
	KindO: {{1, 1}, {1, 1}},
	KindT: {{0, 1, 0}, {1, 1, 1}, {0, 0, 0}},
	KindS: {{0, 1, 1}, {1, 1, 0}, {0, 0, 0}},
	KindZ: {{1, 1, 0}, {0, 1, 1}, {0, 0, 0}},
	KindJ: {{1, 0, 0}, {1, 1, 1}, {0, 0, 0}},
	KindL: {{0, 0, 1}, {1, 1, 1}, {0, 0, 0}},
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]uint8(nil), row...)
	}
	return out
}

// Rotate returns the shape turned clockwise: new[r][c] = old[N-1-c][r].
func (s Shape) Rotate() Shape {
	n := len(s)
	out := make(Shape, n)
	for r := range out {
		out[r] = make([]uint8, n)
		for c := range out[r] {
			out[r][c] = s[n-1-c][r]
		}
	}
	return out
}

// Piece is a tetromino on the board. X and Y locate the shape's top-left
// corner in board cells; Y may be negative right after a rotation.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color uint8
	X, Y  int
}

// NewPiece creates a piece of the given kind in spawn orientation.
func NewPiece(k Kind) Piece {
	return Piece{Kind: k, Shape: spawnShapes[k].Clone(), Color: uint8(k)}
}

// cells calls fn for every occupied cell of the shape at offset (dx, dy)
// from the piece position. Iteration stops when fn returns false.
func (p Piece) cells(shape Shape, dx, dy int, fn func(col, row int) bool) {
	for r, line := range shape {
		for c, v := range line {
			if v == 0 {
				continue
			}
			if !fn(p.X+c+dx, p.Y+r+dy) {
				return
			}
		}
	}
}
