package tetris

// Board is the playfield. 0 is empty, 1..7 is the color of a locked cell.
type Board [][]uint8

// NewBoard creates an empty board.
func NewBoard(rows, cols int) Board {
	b := make(Board, rows)
	for r := range b {
		b[r] = make([]uint8, cols)
	}
	return b
}

// Rows returns the board height.
func (b Board) Rows() int { return len(b) }

// Cols returns the board width.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Collides reports whether shape placed at the piece position shifted by
// (dx, dy) leaves the board sideways, reaches past the floor, or overlaps
// a locked cell. Cells above the top edge are allowed.
func (b Board) Collides(p Piece, shape Shape, dx, dy int) bool {
	hit := false
	p.cells(shape, dx, dy, func(col, row int) bool {
		if col < 0 || col >= b.Cols() || row >= b.Rows() {
			hit = true
		} else if row >= 0 && b[row][col] != 0 {
			hit = true
		}
		return !hit
	})
	return hit
}

// Merge locks the piece into the board. Cells above the top edge are dropped.
func (b Board) Merge(p Piece) {
	p.cells(p.Shape, 0, 0, func(col, row int) bool {
		if row >= 0 && row < b.Rows() && col >= 0 && col < b.Cols() {
			b[row][col] = p.Color
		}
		return true
	})
}

// ClearLines removes every full row, shifting the rows above down, and
// returns how many were removed.
func (b Board) ClearLines() int {
	cleared := 0
	for r := b.Rows() - 1; r >= 0; r-- {
		if !b.full(r) {
			continue
		}
		copy(b[1:r+1], b[0:r])
		b[0] = make([]uint8, b.Cols())
		cleared++
		r++ // the row that slid into r needs checking too
	}
	return cleared
}

func (b Board) full(r int) bool {
	for _, v := range b[r] {
		if v == 0 {
			return false
		}
	}
	return true
}

// Filled returns the number of locked cells.
func (b Board) Filled() int {
	n := 0
	for _, row := range b {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}
