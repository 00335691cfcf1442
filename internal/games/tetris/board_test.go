package tetris

import "testing"

func TestCollides(t *testing.T) {
	b := NewBoard(20, 10)
	b[19][0] = 1
	p := NewPiece(KindO)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"open", 4, 5, false},
		{"left wall", -1, 5, true},
		{"right wall", 9, 5, true},
		{"floor", 4, 19, true},
		{"locked cell", 0, 18, true},
		{"above top", 4, -1, false},
	}
	for _, tt := range tests {
		p.X, p.Y = tt.x, tt.y
		if got := b.Collides(p, p.Shape, 0, 0); got != tt.want {
			t.Errorf("%s: Collides = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestMergeDropsCellsAboveTop(t *testing.T) {
	b := NewBoard(20, 10)
	p := NewPiece(KindO)
	p.X, p.Y = 0, -1
	b.Merge(p)
	if b.Filled() != 2 {
		t.Errorf("filled = %d, expected 2", b.Filled())
	}
}

func TestClearLinesCascades(t *testing.T) {
	b := NewBoard(6, 4)
	for c := 0; c < 4; c++ {
		b[3][c] = 1
		b[5][c] = 2
	}
	b[4][1] = 3
	b[2][2] = 4

	if n := b.ClearLines(); n != 2 {
		t.Fatalf("cleared %d, expected 2", n)
	}
	if b[5][1] != 3 {
		t.Errorf("row 4 should have slid to the bottom: %v", b[5])
	}
	if b[4][2] != 4 {
		t.Errorf("row 2 should have slid down two rows: %v", b[4])
	}
	if b.Filled() != 2 {
		t.Errorf("filled = %d, expected 2", b.Filled())
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for k := KindI; k <= KindL; k++ {
		s := NewPiece(k).Shape
		r := s.Rotate().Rotate().Rotate().Rotate()
		for i := range s {
			for j := range s[i] {
				if s[i][j] != r[i][j] {
					t.Fatalf("%v: four rotations changed the shape", k)
				}
			}
		}
	}
}
