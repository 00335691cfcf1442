package core

import "testing"

func TestRectIntersects(t *testing.T) {
	base := NewRect(4, 2, 6, 3) // cells x 4..9, y 2..4

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same", base, true},
		{"shares a corner cell", NewRect(9, 4, 5, 5), true},
		{"left neighbour", NewRect(0, 2, 4, 3), false},
		{"row below", NewRect(4, 5, 6, 1), false},
		{"inside", NewRect(5, 3, 1, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reversed Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 7, 10, 2)
	if r.Right() != 13 || r.Bottom() != 9 {
		t.Errorf("edges = (%d, %d), want (13, 9)", r.Right(), r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{v: 5, lo: 0, hi: 10, want: 5},
		{v: -1, lo: 0, hi: 10, want: 0},
		{v: 12.5, lo: 0, hi: 10, want: 10},
		{v: 3, lo: 0, hi: -20, want: 0},
	}
	for _, tt := range tests {
		if got := ClampF(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestRectFIntersects(t *testing.T) {
	card := NewRectF(100, 200, 300, 120)

	tests := []struct {
		name  string
		other RectF
		want  bool
	}{
		{"ball inside", NewRectF(150, 250, 10, 10), true},
		{"ball grazing the top", NewRectF(150, 190, 10, 10), false},
		{"ball over the corner", NewRectF(395, 315, 10, 10), true},
		{"half a pixel in", NewRectF(399.5, 250, 10, 10), true},
		{"far right", NewRectF(500, 250, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := card.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(card); got != tt.want {
				t.Errorf("reversed Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectFTranslateKeepsSize(t *testing.T) {
	r := NewRectF(0, 600, 200, 80).Translate(0, -450)

	if r.Top != 150 || r.Bottom != 230 {
		t.Errorf("Translate = %+v", r)
	}
	if r.Width() != 200 || r.Height() != 80 {
		t.Errorf("size = %vx%v, want 200x80", r.Width(), r.Height())
	}
	if cx, cy := r.Center(); cx != 100 || cy != 190 {
		t.Errorf("Center = (%v, %v), want (100, 190)", cx, cy)
	}
}

func TestViewportVisible(t *testing.T) {
	vp := Viewport{Width: 800, Height: 480, ScrollY: 1000}

	tests := []struct {
		name string
		r    RectF
		want bool
	}{
		{"on screen", NewRectF(100, 1100, 200, 40), true},
		{"scrolled past", NewRectF(100, 900, 200, 40), false},
		{"ends at the top edge", NewRectF(100, 960, 200, 40), false},
		{"cut by the bottom edge", NewRectF(100, 1470, 200, 40), true},
		{"not reached yet", NewRectF(100, 1480, 200, 40), false},
		{"right of the page", NewRectF(800, 1100, 50, 40), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vp.Visible(tt.r); got != tt.want {
				t.Errorf("Visible = %v, want %v", got, tt.want)
			}
		})
	}
}
