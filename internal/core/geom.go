// Package core holds the types every game and host shares: geometry, the
// cell screen, input frames and step results. It imports nothing outside
// the standard library.
package core

// Rect is a block of terminal cells.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether r and o share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// RectF is a box in logical pixels, stored by its edges like a browser
// bounding box.
type RectF struct {
	Left, Top, Right, Bottom float64
}

// NewRectF builds a box from its origin and size.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

func (r RectF) Width() float64  { return r.Right - r.Left }
func (r RectF) Height() float64 { return r.Bottom - r.Top }

// Translate returns r moved by (dx, dy).
func (r RectF) Translate(dx, dy float64) RectF {
	return RectF{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Intersects reports strict overlap; boxes that only touch do not.
func (r RectF) Intersects(o RectF) bool {
	return r.Left < o.Right && o.Left < r.Right &&
		r.Top < o.Bottom && o.Top < r.Bottom
}

func (r RectF) Center() (float64, float64) {
	return (r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2
}

// ClampF limits v to [lo, hi]. When hi < lo the result is lo.
func ClampF(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
