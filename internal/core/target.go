package core

// Viewport is the visible window onto a page, in logical pixels.
// ScrollY is the page offset of the viewport's top edge.
type Viewport struct {
	Width   float64
	Height  float64
	ScrollY float64
}

// Visible reports whether a page-space rectangle overlaps the viewport.
func (v Viewport) Visible(r RectF) bool {
	top := r.Top - v.ScrollY
	bottom := r.Bottom - v.ScrollY
	return top < v.Height && bottom > 0 && r.Left < v.Width && r.Right > 0
}

// TargetScope selects which page elements a scan returns.
type TargetScope int

const (
	ScopeVisible TargetScope = iota // elements overlapping the viewport
	ScopeAll                        // every element on the page
)

// Target is a destructible page region. Rect is in page coordinates.
type Target struct {
	ID   int
	Rect RectF
}
