// Package gesture classifies raw touch tracks into discrete game gestures.
// It knows nothing about any engine: callers map gestures to actions.
package gesture

import (
	"math"
	"time"

	"github.com/vovakirdan/pagebreak/internal/config"
)

// Gesture is a classified touch movement.
type Gesture int

const (
	None Gesture = iota
	DragLeft
	DragRight
	DragDown
	Tap
	SwipeDown
)

// String returns the gesture name.
func (g Gesture) String() string {
	switch g {
	case DragLeft:
		return "drag-left"
	case DragRight:
		return "drag-right"
	case DragDown:
		return "drag-down"
	case Tap:
		return "tap"
	case SwipeDown:
		return "swipe-down"
	default:
		return "none"
	}
}

// Thresholds tune the classifier. Distances are in the caller's
// coordinate units.
type Thresholds struct {
	MoveX     float64       // horizontal drag step
	MoveY     float64       // downward drag step
	TapMax    time.Duration // taps must end sooner than this
	SwipeMinY float64       // minimum total downward travel of a swipe
	SwipeMax  time.Duration // swipes must end sooner than this
}

// DefaultThresholds returns the stock thresholds.
func DefaultThresholds() Thresholds {
	return FromConfig(config.DefaultGestureConfig())
}

// FromConfig converts loaded YAML thresholds.
func FromConfig(c config.GestureConfig) Thresholds {
	return Thresholds{
		MoveX:     c.MoveX,
		MoveY:     c.MoveY,
		TapMax:    time.Duration(c.TapMaxMs) * time.Millisecond,
		SwipeMinY: c.SwipeMinY,
		SwipeMax:  time.Duration(c.SwipeMaxMs) * time.Millisecond,
	}
}

// Classifier tracks one touch at a time.
// Drags fire repeatedly during Move, each time the finger travels one
// threshold step from where the previous drag fired. Tap and SwipeDown are
// decided on End from the total displacement and elapsed time.
type Classifier struct {
	th Thresholds

	active         bool
	startX, startY float64
	lastX, lastY   float64
	startTime      time.Time
}

// NewClassifier creates a classifier with the given thresholds.
func NewClassifier(th Thresholds) *Classifier {
	return &Classifier{th: th}
}

// Active reports whether a touch is in progress.
func (c *Classifier) Active() bool {
	return c.active
}

// Begin starts tracking a touch.
func (c *Classifier) Begin(x, y float64, at time.Time) {
	c.active = true
	c.startX, c.startY = x, y
	c.lastX, c.lastY = x, y
	c.startTime = at
}

// Move feeds a new finger position and returns the drags it triggers,
// horizontal first. Moving up never produces a gesture.
func (c *Classifier) Move(x, y float64) []Gesture {
	if !c.active {
		return nil
	}

	var out []Gesture
	dx := x - c.lastX
	if math.Abs(dx) > c.th.MoveX {
		if dx > 0 {
			out = append(out, DragRight)
		} else {
			out = append(out, DragLeft)
		}
		c.lastX = x
	}

	if y-c.lastY > c.th.MoveY {
		out = append(out, DragDown)
		c.lastY = y
	}
	return out
}

// End finishes the touch and classifies it as a whole.
func (c *Classifier) End(x, y float64, at time.Time) Gesture {
	if !c.active {
		return None
	}
	c.active = false

	dx := x - c.startX
	dy := y - c.startY
	elapsed := at.Sub(c.startTime)

	if math.Abs(dx) < c.th.MoveX && math.Abs(dy) < c.th.MoveY && elapsed < c.th.TapMax {
		return Tap
	}
	if dy > c.th.SwipeMinY && elapsed < c.th.SwipeMax {
		return SwipeDown
	}
	return None
}

// Cancel drops the current touch without classifying it.
func (c *Classifier) Cancel() {
	c.active = false
}
