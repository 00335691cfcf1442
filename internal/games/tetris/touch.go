package tetris

import (
	"time"

	"github.com/vovakirdan/pagebreak/internal/gesture"
)

// TouchController turns touch tracks into engine actions: horizontal
// drags move the piece, dragging down soft drops, a tap rotates, and a
// fast swipe down hard drops. Lifting the finger after game over restarts.
type TouchController struct {
	engine     *Engine
	classifier *gesture.Classifier
}

// NewTouchController binds a classifier to an engine.
func NewTouchController(e *Engine, th gesture.Thresholds) *TouchController {
	return &TouchController{engine: e, classifier: gesture.NewClassifier(th)}
}

// Begin starts a touch.
func (t *TouchController) Begin(x, y float64, at time.Time) {
	t.classifier.Begin(x, y, at)
}

// Move feeds finger motion. Ignored while paused or after game over.
func (t *TouchController) Move(x, y float64) {
	if t.engine.Phase() != PhaseRunning {
		return
	}
	for _, g := range t.classifier.Move(x, y) {
		switch g {
		case gesture.DragLeft:
			t.engine.Handle(ActionLeft)
		case gesture.DragRight:
			t.engine.Handle(ActionRight)
		case gesture.DragDown:
			t.engine.Handle(ActionSoftDrop)
		}
	}
}

// End finishes a touch.
func (t *TouchController) End(x, y float64, at time.Time) {
	g := t.classifier.End(x, y, at)

	switch t.engine.Phase() {
	case PhaseGameOver:
		t.engine.Handle(ActionRestart)
		return
	case PhasePaused:
		return
	}

	switch g {
	case gesture.Tap:
		t.engine.Handle(ActionRotate)
	case gesture.SwipeDown:
		t.engine.Handle(ActionHardDrop)
	}
}
