package tetris

import (
	"testing"
	"time"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/gesture"
)

var t0 = time.Unix(1000, 0)

func newTouch(t *testing.T, kinds ...Kind) (*Engine, *TouchController) {
	t.Helper()
	e, _, _ := newTestEngine(t, config.DefaultTetrisConfig(), kinds...)
	return e, NewTouchController(e, gesture.DefaultThresholds())
}

func TestTouchDragMovesPiece(t *testing.T) {
	e, tc := newTouch(t, KindO)

	tc.Begin(100, 100, t0)
	tc.Move(130, 100)
	if x := e.Current().X; x != 5 {
		t.Errorf("x = %d after drag right, expected 5", x)
	}
	tc.Move(100, 100)
	tc.Move(70, 100)
	if x := e.Current().X; x != 3 {
		t.Errorf("x = %d after two drags left, expected 3", x)
	}
	tc.Move(70, 125)
	if y := e.Current().Y; y != 1 {
		t.Errorf("y = %d after drag down, expected 1", y)
	}

	// Slow release far from the start is neither a tap nor a swipe.
	tc.End(70, 125, t0.Add(time.Second))
	if e.Board().Filled() != 0 {
		t.Error("drag release should not drop the piece")
	}
}

func TestTouchTapRotates(t *testing.T) {
	e, tc := newTouch(t, KindT)
	before := e.Current().Shape

	tc.Begin(200, 200, t0)
	tc.End(203, 202, t0.Add(80*time.Millisecond))

	after := e.Current().Shape
	if after[1][0] == before[1][0] && after[2][1] == before[2][1] {
		t.Errorf("tap should rotate: %v -> %v", before, after)
	}
}

func TestTouchSwipeHardDrops(t *testing.T) {
	e, tc := newTouch(t, KindO)

	tc.Begin(200, 100, t0)
	tc.End(200, 260, t0.Add(150*time.Millisecond))
	if e.Board().Filled() != 4 {
		t.Errorf("filled = %d, expected the piece locked", e.Board().Filled())
	}
}

func TestTouchSlowSwipeDoesNotDrop(t *testing.T) {
	e, tc := newTouch(t, KindO)

	tc.Begin(200, 100, t0)
	tc.End(200, 260, t0.Add(400*time.Millisecond))
	if e.Board().Filled() != 0 {
		t.Error("slow swipe should not hard drop")
	}
}

func TestTouchIgnoredWhilePaused(t *testing.T) {
	e, tc := newTouch(t, KindO)
	e.Handle(ActionPause)

	tc.Begin(100, 100, t0)
	tc.Move(200, 100)
	tc.End(200, 100, t0.Add(50*time.Millisecond))
	if e.Current().X != 4 || e.Phase() != PhasePaused {
		t.Error("touch should not act while paused")
	}
}

func TestTouchRestartsAfterGameOver(t *testing.T) {
	e, tc := newTouch(t, KindO)
	e.board[1][4] = 1
	e.Handle(ActionHardDrop)
	if e.Phase() != PhaseGameOver {
		t.Fatal("expected game over")
	}

	tc.Begin(100, 100, t0)
	tc.End(100, 100, t0.Add(50*time.Millisecond))
	if e.Phase() != PhaseRunning || e.Board().Filled() != 0 {
		t.Error("touch after game over should restart")
	}
}
