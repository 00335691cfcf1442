package breakout

import "math"

// Snapshot is a flat copy of the engine state, used to compare runs.
type Snapshot struct {
	Frame       uint64
	Mode        int
	Phase       int
	Score       int
	Lives       int
	ScrollY     float64
	ScrollSpeed float64
	Ball        Ball
	PaddleX     float64

	// One entry per brick in scan order.
	BrickIDs   []int
	BrickAlive []bool
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:       e.frame,
		Mode:        int(e.mode),
		Phase:       int(e.phase),
		Score:       e.score,
		Lives:       e.lives,
		ScrollY:     e.vp.ScrollY,
		ScrollSpeed: e.scrollSpeed,
		Ball:        e.ball,
		PaddleX:     e.paddle.X,
		BrickIDs:    make([]int, len(e.bricks)),
		BrickAlive:  make([]bool, len(e.bricks)),
	}
	for i, b := range e.bricks {
		snap.BrickIDs[i] = b.ID
		snap.BrickAlive[i] = b.Alive
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Mode)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation

	for _, f := range []float64{snap.ScrollY, snap.ScrollSpeed, snap.Ball.X, snap.Ball.Y, snap.Ball.VX, snap.Ball.VY, snap.PaddleX} {
		h = h*31 + math.Float64bits(f)
	}

	for i, id := range snap.BrickIDs {
		h = h*31 + uint64(id) //#nosec G115 -- hash computation
		if snap.BrickAlive[i] {
			h = h*31 + 1
		}
	}
	return h
}
