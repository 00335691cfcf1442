package breakout

import (
	"math"

	"github.com/vovakirdan/pagebreak/internal/core"
)

func (e *Engine) radius() float64 {
	return e.cfg.Ball.Size / 2
}

// collideWalls reflects off the side walls and the ceiling. There is no floor.
func (e *Engine) collideWalls() {
	r := e.radius()
	if e.ball.X <= r || e.ball.X >= e.vp.Width-r {
		e.ball.VX = -e.ball.VX
		e.ball.X = core.ClampF(e.ball.X, r, e.vp.Width-r)
	}
	if e.ball.Y <= r {
		e.ball.VY = -e.ball.VY
		e.ball.Y = r
	}
}

// collidePaddle bounces the ball up with an angle set by where it struck:
// straight up at the center, full speed sideways at the edges.
func (e *Engine) collidePaddle() {
	r := e.radius()
	p := e.paddle
	if e.ball.Y < p.Y-r || e.ball.Y > p.Y+p.Height {
		return
	}
	if e.ball.X < p.X || e.ball.X > p.X+p.Width {
		return
	}

	e.ball.VY = -math.Abs(e.ball.VY)
	e.ball.VX = BounceVX(e.cfg.Ball.Speed, (e.ball.X-p.X)/p.Width)
	e.ball.Y = p.Y - r
}

// BounceVX returns the horizontal velocity after a paddle hit at
// hitFraction (0 = left edge, 1 = right edge).
func BounceVX(speed, hitFraction float64) float64 {
	return speed * (hitFraction - 0.5) * 2
}

// ballBox returns the ball's bounding box in viewport coordinates.
func (e *Engine) ballBox() core.RectF {
	r := e.radius()
	return core.NewRectF(e.ball.X-r, e.ball.Y-r, e.cfg.Ball.Size, e.cfg.Ball.Size)
}

// visualRect converts a page-space brick rect to viewport coordinates.
func (e *Engine) visualRect(b Brick) core.RectF {
	return b.Rect.Translate(0, -e.vp.ScrollY)
}

// collideBricks breaks every alive brick overlapping the ball.
// Reflection depends on which side of the brick the ball center is on;
// a corner hit reflects both axes.
func (e *Engine) collideBricks(events []core.Event) []core.Event {
	box := e.ballBox()
	for i := range e.bricks {
		b := &e.bricks[i]
		if !b.Alive {
			continue
		}
		rect := e.visualRect(*b)
		if !box.Intersects(rect) {
			continue
		}

		b.Alive = false
		e.score += e.cfg.Gameplay.BrickPoints
		e.targets.Shatter(b.ID)
		events = append(events, core.Event{Kind: core.EventBrickShattered, Score: e.score, Count: b.ID})

		if e.ball.X < rect.Left || e.ball.X > rect.Right {
			e.ball.VX = -e.ball.VX
		}
		if e.ball.Y < rect.Top || e.ball.Y > rect.Bottom {
			e.ball.VY = -e.ball.VY
		}

		if e.mode == ModeSurvival {
			e.scrollSpeed = math.Min(e.scrollSpeed+e.cfg.Survival.ScrollStep, e.cfg.Survival.MaxScrollSpeed)
		}
	}
	return events
}

// brickPassed reports whether a tall enough alive brick has scrolled
// below the viewport.
func (e *Engine) brickPassed() bool {
	for _, b := range e.bricks {
		if !b.Alive || b.Rect.Height() < e.cfg.Survival.PassLossMinHeight {
			continue
		}
		if e.visualRect(b).Top > e.vp.Height {
			return true
		}
	}
	return false
}
