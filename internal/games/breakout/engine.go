// Package breakout implements a Breakout engine whose bricks are the
// elements of a host page. The engine is pure simulation: the host feeds
// pointer positions and calls Step once per frame, and the engine reports
// what happened through core.StepResult events.
package breakout

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
)

// ErrNoTargets is returned by Init when the page offers nothing to break.
var ErrNoTargets = errors.New("breakout: no targets on page")

// Mode selects the Breakout variant.
type Mode int

const (
	ModeClassic  Mode = iota // bricks are the visible elements, page stays put
	ModeSurvival             // every element is a brick, page scrolls toward the top
)

// String returns the mode name used on the command line.
func (m Mode) String() string {
	if m == ModeSurvival {
		return "survival"
	}
	return "classic"
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "classic":
		return ModeClassic, nil
	case "survival":
		return ModeSurvival, nil
	default:
		return ModeClassic, fmt.Errorf("breakout: unknown mode %q", s)
	}
}

// Phase is the engine's high level state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseWon
	PhaseLost
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "running"
	}
}

// Ball is the ball center and its per-frame velocity.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// Paddle is the paddle's top-left corner and size, in viewport coordinates.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Brick is a page target. Rect is in page coordinates.
type Brick struct {
	ID    int
	Rect  core.RectF
	Alive bool
}

// TargetProvider is the page the engine plays on.
type TargetProvider interface {
	// Targets lists candidate bricks with page-space rectangles.
	Targets(vp core.Viewport, scope core.TargetScope) []core.Target
	// Shatter marks a target destroyed.
	Shatter(id int)
	// Restore undoes Shatter.
	Restore(id int)
}

// Option configures an Engine.
type Option func(*Engine)

// WithMode selects Classic or Survival.
func WithMode(m Mode) Option {
	return func(e *Engine) { e.mode = m }
}

// WithSeed makes launch directions reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// Engine is one Breakout game. It is not safe for concurrent use.
type Engine struct {
	cfg     config.BreakoutConfig
	targets TargetProvider
	mode    Mode
	rng     *rand.Rand

	vp     core.Viewport
	ball   Ball
	paddle Paddle
	bricks []Brick

	score       int
	lives       int
	phase       Phase
	scrollSpeed float64
	frame       uint64

	active bool
}

// New creates an engine. Nothing happens until Init.
func New(cfg config.BreakoutConfig, targets TargetProvider, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg,
		targets: targets,
		rng:     rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Init scans the page, builds bricks, and places the paddle and ball.
// Calling Init again restores the previous game's targets and starts over.
// When the scan finds nothing, Init leaves the engine torn down and
// returns ErrNoTargets.
func (e *Engine) Init(vp core.Viewport) error {
	e.restoreTargets()
	e.vp = vp
	e.bricks = e.scan()
	if len(e.bricks) == 0 {
		e.active = false
		return ErrNoTargets
	}

	e.score = 0
	e.lives = e.cfg.Gameplay.Lives
	e.phase = PhaseRunning
	e.scrollSpeed = e.cfg.Survival.ScrollSpeed
	e.frame = 0

	e.paddle = Paddle{
		X:      vp.Width/2 - e.cfg.Paddle.Width/2,
		Y:      vp.Height - e.cfg.Paddle.Bottom - e.cfg.Paddle.Height,
		Width:  e.cfg.Paddle.Width,
		Height: e.cfg.Paddle.Height,
	}
	e.resetBall()
	e.active = true
	return nil
}

func (e *Engine) scan() []Brick {
	scope := core.ScopeVisible
	if e.mode == ModeSurvival {
		scope = core.ScopeAll
	}

	var bricks []Brick
	for _, t := range e.targets.Targets(e.vp, scope) {
		if e.mode == ModeClassic &&
			(t.Rect.Width() <= e.cfg.Targets.MinWidth || t.Rect.Height() <= e.cfg.Targets.MinHeight) {
			continue
		}
		bricks = append(bricks, Brick{ID: t.ID, Rect: t.Rect, Alive: true})
	}
	return bricks
}

// resetBall puts the ball at the launch point heading up, randomly left or right.
func (e *Engine) resetBall() {
	dir := 1.0
	if e.rng.Float64() <= 0.5 {
		dir = -1
	}
	speed := e.cfg.Ball.Speed
	e.ball = Ball{
		X:  e.vp.Width / 2,
		Y:  e.vp.Height - e.cfg.Ball.LaunchOffset,
		VX: dir * speed * 0.7,
		VY: -speed,
	}
}

// Step advances the game one frame. It is a no-op once the game has
// ended or the engine was destroyed.
func (e *Engine) Step() core.StepResult {
	if !e.active || e.phase != PhaseRunning {
		return e.result(nil)
	}
	e.frame++

	var events []core.Event

	if e.mode == ModeSurvival {
		e.vp.ScrollY -= e.scrollSpeed
		if e.vp.ScrollY <= 0 {
			e.vp.ScrollY = 0
			return e.result(e.finish(events, PhaseWon))
		}
	}

	e.ball.X += e.ball.VX
	e.ball.Y += e.ball.VY

	e.collideWalls()
	e.collidePaddle()

	if e.ball.Y > e.vp.Height+e.cfg.Ball.Size {
		e.lives--
		events = append(events, core.Event{Kind: core.EventLifeLost, Score: e.score, Count: e.lives})
		if e.lives <= 0 {
			return e.result(e.finish(events, PhaseLost))
		}
		e.resetBall()
	}

	events = e.collideBricks(events)

	if e.mode == ModeSurvival && e.brickPassed() {
		return e.result(e.finish(events, PhaseLost))
	}

	if e.AliveCount() == 0 {
		return e.result(e.finish(events, PhaseWon))
	}
	return e.result(events)
}

func (e *Engine) finish(events []core.Event, phase Phase) []core.Event {
	e.phase = phase
	kind := core.EventWon
	if phase == PhaseLost {
		kind = core.EventLost
	}
	return append(events, core.Event{Kind: kind, Score: e.score})
}

func (e *Engine) result(events []core.Event) core.StepResult {
	return core.StepResult{State: e.State(), Events: events}
}

// MovePointer moves the paddle so it is centered on x, clamped to the viewport.
func (e *Engine) MovePointer(x float64) {
	if !e.active || e.phase != PhaseRunning {
		return
	}
	e.paddle.X = core.ClampF(x-e.paddle.Width/2, 0, e.vp.Width-e.paddle.Width)
}

// Destroy stops the game and restores every broken target.
// Later calls to Step and MovePointer do nothing.
func (e *Engine) Destroy() core.StepResult {
	if e.bricks == nil && !e.active {
		return e.result(nil)
	}
	e.active = false
	e.restoreTargets()
	return e.result([]core.Event{{Kind: core.EventDestroyed, Score: e.score}})
}

func (e *Engine) restoreTargets() {
	for i := range e.bricks {
		if !e.bricks[i].Alive {
			e.targets.Restore(e.bricks[i].ID)
		}
	}
	e.bricks = nil
}

// State returns the host-facing summary.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.score,
		GameOver: e.phase != PhaseRunning,
		Won:      e.phase == PhaseWon,
	}
}

// Active reports whether Init succeeded and Destroy has not run.
func (e *Engine) Active() bool { return e.active }

// Mode returns the variant being played.
func (e *Engine) Mode() Mode { return e.mode }

// Phase returns running, won or lost.
func (e *Engine) Phase() Phase { return e.phase }

func (e *Engine) Score() int { return e.score }

func (e *Engine) Lives() int { return e.lives }

func (e *Engine) Ball() Ball { return e.ball }

// BallRadius returns the ball radius in logical pixels.
func (e *Engine) BallRadius() float64 { return e.radius() }

func (e *Engine) Paddle() Paddle { return e.paddle }

// Viewport returns the arena, including the current Survival scroll offset.
func (e *Engine) Viewport() core.Viewport { return e.vp }

func (e *Engine) ScrollSpeed() float64 { return e.scrollSpeed }

// Frame returns the number of frames simulated since Init.
func (e *Engine) Frame() uint64 { return e.frame }

func (e *Engine) Config() config.BreakoutConfig { return e.cfg }

// Bricks returns a copy of the brick set.
func (e *Engine) Bricks() []Brick {
	out := make([]Brick, len(e.bricks))
	copy(out, e.bricks)
	return out
}

// AliveCount returns how many bricks are left.
func (e *Engine) AliveCount() int {
	n := 0
	for _, b := range e.bricks {
		if b.Alive {
			n++
		}
	}
	return n
}
