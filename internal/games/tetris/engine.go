// Package tetris implements a Tetris engine with swappable color themes,
// a ghost piece, soft and hard drops, and touch gesture control.
// Gravity is time-accumulated: the host passes elapsed time to Tick.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
)

// Action is a discrete player command.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionSoftDrop
	ActionRotate
	ActionHardDrop
	ActionPause
	ActionRestart
)

// Phase is the engine's high level state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "running"
	}
}

// PreviewSize is the side of the next-piece preview in cells.
const PreviewSize = 4

// Option configures an Engine.
type Option func(*Engine)

// WithSeed makes the piece sequence reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithPieceSource replaces the random generator, for scripted games.
// The function is called once per new piece.
func WithPieceSource(next func() Kind) Option {
	return func(e *Engine) { e.source = next }
}

// Engine is one Tetris game. It is not safe for concurrent use.
type Engine struct {
	cfg    config.TetrisConfig
	rng    *rand.Rand
	source func() Kind
	theme  Theme

	board   Board
	current Piece
	next    Piece

	score        int
	lines        int
	level        int
	dropInterval time.Duration
	dropCounter  time.Duration
	phase        Phase

	boardSurface   Surface
	previewSurface Surface
	pending        []core.Event
	destroyed      bool
}

// New creates an engine. Call Init to bind surfaces and start playing.
func New(cfg config.TetrisConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.source == nil {
		e.source = func() Kind { return Kind(e.rng.Intn(NumKinds) + 1) }
	}
	theme, ok := ThemeByName(cfg.Theme)
	if !ok {
		theme, _ = ThemeByName("default")
	}
	e.theme = theme
	return e
}

// Init binds the board and preview surfaces and starts a fresh game.
// Either surface may be nil.
func (e *Engine) Init(board, preview Surface) {
	e.boardSurface = board
	e.previewSurface = preview
	e.destroyed = false
	e.Reset()
}

// Reset starts a new game on the bound surfaces.
func (e *Engine) Reset() {
	if e.destroyed {
		return
	}
	e.board = NewBoard(e.cfg.Board.Rows, e.cfg.Board.Cols)
	e.score = 0
	e.lines = 0
	e.level = 1
	e.dropCounter = 0
	e.dropInterval = e.cfg.Timing.BaseDrop()
	e.phase = PhaseRunning
	e.pending = nil

	e.next = e.newPiece()
	e.spawn()
	e.draw()
}

// Destroy stops the game. Later calls other than Init do nothing.
func (e *Engine) Destroy() {
	e.destroyed = true
	e.pending = nil
}

// SetTheme swaps the palette and redraws. Unknown names are ignored and
// reported with false.
func (e *Engine) SetTheme(name string) bool {
	t, ok := ThemeByName(name)
	if !ok {
		return false
	}
	e.theme = t
	if !e.destroyed && e.board != nil {
		e.draw()
	}
	return true
}

func (e *Engine) newPiece() Piece {
	p := NewPiece(e.source())
	p.X = e.spawnX(p)
	return p
}

func (e *Engine) spawnX(p Piece) int {
	w := len(p.Shape[0])
	return e.cfg.Board.Cols/2 - (w+1)/2
}

// spawn promotes next to current. A blocked spawn ends the game.
func (e *Engine) spawn() {
	e.current = e.next
	e.current.X = e.spawnX(e.current)
	e.current.Y = 0
	e.next = e.newPiece()

	if e.board.Collides(e.current, e.current.Shape, 0, 0) {
		e.phase = PhaseGameOver
		e.emit(core.EventGameOver, 0)
	}
}

func (e *Engine) emit(kind core.EventKind, count int) {
	e.pending = append(e.pending, core.Event{Kind: kind, Score: e.score, Count: count})
}

// Tick advances gravity by dt and redraws. It returns the events produced
// since the previous Tick, including those caused by Handle.
func (e *Engine) Tick(dt time.Duration) core.StepResult {
	if e.destroyed {
		return core.StepResult{State: e.State()}
	}

	if e.phase == PhaseRunning {
		e.dropCounter += dt
		if e.dropCounter > e.dropInterval {
			if !e.moveDown() {
				e.land()
			}
			e.dropCounter = 0
		}
	}
	e.draw()

	events := e.pending
	e.pending = nil
	return core.StepResult{State: e.State(), Events: events}
}

// Handle applies one player command. While paused only ActionPause is
// accepted; after game over only ActionRestart.
func (e *Engine) Handle(a Action) {
	if e.destroyed {
		return
	}
	switch e.phase {
	case PhaseGameOver:
		if a == ActionRestart {
			e.Reset()
		}
		return
	case PhasePaused:
		if a == ActionPause {
			e.phase = PhaseRunning
		}
		return
	}

	switch a {
	case ActionLeft:
		e.shift(-1)
	case ActionRight:
		e.shift(1)
	case ActionSoftDrop:
		if e.moveDown() {
			e.score += e.cfg.Scoring.SoftDropPoints
		}
		e.dropCounter = 0
	case ActionRotate:
		e.rotate()
	case ActionHardDrop:
		e.hardDrop()
	case ActionPause:
		e.phase = PhasePaused
	}
	e.draw()
}

func (e *Engine) shift(dx int) {
	if !e.board.Collides(e.current, e.current.Shape, dx, 0) {
		e.current.X += dx
	}
}

func (e *Engine) moveDown() bool {
	if e.board.Collides(e.current, e.current.Shape, 0, 1) {
		return false
	}
	e.current.Y++
	return true
}

// rotate turns the piece clockwise, trying the rotated shape in place,
// then one cell left, then one cell right.
func (e *Engine) rotate() bool {
	rotated := e.current.Shape.Rotate()
	for _, dx := range [...]int{0, -1, 1} {
		if !e.board.Collides(e.current, rotated, dx, 0) {
			e.current.X += dx
			e.current.Shape = rotated
			return true
		}
	}
	return false
}

func (e *Engine) hardDrop() {
	for e.moveDown() {
		e.score += e.cfg.Scoring.HardDropPoints
	}
	e.land()
}

// land locks the current piece, clears lines and spawns the next piece.
func (e *Engine) land() {
	e.board.Merge(e.current)
	e.emit(core.EventPieceLocked, int(e.current.Kind))

	if n := e.board.ClearLines(); n > 0 {
		e.score += e.lineScore(n) * e.level
		e.lines += n
		e.emit(core.EventLinesCleared, n)

		level := e.lines/e.cfg.Timing.LinesPerLevel + 1
		if level != e.level {
			e.level = level
			e.emit(core.EventLevelUp, level)
		}
		e.dropInterval = e.intervalFor(e.level)
	}
	e.spawn()
}

func (e *Engine) lineScore(n int) int {
	table := e.cfg.Scoring.LineScores
	if n >= len(table) {
		return table[len(table)-1]
	}
	return table[n]
}

func (e *Engine) intervalFor(level int) time.Duration {
	d := e.cfg.Timing.BaseDrop() - time.Duration(level-1)*e.cfg.Timing.DropStep()
	return max(d, e.cfg.Timing.MinDrop())
}

// GhostY returns the row the current piece would land on.
func (e *Engine) GhostY() int {
	dy := 0
	for !e.board.Collides(e.current, e.current.Shape, 0, dy+1) {
		dy++
	}
	return e.current.Y + dy
}

func (e *Engine) draw() {
	if s := e.boardSurface; s != nil {
		s.Clear()
		for r, row := range e.board {
			for c, v := range row {
				if v != 0 {
					s.DrawCell(c, r, e.theme.Color(v), false)
				}
			}
		}
		if e.phase != PhaseGameOver {
			ghost := e.current
			ghost.Y = e.GhostY()
			col := e.theme.Color(e.current.Color)
			ghost.cells(ghost.Shape, 0, 0, func(c, r int) bool {
				s.DrawCell(c, r, col, true)
				return true
			})
			e.current.cells(e.current.Shape, 0, 0, func(c, r int) bool {
				s.DrawCell(c, r, col, false)
				return true
			})
		}
	}

	if s := e.previewSurface; s != nil {
		s.Clear()
		n := e.next
		offX := (PreviewSize - len(n.Shape[0])) / 2
		offY := (PreviewSize - len(n.Shape)) / 2
		col := e.theme.Color(n.Color)
		for r, row := range n.Shape {
			for c, v := range row {
				if v != 0 {
					s.DrawCell(offX+c, offY+r, col, false)
				}
			}
		}
	}
}

// State returns the host-facing summary.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.score,
		GameOver: e.phase == PhaseGameOver,
		Paused:   e.phase == PhasePaused,
	}
}

// Phase returns running, paused or game over.
func (e *Engine) Phase() Phase { return e.phase }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the total lines cleared.
func (e *Engine) Lines() int { return e.lines }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// DropInterval returns the current gravity interval.
func (e *Engine) DropInterval() time.Duration { return e.dropInterval }

// Theme returns the active palette.
func (e *Engine) Theme() Theme { return e.theme }

// Current returns a copy of the falling piece.
func (e *Engine) Current() Piece {
	p := e.current
	p.Shape = p.Shape.Clone()
	return p
}

// Next returns a copy of the preview piece.
func (e *Engine) Next() Piece {
	p := e.next
	p.Shape = p.Shape.Clone()
	return p
}

// Board returns a copy of the locked cells.
func (e *Engine) Board() Board {
	out := NewBoard(e.board.Rows(), e.board.Cols())
	for r := range e.board {
		copy(out[r], e.board[r])
	}
	return out
}
