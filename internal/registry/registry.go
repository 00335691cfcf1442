// Package registry maps game IDs to factories. Game packages register
// from init, so hosts only need a blank import to offer a game.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/pagebreak/internal/core"
)

// Game is what every host drives: a terminal-sized wrapper around an engine.
// Games contain pure logic with no Bubble Tea or Ebitengine dependency.
type Game interface {
	ID() string // CLI name and score key, e.g. "breakout_survival"
	Title() string

	// Reset starts a new game sized to cfg. Hosts call it again on resize.
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	// Render draws into a cleared screen.
	Render(dst *core.Screen)
	State() core.GameState
}

// PointerGame is a game steered by a pointer. Coordinates are screen cells.
type PointerGame interface {
	Game
	Pointer(col, row int)
}

// TouchGame accepts raw touch tracks in screen cells.
type TouchGame interface {
	Game
	TouchBegin(col, row int)
	TouchMove(col, row int)
	TouchEnd(col, row int)
}

// ThemedGame can swap its color theme while running.
type ThemedGame interface {
	Game
	SetTheme(name string) bool
}

// Destroyer is a game that changed something outside itself and must
// undo it when the host is done with it.
type Destroyer interface {
	Destroy() core.StepResult
}

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a fresh, not yet Reset game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game. It panics when id is taken, which can only happen
// through a programming error in an init function.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, taken := entries[id]; taken {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: f().Title()}, factory: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new instance of game id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
