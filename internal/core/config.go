package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (won or lost)
	Won      bool // Whether the ending was a win
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventNone EventKind = iota
	EventBrickShattered
	EventLifeLost
	EventWon
	EventLost
	EventPieceLocked
	EventLinesCleared
	EventLevelUp
	EventGameOver
	EventDestroyed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBrickShattered:
		return "brick_shattered"
	case EventLifeLost:
		return "life_lost"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	case EventPieceLocked:
		return "piece_locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventDestroyed:
		return "destroyed"
	default:
		return "none"
	}
}

// Event is a notification emitted by an engine for the host.
// Count carries the brick ID, lines cleared, or new level depending on Kind.
type Event struct {
	Kind  EventKind
	Score int
	Count int
}

// Terminal reports whether the event ends a game.
func (e Event) Terminal() bool {
	return e.Kind == EventWon || e.Kind == EventLost || e.Kind == EventGameOver
}
