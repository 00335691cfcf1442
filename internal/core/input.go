package core

// Action is a player intent, independent of the key, button or gesture
// that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // rotate in Tetris
	ActionDown           // soft drop
	ActionLeft
	ActionRight
	ActionDrop           // hard drop
	ActionBack           // leave the game, back to the page or menu
	ActionRestart        // new game after game over
	ActionQuit
	ActionPause
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionDrop:    "Drop",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the actions of one simulation step in the order
// they arrived. Tetris replays that order; Breakout only asks Has.
type InputFrame struct {
	Order []Action
	seen  uint32
}

func NewInputFrame() InputFrame {
	return InputFrame{Order: make([]Action, 0, 4)}
}

// Set records a.
func (f *InputFrame) Set(a Action) {
	f.Order = append(f.Order, a)
	f.seen |= 1 << uint(a)
}

// Has reports whether a was recorded this step.
func (f InputFrame) Has(a Action) bool {
	return f.seen&(1<<uint(a)) != 0
}

// Clear empties the frame for the next step, keeping its storage.
func (f *InputFrame) Clear() {
	f.Order = f.Order[:0]
	f.seen = 0
}
