// Package tui provides the Bubble Tea integration for pagebreak.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// tick chain that produced it; a model drops ticks from chains it no
// longer owns so a restarted game never runs two loops at once.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

var generations atomic.Uint64

// nextGen returns a generation number no other tick chain uses.
func nextGen() uint64 {
	return generations.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick of generation
// gen after a frame at the given rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
