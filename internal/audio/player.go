package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pagebreak/internal/core"
)

// SampleRate is the speaker rate.
const SampleRate = beep.SampleRate(44100)

// Player plays effects for engine events. A Player that failed to open
// the speaker, or was created disabled, stays silent.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool

	// last limits each effect to one start per frame.
	last map[Effect]time.Time
	now  func() time.Time
}

// Silent returns a player that never makes a sound.
func Silent() *Player {
	return &Player{}
}

// Open initializes the speaker. On error the returned player is silent
// and still safe to use.
func Open() (*Player, error) {
	p := &Player{
		mixer: &beep.Mixer{},
		last:  make(map[Effect]time.Time),
		now:   time.Now,
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return Silent(), fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p, nil
}

// Enabled reports whether sounds reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play starts an effect.
func (p *Player) Play(e Effect) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || e == EffectNone {
		return
	}
	now := p.now()
	if now.Sub(p.last[e]) < 15*time.Millisecond {
		return
	}
	p.last[e] = now

	s := Build(e, SampleRate)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayEvents plays the sound of every event that has one.
func (p *Player) PlayEvents(events []core.Event) {
	for _, ev := range events {
		p.Play(EffectFor(ev.Kind))
	}
}

// Close silences the player.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}
