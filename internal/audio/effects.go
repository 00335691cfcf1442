package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/pagebreak/internal/core"
)

// Effect names a sound.
type Effect int

const (
	EffectNone Effect = iota
	EffectShatter
	EffectLifeLost
	EffectLineClear
	EffectLevelUp
	EffectWin
	EffectGameOver
)

// EffectFor maps an engine event to its sound. Events without a sound
// return EffectNone.
func EffectFor(k core.EventKind) Effect {
	switch k {
	case core.EventBrickShattered:
		return EffectShatter
	case core.EventLifeLost:
		return EffectLifeLost
	case core.EventLinesCleared:
		return EffectLineClear
	case core.EventLevelUp:
		return EffectLevelUp
	case core.EventWon:
		return EffectWin
	case core.EventLost, core.EventGameOver:
		return EffectGameOver
	}
	return EffectNone
}

// Build synthesizes an effect at the given rate. EffectNone returns nil.
func Build(e Effect, rate beep.SampleRate) beep.Streamer {
	switch e {
	case EffectShatter:
		d := 90 * time.Millisecond
		return gain(beep.Mix(
			Envelope(Tone(0, d, WaveNoise, rate), d, 2*time.Millisecond, 70*time.Millisecond, rate),
			Envelope(Glide(1200, 500, d, WaveSquare, rate), d, 2*time.Millisecond, 60*time.Millisecond, rate),
		), 0.25)

	case EffectLifeLost:
		d := 350 * time.Millisecond
		return gain(Envelope(Glide(440, 110, d, WaveSaw, rate), d, 5*time.Millisecond, 150*time.Millisecond, rate), 0.3)

	case EffectLineClear:
		d := 80 * time.Millisecond
		return gain(beep.Seq(
			Envelope(Tone(659.25, d, WaveSquare, rate), d, 2*time.Millisecond, 40*time.Millisecond, rate),
			Envelope(Tone(987.77, d, WaveSquare, rate), d, 2*time.Millisecond, 40*time.Millisecond, rate),
		), 0.25)

	case EffectLevelUp:
		return arpeggio(rate, 0.25, 523.25, 659.25, 783.99, 1046.5)

	case EffectWin:
		return arpeggio(rate, 0.3, 392, 523.25, 659.25, 783.99, 1046.5)

	case EffectGameOver:
		d := 180 * time.Millisecond
		return gain(beep.Seq(
			Envelope(Tone(392, d, WaveSaw, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate),
			Envelope(Tone(311.13, d, WaveSaw, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate),
			Envelope(Tone(261.63, 2*d, WaveSaw, rate), 2*d, 5*time.Millisecond, 200*time.Millisecond, rate),
		), 0.3)
	}
	return nil
}

func arpeggio(rate beep.SampleRate, g float64, notes ...float64) beep.Streamer {
	d := 70 * time.Millisecond
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = Envelope(Tone(f, d, WaveSine, rate), d, 3*time.Millisecond, 30*time.Millisecond, rate)
	}
	return gain(beep.Seq(parts...), g)
}
