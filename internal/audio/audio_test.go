package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/pagebreak/internal/core"
)

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		m, ok := s.Stream(buf)
		for i := 0; i < m; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		n += m
		if !ok {
			return n, peak
		}
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		n, peak := drain(Tone(440, 100*time.Millisecond, w, rate))
		if n != 800 {
			t.Errorf("wave %d: %d samples, expected 800", w, n)
		}
		if peak > 1 || peak == 0 {
			t.Errorf("wave %d: peak %f out of range", w, peak)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := Envelope(Tone(0, 100*time.Millisecond, WaveSquare, rate), 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)
	buf := make([][2]float64, 100)
	n, _ := s.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected silent attack start", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %f, expected full volume", buf[50][0])
	}
	if math.Abs(buf[99][0]) > 0.11 {
		t.Errorf("last sample = %f, expected near silence", buf[99][0])
	}
}

func TestEffectForEvents(t *testing.T) {
	tests := []struct {
		kind core.EventKind
		want Effect
	}{
		{core.EventBrickShattered, EffectShatter},
		{core.EventLifeLost, EffectLifeLost},
		{core.EventLinesCleared, EffectLineClear},
		{core.EventLevelUp, EffectLevelUp},
		{core.EventWon, EffectWin},
		{core.EventLost, EffectGameOver},
		{core.EventGameOver, EffectGameOver},
		{core.EventPieceLocked, EffectNone},
		{core.EventDestroyed, EffectNone},
	}
	for _, tt := range tests {
		if got := EffectFor(tt.kind); got != tt.want {
			t.Errorf("EffectFor(%v) = %d, expected %d", tt.kind, got, tt.want)
		}
	}
}

func TestEveryEffectBuilds(t *testing.T) {
	for e := EffectShatter; e <= EffectGameOver; e++ {
		s := Build(e, beep.SampleRate(8000))
		if s == nil {
			t.Fatalf("effect %d built nil", e)
		}
		n, peak := drain(s)
		if n == 0 || peak == 0 {
			t.Errorf("effect %d is silent", e)
		}
		if n > 8000 {
			t.Errorf("effect %d lasts %d samples, expected under a second", e, n)
		}
	}
	if Build(EffectNone, 8000) != nil {
		t.Error("EffectNone should build nothing")
	}
}

func TestSilentPlayer(t *testing.T) {
	p := Silent()
	if p.Enabled() {
		t.Error("silent player reports enabled")
	}
	p.PlayEvents([]core.Event{{Kind: core.EventWon}})
	p.Close()
}
