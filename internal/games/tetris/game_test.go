package tetris

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     42,
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("tetris")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "tetris" {
		t.Errorf("ID() = %q", g.ID())
	}
	if _, ok := g.(registry.TouchGame); !ok {
		t.Error("tetris should accept touch input")
	}
	if _, ok := g.(registry.Destroyer); !ok {
		t.Error("tetris should be destroyable")
	}
	if _, ok := g.(registry.ThemedGame); !ok {
		t.Error("tetris should accept theme changes")
	}
}

func TestGameKeysInOrder(t *testing.T) {
	g := NewGame()
	g.Reset(testRuntime)
	x := g.Engine().Current().X

	g.Step(frame(core.ActionLeft, core.ActionLeft))
	if got := g.Engine().Current().X; got != x-2 {
		t.Fatalf("x = %d, expected two moves left from %d", got, x)
	}

	res := g.Step(frame(core.ActionDrop))
	if g.Engine().Board().Filled() != 4 {
		t.Errorf("hard drop should lock the piece, filled = %d", g.Engine().Board().Filled())
	}
	found := false
	for _, ev := range res.Events {
		if ev.Kind == core.EventPieceLocked {
			found = true
		}
	}
	if !found {
		t.Error("expected piece_locked in step result")
	}
}

func TestGameGravityAtTickRate(t *testing.T) {
	g := NewGame()
	g.Reset(testRuntime)

	// 60 steps of 1/60s stay within one gravity interval.
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	y := g.Engine().Current().Y
	for i := 0; i < 2; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Engine().Current().Y != y+1 {
		t.Errorf("y = %d, expected gravity to move the piece once", g.Engine().Current().Y)
	}
}

func TestGamePause(t *testing.T) {
	g := NewGame()
	g.Reset(testRuntime)

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestGameTouchTap(t *testing.T) {
	g := NewGame()
	g.Reset(testRuntime)
	g.Engine().Handle(ActionPause)

	g.TouchBegin(10, 10)
	g.TouchEnd(10, 10)
	if g.Engine().Phase() != PhasePaused {
		t.Error("tap while paused should be ignored")
	}

	g.Engine().Handle(ActionPause)
	g.TouchBegin(10, 5)
	g.TouchMove(14, 5)
	g.TouchEnd(14, 5)
	if g.Engine().Phase() != PhaseRunning {
		t.Error("touch should leave the game running")
	}
}

func TestGameRender(t *testing.T) {
	g := NewGame()
	g.Reset(testRuntime)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"NEXT", "Score", "Lines", "Level", "Theme  default", string(BlockGlyph), string(GhostGlyph)} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestGameSetTheme(t *testing.T) {
	g := NewGame()
	g.Reset(testRuntime)
	if !g.SetTheme("retro") {
		t.Fatal("retro should be accepted")
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Theme  retro") {
		t.Error("theme change not shown")
	}
}

func TestGameDestroy(t *testing.T) {
	g := NewGame()
	g.Reset(testRuntime)
	res := g.Destroy()
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventDestroyed {
		t.Errorf("destroy events = %v", res.Events)
	}
	if got := g.Step(frame(core.ActionDrop)); len(got.Events) != 0 {
		t.Error("destroyed game should not produce events")
	}
}

func TestGameTouchPixelDragSoftDrops(t *testing.T) {
	g := NewGame()
	g.Reset(testRuntime)
	before := g.Engine().Current()

	g.TouchBeginAt(200, 5)
	g.TouchMoveAt(200, 35)
	if got := g.Engine().Current().Y - before.Y; got != 1 {
		t.Errorf("a 30px drag moved the piece %d rows, want 1", got)
	}
}

func TestGameTouchPixelTapJitter(t *testing.T) {
	g := NewGame()
	g.Reset(testRuntime)
	want := fmt.Sprint(g.Engine().Current().Shape.Rotate())

	// Crosses a 20px cell row, but stays under the drag threshold.
	g.TouchBeginAt(200, 18)
	g.TouchMoveAt(200, 22)
	g.TouchEndAt(200, 22)
	if got := fmt.Sprint(g.Engine().Current().Shape); got != want {
		t.Errorf("shape after tap = %s, want rotated %s", got, want)
	}
}

func TestGameDestroyBeforeReset(t *testing.T) {
	g := NewGame()
	if res := g.Destroy(); len(res.Events) != 0 {
		t.Errorf("destroy before reset events = %v", res.Events)
	}
	if st := g.State(); st != (core.GameState{}) {
		t.Errorf("state before reset = %+v", st)
	}
	g.TouchBeginAt(0, 0)
	g.TouchEndAt(0, 0)
}
