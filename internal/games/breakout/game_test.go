package breakout

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/page"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     42,
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"breakout", "breakout_survival"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
		if _, ok := g.(registry.PointerGame); !ok {
			t.Errorf("%s should accept pointer input", id)
		}
		if _, ok := g.(registry.Destroyer); !ok {
			t.Errorf("%s should be destroyable", id)
		}
	}
}

func TestGameClassicOnPage(t *testing.T) {
	g := NewGame(ModeClassic)
	g.Reset(testRuntime)

	e := g.Engine()
	if e == nil || !e.Active() {
		t.Fatalf("engine not running after Reset, setup error: %v", g.setup)
	}
	if vp := e.Viewport(); vp.Width != 800 || vp.Height != 480 || vp.ScrollY != 0 {
		t.Errorf("viewport = %+v, expected 800x480 at the top", vp)
	}
	if len(e.Bricks()) == 0 {
		t.Fatal("no bricks taken from the page")
	}

	g.Pointer(0, 10)
	if e.Paddle().X != 0 {
		t.Errorf("pointer at column 0 should push paddle to the left edge, x = %v", e.Paddle().X)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	if e.Paddle().X != 40 {
		t.Errorf("right arrow should nudge the paddle 40px, x = %v", e.Paddle().X)
	}
}

func TestGameSurvivalStartsAtBottom(t *testing.T) {
	g := NewGame(ModeSurvival)
	g.Reset(testRuntime)

	e := g.Engine()
	if e == nil || !e.Active() {
		t.Fatalf("engine not running, setup error: %v", g.setup)
	}
	if vp := e.Viewport(); vp.ScrollY != g.page.MaxScroll(vp.Height) || vp.ScrollY <= 0 {
		t.Errorf("survival should start scrolled to the bottom, ScrollY = %v", vp.ScrollY)
	}
	if len(e.Bricks()) != len(g.page.Elements()) {
		t.Errorf("survival took %d bricks, page has %d elements", len(e.Bricks()), len(g.page.Elements()))
	}
}

func TestGamePauseFreezes(t *testing.T) {
	g := NewGame(ModeClassic)
	g.Reset(testRuntime)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}

	frame := g.Engine().Frame()
	g.Step(core.NewInputFrame())
	if g.Engine().Frame() != frame {
		t.Error("engine advanced while paused")
	}

	g.Step(pause)
	g.Step(core.NewInputFrame())
	if g.Engine().Frame() == frame {
		t.Error("engine did not resume")
	}
}

func TestGameDestroyRestoresPage(t *testing.T) {
	g := NewGame(ModeClassic)
	g.Reset(testRuntime)

	for i := 0; i < 2000 && g.page.ShatteredCount() == 0; i++ {
		g.Pointer(int(g.Engine().Ball().X/10), 0)
		g.Step(core.NewInputFrame())
	}
	if g.page.ShatteredCount() == 0 {
		t.Skip("ball never reached a brick")
	}

	res := g.Destroy()
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventDestroyed {
		t.Errorf("Destroy events = %v", res.Events)
	}
	if n := g.page.ShatteredCount(); n != 0 {
		t.Errorf("%d elements still shattered after Destroy", n)
	}
}

func TestGameRestartAfterLoss(t *testing.T) {
	g := NewGame(ModeClassic)
	g.Reset(testRuntime)
	e := g.Engine()

	for e.Phase() == PhaseRunning {
		e.ball = Ball{X: 400, Y: 495, VX: 0, VY: 6}
		g.Step(core.NewInputFrame())
	}
	if e.Phase() != PhaseLost {
		t.Fatalf("phase = %v, expected lost", e.Phase())
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("loss overlay missing")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.Engine().Phase() != PhaseRunning || g.Engine().Lives() != 3 {
		t.Errorf("restart: phase=%v lives=%d", g.Engine().Phase(), g.Engine().Lives())
	}
}

func TestGameRender(t *testing.T) {
	g := NewGame(ModeClassic)
	g.Reset(testRuntime)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	if !strings.Contains(scr.Row(0), "Score: 0") || !strings.Contains(scr.Row(0), "Lives: 3") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if !strings.ContainsRune(out, BallChar) {
		t.Error("ball not drawn")
	}
	if !strings.Contains(scr.Row(21), strings.Repeat(string(PaddleChar), 12)) {
		t.Errorf("paddle row = %q", scr.Row(21))
	}
}

func TestPageGameUsesHostPage(t *testing.T) {
	pc, err := config.LoadPage("")
	if err != nil {
		t.Fatalf("LoadPage: %v", err)
	}
	site := config.DefaultSiteConfig()
	p := page.New(pc, site.CellWidth, site.CellHeight)
	p.Layout(80)

	g := NewPageGame(ModeClassic, p, 200)
	g.Reset(testRuntime)
	e := g.Engine()
	if e == nil || !e.Active() {
		t.Fatalf("engine not running, setup error: %v", g.setup)
	}
	if vp := e.Viewport(); vp.ScrollY != 200 {
		t.Errorf("ScrollY = %v, expected the host offset 200", vp.ScrollY)
	}

	id := e.bricks[0].ID
	e.bricks[0].Alive = false
	p.Shatter(id)
	g.Destroy()
	if p.Shattered(id) {
		t.Error("host page not restored after Destroy")
	}
}
