package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pagebreak/internal/core"
)

// fakeClock is a clock the test moves by hand.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSite(t *testing.T) (SiteModel, *fakeClock) {
	t.Helper()
	p, site, err := LoadSitePage()
	if err != nil {
		t.Fatalf("LoadSitePage: %v", err)
	}
	clock := &fakeClock{t: time.Unix(1_000_000, 0)}
	return NewSiteModel(p, site, Services{}, testConfig()).WithClock(clock.now), clock
}

func siteUpdate(t *testing.T, m SiteModel, msg tea.Msg) (SiteModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(SiteModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return got, cmd
}

func TestSiteToastAfterIdle(t *testing.T) {
	m, clock := newTestSite(t)
	if m.Idle() {
		t.Fatal("idle right after opening")
	}
	if strings.Contains(m.View(), toastText) {
		t.Error("toast shown before the visitor went idle")
	}

	clock.advance(m.site.IdleAfter())
	if !m.Idle() {
		t.Fatal("not idle after IdleAfter")
	}
	if !strings.Contains(m.View(), toastText) {
		t.Error("toast missing while idle")
	}

	m, _ = siteUpdate(t, m, keyMsg("j"))
	if m.Idle() {
		t.Error("input should reset the idle timer")
	}
}

func TestSiteScroll(t *testing.T) {
	m, _ := newTestSite(t)
	viewH := float64(m.config.ScreenH) * m.site.CellHeight
	maxScroll := m.page.MaxScroll(viewH)
	if maxScroll <= 0 {
		t.Fatal("page fits the screen, nothing to scroll")
	}

	tests := []struct {
		name string
		msg  tea.Msg
		want float64
	}{
		{name: "line down", msg: keyMsg("j"), want: min(m.site.CellHeight, maxScroll)},
		{name: "end", msg: keyMsg("end"), want: maxScroll},
		{name: "past the end", msg: keyMsg("j"), want: maxScroll},
		{name: "home", msg: keyMsg("home"), want: 0},
		{name: "past the top", msg: keyMsg("up"), want: 0},
		{
			name: "wheel",
			msg:  tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress},
			want: min(float64(m.site.ScrollLines)*m.site.CellHeight, maxScroll),
		},
	}
	for _, tt := range tests {
		m, _ = siteUpdate(t, m, tt.msg)
		if got := m.ScrollY(); got != tt.want {
			t.Errorf("%s: ScrollY = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSiteLaunchAndLeaveBreakout(t *testing.T) {
	m, _ := newTestSite(t)
	browseGen := m.gen

	m, cmd := siteUpdate(t, m, keyMsg("b"))
	if m.Playing() != "breakout" || cmd == nil {
		t.Fatalf("Playing = %q, cmd = %v", m.Playing(), cmd)
	}
	if m.Idle() {
		t.Error("idle while a game runs")
	}

	// The browse loop is superseded by the game loop.
	if _, cmd = siteUpdate(t, m, TickMsg{Gen: browseGen}); cmd != nil {
		t.Error("old browse tick was not dropped")
	}
	for range 5 {
		m, cmd = siteUpdate(t, m, TickMsg{Gen: m.gen})
		if cmd == nil {
			t.Fatal("game loop stopped")
		}
	}

	m, _ = siteUpdate(t, m, keyMsg("esc"))
	if m.Playing() != "" {
		t.Fatalf("still playing %q after Esc", m.Playing())
	}
	if n := m.page.ShatteredCount(); n != 0 {
		t.Errorf("%d elements still shattered after leaving", n)
	}
	if m.IsQuitting() {
		t.Error("Esc in a game should not close the site")
	}
}

func TestSiteOneGameAtATime(t *testing.T) {
	m, _ := newTestSite(t)

	m, _ = siteUpdate(t, m, keyMsg("t"))
	if m.Playing() != "tetris" {
		t.Fatalf("Playing = %q, want tetris", m.Playing())
	}
	first := m.run

	// While a game runs its keys belong to the game: b is back, not Breakout.
	m, _ = siteUpdate(t, m, keyMsg("b"))
	if m.Playing() != "" {
		t.Fatalf("Playing = %q after b", m.Playing())
	}
	if !first.done {
		t.Error("tetris was not destroyed")
	}

	m, _ = siteUpdate(t, m, keyMsg("s"))
	if m.Playing() != "breakout_survival" {
		t.Errorf("Playing = %q, want breakout_survival", m.Playing())
	}
}

func TestSiteDrawsTetrisOverPage(t *testing.T) {
	m, _ := newTestSite(t)
	m, _ = siteUpdate(t, m, keyMsg("t"))
	m.View()

	if !strings.Contains(m.screen.String(), "NEXT") {
		t.Error("tetris panel missing")
	}
}

func TestSiteEscape(t *testing.T) {
	m, _ := newTestSite(t)
	m, cmd := siteUpdate(t, m, keyMsg("esc"))
	if !m.IsQuitting() || cmd == nil {
		t.Errorf("standalone Esc: quitting = %v", m.IsQuitting())
	}

	m, _ = newTestSite(t)
	m = m.WithBack()
	m, _ = siteUpdate(t, m, keyMsg("esc"))
	if !m.BackToMenu() || m.IsQuitting() {
		t.Errorf("hosted Esc: back = %v, quitting = %v", m.BackToMenu(), m.IsQuitting())
	}
}

func TestSiteResizeStopsGame(t *testing.T) {
	m, _ := newTestSite(t)
	m, _ = siteUpdate(t, m, keyMsg("b"))
	m, _ = siteUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.Playing() != "" {
		t.Errorf("Playing = %q after resize", m.Playing())
	}
	if m.page.Width() != 100 {
		t.Errorf("page width = %d, want 100", m.page.Width())
	}
	if cfg := m.config; cfg != (core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 1}) {
		t.Errorf("config = %+v", cfg)
	}
}
