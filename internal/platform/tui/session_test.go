package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pagebreak/internal/games/tetris"
)

func sessionUpdate(t *testing.T, m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		next, c := m.Update(msg)
		got, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m, cmd = got, c
	}
	return m, cmd
}

// pick moves the menu cursor to id and selects it.
func pick(t *testing.T, m SessionModel, id string) SessionModel {
	t.Helper()
	for range menuIndex(t, id) {
		m, _ = sessionUpdate(t, m, keyMsg("down"))
	}
	m, _ = sessionUpdate(t, m, keyMsg("enter"))
	return m
}

func TestSessionPlaysTetrisWithTheme(t *testing.T) {
	m := NewSessionModel(Services{}, testConfig())
	m = pick(t, m, "tetris")
	if m.Screen() != screenPicker {
		t.Fatalf("screen = %v, want the picker", m.Screen())
	}

	m, cmd := sessionUpdate(t, m, keyMsg("down"), keyMsg("enter"))
	if m.Screen() != screenGame || cmd == nil {
		t.Fatalf("screen = %v, cmd = %v; want a running game", m.Screen(), cmd)
	}
	g, ok := m.game.run.game.(*tetris.Game)
	if !ok {
		t.Fatalf("game is %T", m.game.run.game)
	}
	if want := tetris.ThemeNames()[1]; g.Engine().Theme().Name != want {
		t.Errorf("theme = %q, want %q", g.Engine().Theme().Name, want)
	}

	m, _ = sessionUpdate(t, m, keyMsg("esc"))
	if m.Screen() != screenMenu {
		t.Errorf("screen = %v after Esc, want the menu", m.Screen())
	}
	if !m.game.run.done {
		t.Error("game left running")
	}
}

func TestSessionPickerBack(t *testing.T) {
	m := pick(t, NewSessionModel(Services{}, testConfig()), "breakout")
	if m.Screen() != screenPicker {
		t.Fatalf("screen = %v, want the picker", m.Screen())
	}
	m, cmd := sessionUpdate(t, m, keyMsg("esc"))
	if m.Screen() != screenMenu {
		t.Errorf("screen = %v, want the menu", m.Screen())
	}
	if m.quitting || cmd != nil {
		t.Error("going back ended the session")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(Services{}, testConfig())
	m, cmd := sessionUpdate(t, m, keyMsg("tab"))
	if m.Screen() != screenScores || cmd != nil {
		t.Fatalf("screen = %v, cmd = %v", m.Screen(), cmd)
	}
	m, _ = sessionUpdate(t, m, keyMsg("esc"))
	if m.Screen() != screenMenu {
		t.Errorf("screen = %v, want the menu", m.Screen())
	}
}

func TestSessionSite(t *testing.T) {
	m := pick(t, NewSessionModel(Services{}, testConfig()), SiteItemID)
	if m.Screen() != screenSite {
		t.Fatalf("screen = %v, want the site", m.Screen())
	}
	m, _ = sessionUpdate(t, m, keyMsg("esc"))
	if m.Screen() != screenMenu || m.quitting {
		t.Errorf("screen = %v, quitting = %v", m.Screen(), m.quitting)
	}
}

func TestSessionQuit(t *testing.T) {
	m, cmd := sessionUpdate(t, NewSessionModel(Services{}, testConfig()), keyMsg("q"))
	if !m.quitting || cmd == nil {
		t.Errorf("quitting = %v, cmd = %v", m.quitting, cmd)
	}
	if m.View() != "" {
		t.Error("View after quit should be empty")
	}
}

func TestSessionResizeReachesNextScreen(t *testing.T) {
	m := NewSessionModel(Services{}, testConfig())
	m, _ = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = pick(t, m, "tetris")
	if m.picker.width != 120 {
		t.Errorf("picker width = %d, want 120", m.picker.width)
	}
}
