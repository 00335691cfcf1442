package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

// sessionScreen is the screen a session is on.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenPicker
	screenGame
	screenScores
	screenSite
)

// SessionModel manages the full flow of one terminal session:
// menu -> picker -> game -> menu, plus the scoreboard and the site.
// It is the top-level model of SSH sessions.
type SessionModel struct {
	svc      Services
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	picker   PickerModel
	game     Model
	scores   ScoreboardModel
	site     SiteModel
	quitting bool
}

// NewSessionModel creates a new session model that starts at the menu.
func NewSessionModel(svc Services, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		svc:    svc,
		config: cfg,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen. Child screens end their
// own programs with tea.Quit when run standalone; here those commands are
// dropped and the session moves on instead.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenPicker:
		return m.updatePicker(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenSite:
		return m.updateSite(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.svc.Store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()
	case m.menu.Selected() != nil:
		return m.choose(m.menu.Selected().GameID)
	}
	return m, cmd
}

// choose opens the picker of a game, the site, or the game itself.
func (m SessionModel) choose(id string) (tea.Model, tea.Cmd) {
	if id == SiteItemID {
		return m.openSite()
	}
	if picker, ok := PickerFor(id, m.config.ScreenW, m.config.ScreenH); ok {
		m.screen = screenPicker
		m.picker = picker
		return m, m.picker.Init()
	}
	return m.startGame(Selection{GameID: id})
}

func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	m.picker = next.(PickerModel)

	switch {
	case m.picker.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.picker.WantsBack():
		return m.toMenu()
	case m.picker.Selected() != nil:
		return m.startGame(*m.picker.Selected())
	}
	return m, cmd
}

func (m SessionModel) startGame(sel Selection) (tea.Model, tea.Cmd) {
	game, err := registry.Create(sel.GameID)
	if err != nil {
		m.svc.logger().Error("could not start game", "game", sel.GameID, "error", err)
		return m.toMenu()
	}
	m.screen = screenGame
	m.game = NewModel(game, m.svc, m.config).WithBack().WithTheme(sel.Theme)
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) openSite() (tea.Model, tea.Cmd) {
	p, site, err := LoadSitePage()
	if err != nil {
		m.svc.logger().Error("could not open the site", "error", err)
		return m.toMenu()
	}
	m.screen = screenSite
	m.site = NewSiteModel(p, site, m.svc, m.config).WithBack()
	return m, m.site.Init()
}

func (m SessionModel) updateSite(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.site.Update(msg)
	m.site = next.(SiteModel)

	switch {
	case m.site.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.site.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenPicker:
		return m.picker.View()
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	case screenSite:
		return m.site.View()
	}
	return m.menu.View()
}

// Screen reports which screen is active, for tests.
func (m SessionModel) Screen() sessionScreen {
	return m.screen
}
