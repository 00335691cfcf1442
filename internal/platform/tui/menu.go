package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

// SiteItemID is the menu entry that opens the marketing page.
const SiteItemID = "site"

// MenuItem is one entry of the menu.
type MenuItem struct {
	GameID string
	Title  string
	Blurb  string // shown under the highlighted entry
}

// menuKeys are only used for the help line.
var menuKeys = []key.Binding{
	key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navigate")),
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
	key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(core.ColorAccent)))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	blurbStyle    = subtitleStyle.Italic(true)
)

var blurbs = map[string]string{
	"breakout": "Knock the cards off the page",
	"tetris":    "Stack blocks over the page",
	SiteItemID: "Scroll around, games show up when you idle",
}

// MenuModel is the game picker shown first in every session.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model

	selected       *MenuItem
	openScoreboard bool
	quitting       bool
}

// MenuItems lists what the menu offers: every registered game except
// variants reached through a mode picker, then the site browser.
func MenuItems() []MenuItem {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+1)
	for _, g := range games {
		if g.ID == "breakout_survival" {
			continue
		}
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title, Blurb: blurbs[g.ID]})
	}
	return append(items, MenuItem{GameID: SiteItemID, Title: "Browse the site", Blurb: blurbs[SiteItemID]})
}

func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     MenuItems(),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionSelect:
		if m.cursor < len(m.items) {
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.config.ScreenW

	lines := []string{
		"",
		centerText(titleStyle.Render("P A G E B R E A K"), width),
		"",
		centerText(subtitleStyle.Render("Pick a game"), width),
		"",
	}
	for i, item := range m.items {
		if i != m.cursor {
			lines = append(lines, centerText("  "+item.Title, width))
			continue
		}
		lines = append(lines, centerText(cursorStyle.Render("> "+item.Title), width))
		if item.Blurb != "" {
			lines = append(lines, centerText(blurbStyle.Render(item.Blurb), width))
		}
	}
	lines = append(lines, "", centerText(m.help.ShortHelpView(menuKeys), width), "")
	return strings.Join(lines, "\n")
}

// Selected returns the chosen item, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
