package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/games/tetris"
)

// Selection is what a mode picker settles on.
type Selection struct {
	GameID string
	Theme  string
}

// PickerOption is one line of a picker.
type PickerOption struct {
	Label     string
	Selection Selection
}

// PickerModel lets the player choose a variant of a game before it starts.
type PickerModel struct {
	title     string
	options   []PickerOption
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection *Selection
	quitting  bool
	back      bool
}

// NewPickerModel creates a picker over the given options.
func NewPickerModel(title string, options []PickerOption, width, height int) PickerModel {
	return PickerModel{
		title:     title,
		options:   options,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// NewBreakoutPicker offers Classic and Survival.
func NewBreakoutPicker(width, height int) PickerModel {
	return NewPickerModel("B R E A K O U T", []PickerOption{
		{Label: "Classic - break what you see", Selection: Selection{GameID: "breakout"}},
		{Label: "Survival - the page scrolls up", Selection: Selection{GameID: "breakout_survival"}},
	}, width, height)
}

// NewTetrisPicker offers one entry per color theme.
func NewTetrisPicker(width, height int) PickerModel {
	names := tetris.ThemeNames()
	opts := make([]PickerOption, len(names))
	for i, n := range names {
		opts[i] = PickerOption{
			Label:     fmt.Sprintf("%s theme", strings.ToUpper(n[:1])+n[1:]),
			Selection: Selection{GameID: "tetris", Theme: n},
		}
	}
	return NewPickerModel("T E T R I S", opts, width, height)
}

// PickerFor returns the picker of a game, or false when the game has none.
func PickerFor(gameID string, width, height int) (PickerModel, bool) {
	switch gameID {
	case "breakout":
		return NewBreakoutPicker(width, height), true
	case "tetris":
		return NewTetrisPicker(width, height), true
	}
	return PickerModel{}, false
}

// Init initializes the model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			sel := m.options[m.cursor].Selection
			m.selection = &sel
			return m, tea.Quit
		case MenuActionBack:
			m.back = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the options.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtitleStyle.Render("Select a mode:"), m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		line := "  " + opt.Label
		if i == m.cursor {
			line = cursorStyle.Render("> " + opt.Label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtitleStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the selection, or nil if none was made.
func (m PickerModel) Selected() *Selection {
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PickerModel) WantsBack() bool {
	return m.back
}

// RunPicker runs a picker program and returns the selection, or nil when
// the player backed out or quit.
func RunPicker(picker PickerModel, cfg core.RuntimeConfig) (*Selection, error) {
	picker.width, picker.height = cfg.ScreenW, cfg.ScreenH
	p := tea.NewProgram(picker, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: picker: %w", err)
	}
	m, ok := finalModel.(PickerModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
