package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/games/breakout"
	"github.com/vovakirdan/pagebreak/internal/games/tetris"
	"github.com/vovakirdan/pagebreak/internal/page"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

// browseTickRate is how often the idle check runs while no game is active.
const browseTickRate = 4

const toastText = "Bored? b Breakout  s Survival  t Tetris"

// SiteKeyMap defines the key bindings of the site browser.
type SiteKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Breakout key.Binding
	Survival key.Binding
	Tetris   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultSiteKeyMap returns the default site browser bindings.
func DefaultSiteKeyMap() SiteKeyMap {
	return SiteKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "bottom")),
		Breakout: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "breakout")),
		Survival: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "survival")),
		Tetris:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tetris")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// SiteModel browses the marketing page. When the visitor has been idle
// for a while it offers a game; a launched game plays over the page and
// Esc puts the page back the way it was.
type SiteModel struct {
	page   *page.Page
	site   config.SiteConfig
	svc    Services
	config core.RuntimeConfig
	screen *core.Screen
	keys   SiteKeyMap
	games  *KeyMapper

	scrollY   float64
	lastInput time.Time
	now       func() time.Time

	// run is the active game, nil while browsing.
	run        *runner
	gen        uint64
	allowBack  bool
	backToMenu bool
	quitting   bool
}

// NewSiteModel creates a site browser for p laid out at the screen width.
func NewSiteModel(p *page.Page, site config.SiteConfig, svc Services, cfg core.RuntimeConfig) SiteModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	p.Layout(cfg.ScreenW)
	m := SiteModel{
		page:   p,
		site:   site,
		svc:    svc,
		config: cfg,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   DefaultSiteKeyMap(),
		games:  NewKeyMapper(),
		now:    time.Now,
		gen:    nextGen(),
	}
	m.lastInput = m.now()
	return m
}

// WithClock replaces the clock used for idle detection.
func (m SiteModel) WithClock(now func() time.Time) SiteModel {
	m.now = now
	m.lastInput = now()
	return m
}

// WithBack makes Esc while browsing return to the caller instead of
// quitting.
func (m SiteModel) WithBack() SiteModel {
	m.allowBack = true
	return m
}

// Init starts the idle check loop.
func (m SiteModel) Init() tea.Cmd {
	return tickCmd(browseTickRate, m.gen)
}

// Update handles messages for the site browser.
func (m SiteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.lastInput = m.now()
		if m.run != nil {
			return m.playKey(msg)
		}
		return m.browseKey(msg)

	case tea.MouseMsg:
		m.lastInput = m.now()
		if m.run != nil {
			m.run.mouse(msg)
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scroll(-float64(m.site.ScrollLines) * m.site.CellHeight)
		case tea.MouseButtonWheelDown:
			m.scroll(float64(m.site.ScrollLines) * m.site.CellHeight)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.resize(msg)

	case TickMsg:
		if msg.Gen != m.gen || m.backToMenu {
			return m, nil
		}
		if m.run == nil {
			return m, tickCmd(browseTickRate, m.gen)
		}
		m.run.step()
		return m, tickCmd(m.config.TickRate, m.gen)
	}
	return m, nil
}

func (m SiteModel) browseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	line := m.site.CellHeight
	screenH := float64(m.config.ScreenH) * line
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		if m.allowBack {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.scroll(-line)
	case key.Matches(msg, m.keys.Down):
		m.scroll(line)
	case key.Matches(msg, m.keys.PageUp):
		m.scroll(-screenH)
	case key.Matches(msg, m.keys.PageDown):
		m.scroll(screenH)
	case key.Matches(msg, m.keys.Top):
		m.scrollY = 0
	case key.Matches(msg, m.keys.Bottom):
		m.scroll(m.page.Height())
	case key.Matches(msg, m.keys.Breakout):
		return m.launch(breakout.NewPageGame(breakout.ModeClassic, m.page, m.scrollY))
	case key.Matches(msg, m.keys.Survival):
		return m.launch(breakout.NewPageGame(breakout.ModeSurvival, m.page, m.scrollY))
	case key.Matches(msg, m.keys.Tetris):
		return m.launch(tetris.NewGame())
	}
	return m, nil
}

func (m SiteModel) playKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, quit := m.games.MapKey(msg)
	switch {
	case quit:
		m.run.destroy()
		m.run = nil
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		return m.stop()
	case action != core.ActionNone:
		m.run.frame.Set(action)
	}
	return m, nil
}

// launch starts g over the page. Only one game runs at a time.
func (m SiteModel) launch(g registry.Game) (tea.Model, tea.Cmd) {
	if m.run != nil {
		m.run.destroy()
	}
	cfg := m.config
	if cfg.Seed == 0 {
		cfg.Seed = m.now().UnixNano()
	}
	m.run = newRunner(g, m.svc)
	m.run.reset(cfg)
	m.gen = nextGen()
	return m, tickCmd(m.config.TickRate, m.gen)
}

// stop destroys the active game, which hands the page back, and returns
// to browsing.
func (m SiteModel) stop() (tea.Model, tea.Cmd) {
	if m.run != nil {
		m.run.destroy()
		m.run = nil
	}
	m.lastInput = m.now()
	m.gen = nextGen()
	return m, tickCmd(browseTickRate, m.gen)
}

func (m SiteModel) resize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// A running game holds page coordinates, so it cannot survive a relayout.
	var cmd tea.Cmd
	if m.run != nil {
		var model tea.Model
		model, cmd = m.stop()
		m = model.(SiteModel)
	}
	m.page.Layout(msg.Width)
	m.scroll(0)
	return m, cmd
}

func (m *SiteModel) scroll(dy float64) {
	viewH := float64(m.config.ScreenH) * m.site.CellHeight
	m.scrollY = core.ClampF(m.scrollY+dy, 0, m.page.MaxScroll(viewH))
}

// Idle reports whether the visitor has been idle long enough for the
// game toast.
func (m SiteModel) Idle() bool {
	return m.run == nil && m.now().Sub(m.lastInput) >= m.site.IdleAfter()
}

// View renders the page, the active game or the toast.
func (m SiteModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.screen.Clear()

	if m.run != nil {
		// Breakout draws the page itself at its own scroll offset.
		if _, ownsPage := m.run.game.(*breakout.Game); !ownsPage {
			m.page.Render(m.screen, m.scrollY)
		}
		m.run.game.Render(m.screen)
		return RenderScreen(m.screen)
	}

	m.page.Render(m.screen, m.scrollY)
	if m.Idle() {
		m.drawToast()
	}
	return RenderScreen(m.screen)
}

// drawToast draws the game invitation in the bottom right corner.
func (m SiteModel) drawToast() {
	w := len([]rune(toastText)) + 4
	h := 3
	x := max(0, m.screen.Width()-w-1)
	y := max(0, m.screen.Height()-h-1)
	box := core.NewRect(x, y, w, h)
	m.screen.DrawRect(box, ' ')
	m.screen.DrawBoxColor(box, core.ColorAccent)
	m.screen.DrawTextColor(x+2, y+1, toastText, core.ColorBrightWhite)
}

// ScrollY returns the page scroll offset in logical pixels.
func (m SiteModel) ScrollY() float64 {
	return m.scrollY
}

// Playing returns the ID of the active game, or "" while browsing.
func (m SiteModel) Playing() string {
	if m.run == nil {
		return ""
	}
	return m.run.game.ID()
}

// BackToMenu returns true if the visitor left the site for the menu.
func (m SiteModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the visitor closed the site.
func (m SiteModel) IsQuitting() bool {
	return m.quitting
}

// LoadSitePage loads the site settings and the page content.
func LoadSitePage() (*page.Page, config.SiteConfig, error) {
	site, err := config.LoadSite("")
	if err != nil {
		return nil, site, fmt.Errorf("tui: site config: %w", err)
	}
	pc, err := config.LoadPage("")
	if err != nil {
		return nil, site, fmt.Errorf("tui: page content: %w", err)
	}
	return page.New(pc, site.CellWidth, site.CellHeight), site, nil
}

// RunSite runs the site browser until the visitor quits.
func RunSite(svc Services, cfg core.RuntimeConfig) error {
	p, site, err := LoadSitePage()
	if err != nil {
		return err
	}
	prog := tea.NewProgram(
		NewSiteModel(p, site, svc, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	final, err := prog.Run()
	if m, ok := final.(SiteModel); ok && m.run != nil {
		m.run.destroy()
	}
	if err != nil {
		return fmt.Errorf("tui: site: %w", err)
	}
	return nil
}
