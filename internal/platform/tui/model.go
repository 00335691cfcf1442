package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pagebreak/internal/audio"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/registry"
	"github.com/vovakirdan/pagebreak/internal/storage"
)

// Services are the shared collaborators of every screen. Any of them may
// be nil: the game still runs without scores, sound or logs.
type Services struct {
	Store  *storage.Store
	Sound  *audio.Player
	Logger *log.Logger
}

func (s Services) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// runner drives one game: it steps it, plays sounds for its events and
// saves the score once per finished game.
type runner struct {
	game  registry.Game
	svc   Services
	frame core.InputFrame
	state core.GameState
	gen   uint64
	saved bool
	done  bool
}

func newRunner(game registry.Game, svc Services) *runner {
	return &runner{game: game, svc: svc, frame: core.NewInputFrame()}
}

func (r *runner) reset(cfg core.RuntimeConfig) {
	r.game.Reset(cfg)
	r.state = r.game.State()
	r.saved = false
	r.svc.logger().Debug("game started", "game", r.game.ID(), "seed", cfg.Seed)
}

// step advances the game one tick with the input gathered since the last
// tick and clears the input.
func (r *runner) step() core.StepResult {
	if r.done {
		return core.StepResult{State: r.state}
	}
	res := r.game.Step(r.frame)
	r.frame.Clear()

	// A restart inside the game clears its game-over state.
	if r.state.GameOver && !res.State.GameOver {
		r.saved = false
	}
	r.state = res.State

	if r.svc.Sound != nil {
		r.svc.Sound.PlayEvents(res.Events)
	}
	if r.state.GameOver && !r.saved {
		r.saved = true
		r.save()
	}
	return res
}

func (r *runner) save() {
	lg := r.svc.logger()
	lg.Info("game over", "game", r.game.ID(), "score", r.state.Score, "won", r.state.Won)
	if r.svc.Store == nil || r.state.Score <= 0 {
		return
	}
	if _, err := r.svc.Store.Save(r.game.ID(), r.state.Score, r.state.Won); err != nil {
		lg.Warn("could not save score", "game", r.game.ID(), "error", err)
	}
}

// mouse forwards a mouse event to games that take pointer or touch input.
func (r *runner) mouse(msg tea.MouseMsg) {
	if r.done {
		return
	}
	if pg, ok := r.game.(registry.PointerGame); ok {
		pg.Pointer(msg.X, msg.Y)
	}
	tg, ok := r.game.(registry.TouchGame)
	if !ok {
		return
	}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		tg.TouchBegin(msg.X, msg.Y)
	case msg.Action == tea.MouseActionMotion:
		tg.TouchMove(msg.X, msg.Y)
	case msg.Action == tea.MouseActionRelease:
		tg.TouchEnd(msg.X, msg.Y)
	}
}

// destroy tears the game down once. Games that changed a host page put it
// back here.
func (r *runner) destroy() {
	if r.done {
		return
	}
	r.done = true
	if d, ok := r.game.(registry.Destroyer); ok {
		d.Destroy()
	}
	r.svc.logger().Debug("game destroyed", "game", r.game.ID())
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	run       *runner
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	theme     string

	// allowBack lets Esc leave the game instead of quitting the program.
	allowBack  bool
	backToMenu bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, svc Services, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return Model{
		run:       newRunner(game, svc),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// WithTheme makes the game start in the given theme, if it has themes.
func (m Model) WithTheme(name string) Model {
	m.theme = name
	return m
}

// WithBack makes Esc return to the caller instead of quitting.
func (m Model) WithBack() Model {
	m.allowBack = true
	return m
}

// start resets the game and opens a new tick chain.
func (m Model) start() tea.Cmd {
	m.run.reset(m.config)
	if tg, ok := m.run.game.(registry.ThemedGame); ok && m.theme != "" {
		tg.SetTheme(m.theme)
	}
	m.run.gen = nextGen()
	return tickCmd(m.config.TickRate, m.run.gen)
}

// Init starts the game and its tick loop.
func (m Model) Init() tea.Cmd {
	return m.start()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.run.mouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.run.gen || m.run.done {
			return m, nil
		}
		m.run.step()
		return m, tickCmd(m.config.TickRate, m.run.gen)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, quit := m.keyMapper.MapKey(msg)
	switch {
	case quit:
		m.run.destroy()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.run.destroy()
		if m.allowBack {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	case action != core.ActionNone:
		m.run.frame.Set(action)
	}
	return m, nil
}

// handleResize lays the game out again for the new size. A running game
// restarts in a new tick chain; the old chain dies at its next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.run.done || m.run.state.GameOver {
		return m, nil
	}
	cmd := m.start()
	return m, cmd
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.screen.Clear()
	m.run.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last state the game reported.
func (m Model) State() core.GameState {
	return m.run.state
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game and blocks until
// the player quits.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig, theme string) error {
	m := NewModel(game, svc, cfg).WithTheme(theme)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	m.run.destroy()
	return err
}
