// Package desktop runs pagebreak games in an Ebitengine window. The
// window is the terminal grid scaled to logical pixels, so games render
// the same screen buffer they render in the terminal; Breakout's paddle
// and ball are drawn at their exact pixel positions on top.
package desktop

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pagebreak/internal/audio"
	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/games/breakout"
	"github.com/vovakirdan/pagebreak/internal/registry"
	"github.com/vovakirdan/pagebreak/internal/storage"
)

// Options configures a desktop window.
type Options struct {
	Cols     int // grid width in cells
	Rows     int // grid height in cells
	TickRate int
	Seed     int64
	Scale    float64 // window pixels per logical pixel

	Store  *storage.Store
	Sound  *audio.Player
	Logger *log.Logger
}

// DefaultOptions returns an 80x24 grid at 60 ticks per second.
func DefaultOptions() Options {
	return Options{Cols: 80, Rows: 24, TickRate: 60, Scale: 1}
}

// App is an ebiten.Game driving one pagebreak game.
type App struct {
	game   registry.Game
	opts   Options
	site   config.SiteConfig
	screen *core.Screen
	logger *log.Logger

	frame core.InputFrame
	state core.GameState
	saved bool
	done  bool

	input inputState
}

// New creates an App and starts game.
func New(game registry.Game, opts Options) *App {
	def := DefaultOptions()
	if opts.Cols <= 0 || opts.Rows <= 0 {
		opts.Cols, opts.Rows = def.Cols, def.Rows
	}
	if opts.TickRate <= 0 {
		opts.TickRate = def.TickRate
	}
	if opts.Scale <= 0 {
		opts.Scale = def.Scale
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	site, err := config.LoadSite("")
	if err != nil {
		logger.Warn("using default site settings", "error", err)
		site = config.DefaultSiteConfig()
	}

	a := &App{
		game:   game,
		opts:   opts,
		site:   site,
		screen: core.NewScreen(opts.Cols, opts.Rows),
		logger: logger,
		frame:  core.NewInputFrame(),
	}
	game.Reset(core.RuntimeConfig{
		ScreenW:  opts.Cols,
		ScreenH:  opts.Rows,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})
	a.state = game.State()
	logger.Debug("desktop game started", "game", game.ID())
	return a
}

// Size returns the logical screen size in pixels.
func (a *App) Size() (int, int) {
	return logicalSize(a.opts.Cols, a.opts.Rows, a.site)
}

// Update gathers input and advances the game one tick.
func (a *App) Update() error {
	if a.done || a.quitRequested() {
		a.Destroy()
		return ebiten.Termination
	}

	a.readKeys()
	a.readPointer()
	a.readTouch()

	res := a.game.Step(a.frame)
	a.frame.Clear()
	a.finish(res)
	return nil
}

// finish plays the tick's sounds and saves the score once per game.
func (a *App) finish(res core.StepResult) {
	if a.state.GameOver && !res.State.GameOver {
		a.saved = false
	}
	a.state = res.State

	if a.opts.Sound != nil {
		a.opts.Sound.PlayEvents(res.Events)
	}
	if !a.state.GameOver || a.saved {
		return
	}
	a.saved = true
	a.logger.Info("game over", "game", a.game.ID(), "score", a.state.Score, "won", a.state.Won)
	if a.opts.Store == nil || a.state.Score <= 0 {
		return
	}
	if _, err := a.opts.Store.Save(a.game.ID(), a.state.Score, a.state.Won); err != nil {
		a.logger.Warn("could not save score", "game", a.game.ID(), "error", err)
	}
}

// Draw renders the game's screen buffer as pixels.
func (a *App) Draw(dst *ebiten.Image) {
	dst.Fill(background)
	a.screen.Clear()
	a.game.Render(a.screen)

	bg, isBreakout := a.game.(*breakout.Game)
	drawScreen(dst, a.screen, a.site, isBreakout)
	if isBreakout && bg.Engine() != nil {
		drawBreakout(dst, bg.Engine())
	}
}

// Layout keeps the logical grid size whatever the window size.
func (a *App) Layout(_, _ int) (int, int) {
	return a.Size()
}

// Destroy tears the game down once; Breakout restores its page.
func (a *App) Destroy() {
	if a.done {
		return
	}
	a.done = true
	if d, ok := a.game.(registry.Destroyer); ok {
		d.Destroy()
	}
}

// State returns the last state the game reported.
func (a *App) State() core.GameState {
	return a.state
}

// Run opens a window for game and blocks until it is closed.
func Run(game registry.Game, opts Options) error {
	a := New(game, opts)
	defer a.Destroy()

	w, h := a.Size()
	ebiten.SetWindowSize(int(float64(w)*a.opts.Scale), int(float64(h)*a.opts.Scale))
	ebiten.SetWindowTitle("pagebreak - " + game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(a.opts.TickRate)

	return ebiten.RunGame(a)
}

func logicalSize(cols, rows int, site config.SiteConfig) (int, int) {
	return int(float64(cols) * site.CellWidth), int(float64(rows) * site.CellHeight)
}
