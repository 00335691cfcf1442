package breakout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/page"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
)

// keyNudge is how far one arrow key press moves the paddle, in cells.
const keyNudge = 4

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// LoadConfig resolves the Breakout config the CLI asked for.
func LoadConfig() config.BreakoutConfig {
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Game runs the engine full screen on the embedded marketing page.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	site    config.SiteConfig
	page    *page.Page
	engine  *Engine
	paused  bool
	setup   error

	// shared is set when the page belongs to the host; Classic then
	// starts at the host's scroll offset.
	shared  bool
	scrollY float64
}

// NewGame creates a Breakout game in the given mode.
func NewGame(mode Mode) *Game {
	return &Game{mode: mode}
}

// NewPageGame creates a Breakout game over a page the host already shows,
// at its current scroll offset. Destroy hands the page back intact.
func NewPageGame(mode Mode, p *page.Page, scrollY float64) *Game {
	return &Game{mode: mode, page: p, shared: true, scrollY: scrollY}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeSurvival {
		return "breakout_survival"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSurvival {
		return "Breakout (Survival)"
	}
	return "Breakout"
}

// Reset lays the page out for the screen and starts a new engine on it.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.engine != nil {
		g.engine.Destroy()
	}
	g.runtime = runtime
	g.paused = false

	site, err := config.LoadSite("")
	if err != nil {
		site = config.DefaultSiteConfig()
	}
	g.site = site

	if !g.shared {
		pc, err := config.LoadPage("")
		if err != nil {
			g.setup = err
			return
		}
		g.page = page.New(pc, site.CellWidth, site.CellHeight)
		g.page.Layout(runtime.ScreenW)
	}

	vp := core.Viewport{
		Width:  float64(runtime.ScreenW) * site.CellWidth,
		Height: float64(runtime.ScreenH) * site.CellHeight,
	}
	switch {
	case g.mode == ModeSurvival:
		vp.ScrollY = g.page.MaxScroll(vp.Height)
	case g.shared:
		vp.ScrollY = min(g.scrollY, g.page.MaxScroll(vp.Height))
	}

	g.engine = New(LoadConfig(), g.page, WithMode(g.mode), WithSeed(runtime.Seed))
	g.setup = g.engine.Init(vp)
}

// Step advances the engine one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.setup != nil {
		return core.StepResult{State: core.GameState{GameOver: true}}
	}
	if in.Has(core.ActionRestart) && g.engine.Phase() != PhaseRunning {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	cx := g.engine.Paddle().X + g.engine.Paddle().Width/2
	nudge := keyNudge * g.site.CellWidth
	if in.Has(core.ActionLeft) {
		g.engine.MovePointer(cx - nudge)
	}
	if in.Has(core.ActionRight) {
		g.engine.MovePointer(cx + nudge)
	}

	res := g.engine.Step()
	g.page.Tick()
	res.State.Paused = g.paused
	return res
}

// Pointer centers the paddle under the given screen column.
func (g *Game) Pointer(col, _ int) {
	g.PointerAt((float64(col) + 0.5) * g.site.CellWidth)
}

// PointerAt centers the paddle on x, in logical pixels. Hosts with a
// pixel pointer use it directly.
func (g *Game) PointerAt(x float64) {
	if g.engine == nil || g.paused {
		return
	}
	g.engine.MovePointer(x)
}

// Destroy ends the game and restores the page.
func (g *Game) Destroy() core.StepResult {
	if g.engine == nil {
		return core.StepResult{}
	}
	return g.engine.Destroy()
}

// Engine exposes the running engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	st := g.engine.State()
	st.Paused = g.paused
	return st
}

// Render draws the page, the ball and paddle, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.setup != nil {
		msg := g.setup.Error()
		if errors.Is(g.setup, ErrNoTargets) {
			msg = "Nothing on screen to break"
		}
		dst.DrawMessageBox("NO GAME", msg, core.ColorRed)
		return
	}

	vp := g.engine.Viewport()
	g.page.Render(dst, vp.ScrollY)
	RenderPlayfield(dst, g.engine, g.site.CellWidth, g.site.CellHeight)
	RenderHUD(dst, g.engine)

	switch {
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume", core.ColorAccent)
	case g.engine.Phase() == PhaseWon:
		dst.DrawMessageBox("YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to play again", g.engine.Score()), core.ColorAccent)
	case g.engine.Phase() == PhaseLost:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to play again", g.engine.Score()), core.ColorRed)
	}
}

// RenderPlayfield draws the paddle and ball of e onto dst, converting
// logical pixels to cells of cellW x cellH.
func RenderPlayfield(dst *core.Screen, e *Engine, cellW, cellH float64) {
	p := e.Paddle()
	row := int(p.Y / cellH)
	for x := int(p.X / cellW); x < int((p.X+p.Width)/cellW); x++ {
		dst.SetColor(x, row, PaddleChar, core.ColorBrightWhite)
	}

	b := e.Ball()
	dst.SetColor(int(b.X/cellW), int(b.Y/cellH), BallChar, core.ColorAccent)
}

// RenderHUD draws the score bar on the top row.
func RenderHUD(dst *core.Screen, e *Engine) {
	hud := fmt.Sprintf(" Score: %d   Lives: %d ", e.Score(), e.Lives())
	if e.Mode() == ModeSurvival {
		hud += fmt.Sprintf("  Speed: %.2f ", e.ScrollSpeed())
	}
	hud += "  ESC to exit "
	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 0, ' ', core.ColorDefault)
	}
	dst.DrawTextCenteredColor(0, hud, core.ColorBrightWhite)
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return NewGame(ModeClassic)
	})
	registry.Register("breakout_survival", func() registry.Game {
		return NewGame(ModeSurvival)
	})
}
