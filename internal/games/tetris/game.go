package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/gesture"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

// Visual characters for rendering
const (
	BlockGlyph = '█'
	GhostGlyph = '░'
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// themeName overrides the configured theme when set via CLI
var themeName string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetThemeName selects the starting theme for new games.
func SetThemeName(name string) {
	themeName = name
}

// LoadConfig resolves the Tetris config the CLI asked for.
func LoadConfig() config.TetrisConfig {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	return cfg
}

// Game runs the engine in a terminal.
type Game struct {
	runtime config.SiteConfig
	dt      time.Duration
	clock   time.Time

	engine  *Engine
	board   *Raster
	preview *Raster
	touch   *TouchController
}

// NewGame creates a Tetris game.
func NewGame() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Tetris" }

// Reset starts a new game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	site, err := config.LoadSite("")
	if err != nil {
		site = config.DefaultSiteConfig()
	}
	g.runtime = site

	rate := rc.TickRate
	if rate <= 0 {
		rate = 60
	}
	g.dt = time.Second / time.Duration(rate)
	g.clock = time.Unix(0, 0)

	cfg := LoadConfig()
	g.engine = New(cfg, WithSeed(rc.Seed))
	g.board = NewRaster(cfg.Board.Cols, cfg.Board.Rows)
	g.preview = NewRaster(PreviewSize, PreviewSize)
	g.engine.Init(g.board, g.preview)

	th, err := config.LoadGesture("")
	if err != nil {
		th = config.DefaultGestureConfig()
	}
	g.touch = NewTouchController(g.engine, gesture.FromConfig(th))
}

var keyActions = map[core.Action]Action{
	core.ActionLeft:  ActionLeft,
	core.ActionRight: ActionRight,
	core.ActionDown:  ActionSoftDrop,
	core.ActionUp:    ActionRotate,
	core.ActionDrop:  ActionHardDrop,
	core.ActionPause: ActionPause,
}

// Step applies the frame's input in arrival order and advances gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine.Phase() == PhaseGameOver {
		if in.Has(core.ActionRestart) || in.Has(core.ActionDrop) {
			g.engine.Handle(ActionRestart)
		}
	} else {
		for _, a := range in.Order {
			if act, ok := keyActions[a]; ok {
				g.engine.Handle(act)
			}
		}
	}

	g.clock = g.clock.Add(g.dt)
	return g.engine.Tick(g.dt)
}

func (g *Game) touchPoint(col, row int) (float64, float64) {
	return float64(col) * g.runtime.CellWidth, float64(row) * g.runtime.CellHeight
}

// TouchBegin starts a touch at a screen cell.
func (g *Game) TouchBegin(col, row int) {
	g.TouchBeginAt(g.touchPoint(col, row))
}

// TouchMove feeds touch motion.
func (g *Game) TouchMove(col, row int) {
	g.TouchMoveAt(g.touchPoint(col, row))
}

// TouchEnd finishes a touch.
func (g *Game) TouchEnd(col, row int) {
	g.TouchEndAt(g.touchPoint(col, row))
}

// TouchBeginAt starts a touch at (x, y) in logical pixels. Hosts with a
// pixel pointer use the At variants so gesture thresholds apply unrounded.
func (g *Game) TouchBeginAt(x, y float64) {
	if g.touch == nil {
		return
	}
	g.touch.Begin(x, y, g.clock)
}

// TouchMoveAt feeds touch motion in logical pixels.
func (g *Game) TouchMoveAt(x, y float64) {
	if g.touch == nil {
		return
	}
	g.touch.Move(x, y)
}

// TouchEndAt finishes a touch in logical pixels.
func (g *Game) TouchEndAt(x, y float64) {
	if g.touch == nil {
		return
	}
	g.touch.End(x, y, g.clock)
}

// SetTheme swaps the palette of the running game.
func (g *Game) SetTheme(name string) bool {
	return g.engine.SetTheme(name)
}

// Engine exposes the running engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Destroy stops the engine. It is safe before Reset.
func (g *Game) Destroy() core.StepResult {
	if g.engine == nil {
		return core.StepResult{}
	}
	g.engine.Destroy()
	return core.StepResult{State: g.engine.State(), Events: []core.Event{{Kind: core.EventDestroyed, Score: g.engine.Score()}}}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return g.engine.State()
}

// Render draws the well, the preview and the stats panel centered on dst.
// It can be drawn over another screen's contents.
func (g *Game) Render(dst *core.Screen) {
	cols, rows := g.board.Size()
	wellW := cols*2 + 2
	panelW := 18
	left := (dst.Width() - wellW - panelW) / 2
	top := (dst.Height() - rows - 2) / 2
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}

	// Blank the area first so a host page underneath does not show through.
	dst.DrawRect(core.NewRect(left-1, top, wellW+panelW+2, rows+2), ' ')
	dst.DrawBoxColor(core.NewRect(left, top, wellW, rows+2), core.ColorGray)
	DrawRaster(dst, g.board, left+1, top+1)

	px := left + wellW + 2
	dst.DrawTextColor(px, top, "NEXT", core.ColorGray)
	DrawRaster(dst, g.preview, px, top+1)

	e := g.engine
	stats := []string{
		fmt.Sprintf("Score  %d", e.Score()),
		fmt.Sprintf("Lines  %d", e.Lines()),
		fmt.Sprintf("Level  %d", e.Level()),
		fmt.Sprintf("Theme  %s", e.Theme().Name),
	}
	for i, s := range stats {
		dst.DrawTextColor(px, top+PreviewSize+2+i, s, core.ColorWhite)
	}
	help := []string{"←→ move  ↑ rotate", "↓ soft  ⏎ hard drop", "P pause  Q quit"}
	for i, s := range help {
		dst.DrawTextColor(px, top+rows-len(help)+1+i, s, core.ColorDim)
	}

	switch e.Phase() {
	case PhasePaused:
		dst.DrawMessageBox("PAUSED", "Press P to resume", core.ColorAccent)
	case PhaseGameOver:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Tap or press ENTER", e.Score()), core.ColorRed)
	}
}

// DrawRaster copies a raster to dst at (x, y), two columns per cell.
func DrawRaster(dst *core.Screen, r *Raster, x, y int) {
	cols, rows := r.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := r.At(col, row)
			if !c.Filled {
				continue
			}
			glyph, color := BlockGlyph, core.Color(Hex(c.Color))
			if c.Ghost {
				glyph, color = GhostGlyph, core.Color(Hex(GhostColor(c.Color)))
			}
			dst.SetColor(x+col*2, y+row, glyph, color)
			dst.SetColor(x+col*2+1, y+row, glyph, color)
		}
	}
}

// Register the game with the registry
func init() {
	registry.Register("tetris", func() registry.Game {
		return NewGame()
	})
}
