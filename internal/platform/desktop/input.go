package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/games/breakout"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

// Key repeat, in ticks.
const (
	repeatDelay = 12
	repeatEvery = 3
)

// binding maps a key to an action. Repeating keys fire again while held.
type binding struct {
	key    ebiten.Key
	action core.Action
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, core.ActionLeft, true},
	{ebiten.KeyA, core.ActionLeft, true},
	{ebiten.KeyArrowRight, core.ActionRight, true},
	{ebiten.KeyD, core.ActionRight, true},
	{ebiten.KeyArrowDown, core.ActionDown, true},
	{ebiten.KeyS, core.ActionDown, true},
	{ebiten.KeyArrowUp, core.ActionUp, false},
	{ebiten.KeyW, core.ActionUp, false},
	{ebiten.KeySpace, core.ActionDrop, false},
	{ebiten.KeyEnter, core.ActionDrop, false},
	{ebiten.KeyP, core.ActionPause, false},
	{ebiten.KeyR, core.ActionRestart, false},
}

// inputState tracks the pointer and the one touch a game follows.
type inputState struct {
	cursorX, cursorY int
	touchIDs         []ebiten.TouchID
	touch            ebiten.TouchID
	touching         bool
	mouseDown        bool
}

// fires reports whether a key held for d ticks triggers this tick.
func fires(d int, repeat bool) bool {
	switch {
	case d == 1:
		return true
	case !repeat || d < repeatDelay:
		return false
	}
	return (d-repeatDelay)%repeatEvery == 0
}

// toCell converts logical pixels to a grid cell.
func toCell(x, y int, site config.SiteConfig) (col, row int) {
	return int(float64(x) / site.CellWidth), int(float64(y) / site.CellHeight)
}

func (a *App) quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

func (a *App) readKeys() {
	for _, b := range bindings {
		if fires(inpututil.KeyPressDuration(b.key), b.repeat) {
			a.frame.Set(b.action)
		}
	}
}

// readPointer steers pointer games with the mouse cursor.
func (a *App) readPointer() {
	x, y := ebiten.CursorPosition()
	if x == a.input.cursorX && y == a.input.cursorY {
		return
	}
	a.input.cursorX, a.input.cursorY = x, y
	a.pointAt(x, y)
}

func (a *App) pointAt(x, y int) {
	switch g := a.game.(type) {
	case *breakout.Game:
		g.PointerAt(float64(x))
	case registry.PointerGame:
		g.Pointer(toCell(x, y, a.site))
	}
}

// readTouch follows the first finger down, or the left mouse button when
// no finger is down. Pointer games follow every touch.
func (a *App) readTouch() {
	in := &a.input
	if _, ok := a.game.(registry.PointerGame); ok {
		in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
		for _, id := range in.touchIDs {
			a.pointAt(ebiten.TouchPosition(id))
		}
	}

	tg, ok := a.game.(registry.TouchGame)
	if !ok {
		return
	}

	in.touchIDs = inpututil.AppendJustPressedTouchIDs(in.touchIDs[:0])
	switch {
	case !in.touching && len(in.touchIDs) > 0:
		in.touch, in.touching = in.touchIDs[0], true
		x, y := ebiten.TouchPosition(in.touch)
		a.touchBegin(tg, x, y)
		return
	case in.touching && inpututil.IsTouchJustReleased(in.touch):
		in.touching = false
		x, y := inpututil.TouchPositionInPreviousTick(in.touch)
		a.touchEnd(tg, x, y)
		return
	case in.touching:
		x, y := ebiten.TouchPosition(in.touch)
		a.touchMove(tg, x, y)
		return
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		in.mouseDown = true
		a.touchBegin(tg, x, y)
	case in.mouseDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		in.mouseDown = false
		a.touchEnd(tg, x, y)
	case in.mouseDown:
		a.touchMove(tg, x, y)
	}
}

// pixelTouchGame takes touch tracks in logical pixels.
type pixelTouchGame interface {
	TouchBeginAt(x, y float64)
	TouchMoveAt(x, y float64)
	TouchEndAt(x, y float64)
}

// touchBegin, touchMove and touchEnd pass window positions through
// unrounded when the game accepts pixels, and as cells otherwise.
func (a *App) touchBegin(tg registry.TouchGame, x, y int) {
	if pg, ok := tg.(pixelTouchGame); ok {
		pg.TouchBeginAt(float64(x), float64(y))
		return
	}
	tg.TouchBegin(toCell(x, y, a.site))
}

func (a *App) touchMove(tg registry.TouchGame, x, y int) {
	if pg, ok := tg.(pixelTouchGame); ok {
		pg.TouchMoveAt(float64(x), float64(y))
		return
	}
	tg.TouchMove(toCell(x, y, a.site))
}

func (a *App) touchEnd(tg registry.TouchGame, x, y int) {
	if pg, ok := tg.(pixelTouchGame); ok {
		pg.TouchEndAt(float64(x), float64(y))
		return
	}
	tg.TouchEnd(toCell(x, y, a.site))
}
