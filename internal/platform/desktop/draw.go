package desktop

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/games/breakout"
	"github.com/vovakirdan/pagebreak/internal/games/tetris"
)

var (
	background   = color.RGBA{0x0a, 0x0a, 0x0f, 0xff}
	defaultColor = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
)

// ansi16 is the xterm palette for color indices 0-15.
var ansi16 = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff}, {0xcd, 0x00, 0x00, 0xff}, {0x00, 0xcd, 0x00, 0xff}, {0xcd, 0xcd, 0x00, 0xff},
	{0x00, 0x00, 0xee, 0xff}, {0xcd, 0x00, 0xcd, 0xff}, {0x00, 0xcd, 0xcd, 0xff}, {0xe5, 0xe5, 0xe5, 0xff},
	{0x7f, 0x7f, 0x7f, 0xff}, {0xff, 0x00, 0x00, 0xff}, {0x00, 0xff, 0x00, 0xff}, {0xff, 0xff, 0x00, 0xff},
	{0x5c, 0x5c, 0xff, 0xff}, {0xff, 0x00, 0xff, 0xff}, {0x00, 0xff, 0xff, 0xff}, {0xff, 0xff, 0xff, 0xff},
}

var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// cellColor converts a cell color, an xterm index or #rrggbb, to RGB.
func cellColor(c core.Color) color.Color {
	if c == core.ColorDefault {
		return defaultColor
	}
	if c[0] == '#' {
		if hc, err := colorful.Hex(string(c)); err == nil {
			return hc
		}
		return defaultColor
	}
	n, err := strconv.Atoi(string(c))
	switch {
	case err != nil || n < 0 || n > 255:
		return defaultColor
	case n < 16:
		return ansi16[n]
	case n < 232:
		n -= 16
		return color.RGBA{cubeLevels[n/36], cubeLevels[n/6%6], cubeLevels[n%6], 0xff}
	}
	g := uint8(8 + 10*(n-232))
	return color.RGBA{g, g, g, 0xff}
}

// drawScreen paints every cell of s. Block glyphs fill their cell, box
// glyphs become lines and everything else is printed with the debug font.
// skipPlayfield leaves out the paddle and ball glyphs.
func drawScreen(dst *ebiten.Image, s *core.Screen, site config.SiteConfig, skipPlayfield bool) {
	cw, ch := float32(site.CellWidth), float32(site.CellHeight)
	for y := range s.Height() {
		for x := range s.Width() {
			c := s.GetCell(x, y)
			if c.Rune == ' ' {
				continue
			}
			if skipPlayfield && (c.Rune == breakout.PaddleChar || c.Rune == breakout.BallChar) {
				continue
			}
			drawCell(dst, c, float32(x)*cw, float32(y)*ch, cw, ch)
		}
	}
}

func drawCell(dst *ebiten.Image, c core.Cell, x, y, w, h float32) {
	clr := cellColor(c.Color)
	midX, midY := x+w/2, y+h/2
	line := func(x0, y0, x1, y1 float32) {
		vector.StrokeLine(dst, x0, y0, x1, y1, 1, clr, false)
	}

	switch c.Rune {
	case tetris.BlockGlyph:
		vector.DrawFilledRect(dst, x, y, w, h, clr, false)
	case tetris.GhostGlyph:
		r, g, b, _ := clr.RGBA()
		ghost := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0x50}
		vector.DrawFilledRect(dst, x, y, w, h, ghost, false)
	case '─':
		line(x, midY, x+w, midY)
	case '│':
		line(midX, y, midX, y+h)
	case '┌':
		line(midX, midY, x+w, midY)
		line(midX, midY, midX, y+h)
	case '┐':
		line(x, midY, midX, midY)
		line(midX, midY, midX, y+h)
	case '└':
		line(midX, y, midX, midY)
		line(midX, midY, x+w, midY)
	case '┘':
		line(midX, y, midX, midY)
		line(x, midY, midX, midY)
	default:
		// The debug font is white and ASCII only.
		if c.Rune < 0x80 {
			ebitenutil.DebugPrintAt(dst, string(c.Rune), int(x)+2, int(y)+2)
			return
		}
		vector.DrawFilledRect(dst, x+w/4, y+h/4, w/2, h/2, clr, false)
	}
}

// drawBreakout draws the paddle and ball at their pixel positions.
func drawBreakout(dst *ebiten.Image, e *breakout.Engine) {
	p := e.Paddle()
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height),
		cellColor(core.ColorBrightWhite), true)

	b := e.Ball()
	vector.DrawFilledCircle(dst, float32(b.X), float32(b.Y), float32(e.BallRadius()),
		cellColor(core.ColorAccent), true)
}
