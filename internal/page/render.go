package page

import (
	"math"
	"strings"

	"github.com/vovakirdan/pagebreak/internal/core"
)

// burstFrames is how long a shard burst lasts, about half a second at 60 FPS.
const burstFrames = 30

const burstParticles = 8

// Render draws the page into dst with the viewport top at scrollY
// logical pixels. Shattered elements are skipped; their bursts are drawn.
func (p *Page) Render(dst *core.Screen, scrollY float64) {
	offset := int(math.Round(scrollY / p.cellH))

	p.renderNav(dst, -offset)
	for _, e := range p.elements {
		if p.shattered[e.ID] {
			continue
		}
		y := e.Cell.Y - offset
		if y+e.Cell.H <= 0 || y >= dst.Height() {
			continue
		}
		renderElement(dst, e, y)
	}
	for id, left := range p.bursts {
		if e, ok := p.Element(id); ok {
			p.renderBurst(dst, e, offset, left)
		}
	}
}

func (p *Page) renderNav(dst *core.Screen, y int) {
	if y < 0 {
		return
	}
	dst.DrawTextColor(marginX, y, p.cfg.Brand, core.ColorAccent)

	var links []string
	for _, s := range p.cfg.Sections {
		if s.Title != "" {
			links = append(links, s.Title)
		}
	}
	nav := strings.Join(links, "  ")
	if x := p.width - marginX - textWidth(nav); x > marginX+textWidth(p.cfg.Brand)+2 {
		dst.DrawTextColor(x, y, nav, core.ColorGray)
	}
	for x := 0; x < p.width; x++ {
		dst.SetColor(x, y+1, '─', core.ColorDim)
	}
}

func renderElement(dst *core.Screen, e Element, y int) {
	x, w := e.Cell.X, e.Cell.W
	switch e.Kind {
	case KindHeroTitle:
		dst.DrawTextColor(x, y, strings.ToUpper(e.Text), core.ColorBrightWhite)
		dst.DrawTextColor(x, y+e.Cell.H-1, e.Detail, core.ColorGray)
	case KindSectionTitle:
		dst.DrawTextColor(x, y, e.Text, core.ColorBrightWhite)
		dst.DrawTextColor(x, y+1, strings.Repeat("━", textWidth(e.Text)), core.ColorAccent)
	case KindServiceCard, KindProjectCard, KindTestimonial:
		dst.DrawBoxColor(core.NewRect(x, y, w, e.Cell.H), core.ColorGray)
		dst.DrawTextColor(x+2, y+1, clip(e.Text, w-4), core.ColorBrightWhite)
		dst.DrawTextColor(x+2, y+2, clip(e.Detail, w-4), core.ColorWhite)
	case KindPricingCard:
		dst.DrawBoxColor(core.NewRect(x, y, w, e.Cell.H), core.ColorAccent)
		dst.DrawTextColor(x+2, y+1, clip(e.Text, w-4), core.ColorBrightWhite)
		dst.DrawTextColor(x+2, y+3, clip(e.Detail, w-4), core.ColorAccent)
	case KindStat:
		dst.DrawTextColor(x, y, e.Text, core.ColorAccent)
		dst.DrawTextColor(x, y+1, clip(e.Detail, w), core.ColorGray)
	case KindFAQ:
		dst.DrawTextColor(x, y, clip("+ "+e.Text, w), core.ColorWhite)
		dst.DrawTextColor(x, y+1, strings.Repeat("┈", w), core.ColorDim)
	case KindBenefit:
		dst.DrawTextColor(x, y, "✓ ", core.ColorAccent)
		dst.DrawTextColor(x+2, y, clip(e.Text, w-2), core.ColorWhite)
	case KindButton:
		label := clip(e.Text, w-buttonPadX)
		dst.DrawTextColor(x, y, "[ "+label+" ]", core.ColorAccent)
	default:
		dst.DrawTextColor(x, y, clip(e.Text, w), core.ColorDefault)
	}
}

func (p *Page) renderBurst(dst *core.Screen, e Element, offset, left int) {
	progress := 1 - float64(left)/burstFrames
	cx, cy := e.Rect.Center()

	glyph, color := '*', core.ColorAccent
	if progress > 0.5 {
		glyph, color = '·', core.ColorDim
	}
	for i := 0; i < burstParticles; i++ {
		angle := float64(i) / burstParticles * 2 * math.Pi
		speed := 100 + float64((i*37)%100)
		px := cx + math.Cos(angle)*speed*progress
		py := cy + math.Sin(angle)*speed*progress
		dst.SetColor(int(px/p.cellW), int(py/p.cellH)-offset, glyph, color)
	}
}

func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
