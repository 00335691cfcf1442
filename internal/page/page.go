// Package page models the marketing page the Breakout engine plays on.
// It lays page elements out on a terminal grid, exposes them as
// destructible targets in logical pixels, and renders them.
package page

import (
	"sort"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
)

// Kind is the role of a page element.
type Kind string

const (
	KindHeroTitle    Kind = "hero-title"
	KindSectionTitle Kind = "section-title"
	KindServiceCard  Kind = "service-card"
	KindProjectCard  Kind = "project-card"
	KindPricingCard  Kind = "pricing-card"
	KindStat         Kind = "stat"
	KindFAQ          Kind = "faq"
	KindTestimonial  Kind = "testimonial"
	KindBenefit      Kind = "benefit"
	KindButton       Kind = "button"
)

// Layout constants, in terminal cells.
const (
	marginX      = 2
	columnGap    = 2
	rowGap       = 1
	sectionGap   = 1
	navHeight    = 2
	minColumnW   = 18
	buttonPadX   = 4
	defaultRowsH = 2
)

// Element is one laid out page element.
type Element struct {
	ID      int
	Kind    Kind
	Section string
	Text    string
	Detail  string
	Cell    core.Rect  // position in terminal cells, page coordinates
	Rect    core.RectF // position in logical pixels, page coordinates
}

// Page holds the laid out content and which elements are shattered.
// It is not safe for concurrent use.
type Page struct {
	cfg          config.PageConfig
	cellW, cellH float64

	width    int // cells
	height   int // cells
	elements []Element

	shattered map[int]bool
	bursts    map[int]int // element ID -> frames of burst left
}

// New creates a page for the given content. cellW and cellH give the
// logical pixel size of one terminal cell.
func New(cfg config.PageConfig, cellW, cellH float64) *Page {
	p := &Page{
		cfg:       cfg,
		cellW:     cellW,
		cellH:     cellH,
		shattered: make(map[int]bool),
		bursts:    make(map[int]int),
	}
	p.Layout(80)
	return p
}

// Layout flows the content into a page widthCells wide.
// Element IDs depend only on content order, so shattered state survives.
func (p *Page) Layout(widthCells int) {
	if widthCells < minColumnW+2*marginX {
		widthCells = minColumnW + 2*marginX
	}
	p.width = widthCells
	p.elements = p.elements[:0]

	contentW := widthCells - 2*marginX
	y := navHeight
	id := 0
	add := func(e Element) {
		id++
		e.ID = id
		e.Rect = core.NewRectF(
			float64(e.Cell.X)*p.cellW, float64(e.Cell.Y)*p.cellH,
			float64(e.Cell.W)*p.cellW, float64(e.Cell.H)*p.cellH,
		)
		p.elements = append(p.elements, e)
	}

	for _, sec := range p.cfg.Sections {
		y += sectionGap
		if sec.Title != "" {
			add(Element{
				Kind:    KindSectionTitle,
				Section: sec.ID,
				Text:    sec.Title,
				Cell:    core.NewRect(marginX, y, min(contentW, textWidth(sec.Title)+2), 2),
			})
			y += 2 + rowGap
		}

		cols := columnsFor(sec.Columns, contentW)
		colW := (contentW - (cols-1)*columnGap) / cols
		for start := 0; start < len(sec.Elements); start += cols {
			end := min(start+cols, len(sec.Elements))
			rowH := 0
			for i := start; i < end; i++ {
				ec := sec.Elements[i]
				h := ec.Height
				if h <= 0 {
					h = defaultRowsH
				}
				rowH = max(rowH, h)

				x := marginX + (i-start)*(colW+columnGap)
				w := colW
				if Kind(ec.Kind) == KindButton {
					w = min(colW, textWidth(ec.Text)+buttonPadX)
				}
				add(Element{
					Kind:    Kind(ec.Kind),
					Section: sec.ID,
					Text:    ec.Text,
					Detail:  ec.Detail,
					Cell:    core.NewRect(x, y, w, h),
				})
			}
			y += rowH + rowGap
		}
	}
	p.height = y + 1
}

func columnsFor(want, contentW int) int {
	cols := max(want, 1)
	for cols > 1 && (contentW-(cols-1)*columnGap)/cols < minColumnW {
		cols--
	}
	return cols
}

func textWidth(s string) int {
	return len([]rune(s))
}

// Width returns the page width in cells.
func (p *Page) Width() int {
	return p.width
}

// HeightCells returns the page height in cells.
func (p *Page) HeightCells() int {
	return p.height
}

// Height returns the page height in logical pixels.
func (p *Page) Height() float64 {
	return float64(p.height) * p.cellH
}

// MaxScroll returns the largest useful scroll offset for a viewport of
// the given height in logical pixels.
func (p *Page) MaxScroll(viewportHeight float64) float64 {
	return max(0, p.Height()-viewportHeight)
}

// Elements returns the laid out elements in page order.
func (p *Page) Elements() []Element {
	return p.elements
}

// Element returns the element with the given ID.
func (p *Page) Element(id int) (Element, bool) {
	i := sort.Search(len(p.elements), func(i int) bool { return p.elements[i].ID >= id })
	if i < len(p.elements) && p.elements[i].ID == id {
		return p.elements[i], true
	}
	return Element{}, false
}

// Targets returns candidate bricks: the unshattered elements overlapping
// the viewport, or every unshattered element for ScopeAll.
func (p *Page) Targets(vp core.Viewport, scope core.TargetScope) []core.Target {
	var out []core.Target
	for _, e := range p.elements {
		if p.shattered[e.ID] {
			continue
		}
		if scope == core.ScopeVisible && !vp.Visible(e.Rect) {
			continue
		}
		out = append(out, core.Target{ID: e.ID, Rect: e.Rect})
	}
	return out
}

// Shatter hides an element and starts its shard burst.
func (p *Page) Shatter(id int) {
	if p.shattered[id] {
		return
	}
	p.shattered[id] = true
	p.bursts[id] = burstFrames
}

// Restore shows a shattered element again.
func (p *Page) Restore(id int) {
	delete(p.shattered, id)
	delete(p.bursts, id)
}

// RestoreAll shows every element again.
func (p *Page) RestoreAll() {
	clear(p.shattered)
	clear(p.bursts)
}

// Shattered reports whether the element is hidden.
func (p *Page) Shattered(id int) bool {
	return p.shattered[id]
}

// ShatteredCount returns how many elements are hidden.
func (p *Page) ShatteredCount() int {
	return len(p.shattered)
}

// Tick advances shard animations by one frame.
func (p *Page) Tick() {
	for id, left := range p.bursts {
		if left <= 1 {
			delete(p.bursts, id)
			continue
		}
		p.bursts[id] = left - 1
	}
}
