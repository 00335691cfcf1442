package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pagebreak/internal/core"
)

// plain renders cells without a color.
var plain = lipgloss.NewStyle()

// styles caches one foreground style per cell color; SSH sessions render
// concurrently.
var styles sync.Map // core.Color -> lipgloss.Style

// styleFor returns the foreground style of a cell color. core.Color values
// are ANSI indices or #rrggbb, both of which lipgloss accepts.
func styleFor(c core.Color) lipgloss.Style {
	if c == core.ColorDefault {
		return plain
	}
	if st, ok := styles.Load(c); ok {
		return st.(lipgloss.Style)
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
	styles.Store(c, st)
	return st
}

// RenderScreen turns a screen into terminal output, one escape sequence
// per run of same-colored cells.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()
	lines := make([]string, h)
	var run strings.Builder

	for y := range h {
		var line strings.Builder
		for x := 0; x < w; {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < w && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			line.WriteString(styleFor(color).Render(run.String()))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
