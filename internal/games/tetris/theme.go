package tetris

import (
	"image/color"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Background is the board color cells are drawn over.
var Background = mustHex("#0a0a0f")

// Theme maps color indices 1..7 to display colors. Index 0 is unused.
type Theme struct {
	Name   string
	Colors [NumKinds + 1]color.Color
}

// Color returns the display color of a cell value.
func (t Theme) Color(v uint8) color.Color {
	if v == 0 || int(v) >= len(t.Colors) {
		return Background
	}
	return t.Colors[v]
}

var themePalettes = map[string][NumKinds]string{
	"default": {"#00f0f0", "#f0f000", "#a000f0", "#00f000", "#f00000", "#0000f0", "#f0a000"},
	"retro":   {"#0f380f", "#306230", "#8bac0f", "#9bbc0f", "#0f380f", "#306230", "#8bac0f"},
	"neon":    {"#00ff00", "#ff00ff", "#00ffff", "#ffff00", "#ff0000", "#0000ff", "#ffffff"},
	"pastel":  {"#ffb3ba", "#ffdfba", "#ffffba", "#baffc9", "#bae1ff", "#eecbff", "#ffcbfe"},
}

var themes = buildThemes()

func buildThemes() map[string]Theme {
	out := make(map[string]Theme, len(themePalettes))
	for name, hexes := range themePalettes {
		t := Theme{Name: name}
		for i, h := range hexes {
			t.Colors[i+1] = mustHex(h)
		}
		out[name] = t
	}
	return out
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("tetris: bad palette color " + s)
	}
	return c
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// ThemeNames lists the built-in themes, default first.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		if name != "default" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{"default"}, names...)
}

// GhostColor returns the faint silhouette color for a piece color:
// mostly background with a hint of the piece.
func GhostColor(c color.Color) color.Color {
	pc, ok := colorful.MakeColor(c)
	if !ok {
		return Background
	}
	return Background.BlendLab(pc, 0.25).Clamped()
}

// Hex returns c as #rrggbb.
func Hex(c color.Color) string {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cc.Clamped().Hex()
}
