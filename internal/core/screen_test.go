package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	want := "      \n      \n      "
	if got := s.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

func TestSetColorClipsAtEdges(t *testing.T) {
	s := NewScreen(4, 2)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColor(p[0], p[1], 'x', ColorRed)
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Errorf("off-grid writes landed: %q", s.String())
	}

	s.SetColor(3, 1, '#', ColorOrange)
	if got := s.GetCell(3, 1); got.Rune != '#' || got.Color != ColorOrange {
		t.Errorf("GetCell = %+v", got)
	}
	if got := s.GetCell(9, 9); got != blankCell {
		t.Errorf("GetCell off grid = %+v, want blank", got)
	}
}

func TestDrawText(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"at origin", 0, "abc", "abc   "},
		{"clipped right", 4, "abc", "    ab"},
		{"clipped left", -2, "abcd", "cd    "},
		{"multibyte", 1, "█▒", " █▒   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 1)
			s.DrawText(tt.x, 0, tt.text)
			if got := s.Row(0); got != tt.want {
				t.Errorf("Row = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDrawTextCenteredColor(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCenteredColor(0, "Hi", ColorBrightWhite)
	if got := s.Row(0); got != "    Hi    " {
		t.Errorf("Row = %q", got)
	}
	if s.GetCell(4, 0).Color != ColorBrightWhite {
		t.Error("centered text lost its color")
	}
}

func TestDrawBoxColor(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBoxColor(NewRect(0, 0, 5, 4), ColorGray)
	want := strings.Join([]string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("box =\n%s\nwant\n%s", got, want)
	}

	small := NewScreen(3, 3)
	small.DrawBoxColor(NewRect(0, 0, 1, 3), ColorGray)
	if strings.TrimSpace(small.String()) != "" {
		t.Error("a box narrower than two cells should not be drawn")
	}
}

func TestDrawRectAndClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(NewRect(1, 1, 2, 5), '#')
	if s.Row(1) != " ## " || s.Row(2) != " ## " || s.Row(0) != "    " {
		t.Errorf("rect = %q", s.String())
	}
	s.Clear()
	if strings.ContainsRune(s.String(), '#') {
		t.Error("Clear left cells behind")
	}
}

func TestResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if got := s.String(); got != "ab\nef\n  " {
		t.Errorf("after shrink = %q", got)
	}

	s.Resize(3, 1)
	if got := s.String(); got != "ab " {
		t.Errorf("after grow = %q", got)
	}
}

func TestRowOffGrid(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(-1); got != "   " {
		t.Errorf("Row(-1) = %q", got)
	}
	if got := s.Row(1); got != "   " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestDrawMessageBox(t *testing.T) {
	s := NewScreen(30, 11)
	s.DrawText(0, 5, strings.Repeat("x", 30))
	s.DrawMessageBox("GAME OVER", "Score: 100", ColorRed)

	if !strings.Contains(s.Row(4), "GAME OVER") {
		t.Errorf("title row = %q", s.Row(4))
	}
	if !strings.Contains(s.Row(6), "Score: 100") {
		t.Errorf("subtitle row = %q", s.Row(6))
	}
	if strings.Count(s.Row(5), "x") != 30-14 {
		t.Errorf("box should blank what is under it: %q", s.Row(5))
	}
	if s.GetCell(8, 3).Color != ColorRed {
		t.Errorf("border color = %q", s.GetCell(8, 3).Color)
	}
}
