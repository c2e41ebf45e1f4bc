package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)
	red := RGB(255, 0, 0)

	s.Set(5, 5, Cell{Rune: 'X', Fg: red})
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}
	if s.GetCell(5, 5).Fg != red {
		t.Errorf("GetCell(5, 5).Fg = %v, expected %v", s.GetCell(5, 5).Fg, red)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, Cell{Rune: 'A'})
	s.Set(100, 0, Cell{Rune: 'A'})
	s.Set(0, -1, Cell{Rune: 'A'})
	s.Set(0, 100, Cell{Rune: 'A'})

	if s.GetCell(-1, 0) != blank {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenSetRuneKeepsBackground(t *testing.T) {
	s := NewScreen(4, 1)
	bg := RGB(30, 30, 30)
	fg := RGB(255, 255, 255)

	s.Fill(Cell{Rune: ' ', Fg: bg, Bg: bg})
	s.SetRune(1, 0, 'a', fg)

	c := s.GetCell(1, 0)
	if c.Rune != 'a' || c.Fg != fg || c.Bg != bg {
		t.Errorf("SetRune produced %+v", c)
	}
}

// rowText returns the runes of row y.
func rowText(s *Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(3, 2)
	bg := RGB(30, 30, 30)

	s.Fill(Cell{Rune: '#', Fg: bg, Bg: bg})
	if got := rowText(s, 1); got != "###" {
		t.Errorf("row after Fill = %q, expected ###", got)
	}

	s.Clear()
	if got := rowText(s, 0); got != "   " {
		t.Errorf("row after Clear = %q, expected spaces", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	for i, r := range "Hello" {
		s.SetRune(i, 0, r, Color{})
	}

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(rowText(s, 0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", rowText(s, 0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(rowText(s, 0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", rowText(s, 0))
	}
	if got := rowText(s, 7); len(got) != 15 || strings.TrimSpace(got) != "" {
		t.Errorf("New rows should be spaces, got %q", got)
	}
}
