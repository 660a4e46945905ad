package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)
	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	if strings.Trim(s.String(), " \n") != "" {
		t.Error("new screen should be blank")
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.SetColored(p[0], p[1], 'A', ColorRed)
		if c := s.GetCell(p[0], p[1]); c.Rune != ' ' || c.Color != ColorDefault {
			t.Errorf("GetCell(%d, %d) = %+v, expected plain space", p[0], p[1], c)
		}
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)

	s.SetColored(2, 1, '*', ColorGold)
	if cell := s.GetCell(2, 1); cell.Rune != '*' || cell.Color != ColorGold {
		t.Errorf("GetCell(2, 1) = %+v, expected '*' in gold", cell)
	}

	s.Set(2, 1, '.')
	if c := s.GetCell(2, 1).Color; c != ColorDefault {
		t.Errorf("Set should reset color, got %v", c)
	}

	s.DrawTextColored(0, 0, "♥♥", ColorRed)
	if s.Get(1, 0) != '♥' || s.GetCell(1, 0).Color != ColorRed {
		t.Errorf("DrawTextColored should advance one cell per rune, got %+v", s.GetCell(1, 0))
	}

	s.Clear()
	if c := s.GetCell(0, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenDrawing(t *testing.T) {
	s := NewScreen(8, 6)
	s.Fill('.')
	s.DrawRectColored(NewRect(1, 1, 2, 2), '#', ColorMagenta)
	s.DrawBox(NewRect(4, 0, 4, 3))
	s.DrawText(5, 4, "clipped")

	expected := strings.Join([]string{
		"....┌──┐",
		".##.│..│",
		".##.└──┘",
		"........",
		".....cli",
		"........",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("screen =\n%s\nexpected\n%s", got, expected)
	}
	if c := s.GetCell(1, 1).Color; c != ColorMagenta {
		t.Errorf("rect color = %v, expected magenta", c)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row := s.Row(0); row != "Hello   " {
		t.Errorf("Row(0) = %q, expected preserved content", row)
	}

	s.Resize(15, 8)
	if row := s.Row(0); !strings.HasPrefix(row, "Hello") || len(row) != 15 {
		t.Errorf("Row(0) after enlarging = %q", row)
	}
	if row := s.Row(5); strings.TrimSpace(row) != "" {
		t.Errorf("cropped row came back: %q", row)
	}
	if row := s.Row(-1); row != strings.Repeat(" ", 15) {
		t.Errorf("out of bounds row = %q, expected spaces", row)
	}
}
