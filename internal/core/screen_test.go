package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, want 'X'", got)
	}

	s.SetCell(4, 2, Cell{Rune: 'O', Color: ColorBrightRed})
	if got := s.GetCell(4, 2); got.Rune != 'O' || got.Color != ColorBrightRed {
		t.Errorf("GetCell(4,2) = %+v", got)
	}

	// Out of bounds writes are ignored, reads return blanks.
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(0, 0, 4, 4), '#', ColorBlue)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) = %+v after Clear", x, y, c)
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "simon")

	s.Resize(10, 5)
	if got := s.Get(0, 0); got != 's' {
		t.Errorf("content lost after grow: %q", got)
	}

	s.Resize(3, 1)
	if got := s.Get(2, 0); got != 'm' {
		t.Errorf("content lost after shrink: %q", got)
	}
	if s.Width() != 3 || s.Height() != 1 {
		t.Errorf("size = %dx%d, want 3x1", s.Width(), s.Height())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.Set(2, 1, 'c')

	got := s.String()
	want := "ab \n  c"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() has %d newlines, want 1", strings.Count(got, "\n"))
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "abcd")
	if got := s.Get(3, 0); got != 'a' {
		t.Errorf("centered text starts at wrong column: %q at x=3", got)
	}
}
