package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 48)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 48 {
		t.Errorf("Height() = %d, expected 48", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ColorBlack {
				t.Fatalf("New screen should be black, got %v at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)
	red := RGB(255, 0, 0)

	s.Set(5, 5, red)
	if s.Get(5, 5) != red {
		t.Errorf("Get(5, 5) = %v, expected %v", s.Get(5, 5), red)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, red)
	s.Set(100, 0, red)
	s.Set(0, -1, red)
	s.Set(0, 100, red)

	if s.Get(-1, 0) != ColorBlack {
		t.Error("Out of bounds Get should return background")
	}
	if s.Get(100, 0) != ColorBlack {
		t.Error("Out of bounds Get should return background")
	}
}

func TestScreenFillClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill(ColorWhite)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.Get(x, y) != ColorWhite {
				t.Errorf("After Fill, expected white at (%d, %d), got %v", x, y, s.Get(x, y))
			}
		}
	}

	s.Clear()
	if s.Get(2, 2) != ColorBlack {
		t.Errorf("After Clear, expected black, got %v", s.Get(2, 2))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	red := RGB(255, 0, 0)
	s.Set(2, 2, red)
	s.Set(9, 9, red)

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Fatalf("Resize: got %dx%d, expected 5x5", s.Width(), s.Height())
	}
	if s.Get(2, 2) != red {
		t.Error("Resize should preserve content within new bounds")
	}

	s.Resize(12, 12)
	if s.Get(9, 9) != ColorBlack {
		t.Error("content outside old bounds should not survive a shrink")
	}
	if s.Get(2, 2) != red {
		t.Error("Resize should preserve content when growing")
	}
}
