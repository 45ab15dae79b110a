package core

// Screen is a 2D buffer of colored dots.
// It decouples game rendering from the terminal: the game draws through a
// Raster while the platform decides how dots become characters.
type Screen struct {
	width  int
	height int
	dots   [][]Color
	bg     Color
}

// NewScreen creates a new screen buffer with the given dimensions in dots.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		bg:     ColorBlack,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying dot storage.
func (s *Screen) allocate() {
	s.dots = make([][]Color, s.height)
	for y := range s.dots {
		s.dots[y] = make([]Color, s.width)
	}
}

// Width returns the screen width in dots.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in dots.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldDots := s.dots
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.dots[y][:copyW], oldDots[y][:copyW])
	}
}

// Clear fills the entire screen with the background color.
func (s *Screen) Clear() {
	s.Fill(s.bg)
}

// Fill fills the entire screen with the given color.
func (s *Screen) Fill(c Color) {
	for y := range s.dots {
		for x := range s.dots[y] {
			s.dots[y][x] = c
		}
	}
}

// Set colors the dot at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.dots[y][x] = c
}

// Get returns the color at the given position.
// Returns the background color for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return s.bg
	}
	return s.dots[y][x]
}
