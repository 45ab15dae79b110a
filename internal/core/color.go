package core

import "fmt"

// Color is an opaque RGB color. Two colors match when all channels are equal.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colors used by the renderer.
var (
	ColorWhite = Color{255, 255, 255}
	ColorBlack = Color{0, 0, 0}
)

// RGBA implements image/color.Color so hosts can pass a Color straight to
// drawing libraries.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the hex form of the color.
func (c Color) String() string {
	return c.Hex()
}
