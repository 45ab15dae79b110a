package core

import "math"

// Raster is a Canvas that samples surface-space shapes onto a Screen.
// Each dot covers Scale x Scale surface pixels and takes the color of the
// last shape containing its center.
type Raster struct {
	dst   *Screen
	scale float64
}

// NewRaster creates a raster drawing onto dst, with scale surface pixels per dot.
func NewRaster(dst *Screen, scale float64) *Raster {
	if scale <= 0 {
		scale = 1
	}
	return &Raster{dst: dst, scale: scale}
}

// Scale returns the number of surface pixels per dot.
func (r *Raster) Scale() float64 {
	return r.scale
}

// DotCenter returns the surface position of the center of dot (x, y).
func (r *Raster) DotCenter(x, y int) Vec {
	return Vec{X: (float64(x) + 0.5) * r.scale, Y: (float64(y) + 0.5) * r.scale}
}

// Fill paints every dot.
func (r *Raster) Fill(c Color) {
	r.dst.Fill(c)
}

// FillRect paints every dot whose center lies inside rect.
func (r *Raster) FillRect(rect Rect, c Color) {
	x0, y0, x1, y1 := r.span(rect.MinX, rect.MinY, rect.MaxX, rect.MaxY)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if rect.Contains(r.DotCenter(x, y)) {
				r.dst.Set(x, y, c)
			}
		}
	}
}

// FillCircle paints every dot whose center lies inside the disk.
func (r *Raster) FillCircle(center Vec, radius float64, c Color) {
	x0, y0, x1, y1 := r.span(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if Dist(r.DotCenter(x, y), center) <= radius {
				r.dst.Set(x, y, c)
			}
		}
	}
}

// span converts a surface-space box to an inclusive, clipped dot range.
func (r *Raster) span(minX, minY, maxX, maxY float64) (x0, y0, x1, y1 int) {
	x0 = Clamp(int(math.Floor(minX/r.scale)), 0, r.dst.Width()-1)
	y0 = Clamp(int(math.Floor(minY/r.scale)), 0, r.dst.Height()-1)
	x1 = Clamp(int(math.Floor(maxX/r.scale)), 0, r.dst.Width()-1)
	y1 = Clamp(int(math.Floor(maxY/r.scale)), 0, r.dst.Height()-1)
	return x0, y0, x1, y1
}
