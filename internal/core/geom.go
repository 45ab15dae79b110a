// Package core provides fundamental types and utilities for the color drop game.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

import "math"

// Vec is a point in surface coordinates (pixels, origin top-left, Y down).
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between two points.
func Dist(a, b Vec) float64 {
	return a.Sub(b).Len()
}

// Rect represents an axis-aligned rectangle in surface coordinates.
type Rect struct {
	MinX, MinY float64 // Top-left corner
	MaxX, MaxY float64 // Bottom-right corner
}

// NewRect creates a rectangle from its left, top, right and bottom edges.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{MinX: left, MinY: top, MaxX: right, MaxY: bottom}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Contains returns true if p is inside the rectangle.
// Left and top edges are inclusive, right and bottom edges exclusive.
func (r Rect) Contains(p Vec) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.MinX && p.X < r.MaxX && p.Y >= r.MinY && p.Y < r.MaxY
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

