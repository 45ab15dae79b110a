package colordrop

import "github.com/vovakirdan/color-drop/internal/core"

// Circle is a colored disk on the board. Only Center changes after creation.
type Circle struct {
	Center core.Vec
	Radius float64
	Color  core.Color
}

// Contains returns true if p lies in the disk, boundary included.
func (c Circle) Contains(p core.Vec) bool {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Overlaps returns true if a disk at center with radius r would intersect c.
// Externally tangent disks do not overlap.
func (c Circle) Overlaps(center core.Vec, r float64) bool {
	return core.Dist(c.Center, center) < c.Radius+r
}
