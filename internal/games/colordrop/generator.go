package colordrop

import (
	"math/rand"

	"github.com/vovakirdan/color-drop/internal/core"
)

// Generator places randomly colored, non-overlapping circles on the board.
type Generator struct {
	rng         *rand.Rand
	radius      float64
	maxAttempts int

	// Forced counts circles placed without a free spot after maxAttempts
	// candidates. Such circles may overlap others.
	Forced int
}

// NewGenerator creates a generator with its own seeded RNG.
func NewGenerator(seed int64, radius float64, maxAttempts int) *Generator {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Generator{
		rng:         rand.New(rand.NewSource(seed)),
		radius:      radius,
		maxAttempts: maxAttempts,
	}
}

// Generate appends count new circles to existing and returns the result.
// Centers are sampled uniformly in [radius, dim-radius] on each axis and
// rejected while they overlap any circle already on the board. An axis
// shorter than one diameter puts every center at radius on that axis.
func (g *Generator) Generate(count int, existing []Circle, width, height float64) []Circle {
	circles := existing
	for range count {
		center, ok := g.place(circles, width, height)
		if !ok {
			g.Forced++
		}
		circles = append(circles, Circle{
			Center: center,
			Radius: g.radius,
			Color:  g.randomColor(),
		})
	}
	return circles
}

// place samples candidate centers until one is free or attempts run out.
// The last candidate is returned either way.
func (g *Generator) place(circles []Circle, width, height float64) (core.Vec, bool) {
	spanX := max(width-2*g.radius, 0)
	spanY := max(height-2*g.radius, 0)

	var candidate core.Vec
	for range g.maxAttempts {
		candidate = core.Vec{
			X: g.rng.Float64()*spanX + g.radius,
			Y: g.rng.Float64()*spanY + g.radius,
		}
		if !overlapsAny(circles, candidate, g.radius) {
			return candidate, true
		}
	}
	return candidate, false
}

func overlapsAny(circles []Circle, center core.Vec, r float64) bool {
	for _, c := range circles {
		if c.Overlaps(center, r) {
			return true
		}
	}
	return false
}

// randomColor picks each channel independently in [0, 255].
func (g *Generator) randomColor() core.Color {
	return core.RGB(uint8(g.rng.Intn(256)), uint8(g.rng.Intn(256)), uint8(g.rng.Intn(256)))
}
