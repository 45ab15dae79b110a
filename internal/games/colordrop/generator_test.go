package colordrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/color-drop/internal/core"
)

func assertNoOverlap(t *testing.T, circles []Circle) {
	t.Helper()
	for i := range circles {
		for j := i + 1; j < len(circles); j++ {
			a, b := circles[i], circles[j]
			d := core.Dist(a.Center, b.Center)
			assert.GreaterOrEqual(t, d, a.Radius+b.Radius, "circles %d and %d overlap", i, j)
		}
	}
}

func TestCircleContainsBoundary(t *testing.T) {
	c := Circle{Center: core.V(200, 200), Radius: 50}

	assert.True(t, c.Contains(core.V(200, 200)))
	assert.True(t, c.Contains(core.V(250, 200)), "boundary point is inside")
	assert.True(t, c.Contains(core.V(200, 150)))
	assert.False(t, c.Contains(core.V(250.001, 200)))
	assert.False(t, c.Contains(core.V(240, 240)))
}

func TestCircleOverlaps(t *testing.T) {
	c := Circle{Center: core.V(0, 0), Radius: 50}

	assert.True(t, c.Overlaps(core.V(99.999, 0), 50))
	assert.False(t, c.Overlaps(core.V(100, 0), 50), "exact tangency is allowed")
	assert.False(t, c.Overlaps(core.V(300, 300), 50))
}

func TestGenerateNoOverlap(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := NewGenerator(seed, 50, 1000)
		circles := g.Generate(5, nil, 1000, 1000)

		require.Len(t, circles, 5)
		assert.Zero(t, g.Forced)
		assertNoOverlap(t, circles)
		for _, c := range circles {
			assert.Equal(t, 50.0, c.Radius)
			assert.GreaterOrEqual(t, c.Center.X, 50.0)
			assert.LessOrEqual(t, c.Center.X, 950.0)
			assert.GreaterOrEqual(t, c.Center.Y, 50.0)
			assert.LessOrEqual(t, c.Center.Y, 950.0)
		}
	}
}

func TestGenerateAppendsToExisting(t *testing.T) {
	g := NewGenerator(7, 50, 1000)
	existing := []Circle{{Center: core.V(500, 500), Radius: 50, Color: red}}

	circles := g.Generate(3, existing, 1000, 1000)

	require.Len(t, circles, 4)
	assert.Equal(t, existing[0], circles[0])
	assertNoOverlap(t, circles)
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewGenerator(99, 50, 1000).Generate(5, nil, 800, 600)
	b := NewGenerator(99, 50, 1000).Generate(5, nil, 800, 600)
	assert.Equal(t, a, b)
}

func TestGenerateTerminatesWhenCrowded(t *testing.T) {
	// Only one 50px circle fits in a 100x100 surface.
	g := NewGenerator(3, 50, 25)
	circles := g.Generate(5, nil, 100, 100)

	assert.Len(t, circles, 5)
	assert.Equal(t, 4, g.Forced)
}

func TestGenerateNarrowAxisPinsCenter(t *testing.T) {
	g := NewGenerator(3, 50, 1000)
	circles := g.Generate(3, nil, 60, 1000)

	require.Len(t, circles, 3)
	for _, c := range circles {
		assert.Equal(t, 50.0, c.Center.X)
		assert.GreaterOrEqual(t, c.Center.Y, 50.0)
		assert.LessOrEqual(t, c.Center.Y, 950.0)
	}
}

func TestNewGeneratorClampsAttempts(t *testing.T) {
	g := NewGenerator(1, 50, 0)
	circles := g.Generate(2, nil, 1000, 1000)
	assert.Len(t, circles, 2)
}
