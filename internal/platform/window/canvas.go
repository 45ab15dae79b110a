package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/color-drop/internal/core"
)

// canvas adapts an ebiten image to core.Canvas.
type canvas struct {
	dst *ebiten.Image
}

func (c *canvas) Fill(col core.Color) {
	c.dst.Fill(col)
}

func (c *canvas) FillRect(r core.Rect, col core.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(c.dst,
		float32(r.MinX), float32(r.MinY),
		float32(r.Width()), float32(r.Height()),
		col, false)
}

func (c *canvas) FillCircle(center core.Vec, radius float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), col, true)
}
