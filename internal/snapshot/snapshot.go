// Package snapshot renders the game surface to PNG images.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/color-drop/internal/core"
)

// Renderer is anything that can draw itself onto a core.Canvas.
type Renderer interface {
	Render(dst core.Canvas)
}

// canvas adapts a gg drawing context to core.Canvas.
// The first drawing error is kept and reported by Render.
type canvas struct {
	dc  *gg.Context
	err error
}

func (c *canvas) Fill(col core.Color) {
	c.FillRect(core.NewRect(0, 0, float64(c.dc.Width()), float64(c.dc.Height())), col)
}

func (c *canvas) FillRect(r core.Rect, col core.Color) {
	if r.Empty() {
		return
	}
	c.dc.SetColor(col)
	c.dc.DrawRectangle(r.MinX, r.MinY, r.Width(), r.Height())
	c.fill()
}

func (c *canvas) FillCircle(center core.Vec, radius float64, col core.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.fill()
}

func (c *canvas) fill() {
	if err := c.dc.Fill(); err != nil && c.err == nil {
		c.err = err
	}
}

// Render draws r into a new width x height context.
// The caller owns the returned context and must Close it.
func Render(r Renderer, width, height int) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid snapshot size %dx%d", width, height)
	}
	dc := gg.NewContext(width, height)
	c := &canvas{dc: dc}
	r.Render(c)
	if c.err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("render snapshot: %w", c.err)
	}
	return dc, nil
}

// WritePNG renders r and saves it as a PNG file at path.
func WritePNG(r Renderer, width, height int, path string) error {
	dc, err := Render(r, width, height)
	if err != nil {
		return err
	}
	defer dc.Close()

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

// FileName returns a timestamped file name for a snapshot in dir.
func FileName(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("colordrop_%s.png", now.Format("20060102_150405")))
}
