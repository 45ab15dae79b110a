package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/color-drop/internal/core"
)

var (
	colorScrim      = color.RGBA{0, 0, 0, 140}
	colorPanel      = color.RGBA{40, 40, 45, 255}
	colorBorder     = color.RGBA{100, 100, 110, 255}
	colorText       = color.RGBA{220, 220, 220, 255}
	colorTitle      = color.RGBA{255, 255, 100, 255}
	colorButton     = color.RGBA{70, 70, 80, 255}
	colorButtonText = color.RGBA{220, 220, 220, 255}
)

const (
	panelWidth   = 320
	panelHeight  = 160
	buttonWidth  = 120
	buttonHeight = 32
)

// button is the clickable area of the dialog's action.
type button struct {
	x, y, w, h int
}

func (b button) contains(x, y int) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// drawDialog draws a centered modal panel and returns its button area.
func drawDialog(screen *ebiten.Image, d core.Dialog) *button {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	face := basicfont.Face7x13

	vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), colorScrim, false)

	px := (sw - panelWidth) / 2
	py := (sh - panelHeight) / 2
	vector.DrawFilledRect(screen, float32(px), float32(py), panelWidth, panelHeight, colorPanel, false)
	vector.StrokeRect(screen, float32(px), float32(py), panelWidth, panelHeight, 1, colorBorder, false)

	drawCentered(screen, face, d.Title, sw/2, py+30, colorTitle)
	drawCentered(screen, face, d.Message, sw/2, py+60, colorText)

	b := &button{
		x: (sw - buttonWidth) / 2,
		y: py + panelHeight - buttonHeight - 20,
		w: buttonWidth,
		h: buttonHeight,
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), colorButton, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1, colorBorder, false)
	drawCentered(screen, face, d.Action, sw/2, b.y+(b.h+10)/2, colorButtonText)

	return b
}

// drawCentered draws s with its baseline at y, centered on x.
func drawCentered(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x-bounds.Dx()/2, y, clr)
}
