package snapshot

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/color-drop/internal/config"
	"github.com/vovakirdan/color-drop/internal/core"
	"github.com/vovakirdan/color-drop/internal/games/colordrop"
)

// scene draws a fixed picture: white background, red zone, blue disk.
type scene struct{}

func (scene) Render(dst core.Canvas) {
	dst.Fill(core.ColorWhite)
	dst.FillRect(core.NewRect(10, 60, 50, 90), core.RGB(255, 0, 0))
	dst.FillCircle(core.V(70, 30), 20, core.RGB(0, 0, 255))
}

func rgbAt(t *testing.T, img interface{ At(x, y int) color.Color }, x, y int) (uint8, uint8, uint8) {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestRenderScene(t *testing.T) {
	dc, err := Render(scene{}, 100, 100)
	require.NoError(t, err)
	defer dc.Close()

	img := dc.Image()
	r, g, b := rgbAt(t, img, 2, 2)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b}, "background")

	r, g, b = rgbAt(t, img, 30, 75)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b}, "target zone")

	r, g, b = rgbAt(t, img, 70, 30)
	assert.Equal(t, [3]uint8{0, 0, 255}, [3]uint8{r, g, b}, "circle center")
}

func TestRenderRejectsEmptySize(t *testing.T) {
	_, err := Render(scene{}, 0, 10)
	assert.Error(t, err)
}

func TestWritePNGSurface(t *testing.T) {
	s := colordrop.New(config.Default(), nil, 11, nil)
	s.Layout(400, 600)

	path := filepath.Join(t.TempDir(), "shots", "board.png")
	require.NoError(t, WritePNG(s, 400, 600, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(data[:4]))
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t, filepath.Join("out", "colordrop_20260304_050607.png"), FileName("out", now))
}
