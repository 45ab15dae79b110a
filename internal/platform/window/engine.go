// Package window hosts the color drop game in a desktop or mobile window
// using Ebitengine. Mouse and touch both drive drag gestures.
package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/color-drop/internal/config"
	"github.com/vovakirdan/color-drop/internal/core"
	"github.com/vovakirdan/color-drop/internal/games/colordrop"
)

// Default window size in device-independent pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 960
)

// errQuit ends the game loop on Escape.
var errQuit = errors.New("quit")

// Options configures the window host.
type Options struct {
	Config config.Config
	Seed   int64 // 0 means use current time
	Width  int
	Height int
	Title  string
	Logger *log.Logger
}

// Engine implements ebiten.Game around one game surface.
type Engine struct {
	surface *colordrop.Surface
	logger  *log.Logger

	width, height int
	title         string

	gesture core.Gesture
	touchID ebiten.TouchID
	touched bool

	dialog *core.Dialog
	button *button
	redraw bool
}

// NewEngine creates the window host.
func NewEngine(opts Options) *Engine {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Title == "" {
		opts.Title = "Color Drop"
	}

	e := &Engine{
		logger: logger,
		width:  opts.Width,
		height: opts.Height,
		title:  opts.Title,
	}
	e.surface = colordrop.New(opts.Config, e, seed, logger)
	return e
}

// Invalidate marks the frame as stale.
// Ebitengine redraws every frame, so this only feeds the debug log.
func (e *Engine) Invalidate() {
	e.redraw = true
}

// ShowDialog opens a modal dialog that blocks gestures until confirmed.
func (e *Engine) ShowDialog(d core.Dialog) {
	e.dialog = &d
	e.gesture.Cancel()
	e.touched = false
}

// Run opens the window and blocks until it is closed.
func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// Update polls input once per tick.
func (e *Engine) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	if e.dialog != nil {
		e.updateDialog()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		e.surface.Restart()
	}

	down, pos := e.pointer()
	e.gesture.Sample(e.surface, down, pos)

	if e.redraw {
		e.logger.Debug("redraw requested")
		e.redraw = false
	}
	return nil
}

// pointer returns the state of the primary pointer. An active touch wins
// over the mouse; the first touch to land is tracked until it lifts.
func (e *Engine) pointer() (bool, core.Vec) {
	if !e.touched {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			e.touchID = ids[0]
			e.touched = true
		}
	}
	if e.touched {
		if inpututil.IsTouchJustReleased(e.touchID) {
			e.touched = false
			x, y := inpututil.TouchPositionInPreviousTick(e.touchID)
			return false, core.V(float64(x), float64(y))
		}
		x, y := ebiten.TouchPosition(e.touchID)
		return true, core.V(float64(x), float64(y))
	}

	x, y := ebiten.CursorPosition()
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), core.V(float64(x), float64(y))
}

// updateDialog confirms the dialog on Enter or a click/tap on its button.
func (e *Engine) updateDialog() {
	confirmed := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)

	if e.button != nil && !confirmed {
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			confirmed = e.button.contains(x, y)
		}
		for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
			x, y := inpututil.TouchPositionInPreviousTick(id)
			confirmed = confirmed || e.button.contains(x, y)
		}
	}

	if confirmed {
		d := e.dialog
		e.dialog = nil
		e.button = nil
		d.Confirm()
	}
}

// Draw renders the game and any open dialog.
func (e *Engine) Draw(screen *ebiten.Image) {
	e.surface.Render(&canvas{dst: screen})
	if e.dialog != nil {
		e.button = drawDialog(screen, *e.dialog)
	}
}

// Layout forwards the window size to the surface, one surface pixel per
// device-independent pixel.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.width || outsideHeight != e.height || !e.laidOut() {
		e.width, e.height = outsideWidth, outsideHeight
		e.surface.Layout(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func (e *Engine) laidOut() bool {
	w, h := e.surface.Bounds()
	return w != 0 || h != 0
}

// Surface exposes the hosted game.
func (e *Engine) Surface() *colordrop.Surface {
	return e.surface
}
