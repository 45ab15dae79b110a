// Package colordrop implements the color drop game.
// Colored circles are dragged onto a target zone whose color cycles through
// the colors still on the board. Emptying the board wins the round.
package colordrop

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-drop/internal/config"
	"github.com/vovakirdan/color-drop/internal/core"
)

// noDrag marks the absence of a dragged circle.
const noDrag = -1

// Surface owns the game state, draws it, and interprets drag gestures.
// It is not safe for concurrent use; hosts call it from one goroutine.
type Surface struct {
	cfg  config.Config
	host core.Host
	gen  *Generator
	log  *log.Logger

	circles     []Circle
	targetIndex int
	dragging    int // index into circles, or noDrag
	targetZone  core.Rect

	width, height float64
	seeded        bool // board generated for the current round
	matches       int  // match events in the current round
	rounds        int  // rounds started, including the first
}

// New creates a surface reporting to host. A nil host ignores redraw and
// dialog requests; a nil logger discards log output.
func New(cfg config.Config, host core.Host, seed int64, logger *log.Logger) *Surface {
	if host == nil {
		host = core.NopHost{}
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Surface{
		cfg:      cfg,
		host:     host,
		gen:      NewGenerator(seed, cfg.Board.Radius, cfg.Generator.MaxAttempts),
		log:      logger,
		dragging: noDrag,
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// Layout records the surface bounds, positions the target zone, and
// generates the first board once bounds are known. Empty bounds defer
// generation to a later call.
func (s *Surface) Layout(width, height float64) {
	s.width = width
	s.height = height
	t := s.cfg.Target
	top := height - t.BottomInset
	s.targetZone = core.NewRect(t.Left, top, t.Left+t.Width, top+t.Height)

	if !s.seeded && len(s.circles) == 0 && width > 0 && height > 0 {
		s.seed()
	}
}

// seed fills the board with a fresh set of circles.
func (s *Surface) seed() {
	forced := s.gen.Forced
	s.circles = s.gen.Generate(s.cfg.Board.Circles, s.circles, s.width, s.height)
	s.seeded = true
	s.rounds++
	if n := s.gen.Forced - forced; n > 0 {
		s.log.Warn("board too crowded, some circles may overlap",
			"forced", n, "width", s.width, "height", s.height)
	}
	s.log.Debug("board generated", "round", s.rounds, "circles", len(s.circles))
}

// TargetColor returns the color the player must currently match.
// Falls back to the first circle, then to black when the board is empty.
func (s *Surface) TargetColor() core.Color {
	if s.targetIndex >= 0 && s.targetIndex < len(s.circles) {
		return s.circles[s.targetIndex].Color
	}
	if len(s.circles) > 0 {
		return s.circles[0].Color
	}
	return core.ColorBlack
}

// Render draws the background, the target zone and every circle in order.
func (s *Surface) Render(dst core.Canvas) {
	dst.Fill(core.ColorWhite)
	dst.FillRect(s.targetZone, s.TargetColor())
	for _, c := range s.circles {
		dst.FillCircle(c.Center, c.Radius, c.Color)
	}
}

// Press starts dragging the first circle containing p, if any.
func (s *Surface) Press(p core.Vec) bool {
	s.dragging = noDrag
	for i, c := range s.circles {
		if c.Contains(p) {
			s.dragging = i
			break
		}
	}
	return true
}

// Move drags the held circle to p.
func (s *Surface) Move(p core.Vec) bool {
	if s.dragging == noDrag {
		return true
	}
	s.circles[s.dragging].Center = p
	s.host.Invalidate()
	return true
}

// Release drops the held circle. A circle of the target color dropped
// inside the target zone is removed from the board.
func (s *Surface) Release(_ core.Vec) bool {
	if s.dragging == noDrag {
		return true
	}

	it := s.circles[s.dragging]
	if s.targetZone.Contains(it.Center) && it.Color == s.TargetColor() {
		s.circles = append(s.circles[:s.dragging], s.circles[s.dragging+1:]...)
		s.matches++
		s.advance()
	}

	s.dragging = noDrag
	s.host.Invalidate()
	return true
}

// advance moves the target to the next color after a match and reports
// victory once the board is empty.
func (s *Surface) advance() {
	s.targetIndex++

	// The target color is re-read at the current index on every check.
	for s.targetIndex < len(s.circles) && !s.hasColor(s.TargetColor()) {
		s.targetIndex++
	}

	if s.targetIndex >= len(s.circles) && len(s.circles) > 0 {
		s.targetIndex = 0
	}

	if len(s.circles) == 0 {
		s.log.Info("round won", "round", s.rounds, "matches", s.matches)
		s.host.ShowDialog(core.Dialog{
			Title:     s.cfg.Victory.Title,
			Message:   s.cfg.Victory.Message,
			Action:    s.cfg.Victory.Action,
			OnConfirm: s.Restart,
		})
	}
}

func (s *Surface) hasColor(c core.Color) bool {
	for _, circle := range s.circles {
		if circle.Color == c {
			return true
		}
	}
	return false
}

// Restart clears the board and generates a new round. Before the first
// Layout the new board is deferred until bounds are known.
func (s *Surface) Restart() {
	s.circles = s.circles[:0]
	s.targetIndex = 0
	s.dragging = noDrag
	s.matches = 0
	s.seeded = false
	if s.width > 0 && s.height > 0 {
		s.seed()
	}
	s.host.Invalidate()
}

// Bounds returns the size passed to the last Layout call.
func (s *Surface) Bounds() (width, height float64) {
	return s.width, s.height
}

// TargetZone returns the drop area.
func (s *Surface) TargetZone() core.Rect {
	return s.targetZone
}
