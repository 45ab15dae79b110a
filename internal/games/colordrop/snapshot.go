package colordrop

import "github.com/vovakirdan/color-drop/internal/core"

// Snapshot is a read-only copy of the game state.
type Snapshot struct {
	Circles     []Circle
	TargetIndex int
	TargetColor core.Color
	Dragging    int // index into Circles, or -1
	TargetZone  core.Rect
	Matches     int
	Round       int
}

// Snapshot returns a copy of the current state.
func (s *Surface) Snapshot() Snapshot {
	circles := make([]Circle, len(s.circles))
	copy(circles, s.circles)
	return Snapshot{
		Circles:     circles,
		TargetIndex: s.targetIndex,
		TargetColor: s.TargetColor(),
		Dragging:    s.dragging,
		TargetZone:  s.targetZone,
		Matches:     s.matches,
		Round:       s.rounds,
	}
}

// Won reports whether the board has been cleared in the current round.
func (s Snapshot) Won() bool {
	return s.Round > 0 && len(s.Circles) == 0
}

// Dragged returns the circle being dragged, if any.
func (s Snapshot) Dragged() (Circle, bool) {
	if s.Dragging < 0 || s.Dragging >= len(s.Circles) {
		return Circle{}, false
	}
	return s.Circles[s.Dragging], true
}
