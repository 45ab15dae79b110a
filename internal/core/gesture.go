package core

// Pointer receives the three phases of a drag gesture.
type Pointer interface {
	Press(p Vec) bool
	Move(p Vec) bool
	Release(p Vec) bool
}

// Gesture converts polled pointer state into Press/Move/Release calls.
// Hosts that sample input once per frame (rather than receiving events)
// feed it the button state and position every frame.
type Gesture struct {
	down bool
	last Vec
}

// Active returns true while a gesture is in progress.
func (g *Gesture) Active() bool {
	return g.down
}

// Sample records the pointer state for this frame and dispatches the
// matching phase to dst. Unchanged positions while held produce no Move.
func (g *Gesture) Sample(dst Pointer, down bool, pos Vec) {
	switch {
	case down && !g.down:
		g.down = true
		g.last = pos
		dst.Press(pos)
	case down && g.down:
		if pos != g.last {
			g.last = pos
			dst.Move(pos)
		}
	case !down && g.down:
		g.down = false
		dst.Release(g.last)
	}
}

// Cancel drops the current gesture without dispatching a release.
func (g *Gesture) Cancel() {
	g.down = false
}
