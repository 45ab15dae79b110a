package core

// Canvas is the drawing target a host hands to the game on every redraw.
// Implementations must not retain the colors or geometry after returning.
type Canvas interface {
	// Fill paints the entire surface.
	Fill(c Color)
	// FillRect paints an axis-aligned rectangle.
	FillRect(r Rect, c Color)
	// FillCircle paints a filled disk.
	FillCircle(center Vec, radius float64, c Color)
}

// Dialog is a blocking confirmation with a single acknowledgement action.
type Dialog struct {
	Title   string
	Message string
	Action  string // Label of the acknowledgement button
	// OnConfirm is invoked by the host once the user acknowledges.
	OnConfirm func()
}

// Confirm runs the acknowledgement action, if any.
func (d Dialog) Confirm() {
	if d.OnConfirm != nil {
		d.OnConfirm()
	}
}

// Host is everything the game needs from the platform embedding it.
type Host interface {
	// Invalidate asks the host to redraw soon. Calls may be coalesced.
	Invalidate()
	// ShowDialog presents a modal dialog. The host must block pointer input
	// until the dialog is confirmed.
	ShowDialog(d Dialog)
}

// NopHost ignores every request. Useful for headless rendering.
type NopHost struct{}

func (NopHost) Invalidate() {}
func (NopHost) ShowDialog(Dialog) {}
