package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/color-drop/internal/core"
)

// halfBlock draws the top dot in the foreground and the bottom dot in the
// background, so every terminal cell shows two vertically stacked dots.
const halfBlock = "▀"

// dotPair is the colors of the two dots sharing one terminal cell.
type dotPair struct {
	top, bottom core.Color
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	rows := (s.Height() + 1) / 2
	styles := make(map[dotPair]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*rows*4 + rows)

	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := pairAt(s, x, row)

			// Collect consecutive cells with the same colors
			n := 0
			for x < s.Width() && pairAt(s, x, row) == start {
				n++
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = r.NewStyle().
					Foreground(lipgloss.Color(start.top.Hex())).
					Background(lipgloss.Color(start.bottom.Hex()))
				styles[start] = style
			}
			sb.WriteString(style.Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

func pairAt(s *core.Screen, x, row int) dotPair {
	return dotPair{top: s.Get(x, row*2), bottom: s.Get(x, row*2+1)}
}
