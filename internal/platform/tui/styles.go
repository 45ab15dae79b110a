package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/color-drop/internal/core"
)

// styles holds lipgloss styles bound to one renderer.
type styles struct {
	dialog    lipgloss.Style
	title     lipgloss.Style
	button    lipgloss.Style
	hint      lipgloss.Style
	footer    lipgloss.Style
	separator string
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		dialog: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(1, 4).
			Align(lipgloss.Center),
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		button: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 2),
		hint: r.NewStyle().
			Foreground(lipgloss.Color("241")),
		footer: r.NewStyle().
			Foreground(lipgloss.Color("252")),
		separator: r.NewStyle().Foreground(lipgloss.Color("240")).Render(" • "),
	}
}

// renderDialog draws a modal dialog box.
func (s styles) renderDialog(d core.Dialog) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		s.title.Render(d.Title),
		"",
		d.Message,
		"",
		s.button.Render(d.Action),
		s.hint.Render("press enter"),
	)
	return s.dialog.Render(content)
}
