// Package tui provides the Bubble Tea host for the color drop game.
// It maps mouse events to drag gestures, draws the board with half-block
// characters, and serves the same game over SSH via Wish.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-drop/internal/config"
	"github.com/vovakirdan/color-drop/internal/core"
	"github.com/vovakirdan/color-drop/internal/games/colordrop"
	"github.com/vovakirdan/color-drop/internal/snapshot"
)

// footerRows is the number of terminal rows below the board.
const footerRows = 1

// Options configures a terminal game session.
type Options struct {
	Config      config.Config
	Seed        int64              // 0 means use current time
	SnapshotDir string             // Where ctrl+s writes PNGs; empty disables snapshots
	Logger      *log.Logger        // nil discards
	Renderer    *lipgloss.Renderer // nil uses the default renderer
}

// host receives redraw and dialog requests from the surface.
// It lives behind a pointer so the value-receiver model can share it.
type host struct {
	dirty  bool
	dialog *core.Dialog
}

func (h *host) Invalidate() {
	h.dirty = true
}

func (h *host) ShowDialog(d core.Dialog) {
	h.dialog = &d
	h.dirty = true
}

// frame caches the last rasterized board.
type frame struct {
	text string
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	surface  *colordrop.Surface
	host     *host
	screen   *core.Screen
	raster   *core.Raster
	frame    *frame
	renderer *lipgloss.Renderer
	styles   styles
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	dotSize     float64
	snapshotDir string
	width       int // terminal columns
	height      int // terminal rows
	status      string
	quitting    bool
}

// NewModel creates a new Bubble Tea model hosting one game surface.
func NewModel(opts Options) Model {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	h := &host{}
	screen := core.NewScreen(0, 0)
	return Model{
		surface:     colordrop.New(opts.Config, h, seed, logger),
		host:        h,
		screen:      screen,
		raster:      core.NewRaster(screen, opts.Config.Terminal.DotSize),
		frame:       &frame{},
		renderer:    renderer,
		styles:      newStyles(renderer),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		logger:      logger,
		dotSize:     opts.Config.Terminal.DotSize,
		snapshotDir: opts.SnapshotDir,
	}
}

// Init initializes the model. The board is generated on the first resize.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		if d := m.host.dialog; d != nil {
			m.host.dialog = nil
			d.Confirm()
			m.host.dirty = true
		}

	case key.Matches(msg, m.keys.Restart):
		if m.host.dialog == nil {
			m.surface.Restart()
			m.status = ""
		}

	case key.Matches(msg, m.keys.Snapshot):
		m.status = m.saveSnapshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleMouse turns mouse events into drag gestures.
// Pointer input is blocked while a dialog is open.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.host.dialog != nil {
		return m, nil
	}

	p := m.cellCenter(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.surface.Press(p)
		}
	case tea.MouseActionMotion:
		m.surface.Move(p)
	case tea.MouseActionRelease:
		m.surface.Release(p)
	}

	return m, nil
}

// cellCenter maps a terminal cell to the surface point at its center.
// A cell is one dot wide and two dots tall.
func (m Model) cellCenter(col, row int) core.Vec {
	return core.Vec{
		X: (float64(col) + 0.5) * m.dotSize,
		Y: float64(2*row+1) * m.dotSize,
	}
}

// handleResize resizes the board and forwards the new bounds to the surface.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	rows := max(msg.Height-footerRows, 1)
	m.screen.Resize(msg.Width, rows*2)
	m.surface.Layout(float64(msg.Width)*m.dotSize, float64(rows*2)*m.dotSize)
	m.host.dirty = true

	m.logger.Debug("resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// saveSnapshot writes the board as a PNG and returns a status line.
func (m Model) saveSnapshot() string {
	if m.snapshotDir == "" {
		return "snapshots disabled"
	}
	w, h := m.surface.Bounds()
	path := snapshot.FileName(m.snapshotDir, time.Now())
	if err := snapshot.WritePNG(m.surface, int(w), int(h), path); err != nil {
		m.logger.Error("snapshot failed", "error", err)
		return "snapshot failed: " + err.Error()
	}
	m.logger.Info("snapshot saved", "path", path)
	return "saved " + path
}

// board returns the rasterized board, redrawing only after invalidation.
func (m Model) board() string {
	if m.host.dirty || m.frame.text == "" {
		m.surface.Render(m.raster)
		m.frame.text = RenderScreen(m.renderer, m.screen)
		m.host.dirty = false
	}
	return m.frame.text
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}

	rows := max(m.height-footerRows, 1)
	var body string
	if d := m.host.dialog; d != nil {
		body = m.renderer.Place(m.width, rows, lipgloss.Center, lipgloss.Center,
			m.styles.renderDialog(*d),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	} else {
		body = m.board()
	}

	return body + "\n" + m.footer()
}

// footer shows the target swatch, remaining circles and key help.
func (m Model) footer() string {
	snap := m.surface.Snapshot()
	var parts []string

	swatch := m.renderer.NewStyle().
		Background(lipgloss.Color(snap.TargetColor.Hex())).
		Render("  ")
	parts = append(parts, "target "+swatch)
	parts = append(parts, fmt.Sprintf("left %d", len(snap.Circles)))
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, m.help.View(m.keys))

	line := strings.Join(parts, m.styles.separator)
	return m.styles.footer.MaxWidth(max(m.width, 1)).Render(line)
}

// Surface exposes the hosted game.
func (m Model) Surface() *colordrop.Surface {
	return m.surface
}

// Dialog returns the open dialog, if any.
func (m Model) Dialog() (core.Dialog, bool) {
	if m.host.dialog == nil {
		return core.Dialog{}, false
	}
	return *m.host.dialog, true
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Report motion while a button is held
	)

	_, err := p.Run()
	return err
}
