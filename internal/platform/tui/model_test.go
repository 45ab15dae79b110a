package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-drop/internal/config"
	"github.com/vovakirdan/color-drop/internal/core"
	"github.com/vovakirdan/color-drop/internal/games/colordrop"
)

func newTestModel(t *testing.T, snapshotDir string) Model {
	t.Helper()
	m := NewModel(Options{
		Config:      config.Default(),
		Seed:        7,
		SnapshotDir: snapshotDir,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// cellOf returns the terminal cell covering a surface point.
func cellOf(m Model, p core.Vec) (int, int) {
	return int(p.X / m.dotSize), int(p.Y / (2 * m.dotSize))
}

func mouse(action tea.MouseAction, col, row int) tea.MouseMsg {
	return tea.MouseMsg{X: col, Y: row, Action: action, Button: tea.MouseButtonLeft}
}

// dragToZone drags circle c into the target zone with mouse events.
func dragToZone(t *testing.T, m Model, c colordrop.Circle) Model {
	t.Helper()
	col, row := cellOf(m, c.Center)
	m = send(t, m, mouse(tea.MouseActionPress, col, row))
	m = send(t, m, mouse(tea.MouseActionMotion, 6, 17))
	return send(t, m, mouse(tea.MouseActionRelease, 6, 17))
}

func TestResizeLaysOutSurface(t *testing.T) {
	m := newTestModel(t, "")

	w, h := m.Surface().Bounds()
	if w != 1600 || h != 920 {
		t.Errorf("surface bounds = %vx%v, expected 1600x920", w, h)
	}
	if n := len(m.Surface().Snapshot().Circles); n != 5 {
		t.Errorf("expected 5 circles after first resize, got %d", n)
	}
	if m.screen.Width() != 80 || m.screen.Height() != 46 {
		t.Errorf("screen = %dx%d dots, expected 80x46", m.screen.Width(), m.screen.Height())
	}
	if zone := m.Surface().TargetZone(); !zone.Contains(m.cellCenter(6, 17)) {
		t.Errorf("cell (6, 17) should map inside target zone %+v", zone)
	}
}

func TestMouseDragMovesCircle(t *testing.T) {
	m := newTestModel(t, "")
	snap := m.Surface().Snapshot()

	// Pick a circle that is not the current target so it stays on the board.
	idx := -1
	for i, c := range snap.Circles {
		if c.Color != snap.TargetColor {
			idx = i
			break
		}
	}
	if idx == -1 {
		t.Skip("every circle has the target color")
	}

	m = dragToZone(t, m, snap.Circles[idx])

	after := m.Surface().Snapshot()
	if len(after.Circles) != 5 {
		t.Fatalf("non-matching drop removed a circle")
	}
	if after.Circles[idx].Center != m.cellCenter(6, 17) {
		t.Errorf("circle center = %v, expected %v", after.Circles[idx].Center, m.cellCenter(6, 17))
	}
	if after.Dragging != -1 {
		t.Error("drag should end on release")
	}
}

func TestClearBoardShowsDialogAndBlocksInput(t *testing.T) {
	m := newTestModel(t, "")

	for range 5 {
		snap := m.Surface().Snapshot()
		var target colordrop.Circle
		for _, c := range snap.Circles {
			if c.Color == snap.TargetColor {
				target = c
				break
			}
		}
		m = dragToZone(t, m, target)
	}

	d, ok := m.Dialog()
	if !ok {
		t.Fatal("expected victory dialog after clearing the board")
	}
	if !strings.Contains(m.View(), d.Title) {
		t.Error("view should show the dialog title")
	}

	// Mouse input is ignored while the dialog is open.
	m = send(t, m, mouse(tea.MouseActionPress, 1, 1))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if len(m.Surface().Snapshot().Circles) != 0 {
		t.Fatal("board should stay empty until the dialog is confirmed")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.Dialog(); ok {
		t.Error("dialog should close on confirm")
	}
	snap := m.Surface().Snapshot()
	if len(snap.Circles) != 5 || snap.TargetIndex != 0 {
		t.Errorf("restart: %d circles, target %d", len(snap.Circles), snap.TargetIndex)
	}
}

func TestRestartKey(t *testing.T) {
	m := newTestModel(t, "")
	before := m.Surface().Snapshot()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	after := m.Surface().Snapshot()
	if after.Round != before.Round+1 {
		t.Errorf("round = %d, expected %d", after.Round, before.Round+1)
	}
	if len(after.Circles) != 5 {
		t.Errorf("expected 5 circles, got %d", len(after.Circles))
	}
}

func TestSnapshotKey(t *testing.T) {
	m := newTestModel(t, "")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.status != "snapshots disabled" {
		t.Errorf("status = %q", m.status)
	}

	dir := t.TempDir()
	m = newTestModel(t, dir)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(m.status, "saved ") {
		t.Fatalf("status = %q, expected saved", m.status)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected one snapshot file, got %d", len(entries))
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, "")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewHasBoardAndFooter(t *testing.T) {
	m := newTestModel(t, "")
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Errorf("view has %d lines, expected 24", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "left 5") {
		t.Errorf("footer = %q, expected remaining count", lines[len(lines)-1])
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(3, 3)
	s.Set(0, 0, core.RGB(255, 0, 0))

	out := RenderScreen(NewModel(Options{Config: config.Default()}).renderer, s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("3 dot rows should render as 2 lines, got %d", len(lines))
	}
	if n := strings.Count(out, halfBlock); n != 6 {
		t.Errorf("expected 6 half blocks, got %d", n)
	}
}
