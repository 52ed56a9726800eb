package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newBoardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, s := range []struct {
		mode  string
		score int
	}{
		{"classic", 12}, {"classic", 30}, {"classic", 4}, {"modern", 9},
	} {
		if _, err := store.SaveScore(s.mode, "tester", s.score, s.score+2); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}
	return store
}

func newBoard(t *testing.T, store *storage.Store, width int) ScoreboardModel {
	t.Helper()
	m := NewScoreboardModel(store, width, 30)
	// Pin the modes so the test does not depend on what else is registered
	m.modes = []registry.GameInfo{
		{ID: "classic", Title: "Snake (Classic)"},
		{ID: "modern", Title: "Snake (Modern)"},
	}
	m.selectMode(0)
	return m
}

func updateBoard(t *testing.T, m ScoreboardModel, msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sb, cmd
}

func TestScoreboardRowsOrdered(t *testing.T) {
	m := newBoard(t, newBoardStore(t), 100)

	if m.CurrentMode() != "classic" {
		t.Fatalf("CurrentMode() = %q, want classic", m.CurrentMode())
	}
	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	for i, want := range []string{"30", "12", "4"} {
		if rows[i][1] != want {
			t.Errorf("row %d score = %q, want %q", i, rows[i][1], want)
		}
	}
	if rows[0][2] != "32" {
		t.Errorf("row 0 length = %q, want 32", rows[0][2])
	}
}

func TestScoreboardSwitchesModes(t *testing.T) {
	m := newBoard(t, newBoardStore(t), 100)

	m, _ = updateBoard(t, m, keyMsg("tab"))
	if m.CurrentMode() != "modern" {
		t.Fatalf("after tab CurrentMode() = %q, want modern", m.CurrentMode())
	}
	if n := len(m.table.Rows()); n != 1 {
		t.Errorf("modern rows = %d, want 1", n)
	}

	// Wraps around in both directions
	m, _ = updateBoard(t, m, keyMsg("right"))
	if m.CurrentMode() != "classic" {
		t.Errorf("next from last mode = %q, want classic", m.CurrentMode())
	}
	m, _ = updateBoard(t, m, keyMsg("left"))
	if m.CurrentMode() != "modern" {
		t.Errorf("prev from first mode = %q, want modern", m.CurrentMode())
	}
}

func TestScoreboardView(t *testing.T) {
	m := newBoard(t, newBoardStore(t), 100)
	view := m.View()

	for _, want := range []string{"HIGH SCORES", "Snake (Classic)", "Snake (Modern)", "Best per mode", "3 rounds", "longest snake 32"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	narrow := newBoard(t, newBoardStore(t), 60)
	if strings.Contains(narrow.View(), "Best per mode") {
		t.Error("summary panel should be hidden on narrow terminals")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := newBoard(t, nil, 80)

	if len(m.table.Rows()) != 0 {
		t.Error("expected no rows without a store")
	}
	if !strings.Contains(m.View(), "No rounds recorded yet") {
		t.Error("expected empty message without a store")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := newBoard(t, nil, 80)
	back, cmd := updateBoard(t, m, keyMsg("esc"))
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should go back, not quit")
	}
	if cmd == nil {
		t.Error("back should end the scoreboard program")
	}
	if back.View() != "" {
		t.Error("view should be empty after leaving")
	}

	quit, _ := updateBoard(t, m, keyMsg("q"))
	if !quit.IsQuitting() || quit.IsGoingBack() {
		t.Error("q should quit, not go back")
	}
}

func TestScoreboardResize(t *testing.T) {
	m := newBoard(t, newBoardStore(t), 60)
	m, _ = updateBoard(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if !m.showSummary() {
		t.Error("summary should appear after widening the terminal")
	}
	if len(m.table.Rows()) != 3 {
		t.Error("resize should keep the loaded rows")
	}
}
