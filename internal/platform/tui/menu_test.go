package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func testMenu() MenuModel {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m.items = []MenuItem{
		{GameID: "classic", Title: "Snake (Classic)", Description: "strict"},
		{GameID: "modern", Title: "Snake (Modern)", Description: "relaxed", Best: 12},
	}
	return m
}

func menuUpdate(m MenuModel, key string) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(keyMsg(key))
	return next.(MenuModel), cmd
}

func TestMenuNavigation(t *testing.T) {
	m := testMenu()

	m, _ = menuUpdate(m, "up")
	if m.cursor != 1 {
		t.Errorf("cursor = %d, expected up from the top to wrap to 1", m.cursor)
	}
	m, _ = menuUpdate(m, "down")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected down from the bottom to wrap to 0", m.cursor)
	}
	m, _ = menuUpdate(m, "down")

	m, cmd := menuUpdate(m, "enter")
	if !isQuit(cmd) {
		t.Error("selecting should exit the menu program")
	}
	if m.Selected() == nil || m.Selected().GameID != "modern" {
		t.Errorf("Selected() = %+v, expected modern", m.Selected())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m, _ := menuUpdate(testMenu(), "tab")
	if !m.WantsScoreboard() {
		t.Error("tab should request the scoreboard")
	}

	m, _ = menuUpdate(testMenu(), "q")
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	next, _ := testMenu().Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := next.(MenuModel)

	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %+v, expected 120x40", cfg)
	}
}

func TestMenuView(t *testing.T) {
	view := testMenu().View()

	for _, want := range []string{menuBanner[0], "Snake (Classic)", "Snake (Modern)", "best 12", "relaxed"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
	if strings.Contains(view, "best 0") {
		t.Error("modes without a score should not show a best")
	}
}
