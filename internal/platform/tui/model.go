package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/metrics"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// roundReporter is implemented by games that describe a finished round.
type roundReporter interface {
	Length() int
	GameOverCause() string
}

// Model is the Bubble Tea model for one game screen.
// It owns the game's tick timer: started when the screen opens, stopped on
// game over, back or quit, and restarted when the game asks for a new interval.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	timer      *gameTimer
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int
	quitting   bool
	backToMenu bool
	exitOnBack bool // Standalone programs quit instead of returning to a menu
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		timer:      newGameTimer(),
		inputFrame: core.NewInputFrame(),
	}
	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			m.best = best
		}
	}
	return m
}

// Init resets the game and starts the tick timer.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	metrics.GameStarted(m.game.ID())
	return m.timer.Start(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
// Actions are queued in press order and applied on the next tick; restart,
// back and quit act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.timer.Stop()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.timer.Stop()
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			return m.restart()
		}
		return m, nil

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// restart begins a new round and a new timer chain.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.game.Restart()
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.inputFrame.Clear()
	metrics.GameStarted(m.game.ID())
	return m, m.timer.Start(m.game.TickInterval())
}

// handleResize processes window resize events.
// The game re-lays itself out; the round in progress continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.timer.Accepts(msg) {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Ate {
		metrics.FoodEaten(m.game.ID())
	}

	if m.gameState.GameOver {
		m.timer.Stop()
		m.finishRound()
		return m, nil
	}

	return m, m.timer.Next(m.game.TickInterval())
}

// finishRound records the round once per game over.
func (m *Model) finishRound() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	length, cause := 0, "unknown"
	if r, ok := m.game.(roundReporter); ok {
		length = r.Length()
		cause = r.GameOverCause()
	}
	metrics.GameOver(m.game.ID(), cause, m.gameState.Score)

	if m.gameState.Score > m.best {
		m.best = m.gameState.Score
	}
	if m.store != nil && m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.config.Player, m.gameState.Score, length)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	best := fmt.Sprintf("Best: %d ", max(m.best, m.gameState.Score))
	m.screen.DrawTextColored(m.screen.Width()-len(best), 0, best, core.ColorYellow)

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Best returns the best score known for the game's mode.
func (m Model) Best() int {
	return m.best
}

// Run starts a standalone Bubble Tea program for the game.
// Returns true if the user quit rather than going back.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (quit bool, err error) {
	model := NewModel(game, store, cfg)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return true, err
	}
	if fm, ok := final.(Model); ok {
		return fm.IsQuitting(), nil
	}
	return true, nil
}
