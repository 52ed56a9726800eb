// Package tui provides the Bubble Tea integration for Snake.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID identifies the timer chain that scheduled it.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

// timerSeq hands out chain IDs unique across every model in the process,
// so a tick from a closed game can never drive a newer one.
var timerSeq atomic.Uint64

// gameTimer is a self-rescheduling tick chain owned by one game screen.
// Ticks carry the chain ID; anything from an earlier or stopped chain is
// rejected by Accepts.
type gameTimer struct {
	id       uint64
	interval time.Duration
	running  bool
}

func newGameTimer() *gameTimer {
	return &gameTimer{}
}

// Start begins a new chain, invalidating any tick already in flight.
func (t *gameTimer) Start(interval time.Duration) tea.Cmd {
	t.id = timerSeq.Add(1)
	t.interval = interval
	t.running = true
	return t.schedule()
}

// Stop ends the chain. Pending ticks are dropped when they arrive.
func (t *gameTimer) Stop() {
	t.running = false
}

// Next schedules the tick after the one just handled.
// A changed interval restarts the chain; a stopped timer schedules nothing.
func (t *gameTimer) Next(interval time.Duration) tea.Cmd {
	if !t.running {
		return nil
	}
	if interval != t.interval {
		return t.Start(interval)
	}
	return t.schedule()
}

// Accepts reports whether msg belongs to the live chain.
func (t *gameTimer) Accepts(msg TickMsg) bool {
	return t.running && msg.ID == t.id
}

// Running reports whether the chain is live.
func (t *gameTimer) Running() bool {
	return t.running
}

// Interval returns the chain's current period.
func (t *gameTimer) Interval() time.Duration {
	return t.interval
}

func (t *gameTimer) schedule() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, Time: now}
	})
}
