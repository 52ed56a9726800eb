package tui

import (
	"testing"
	"time"
)

func TestGameTimerLifecycle(t *testing.T) {
	timer := newGameTimer()

	if timer.Accepts(TickMsg{ID: 0}) {
		t.Error("an unstarted timer should accept nothing")
	}

	if cmd := timer.Start(100 * time.Millisecond); cmd == nil {
		t.Fatal("Start() should schedule a tick")
	}
	live := TickMsg{ID: timer.id}
	if !timer.Accepts(live) {
		t.Error("live tick should be accepted")
	}
	if timer.Accepts(TickMsg{ID: timer.id - 1}) {
		t.Error("tick from an older chain should be rejected")
	}

	timer.Stop()
	if timer.Accepts(live) {
		t.Error("stopped timer should reject its own ticks")
	}
	if cmd := timer.Next(100 * time.Millisecond); cmd != nil {
		t.Error("stopped timer should not schedule")
	}
}

func TestGameTimerRestartsOnlyOnIntervalChange(t *testing.T) {
	timer := newGameTimer()
	timer.Start(200 * time.Millisecond)
	first := timer.id

	timer.Next(200 * time.Millisecond)
	if timer.id != first {
		t.Error("same interval should keep the chain")
	}

	timer.Next(150 * time.Millisecond)
	if timer.id == first {
		t.Error("new interval should start a new chain")
	}
	if timer.Interval() != 150*time.Millisecond {
		t.Errorf("Interval() = %v, expected 150ms", timer.Interval())
	}
	if timer.Accepts(TickMsg{ID: first}) {
		t.Error("old chain should be rejected after restart")
	}
}

func TestGameTimerIDsUniqueAcrossTimers(t *testing.T) {
	a, b := newGameTimer(), newGameTimer()
	a.Start(time.Second)
	b.Start(time.Second)

	if a.id == b.id {
		t.Fatal("timers should not share chain IDs")
	}
	if b.Accepts(TickMsg{ID: a.id}) {
		t.Error("a tick from another timer should be rejected")
	}
}
