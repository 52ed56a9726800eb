package snake

import "time"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Score     int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Heading   string
	FoodX     int
	FoodY     int
	State     GameStateType
	Collision string
	Interval  time.Duration
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.state.GameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	head := g.state.Head()
	return Snapshot{
		Tick:      g.state.Ticks,
		Mode:      string(g.mode),
		Score:     g.state.Eaten,
		SnakeLen:  g.state.Len(),
		HeadX:     head.X,
		HeadY:     head.Y,
		Heading:   g.state.Heading.String(),
		FoodX:     g.state.Food.X,
		FoodY:     g.state.Food.Y,
		State:     state,
		Collision: g.state.Collision.String(),
		Interval:  g.TickInterval(),
	}
}
