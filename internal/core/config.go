package core

import "time"

// RuntimeConfig is handed to a game on Reset.
// It describes the terminal the game draws into and seeds its RNG.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Overrides the game's configured tick interval when > 0
	Seed         int64         // RNG seed; 0 lets the platform pick one
	Player       string        // Name scores are recorded under
}

// DefaultConfig returns a RuntimeConfig for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	// Ate is true when food was eaten during this step.
	Ate bool
}
