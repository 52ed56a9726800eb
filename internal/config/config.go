// Package config provides YAML-based game configuration loading and
// difficulty management for Snake.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	CellSize      int `yaml:"cell_size"`
	GridDimension int `yaml:"grid_dimension"`
}

// TimingConfig defines the simulation period.
type TimingConfig struct {
	TickIntervalMs    int `yaml:"tick_interval_ms"`
	MinTickIntervalMs int `yaml:"min_tick_interval_ms"`
}

// TickInterval returns the base period between simulation steps.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickIntervalMs) * time.Millisecond
}

// MinTickInterval returns the fastest period progression may reach.
func (t TimingConfig) MinTickInterval() time.Duration {
	return time.Duration(t.MinTickIntervalMs) * time.Millisecond
}

// RulesConfig toggles gameplay variants.
type RulesConfig struct {
	AllowTailChase bool `yaml:"allow_tail_chase"`
	RerollFood     bool `yaml:"reroll_food"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Speed gain at max difficulty
}

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.CellSize <= 0:
		return fmt.Errorf("%w: board.cell_size must be positive, got %d", ErrInvalidConfig, c.Board.CellSize)
	case c.Board.GridDimension < 3:
		return fmt.Errorf("%w: board.grid_dimension must be at least 3, got %d", ErrInvalidConfig, c.Board.GridDimension)
	case c.Timing.TickIntervalMs <= 0:
		return fmt.Errorf("%w: timing.tick_interval_ms must be positive, got %d", ErrInvalidConfig, c.Timing.TickIntervalMs)
	case c.Timing.MinTickIntervalMs <= 0:
		return fmt.Errorf("%w: timing.min_tick_interval_ms must be positive, got %d", ErrInvalidConfig, c.Timing.MinTickIntervalMs)
	case c.Timing.MinTickIntervalMs > c.Timing.TickIntervalMs:
		return fmt.Errorf("%w: timing.min_tick_interval_ms (%d) exceeds tick_interval_ms (%d)",
			ErrInvalidConfig, c.Timing.MinTickIntervalMs, c.Timing.TickIntervalMs)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return fmt.Errorf("%w: difficulty.initial_level must be within [0, 1], got %g", ErrInvalidConfig, c.Difficulty.InitialLevel)
	case c.Difficulty.Scaling.SpeedMultiplier < 0:
		return fmt.Errorf("%w: difficulty.scaling.speed_multiplier must not be negative", ErrInvalidConfig)
	}

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		return fmt.Errorf("%w: unknown difficulty.progression.type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty preset %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
