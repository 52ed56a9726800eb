package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: classic).

Modes:
  classic - Touching any segment ends the round; food may hide under the snake
  modern  - The snake may follow its own tail; food only spawns on free cells

Controls:
  Arrows/WASD/HJKL - Steer
  P/Space          - Pause
  R                - Restart (after game over)
  B/Esc            - Back
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start, speeds up as you score
  normal - Starts at 30% difficulty, speeds up as you score
  hard   - Fast start at 70% difficulty
  fixed  - No progression, constant speed

Examples:
  snake play
  snake play modern
  snake play --difficulty hard
  snake play --tick 120ms --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := string(snake.ModeClassic)
	if len(args) == 1 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q (run 'snake list' to see available modes)", mode)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, runtimeConfig())

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	cfg.TickInterval = flagTick
	cfg.Seed = flagSeed
	cfg.Player = currentPlayer()
	return cfg
}
