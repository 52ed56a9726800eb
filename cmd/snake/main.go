// snake is a terminal Snake game with local play, an SSH server and a
// persistent scoreboard.
//
// Usage:
//
//	snake list               - List available modes
//	snake play [mode]        - Play a mode (default: classic)
//	snake menu               - Start menu to pick modes interactively
//	snake serve              - Start SSH server for remote play
//	snake scores <mode>      - Show high scores for a mode
//
// Global flags:
//
//	--tick <duration>   - Override the configured tick interval
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--config <path>     - Use a custom snake.yaml
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagTick       time.Duration
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "snake",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal version of the classic game: steer the snake,
eat the food, and don't hit the walls or yourself.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  snake list
  snake play
  snake play modern --difficulty hard
  snake menu
  snake serve --ssh :2222 --metrics :9090
  snake scores classic --json`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Tick interval override, e.g. 120ms (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return nil
}

// applyGameFlags validates --config, --difficulty and --tick and hands them
// to the game package before any game is created.
func applyGameFlags() error {
	if flagTick < 0 {
		return fmt.Errorf("--tick must not be negative, got %v", flagTick)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	// Load once up front so a broken file fails here rather than silently
	// falling back to defaults inside the game.
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	config.ApplySnakePreset(&cfg, preset)

	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(string(preset))

	logger.Debug("game config loaded",
		"path", flagConfig,
		"grid", cfg.Board.GridDimension,
		"tick", cfg.Timing.TickInterval(),
		"difficulty", preset,
	)
	return nil
}

// currentPlayer returns the name local scores are recorded under.
func currentPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
