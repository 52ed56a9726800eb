package main

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresJSON  bool
	flagScoresClear bool
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores for the specified mode.

Examples:
  snake scores classic
  snake scores modern --limit 20
  snake scores classic --json
  snake scores classic --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresJSON, "json", false, "Print scores as JSON")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

// scoresReport is the --json output shape.
type scoresReport struct {
	Mode   string               `json:"mode"`
	Best   int                  `json:"best"`
	Scores []storage.ScoreEntry `json:"scores"`
}

func runScores(cmd *cobra.Command, args []string) error {
	mode := args[0]
	out := cmd.OutOrStdout()

	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q (run 'snake list' to see available modes)", mode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		n, err := store.ClearScores(mode)
		if err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		logger.Info("scores cleared", "mode", mode, "removed", n)
		fmt.Fprintf(out, "Removed %d scores for %s.\n", n, mode)
		return nil
	}

	scores, err := store.TopScores(mode, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("fetching scores: %w", err)
	}

	if flagScoresJSON {
		best := 0
		if len(scores) > 0 {
			best = scores[0].Score
		}
		if scores == nil {
			scores = []storage.ScoreEntry{}
		}
		data, err := json.MarshalIndent(scoresReport{Mode: mode, Best: best, Scores: scores}, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding scores: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(scores) == 0 {
		fmt.Fprintf(out, "No scores recorded for %s yet.\n", mode)
		return nil
	}

	fmt.Fprintf(out, "High Scores for %s:\n\n", mode)
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-12s  %s\n", "Rank", "Score", "Length", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-12s  %s\n", "----", "-----", "------", "------", "----")

	for i, s := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-12s  %s\n",
			i+1, s.Score, s.Length, truncate(s.Player, 12), s.CreatedAt.Local().Format(time.DateTime))
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
