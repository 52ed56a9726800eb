package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func seedScores(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	for _, s := range []struct {
		mode   string
		player string
		score  int
	}{
		{"classic", "alice", 12},
		{"classic", "bob", 30},
		{"modern", "carol", 7},
	} {
		if _, err := store.SaveScore(s.mode, s.player, s.score, s.score+3); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}
	return path
}

func TestListShowsModes(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"classic", "modern", "Snake (Classic)"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestScoresTable(t *testing.T) {
	db := seedScores(t)

	out, err := execute(t, "scores", "classic", "--db", db, "--json=false", "--clear=false")
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	if !strings.Contains(out, "High Scores for classic") {
		t.Errorf("missing header:\n%s", out)
	}
	if strings.Index(out, "bob") > strings.Index(out, "alice") {
		t.Errorf("expected bob (30) ranked above alice (12):\n%s", out)
	}
	if strings.Contains(out, "carol") {
		t.Errorf("modern score leaked into classic table:\n%s", out)
	}
}

func TestScoresJSON(t *testing.T) {
	db := seedScores(t)

	out, err := execute(t, "scores", "classic", "--db", db, "--json", "--clear=false", "--limit", "1")
	if err != nil {
		t.Fatalf("scores --json failed: %v", err)
	}

	var report scoresReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if report.Mode != "classic" || report.Best != 30 {
		t.Errorf("report = %+v, want mode classic best 30", report)
	}
	if len(report.Scores) != 1 || report.Scores[0].Player != "bob" {
		t.Errorf("scores = %+v, want only bob", report.Scores)
	}
}

func TestScoresClear(t *testing.T) {
	db := seedScores(t)

	out, err := execute(t, "scores", "classic", "--db", db, "--json=false", "--clear")
	if err != nil {
		t.Fatalf("scores --clear failed: %v", err)
	}
	if !strings.Contains(out, "Removed 2 scores") {
		t.Errorf("unexpected output: %s", out)
	}

	out, err = execute(t, "scores", "classic", "--db", db, "--json=false", "--clear=false")
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	if !strings.Contains(out, "No scores recorded") {
		t.Errorf("expected empty table after clear, got: %s", out)
	}

	out, err = execute(t, "scores", "modern", "--db", db, "--json=false", "--clear=false")
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	if !strings.Contains(out, "carol") {
		t.Errorf("clearing classic removed modern scores: %s", out)
	}
}

func TestScoresUnknownMode(t *testing.T) {
	_, err := execute(t, "scores", "tron", "--db", filepath.Join(t.TempDir(), "s.db"))
	if err == nil || !strings.Contains(err.Error(), "unknown mode") {
		t.Fatalf("expected unknown mode error, got %v", err)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "list", "--log-level", "loud")
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
	if _, err := execute(t, "list", "--log-level", "info"); err != nil {
		t.Fatalf("resetting log level failed: %v", err)
	}
}

func TestApplyGameFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	tests := []struct {
		name       string
		difficulty string
		config     string
		tick       string
		wantErr    bool
	}{
		{"defaults", "", "", "0s", false},
		{"hard preset", "hard", "", "0s", false},
		{"unknown preset", "insane", "", "0s", true},
		{"missing config", "", filepath.Join(t.TempDir(), "nope.yaml"), "0s", true},
		{"negative tick", "", "", "-1s", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for name, value := range map[string]string{
				"difficulty": tt.difficulty,
				"config":     tt.config,
				"tick":       tt.tick,
			} {
				if err := rootCmd.PersistentFlags().Set(name, value); err != nil {
					t.Fatalf("setting --%s: %v", name, err)
				}
			}
			t.Cleanup(func() {
				flagDifficulty, flagConfig, flagTick = "", "", 0
				snake.SetConfigPath("")
				snake.SetDifficultyPreset("")
			})

			err := applyGameFlags()
			if (err != nil) != tt.wantErr {
				t.Errorf("applyGameFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"[::1]:22":       "22",
		"no-port-at-all": "no-port-at-all",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, want %q", addr, got, want)
		}
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir for older toolchains).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
