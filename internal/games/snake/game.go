// Package snake adapts the Snake engine to the platform Game interface.
// It owns mode selection, pause, screen layout and rendering; every
// movement rule lives in the engine package.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/engine"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Mode selects the rule set.
type Mode string

const (
	ModeClassic Mode = "classic" // Strict tail collision, food may land under the snake
	ModeModern  Mode = "modern"  // Tail chasing allowed, food only on free cells
)

// hudHeight is the HUD line plus its separator.
const hudHeight = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(ModeModern), func() registry.Game {
		return NewModern()
	})
}

// Game implements registry.Game for Snake.
type Game struct {
	mode Mode

	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	engine     *engine.Engine
	state      engine.State
	rng        *rand.Rand // Seeds each engine restart

	tickOverride time.Duration
	paused       bool

	// Layout (computed from screen size)
	screenW  int
	screenH  int
	field    core.Rect // Board including its border
	tooSmall bool
}

// New creates a classic mode Snake game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewModern creates a modern mode Snake game.
func NewModern() *Game {
	return &Game{mode: ModeModern}
}

// ID returns the game identifier, which is also the mode name.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeModern {
		return "Snake (Modern)"
	}
	return "Snake (Classic)"
}

// Description summarizes the mode's rules for menus.
func (g *Game) Description() string {
	if g.mode == ModeModern {
		return "Chase your own tail; food never spawns under the snake"
	}
	return "Strict rules; touching any segment ends the round"
}

// Mode returns the game's rule set name.
func (g *Game) Mode() Mode {
	return g.mode
}

// Rules returns the engine rules for the game's mode with any config
// overrides applied.
func (g *Game) Rules() engine.Rules {
	rules := engine.Rules{
		AllowTailChase: g.cfg.Rules.AllowTailChase,
		RerollFood:     g.cfg.Rules.RerollFood,
	}
	if g.mode == ModeModern {
		rules.AllowTailChase = true
		rules.RerollFood = true
	}
	return rules
}

// Reset loads configuration, seeds the game and starts a fresh round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.tickOverride = runtime.TickInterval
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.Restart()
}

// Restart begins a new round with the same configuration.
// Food placement continues from the game's seed, so repeated rounds differ
// but a whole session replays identically for the same seed.
func (g *Game) Restart() {
	board := engine.Board{
		CellSize:      g.cfg.Board.CellSize,
		GridDimension: g.cfg.Board.GridDimension,
	}
	eng, err := engine.New(board, g.Rules(), g.rng.Int63())
	if err != nil {
		// Config validation guarantees a usable board; fall back anyway.
		eng, _ = engine.New(engine.DefaultBoard(), g.Rules(), g.rng.Int63())
	}
	g.engine = eng
	g.state = eng.Restart()
	g.paused = false
}

// Resize recomputes the layout for a new terminal size.
// The round in progress is kept; a too-small terminal suspends it.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	grid := g.cfg.Board.GridDimension
	fieldW := grid*2 + 2
	fieldH := grid + 2

	g.tooSmall = w < fieldW || h < fieldH+hudHeight
	if g.tooSmall {
		g.field = core.Rect{}
		return
	}

	area := core.NewRect(0, hudHeight, w, h-hudHeight)
	g.field = area.Centered(fieldW, fieldH)
}

// Step applies queued input and advances the snake by one cell.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.state.GameOver {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.state.GameOver || g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		if h, ok := headingFor(a); ok {
			g.state = g.engine.SetHeading(g.state, h)
		}
	}

	before := g.state.Eaten
	g.state = g.engine.Tick(g.state)

	return core.StepResult{
		State: g.State(),
		Ate:   g.state.Eaten > before,
	}
}

func headingFor(a core.Action) (engine.Heading, bool) {
	switch a {
	case core.ActionUp:
		return engine.HeadingUp, true
	case core.ActionDown:
		return engine.HeadingDown, true
	case core.ActionLeft:
		return engine.HeadingLeft, true
	case core.ActionRight:
		return engine.HeadingRight, true
	default:
		return 0, false
	}
}

// TickInterval returns the period between steps at the current score.
func (g *Game) TickInterval() time.Duration {
	if g.tickOverride > 0 {
		return g.tickOverride
	}
	if g.difficulty == nil {
		return config.DefaultSnakeConfig().Timing.TickInterval()
	}
	return g.difficulty.TickInterval(
		g.cfg.Timing.TickInterval(),
		g.cfg.Timing.MinTickInterval(),
		g.state.Eaten,
		g.state.Ticks,
	)
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Eaten,
		GameOver: g.state.GameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Length returns the current snake length.
func (g *Game) Length() int {
	return g.state.Len()
}

// GameOverCause names what ended the round, or "none" while it runs.
func (g *Game) GameOverCause() string {
	return g.state.Collision.String()
}

// EngineState returns a copy of the current engine state.
func (g *Game) EngineState() engine.State {
	return g.state.Clone()
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		need := fmt.Sprintf("Need %dx%d", g.cfg.Board.GridDimension*2+2, g.cfg.Board.GridDimension+2+hudHeight)
		g.renderOverlay(dst, "Window too small", need)
		return
	}

	dst.DrawBox(g.field, core.ColorGray)
	g.renderFood(dst)
	g.renderSnake(dst)

	switch {
	case g.state.GameOver:
		g.renderOverlay(dst, "Game Over: hit "+describeCollision(g.state.Collision), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func describeCollision(c engine.Collision) string {
	switch c {
	case engine.CollisionWall:
		return "the wall"
	case engine.CollisionSelf:
		return "yourself"
	default:
		return "something"
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Length: %d  Speed: %dms",
		g.Title(), g.state.Eaten, g.state.Len(), g.TickInterval().Milliseconds())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// cellOrigin maps an engine cell to the screen position of its left column.
func (g *Game) cellOrigin(c engine.Cell) (int, int, bool) {
	board := g.engine.Board()
	if !board.Contains(c) {
		return 0, 0, false
	}
	col, row := board.GridPos(c)
	return g.field.X + 1 + col*2, g.field.Y + 1 + row, true
}

func (g *Game) renderFood(dst *core.Screen) {
	if x, y, ok := g.cellOrigin(g.state.Food); ok {
		dst.SetColored(x, y, '█', core.ColorRed)
		dst.SetColored(x+1, y, '█', core.ColorRed)
	}
}

func (g *Game) renderSnake(dst *core.Screen) {
	last := len(g.state.Snake) - 1
	for i, seg := range g.state.Snake {
		x, y, ok := g.cellOrigin(seg)
		if !ok {
			continue
		}
		color := core.ColorGreen
		if i == last {
			color = core.ColorBrightGreen
		}
		dst.SetColored(x, y, '█', color)
		dst.SetColored(x+1, y, '█', color)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := dst.Bounds().Centered(maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCenteredColored(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}
