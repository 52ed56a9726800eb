package engine

import (
	"math/rand"
)

// Rules selects variant behavior on top of the classic game.
type Rules struct {
	// AllowTailChase excludes the tail cell that is vacated this tick from
	// the self-collision check. Classic rules test against the whole body.
	AllowTailChase bool

	// RerollFood places food only on cells the snake does not occupy.
	// Classic rules sample the whole grid and may hide food under the body.
	RerollFood bool
}

// Collision is the cause of a game over.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// State is a complete, immutable-by-convention game state.
// Snake is ordered tail first; the head is the last element.
type State struct {
	Snake     []Cell
	Heading   Heading
	Food      Cell
	GameOver  bool
	Collision Collision // Why the game ended; CollisionNone while alive
	Eaten     int       // Food eaten since restart
	Ticks     uint64    // Successful moves since restart
}

// Head returns the snake's head cell.
func (s State) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[len(s.Snake)-1]
}

// Len returns the snake length.
func (s State) Len() int {
	return len(s.Snake)
}

// Occupies reports whether any snake segment sits on c.
func (s State) Occupies(c Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := s
	out.Snake = make([]Cell, len(s.Snake))
	copy(out.Snake, s.Snake)
	return out
}

// Engine applies transitions for one board and rule set.
// An Engine is not safe for concurrent use; each game owns its own.
type Engine struct {
	board Board
	rules Rules
	rng   *rand.Rand
}

// New creates an engine. The seed drives food placement.
func New(board Board, rules Rules, seed int64) (*Engine, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		board: board,
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}, nil
}

// Board returns the engine's board.
func (e *Engine) Board() Board {
	return e.board
}

// Rules returns the engine's rule set.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Restart returns the initial state: a two-cell snake at the origin
// heading right, with freshly placed food.
func (e *Engine) Restart() State {
	s := State{
		Snake: []Cell{
			C(0, 0),
			C(e.board.CellSize, 0),
		},
		Heading: HeadingRight,
	}
	s.Food = e.PlaceFood(s)
	return s
}

// SetHeading returns s steered toward h. Reversing onto the second
// segment is ignored, as are invalid headings.
func (e *Engine) SetHeading(s State, h Heading) State {
	if !h.Valid() || h == s.Heading.Reverse() {
		return s
	}
	s.Heading = h
	return s
}

// Tick advances s by one cell. A finished game is returned unchanged.
//
// The new head is checked against the walls first and then against the
// body as it was before the move. On a collision the game ends and nothing
// else changes. Otherwise the head is appended and either the tail is
// dropped or, when the head lands on food, the snake keeps its tail and new
// food is placed.
func (e *Engine) Tick(s State) State {
	if s.GameOver || len(s.Snake) == 0 {
		return s
	}

	next := e.board.Step(s.Head(), s.Heading)
	eating := next == s.Food

	if c := e.collision(s, next, eating); c != CollisionNone {
		s.GameOver = true
		s.Collision = c
		return s
	}

	body := make([]Cell, 0, len(s.Snake)+1)
	if eating {
		body = append(body, s.Snake...)
	} else {
		body = append(body, s.Snake[1:]...)
	}
	body = append(body, next)

	s.Snake = body
	s.Ticks++
	if eating {
		s.Eaten++
		s.Food = e.PlaceFood(s)
	}
	return s
}

func (e *Engine) collision(s State, head Cell, eating bool) Collision {
	if !e.board.Contains(head) {
		return CollisionWall
	}

	body := s.Snake
	if e.rules.AllowTailChase && !eating {
		body = body[1:]
	}
	for _, seg := range body {
		if seg == head {
			return CollisionSelf
		}
	}
	return CollisionNone
}

// PlaceFood picks a food cell for s.
//
// Classic rules sample column and row independently and uniformly over the
// grid without looking at the snake. With RerollFood the choice is uniform
// over free cells, falling back to the classic sample on a full board.
func (e *Engine) PlaceFood(s State) Cell {
	if !e.rules.RerollFood {
		return e.randomCell()
	}

	occupied := make(map[Cell]bool, len(s.Snake))
	for _, seg := range s.Snake {
		occupied[seg] = true
	}

	g := e.board.GridDimension
	free := make([]Cell, 0, g*g-len(occupied))
	for row := 0; row < g; row++ {
		for col := 0; col < g; col++ {
			c := e.board.CellAt(col, row)
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return e.randomCell()
	}
	return free[e.rng.Intn(len(free))]
}

func (e *Engine) randomCell() Cell {
	g := e.board.GridDimension
	col := e.rng.Intn(g)
	row := e.rng.Intn(g)
	return e.board.CellAt(col, row)
}
