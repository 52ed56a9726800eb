// Package engine implements the snake state machine: movement, wall and
// self collision, growth and food placement. Transitions are pure functions
// from one State to the next; nothing here knows about terminals or timers.
package engine

import "fmt"

// Cell is a board position in pixel-aligned coordinates.
// Both components are multiples of the board's cell size.
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}
