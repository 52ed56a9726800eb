package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidBoard is returned for boards that cannot host a snake.
var ErrInvalidBoard = errors.New("engine: invalid board")

// MinGridDimension is the smallest grid that fits the starting snake
// with room to turn.
const MinGridDimension = 3

// Board describes the square playing field.
type Board struct {
	CellSize      int // Pixel size of one grid unit
	GridDimension int // Number of cells per board side
}

// DefaultBoard is the classic 15x15 board of 20px cells.
func DefaultBoard() Board {
	return Board{CellSize: 20, GridDimension: 15}
}

// Validate checks that the board is usable.
func (b Board) Validate() error {
	if b.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidBoard, b.CellSize)
	}
	if b.GridDimension < MinGridDimension {
		return fmt.Errorf("%w: grid dimension must be at least %d, got %d",
			ErrInvalidBoard, MinGridDimension, b.GridDimension)
	}
	return nil
}

// Size returns the board side length in pixels.
func (b Board) Size() int {
	return b.CellSize * b.GridDimension
}

// Contains reports whether c lies within [0, Size) on both axes.
func (b Board) Contains(c Cell) bool {
	size := b.Size()
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// Step returns the cell one grid unit from c in direction h.
func (b Board) Step(c Cell, h Heading) Cell {
	dx, dy := h.Delta()
	return c.Add(dx*b.CellSize, dy*b.CellSize)
}

// GridPos converts a cell to column and row indices.
func (b Board) GridPos(c Cell) (col, row int) {
	return c.X / b.CellSize, c.Y / b.CellSize
}

// CellAt converts column and row indices to a cell.
func (b Board) CellAt(col, row int) Cell {
	return Cell{X: col * b.CellSize, Y: row * b.CellSize}
}
