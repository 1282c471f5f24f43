// Package grid defines the cell addressing, connectivity modes and
// sentinel errors for the grid adapter. See doc.go for an overview.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid rectangle.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrBlockedCell indicates a start or goal sitting on a blocked cell.
	ErrBlockedCell = errors.New("grid: cell is blocked")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell addresses one square of the grid, zero-based from the top-left
// corner. Cells are comparable values and serve directly as core.Graph
// node ids.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// offset is one precomputed neighbor step with its movement cost.
type offset struct {
	dr, dc int
	cost   float64
}

// Grid wraps a rectangular matrix where 0 marks a passable cell and any
// other value a blocked one. It is immutable once built.
type Grid struct {
	rows, cols int
	cells      [][]int
	conn       Connectivity
	offsets    []offset
}
