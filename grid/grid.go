// grid.go builds the grid, exposes its geometry and runs A* over it.

package grid

import (
	"fmt"
	"math"

	"github.com/wyrdian/pathfind/astar"
	"github.com/wyrdian/pathfind/core"
)

// New constructs a Grid from a non-empty, rectangular matrix. The input
// is deep-copied, so mutating values afterwards does not affect the grid.
// Cells holding 0 are passable; any other value blocks movement.
//
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
// Complexity: O(R×C) time and memory.
func New(values [][]int, conn Connectivity) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	// Deep copy keeps the grid immutable.
	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int, cols)
		copy(cells[r], values[r])
	}

	// Precompute neighbor steps. Cardinal moves cost 1; diagonal moves
	// under Conn8 cost √2.
	offsets := []offset{
		{-1, 0, 1}, {1, 0, 1}, {0, -1, 1}, {0, 1, 1},
	}
	if conn == Conn8 {
		offsets = append(offsets,
			offset{-1, -1, math.Sqrt2}, offset{-1, 1, math.Sqrt2},
			offset{1, -1, math.Sqrt2}, offset{1, 1, math.Sqrt2},
		)
	}

	return &Grid{rows: rows, cols: cols, cells: cells, conn: conn, offsets: offsets}, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid rectangle.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Passable reports whether c is inside the grid and free to stand on.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] == 0
}

// Graph converts the grid into a core.Graph over Cell ids. Every passable
// cell becomes a node; edges connect passable neighbors under the grid's
// connectivity, cardinal moves at weight 1 and diagonals at √2.
//
// Complexity: O(R×C×d) with d the neighbor count (4 or 8).
func (g *Grid) Graph() *core.Graph[Cell] {
	cg := core.New[Cell]()
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := Cell{Row: r, Col: c}
			if !g.Passable(cell) {
				continue
			}
			cg.AddNode(cell)
			for _, o := range g.offsets {
				to := Cell{Row: r + o.dr, Col: c + o.dc}
				if !g.Passable(to) {
					continue
				}
				_ = cg.AddEdge(cell, to, o.cost)
			}
		}
	}

	return cg
}

// FindPath runs A* between two passable cells and returns the cheapest
// route. The heuristic follows the connectivity: Manhattan distance for
// Conn4, straight-line Euclidean distance for Conn8. Both are admissible
// for their movement model, so the returned route is optimal.
//
// The adjacency graph is rebuilt on each call; hold on to Graph() when
// running many queries over one grid.
//
// Returns ErrOutOfBounds or ErrBlockedCell for bad endpoints and
// astar.ErrNoPath when the goal is walled off.
func (g *Grid) FindPath(start, goal Cell) (astar.Path[Cell], error) {
	for _, c := range []Cell{start, goal} {
		if !g.InBounds(c) {
			return astar.Path[Cell]{}, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
		if !g.Passable(c) {
			return astar.Path[Cell]{}, fmt.Errorf("%w: %v", ErrBlockedCell, c)
		}
	}

	var h astar.Heuristic[Cell] = Manhattan
	if g.conn == Conn8 {
		h = Euclidean
	}

	return astar.AStar(g.Graph(), start, goal, h)
}

// Manhattan returns |Δrow| + |Δcol|, the admissible heuristic for
// 4-connected movement.
func Manhattan(a, b Cell) float64 {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	return float64(dr + dc)
}

// Euclidean returns the straight-line distance between cell centers, the
// admissible heuristic for 8-connected movement with √2 diagonals.
func Euclidean(a, b Cell) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}
