// Package grid treats a 2D matrix of passable and blocked cells as a
// pathfinding world and answers route queries through A*.
//
// What:
//
//   - Grid wraps a rectangular [][]int where 0 is walkable and any other
//     value is a wall.
//   - Conn4 allows the four cardinal moves at cost 1; Conn8 adds the four
//     diagonals at cost √2.
//   - Graph exposes the walkable cells as a *core.Graph[Cell] for
//     arbitrary graph algorithms.
//   - FindPath pairs the grid with the matching admissible heuristic
//     (Manhattan for Conn4, Euclidean for Conn8) and runs astar.AStar.
//
// Why:
//
//   - Game maps: unit movement across tile worlds with walls.
//   - Robotics and planning: coarse occupancy grids.
//   - Any raster where travel cost is uniform per step.
//
// Complexity:
//
//   - New:      O(R×C) time and memory (deep copy).
//   - Graph:    O(R×C×d), d = 4 or 8 neighbors.
//   - FindPath: the astar bound, O((V+E) log V) over walkable cells.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: an endpoint lies outside the rectangle.
//   - ErrBlockedCell: an endpoint sits on a wall.
//   - astar.ErrNoPath: the goal is walled off (propagated unchanged).
package grid
