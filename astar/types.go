// Package astar defines the heuristic contract, result types and sentinel
// errors for the A* search implementation.
package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to AStar.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates that no heuristic function was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrNoPath indicates that the goal cannot be reached from the start.
	ErrNoPath = errors.New("astar: no path exists")

	// ErrCorruptPath indicates an inconsistent predecessor chain during
	// reconstruction. A search that ran to completion never triggers it.
	ErrCorruptPath = errors.New("astar: predecessor chain is corrupt")
)

// Heuristic estimates the remaining cost from node to goal. A* calls it once
// per generated node.
//
// For optimal paths the heuristic must be admissible: it never overestimates
// the true remaining cost. Estimates must be non-negative and finite; the
// zero function (see Zero) degrades A* gracefully into Dijkstra's algorithm.
// An inadmissible heuristic still terminates but may return a suboptimal
// path.
type Heuristic[T comparable] func(node, goal T) float64

// Zero is the all-zeroes heuristic. With it, A* expands nodes in exactly
// Dijkstra order. Instantiate to pass it: astar.Zero[string].
func Zero[T comparable](_, _ T) float64 { return 0 }

// Path is one concrete route from start to goal, endpoints included.
type Path[T comparable] struct {
	// Distance is the total edge weight along Nodes.
	Distance float64
	// Nodes lists the route in travel order, start first, goal last.
	// A route from a node to itself is the single-element list.
	Nodes []T
}

// reconstruct rebuilds start → goal from the cameFrom chain written during
// the search, refusing to walk a chain that loops or misses the start.
func reconstruct[T comparable](cameFrom map[T]T, start, goal T) ([]T, error) {
	limit := len(cameFrom) + 1
	path := []T{}
	cur := goal
	for {
		path = append(path, cur)
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		if len(path) > limit {
			return nil, fmt.Errorf("%w: cycle while walking back from %v", ErrCorruptPath, goal)
		}
		cur = prev
	}
	if cur != start {
		return nil, fmt.Errorf("%w: chain from %v ends at %v, not at start %v", ErrCorruptPath, goal, cur, start)
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
