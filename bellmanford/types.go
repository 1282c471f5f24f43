// Package bellmanford defines the result types and sentinel errors for the
// Bellman-Ford implementation.
package bellmanford

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed in.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNegativeCycle indicates that a negative-weight cycle is reachable
	// from the source, so shortest distances are undefined (any path through
	// the cycle can be pumped arbitrarily low).
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle reachable from source")

	// ErrNoPath indicates that no path exists from the source to the
	// requested target, or that the target is not a node of the graph.
	ErrNoPath = errors.New("bellmanford: no path exists")

	// ErrCorruptPath indicates an inconsistent predecessor chain. A
	// correctly produced Result never triggers it.
	ErrCorruptPath = errors.New("bellmanford: predecessor chain is corrupt")
)

// Result holds the outcome of one Bellman-Ford run. The shape matches
// dijkstra.Result so the two algorithms are drop-in replacements for each
// other on non-negative graphs:
//   - Source: the node the run started from.
//   - Distances: map from node to shortest distance; +Inf marks a node the
//     source cannot reach.
//   - Predecessors: map from each reached node (Source excluded) to the node
//     before it on one shortest path; absence of a key means no predecessor.
type Result[T comparable] struct {
	Source       T
	Distances    map[T]float64
	Predecessors map[T]T
}

// Distance returns the shortest distance to v and whether v is known to the
// result. Unknown nodes report (+Inf, false).
func (r *Result[T]) Distance(v T) (float64, bool) {
	d, ok := r.Distances[v]
	if !ok {
		return math.Inf(1), false
	}

	return d, true
}

// Predecessor returns the node preceding v on a shortest path from Source,
// with false when v has none (source, unreached, or unknown).
func (r *Result[T]) Predecessor(v T) (T, bool) {
	p, ok := r.Predecessors[v]

	return p, ok
}

// Reached reports whether a path from Source to v exists.
func (r *Result[T]) Reached(v T) bool {
	d, ok := r.Distances[v]

	return ok && !math.IsInf(d, 1)
}

// Path is one concrete shortest path, endpoints included.
type Path[T comparable] struct {
	// Distance is the total weight along Nodes; negative totals are normal
	// here.
	Distance float64
	// Nodes lists the path in travel order, source first, target last.
	Nodes []T
}

// PathTo rebuilds the shortest path from the run's source to target.
//
// Returns ErrNoPath when target is unreachable or unknown, ErrCorruptPath
// when the predecessor chain loops or ends away from the source (possible
// only if the Result maps were tampered with).
func (r *Result[T]) PathTo(target T) (Path[T], error) {
	d, ok := r.Distances[target]
	if !ok || math.IsInf(d, 1) {
		return Path[T]{}, fmt.Errorf("%w: from %v to %v", ErrNoPath, r.Source, target)
	}

	// build reversed path; a simple chain cannot outgrow the predecessor set
	limit := len(r.Predecessors) + 1
	path := []T{}
	cur := target
	for {
		path = append(path, cur)
		prev, ok := r.Predecessors[cur]
		if !ok {
			break
		}
		if len(path) > limit {
			return Path[T]{}, fmt.Errorf("%w: cycle while walking back from %v", ErrCorruptPath, target)
		}
		cur = prev
	}
	if cur != r.Source {
		return Path[T]{}, fmt.Errorf("%w: chain from %v ends at %v, not at source %v", ErrCorruptPath, target, cur, r.Source)
	}

	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Path[T]{Distance: d, Nodes: path}, nil
}
