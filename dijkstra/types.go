// Package dijkstra defines the result types and configuration options for
// Dijkstra's shortest-path algorithm on non-negatively weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes. The algorithm maintains a priority queue of nodes to
// explore and relaxes edges in increasing order of distance from the source.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |nodes|, E = |edges|
//	   • Each node is extracted from the priority queue at most once (V extracts).
//	   • Each edge relaxation may push into the priority queue (up to E pushes).
//	   • Each heap operation costs O(log N) with N ≤ V + E, simplified to O(log V).
//	– Space: O(V + E)
//	   • O(V) to store the distance and predecessor maps.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– WithTarget(t):      stop as soon as t is finalized; maps cover only the
//	                      explored region but the path to t is exact.
//	– WithMaxDistance(x): nodes farther than x from the source stay unreached.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrNegativeWeight if a negative edge weight is detected in the graph.
//	– ErrNoPath         if PathTo is asked for an unreachable or unknown target.
//	– ErrCorruptPath    if a predecessor chain does not lead back to the source.
//	– ErrBadMaxDistance if WithMaxDistance was given a negative or NaN limit.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that no path exists from the source to the
	// requested target, or that the target is not a node of the graph.
	ErrNoPath = errors.New("dijkstra: no path exists")

	// ErrCorruptPath indicates that a predecessor chain is inconsistent:
	// walking it either loops or stops somewhere other than the source.
	// A correctly produced Result never triggers it.
	ErrCorruptPath = errors.New("dijkstra: predecessor chain is corrupt")

	// ErrBadMaxDistance indicates that WithMaxDistance was given a negative
	// or NaN limit, which is not meaningful for a distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of a Dijkstra run.
//
// Target      – optional early-exit node; honored only when HasTarget is set.
// MaxDistance – cap on distances to explore. Must be ≥ 0. Default is +Inf
// (no cap). Nodes exactly at the cap are still finalized.
type Options[T comparable] struct {
	Target      T       // Early-exit node, meaningful only if HasTarget
	HasTarget   bool    // Whether Target was supplied
	MaxDistance float64 // Maximum distance to explore

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
// An invalid value (e.g. a negative MaxDistance) is recorded internally and
// surfaced as an error when the algorithm is invoked.
type Option[T comparable] func(*Options[T])

// DefaultOptions returns an Options struct with sensible defaults:
// no target (run to exhaustion) and no distance cap.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{MaxDistance: math.Inf(1)}
}

// WithTarget stops the run as soon as target is finalized. The first time the
// target surfaces from the priority queue its distance is already minimal, so
// nothing farther needs exploring. Distances and Predecessors then cover only
// the explored region; PathTo(target) remains exact.
func WithTarget[T comparable](target T) Option[T] {
	return func(o *Options[T]) {
		o.Target = target
		o.HasTarget = true
	}
}

// WithMaxDistance caps exploration at the given limit. Nodes whose shortest
// distance exceeds the limit are left unreached (+Inf). The type parameter
// cannot be inferred from the argument, so instantiate at the call site:
//
//	dijkstra.WithMaxDistance[string](300)
//
// A negative or NaN limit causes ErrBadMaxDistance.
func WithMaxDistance[T comparable](limit float64) Option[T] {
	return func(o *Options[T]) {
		if math.IsNaN(limit) || limit < 0 {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, limit)
			return
		}
		o.MaxDistance = limit
	}
}

// Result holds the outcome of one Dijkstra run:
//   - Source: the node the run started from.
//   - Distances: map from node to its shortest distance from Source;
//     +Inf marks a node known to the graph but unreachable from Source.
//   - Predecessors: map from each reached node (Source excluded) to the node
//     immediately before it on one shortest path. A node absent from the map
//     has no predecessor.
type Result[T comparable] struct {
	Source       T
	Distances    map[T]float64
	Predecessors map[T]T
}

// Distance returns the shortest distance to v and whether v is known to the
// result at all. Unknown nodes report (+Inf, false); known-but-unreachable
// nodes report (+Inf, true).
func (r *Result[T]) Distance(v T) (float64, bool) {
	d, ok := r.Distances[v]
	if !ok {
		return math.Inf(1), false
	}

	return d, true
}

// Predecessor returns the node preceding v on a shortest path from Source.
// The second return is false when v has no predecessor, i.e. v is the source
// itself, unreached, or unknown.
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
	// Distance is the total weight along Nodes.
	Distance float64
	// Nodes lists the path in travel order, source first, target last.
	// A path from a node to itself is the single-element list.
	Nodes []T
}

// PathTo rebuilds the shortest path from the run's source to target by
// walking the predecessor chain backward and reversing it.
//
// Returns ErrNoPath when target is unreachable or not known to the result,
// and ErrCorruptPath when the chain loops or ends away from the source
// (possible only if the Result maps were tampered with).
//
// Complexity: O(L) where L is the path length.
func (r *Result[T]) PathTo(target T) (Path[T], error) {
	d, ok := r.Distances[target]
	if !ok || math.IsInf(d, 1) {
		return Path[T]{}, fmt.Errorf("%w: from %v to %v", ErrNoPath, r.Source, target)
	}

	// build reversed path; a simple chain cannot have more steps than there
	// are predecessor entries
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

	// the walk must terminate at the source
	if cur != r.Source {
		return Path[T]{}, fmt.Errorf("%w: chain from %v ends at %v, not at source %v", ErrCorruptPath, target, cur, r.Source)
	}

	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Path[T]{Distance: d, Nodes: path}, nil
}
