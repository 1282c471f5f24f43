// Package bfs provides breadth-first traversal over a core.Graph and the
// hop-count shortest-path queries built on top of it. See doc.go for an
// overview and examples.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package. Wrap-aware: test with errors.Is.
var (
	// ErrNilGraph is returned when the *core.Graph argument is nil.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrNoPath is returned when the destination cannot be reached from
	// the start node.
	ErrNoPath = errors.New("bfs: no path exists")

	// ErrOptionViolation is returned when an Option carries an invalid
	// value, e.g. a negative depth limit.
	ErrOptionViolation = errors.New("bfs: option violation")

	// ErrCorruptPath is returned when a predecessor chain does not lead
	// back to the start node. It indicates a Result mutated after the run.
	ErrCorruptPath = errors.New("bfs: corrupt predecessor chain")
)

// Option configures a traversal via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds the knobs honored by BFS and AllShortestPaths.
type Options struct {
	// MaxDepth, if > 0, stops exploring past that many hops from the
	// start node. Zero means no limit.
	MaxDepth int

	// MaxPaths caps how many routes AllShortestPaths collects.
	MaxPaths int

	// first invalid option recorded during parsing
	err error
}

// DefaultOptions returns the baseline configuration:
//   - no depth limit (MaxDepth == 0)
//   - at most 10 routes from AllShortestPaths.
func DefaultOptions() Options {
	return Options{MaxDepth: 0, MaxPaths: 10}
}

// WithMaxDepth bounds the traversal depth.
//
//	d > 0  limit the walk to d hops from the start
//	d == 0 explicit "no limit"
//	d < 0  invalid; reported as ErrOptionViolation at run time
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative, got %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxPaths caps how many shortest routes AllShortestPaths returns.
// The cap must be positive; other values are reported as
// ErrOptionViolation at run time.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxPaths must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxPaths = n
	}
}

// Result carries the outcome of one BFS run. Only nodes actually reached
// appear in Depth and Predecessors; absence from Depth means the node was
// never visited (unreachable or cut off by WithMaxDepth).
type Result[T comparable] struct {
	// Source is the node the traversal started from.
	Source T

	// Order lists the visited nodes in dequeue order. The start node is
	// always first.
	Order []T

	// Depth maps each visited node to its hop count from Source.
	Depth map[T]int

	// Predecessors maps each visited node (except Source) to the node it
	// was discovered from.
	Predecessors map[T]T
}

// Reached reports whether the traversal visited node.
func (r *Result[T]) Reached(node T) bool {
	_, ok := r.Depth[node]

	return ok
}

// Predecessor returns the node dest was discovered from. ok is false for
// the source and for nodes the traversal never reached.
func (r *Result[T]) Predecessor(dest T) (T, bool) {
	p, ok := r.Predecessors[dest]

	return p, ok
}

// PathTo rebuilds the hop-minimal route Source → dest recorded by the run.
// Returns ErrNoPath if dest was never reached and ErrCorruptPath if the
// predecessor map no longer forms a chain back to Source.
func (r *Result[T]) PathTo(dest T) ([]T, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: from %v to %v", ErrNoPath, r.Source, dest)
	}

	return walkBack(r.Predecessors, r.Source, dest)
}

// walkBack follows preds from dest to source and returns the route in
// forward order. The walk is bounded by the map size so a tampered chain
// cannot loop forever.
func walkBack[T comparable](preds map[T]T, source, dest T) ([]T, error) {
	limit := len(preds) + 1
	path := []T{}
	cur := dest
	for cur != source {
		path = append(path, cur)
		if len(path) > limit {
			return nil, fmt.Errorf("%w: cycle while walking back from %v", ErrCorruptPath, dest)
		}
		prev, ok := preds[cur]
		if !ok {
			return nil, fmt.Errorf("%w: chain from %v breaks at %v", ErrCorruptPath, dest, cur)
		}
		cur = prev
	}
	path = append(path, source)

	// Reverse in place: the walk collected dest → source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
