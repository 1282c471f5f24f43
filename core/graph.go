package core

import (
	"fmt"
	"math"
)

// New returns an empty Graph keyed by T.
func New[T comparable]() *Graph[T] {
	return &Graph[T]{adj: make(map[T][]Edge[T])}
}

// AddNode registers id as a node of the graph. Adding an existing node is a
// no-op, so the call is safe to repeat.
//
// Complexity: O(1).
func (g *Graph[T]) AddNode(id T) {
	g.ensure(id)
}

// AddEdge appends a directed edge from→to with the given weight. Both
// endpoints are registered as nodes if not already present. Self-loops and
// parallel edges are allowed; negative weights are allowed.
//
// Returns ErrNonFiniteWeight when weight is NaN or ±Inf; the graph is left
// untouched in that case.
//
// Complexity: amortized O(1).
func (g *Graph[T]) AddEdge(from, to T, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNonFiniteWeight, from, to, weight)
	}

	g.ensure(from)
	g.ensure(to)
	g.adj[from] = append(g.adj[from], Edge[T]{To: to, Weight: weight})
	g.edges++

	return nil
}

// AddUndirectedEdge inserts the pair of arcs a→b and b→a, both carrying the
// given weight. EdgeCount grows by two.
func (g *Graph[T]) AddUndirectedEdge(a, b T, weight float64) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return err
	}

	return g.AddEdge(b, a, weight)
}

// Neighbors returns the outgoing edges of id in insertion order, or nil when
// id is not a node. The returned slice is the graph's internal storage and
// must not be modified by the caller.
//
// Complexity: O(1).
func (g *Graph[T]) Neighbors(id T) []Edge[T] {
	return g.adj[id]
}

// HasNode reports whether id has been registered, either directly via
// AddNode or as an endpoint of some edge.
func (g *Graph[T]) HasNode(id T) bool {
	_, ok := g.adj[id]

	return ok
}

// Nodes returns all node identifiers in first-insertion order. The slice is
// a copy and may be modified freely.
//
// Complexity: O(V).
func (g *Graph[T]) Nodes() []T {
	out := make([]T, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of registered nodes. O(1).
func (g *Graph[T]) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of directed arcs. O(1).
func (g *Graph[T]) EdgeCount() int {
	return g.edges
}

// Clone returns a deep copy of the graph. Mutating the clone never affects
// the original.
//
// Complexity: O(V+E).
func (g *Graph[T]) Clone() *Graph[T] {
	c := &Graph[T]{
		adj:   make(map[T][]Edge[T], len(g.adj)),
		order: make([]T, len(g.order)),
		edges: g.edges,
	}
	copy(c.order, g.order)

	for id, edges := range g.adj {
		if edges == nil {
			c.adj[id] = nil
			continue
		}
		dup := make([]Edge[T], len(edges))
		copy(dup, edges)
		c.adj[id] = dup
	}

	return c
}

// ensure registers id on first sight, preserving insertion order.
func (g *Graph[T]) ensure(id T) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
		g.order = append(g.order, id)
	}
}
