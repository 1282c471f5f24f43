// Package core defines the graph value types used across pathfind.
package core

import "errors"

// ErrNonFiniteWeight is returned by AddEdge and AddUndirectedEdge when the
// supplied weight is NaN or ±Inf.
var ErrNonFiniteWeight = errors.New("core: edge weight must be finite")

// Edge is one directed, weighted connection out of a node.
type Edge[T comparable] struct {
	// To is the node this edge points at.
	To T
	// Weight is the cost of traversing the edge. Always finite, may be
	// negative or zero.
	Weight float64
}

// Graph is a directed, weighted adjacency-list graph keyed by node
// identifiers of any comparable type T.
//
// The zero value is not usable; construct with New.
type Graph[T comparable] struct {
	// adj maps a node to its outgoing edges in insertion order. A node with
	// no outgoing edges maps to a nil slice.
	adj map[T][]Edge[T]
	// order lists node identifiers in first-insertion order, so that Nodes()
	// and everything iterating over it stays deterministic.
	order []T
	// edges counts directed arcs (an undirected edge counts twice).
	edges int
}
