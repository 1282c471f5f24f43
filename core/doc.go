// Package core provides the weighted adjacency-list graph shared by every
// algorithm package in pathfind.
//
// Overview:
//
//   - Graph[T] maps a node identifier of any comparable type T to the ordered
//     list of its outgoing edges. Neighbor order is edge-insertion order.
//   - Edges are directed and weighted. Undirected connections are modeled as
//     a pair of arcs (see AddUndirectedEdge).
//   - Weights must be finite: NaN and ±Inf are rejected at insertion, so no
//     downstream distance arithmetic can ever produce a NaN. Negative weights
//     are allowed here; algorithms that forbid them (dijkstra, astar) validate
//     that on entry.
//   - Nodes(), and every traversal order derived from it, follows first
//     insertion order, which keeps repeated runs deterministic.
//
// The algorithm packages only read a Graph. A run borrows the graph for the
// duration of one call and never mutates it, so concurrent runs over the same
// graph are safe as long as nothing mutates it at the same time. The Graph
// itself takes no locks.
//
// Typical construction:
//
//	g := core.New[string]()
//	g.AddEdge("A", "B", 4)
//	g.AddEdge("A", "C", 2)
//	g.AddEdge("B", "C", 1)
//
// Errors:
//
//	ErrNonFiniteWeight - edge weight was NaN or ±Inf
package core
