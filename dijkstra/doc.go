// Package dijkstra provides a precise, high-performance implementation of
// Dijkstra's shortest-path algorithm on graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source node to all
//     reachable nodes in O((V + E) log V) time, where V = |nodes|, E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the
//     next-closest node, with lazy decrease-key (duplicate pushes, stale
//     entries discarded on pop).
//   - Works over core.Graph[T] for any comparable node type: city names,
//     integers, grid cells, struct keys.
//
// When to use:
//
//   - Whenever you need guaranteed shortest paths on a static, non-negatively
//     weighted graph: road networks, routing tables, cost maps.
//   - As the exact baseline for heuristic searches (see package astar).
//   - Use package bellmanford instead when edges can be negative, and package
//     bfs when all edges count the same (hop distance).
//
// Key features:
//
//   - Result bundles distances and predecessors from one run; PathTo
//     reconstructs any concrete path in O(path length).
//   - WithTarget(t) stops at the first pop of t, touching only the part of
//     the graph closer than t. The reported path and distance stay exact.
//   - WithMaxDistance(x) bounds exploration to the ball of radius x around
//     the source; everything farther reports +Inf.
//   - Unreachable nodes are +Inf rather than an error; absence of a
//     predecessor is map-key absence, not a magic zero value.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil graph to Dijkstra or ShortestPath.
//   - ErrNegativeWeight:
//     Returned if any edge carries a negative weight (detected by a fast
//     O(E) pre-scan, wrapped with the offending edge).
//   - ErrNoPath:
//     Returned by PathTo and ShortestPath when the target cannot be reached,
//     wrapped with both endpoints.
//   - ErrCorruptPath:
//     Returned by PathTo if the predecessor maps were tampered with; a chain
//     that loops or misses the source is refused instead of looping forever.
//   - ErrBadMaxDistance:
//     Returned when WithMaxDistance was given a negative or NaN limit.
//
// API reference:
//
//	func Dijkstra[T comparable](
//	    g *core.Graph[T], source T, opts ...Option[T],
//	) (*Result[T], error)
//
//	func ShortestPath[T comparable](
//	    g *core.Graph[T], source, target T, opts ...Option[T],
//	) (Path[T], error)
//
//	  - g:      pointer to a core.Graph with non-negative weights.
//	  - source: node to measure distances from. A source unknown to the graph
//	            is tolerated; it reports distance 0 to itself and +Inf
//	            everywhere else.
//	  - opts:   zero or more functional options:
//	      • WithTarget(t):                 stop once t is finalized.
//	      • WithMaxDistance[T](x):         explore only distances ≤ x.
//
// Determinism:
//
//   - Distances are fully determined by the graph. When several shortest
//     paths tie, which one the predecessor map records depends on edge
//     insertion order; the reported distance never varies.
//
// Thread safety:
//
//   - A run only reads the graph, keeps all mutable state on its own stack,
//     and returns fresh maps. Concurrent runs over one graph are safe as
//     long as nothing mutates the graph meanwhile.
//
// See also:
//
//   - core.Graph: graph construction.
//   - astar.AStar: goal-directed search with an admissible heuristic.
//   - bellmanford.BellmanFord: shortest paths with negative edges.
package dijkstra
