// Package bfs implements breadth-first search over a core.Graph.
//
// # Overview
//
// BFS explores a graph layer by layer: first every node one hop from the
// start, then every node two hops away, and so on. Because layers are
// exhausted in order, the first time a node is dequeued its hop count is
// already minimal. Edge weights are ignored entirely; when weights matter
// use package dijkstra (non-negative) or bellmanford (negative allowed).
//
// # When to use
//
//   - Fewest-hops routing: network hops, degrees of separation, word
//     ladders, anything where each step costs the same.
//   - Level-order processing: Result.Depth groups nodes by distance.
//   - Reachability and connectivity: Components splits a graph into its
//     connected groups.
//   - Enumerating ties: AllShortestPaths lists every hop-minimal route,
//     not just one.
//
// # Key features
//
//   - Generic over comparable node ids: strings, ints, small structs.
//   - Functional options: WithMaxDepth bounds the walk, WithMaxPaths caps
//     route enumeration. Invalid options surface as ErrOptionViolation.
//   - Deterministic: neighbors expand in edge-insertion order, so visit
//     order, chosen routes and component grouping are stable across runs.
//   - Early exit: ShortestPath stops the moment the destination is
//     dequeued.
//
// # Errors
//
//   - ErrNilGraph: the graph argument was nil.
//   - ErrNoPath: the destination is unreachable (ShortestPath, PathTo).
//   - ErrOptionViolation: an option carried an invalid value.
//   - ErrCorruptPath: a predecessor chain was mutated after the run.
//
// # API reference
//
//	res, err := bfs.BFS(g, start, opts...)      // full traversal
//	hops, path, err := bfs.ShortestPath(g, s, t) // one minimal route
//	routes, err := bfs.AllShortestPaths(g, s, t) // every minimal route
//	comps, err := bfs.Components(g)              // connected groups
//	path, err := res.PathTo(dest)                // rebuild from a Result
//
// # Thread safety
//
// Functions here only read the graph. Concurrent runs over the same graph
// are safe as long as no goroutine mutates it; a Result is owned by its
// caller.
//
// # See also
//
//   - core: the adjacency-list graph these walks run on.
//   - dijkstra, bellmanford, astar: weighted shortest paths.
package bfs
