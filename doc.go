// Package pathfind is an in-memory toolkit for single-source shortest
// paths: build a weighted graph, pick the algorithm that matches your
// edge weights, and get distances and routes back.
//
// What ships in the box:
//
//	core/        — generic adjacency-list Graph[T] with ordered, weighted edges
//	bfs/         — breadth-first traversal, fewest-hop routes, components
//	dijkstra/    — non-negative weights, binary heap, early exit and cost caps
//	astar/       — heuristic-guided search for spatial graphs
//	bellmanford/ — negative weights and negative-cycle detection
//	grid/        — 2D tile maps as graphs, with ready-made A* heuristics
//
// Picking an algorithm:
//
//   - bfs when every hop costs the same.
//   - dijkstra when weights are non-negative.
//   - astar when you can estimate the remaining distance to a goal.
//   - bellmanford when weights may dip below zero.
//
// Quick ASCII example:
//
//	A ──4── B
//	│       │
//	2       5
//	│       │
//	C ──1── D
//
// here the cheapest A to D route is A → C → D at cost 3, found by
// dijkstra.ShortestPath in one call.
//
// Node identifiers are any comparable Go type: city names, integers,
// grid cells, struct keys. All packages share the same conventions, so
// swapping algorithms rarely means rewriting call sites.
//
//	go get github.com/wyrdian/pathfind
package pathfind
