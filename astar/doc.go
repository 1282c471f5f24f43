// Package astar provides A* search over weighted graphs: Dijkstra's
// algorithm steered toward a goal by a heuristic estimate.
//
// Overview:
//
//   - The open set is a min-heap ordered by f = g + h, where g is the exact
//     cost from the start and h(node, goal) estimates the remaining cost.
//   - The first pop of the goal ends the search; with an admissible h the
//     returned path is optimal, and regions the heuristic rules out are never
//     expanded at all.
//   - Like package dijkstra this uses lazy decrease-key: improvements push
//     duplicate heap entries and stale pops are discarded against the closed
//     set.
//
// Choosing a heuristic:
//
//   - Admissible (never overestimates) ⇒ the result is exact.
//   - Consistent (h(u) ≤ w(u,v) + h(v)) ⇒ additionally no node is ever
//     expanded twice; grid distances like Manhattan and Euclidean (package
//     grid) are consistent for their movement models.
//   - Zero ⇒ plain Dijkstra order, still exact.
//   - Inadmissible ⇒ the search still terminates but may settle for a
//     suboptimal path; useful only when speed beats exactness.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilHeuristic: invalid inputs, checked first.
//   - ErrNegativeWeight: A* shares Dijkstra's non-negativity requirement; a
//     fast O(E) pre-scan rejects offending graphs with the edge in the
//     message.
//   - ErrNoPath: the open set drained before the goal surfaced, wrapped with
//     both endpoints.
//   - ErrCorruptPath: reconstruction refused an inconsistent predecessor
//     chain (normally unreachable).
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case; heuristic-dependent in practice.
//   - Space: O(V + E).
//
// See also:
//
//   - dijkstra.Dijkstra: the uninformed baseline, and the better choice when
//     all distances from one source are wanted.
//   - grid.FindPath: A* over rectangular grids with ready-made heuristics.
package astar
