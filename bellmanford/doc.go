// Package bellmanford provides single-source shortest paths that tolerate
// negative edge weights, plus negative-cycle detection.
//
// Overview:
//
//   - Distances start at +Inf and relax in rounds: every edge is offered
//     once per round, and a round that changes nothing ends the run. After
//     V−1 rounds every simple path has had the chance to form, so any edge
//     that still improves proves a negative cycle.
//   - BellmanFord returns the same Result shape as package dijkstra:
//     distances map with +Inf for unreachable nodes, predecessor map with
//     absence meaning "no predecessor", PathTo reconstruction.
//   - DetectNegativeCycle returns one offending cycle as a closed node list
//     (first element repeated last) instead of just saying "yes".
//
// When to use:
//
//   - Edge weights can be negative: discounts, energy regain, log-space
//     multiplication. For strictly non-negative weights package dijkstra is
//     asymptotically better, O((V+E) log V) against O(V·E).
//   - Arbitrage detection: price a conversion u→v with weight −ln(rate);
//     a cycle whose rates multiply above 1 turns into a negative cycle.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:      nil graph pointer.
//   - ErrNegativeCycle: a negative cycle is reachable from the source, so no
//     finite shortest distances exist; returned by BellmanFord and
//     ShortestPath.
//   - ErrNoPath:        target unreachable or unknown in PathTo/ShortestPath.
//   - ErrCorruptPath:   inconsistent predecessor chain (tampered maps).
//
// Determinism:
//
//   - Rounds sweep nodes in first-insertion order, so repeated runs produce
//     identical maps and DetectNegativeCycle reports the same cycle.
//
// See also:
//
//   - dijkstra.Dijkstra: faster on non-negative graphs.
//   - core.Graph: graph construction; AddEdge accepts negative weights.
package bellmanford
