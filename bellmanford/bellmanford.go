// Package bellmanford implements the Bellman-Ford shortest-path algorithm
// and negative-cycle detection on weighted graphs.
//
// Bellman-Ford computes minimum-cost paths from a single source by relaxing
// every edge of the graph in rounds. It accepts negative edge weights, which
// Dijkstra cannot, and recognizes the one situation where shortest paths
// stop existing altogether: a negative-weight cycle reachable from the
// source.
//
// Complexity:
//
//   - Time:  O(V · E): at most V−1 relaxation rounds over all E edges, plus
//     one verification round. Converged distances end the rounds early.
//   - Space: O(V) for the distance and predecessor maps.
package bellmanford

import (
	"fmt"
	"math"

	"github.com/wyrdian/pathfind/core"
)

// BellmanFord computes shortest distances from source to every node of the
// weighted graph g. Negative edge weights are legal; a negative-weight cycle
// reachable from source makes distances undefined and yields
// ErrNegativeCycle instead of a Result.
//
// The returned Result matches dijkstra.Result in shape: +Inf distances for
// unreachable nodes, predecessor absence encoded as a missing key, and an
// unknown source tolerated ({source: 0}, every graph node +Inf).
//
// Complexity:
//
//   - Time:  O(V · E)
//   - Space: O(V)
func BellmanFord[T comparable](g *core.Graph[T], source T) (*Result[T], error) {
	// 1) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Initialize distances: +Inf everywhere, zero at the source.
	nodes := g.Nodes()
	res := &Result[T]{
		Source:       source,
		Distances:    make(map[T]float64, len(nodes)+1),
		Predecessors: make(map[T]T, len(nodes)),
	}
	inf := math.Inf(1)
	for _, v := range nodes {
		res.Distances[v] = inf
	}
	res.Distances[source] = 0

	// 3) Relax every edge, up to V−1 rounds. Any simple path has at most
	//    V−1 edges, so converged distances stop changing; a round with no
	//    update ends the loop early.
	for round := 1; round < len(nodes); round++ {
		if !relaxRound(g, nodes, res) {
			break
		}
	}

	// 4) Verification round: an edge that still improves after V−1 rounds
	//    can only mean a negative cycle keeps pumping distances down.
	for _, u := range nodes {
		du := res.Distances[u]
		if math.IsInf(du, 1) {
			continue
		}
		for _, e := range g.Neighbors(u) {
			if du+e.Weight < res.Distances[e.To] {
				return nil, fmt.Errorf("%w: edge %v→%v still improves", ErrNegativeCycle, u, e.To)
			}
		}
	}

	return res, nil
}

// ShortestPath computes one shortest path from source to target together
// with its total distance. Bellman-Ford cannot stop early the way Dijkstra
// can, so this always costs a full run.
//
// Returns ErrNegativeCycle when one is reachable from source, ErrNoPath when
// target cannot be reached.
func ShortestPath[T comparable](g *core.Graph[T], source, target T) (Path[T], error) {
	res, err := BellmanFord(g, source)
	if err != nil {
		return Path[T]{}, err
	}

	return res.PathTo(target)
}

// DetectNegativeCycle searches g for a negative-weight cycle and returns one
// as a closed node list, first node repeated last, oriented along its edges.
// Returns (nil, nil) when no cycle is found.
//
// The search seeds Bellman-Ford at the first-inserted node of the graph, so
// it finds cycles reachable from there. For graphs built as one connected
// piece (e.g. a currency table with rates both ways) that covers everything.
//
// Complexity: O(V · E).
func DetectNegativeCycle[T comparable](g *core.Graph[T]) ([]T, error) {
	// 1) Validate and seed. An empty graph has no cycles.
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, nil
	}

	res := &Result[T]{
		Source:       nodes[0],
		Distances:    make(map[T]float64, len(nodes)),
		Predecessors: make(map[T]T, len(nodes)),
	}
	inf := math.Inf(1)
	for _, v := range nodes {
		res.Distances[v] = inf
	}
	res.Distances[nodes[0]] = 0

	// 2) All V−1 rounds, no early exit: the predecessor map must settle so
	//    the walk-back below stays inside pumped territory.
	for round := 1; round < len(nodes); round++ {
		relaxRound(g, nodes, res)
	}

	// 3) Find a node that is still improvable; it sits on or downstream of
	//    a negative cycle.
	var witness T
	found := false
	for _, u := range nodes {
		du := res.Distances[u]
		if math.IsInf(du, 1) {
			continue
		}
		for _, e := range g.Neighbors(u) {
			if du+e.Weight < res.Distances[e.To] {
				witness, found = e.To, true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return nil, nil
	}

	// 4) Step back V times from the witness. Any predecessor chain that
	//    long must have entered a cycle, so the landing node lies on it.
	inside := witness
	for i := 0; i < len(nodes); i++ {
		prev, ok := res.Predecessors[inside]
		if !ok {
			return nil, fmt.Errorf("%w: walk from %v left the predecessor map", ErrCorruptPath, witness)
		}
		inside = prev
	}

	// 5) Trace the loop until it closes, then reverse so the list follows
	//    edge direction.
	cycle := []T{inside}
	for cur := inside; ; {
		prev, ok := res.Predecessors[cur]
		if !ok {
			return nil, fmt.Errorf("%w: cycle trace left the predecessor map at %v", ErrCorruptPath, cur)
		}
		cycle = append(cycle, prev)
		if prev == inside {
			break
		}
		if len(cycle) > len(nodes)+1 {
			return nil, fmt.Errorf("%w: cycle trace did not close", ErrCorruptPath)
		}
		cur = prev
	}
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}

	return cycle, nil
}

// relaxRound sweeps every edge once in node-insertion order, keeping
// strictly shorter routes. Reports whether anything improved.
func relaxRound[T comparable](g *core.Graph[T], nodes []T, res *Result[T]) bool {
	updated := false
	for _, u := range nodes {
		du := res.Distances[u]
		// nothing improves through an unreached node
		if math.IsInf(du, 1) {
			continue
		}
		for _, e := range g.Neighbors(u) {
			alt := du + e.Weight
			if alt >= res.Distances[e.To] {
				continue
			}
			res.Distances[e.To] = alt
			res.Predecessors[e.To] = u
			updated = true
		}
	}

	return updated
}
