// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// graphs with non-negative edge weights.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes. It processes nodes in order of increasing distance
// using a min-heap priority queue, relaxing edges and updating distances.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), where N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for the distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges (O(E)) detects negative weights and fails fast.
//   - Duplicate heap entries replace decrease-key: stale entries are discarded
//     on pop, either because the node is already finalized or because its
//     recorded distance beats the entry's.
//   - With WithTarget the loop stops at the first pop of the target; with
//     WithMaxDistance it stops once the frontier moves past the cap.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/wyrdian/pathfind/core"
)

// Dijkstra computes shortest distances from source to every node of the
// weighted graph g. It accepts functional options to customize behavior
// (WithTarget, WithMaxDistance).
//
// The returned Result maps every node of g to its distance from source, with
// +Inf marking unreachable nodes, and records one shortest-path predecessor
// per reached node. A source that is not a node of g is tolerated: the run
// reports {source: 0} and leaves every graph node at +Inf.
//
// Preconditions and validation (in order):
//  1. All supplied options must be valid (e.g. ErrBadMaxDistance).
//  2. g must be non-nil (ErrNilGraph).
//  3. No edge of g may carry a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[T comparable](g *core.Graph[T], source T, opts ...Option[T]) (*Result[T], error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast with
	//    ErrNegativeWeight before touching any state.
	nodes := g.Nodes()
	for _, u := range nodes {
		for _, e := range g.Neighbors(u) {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	// 4) Prepare the result maps and the runner holding all mutable state.
	res := &Result[T]{
		Source:       source,
		Distances:    make(map[T]float64, len(nodes)+1),
		Predecessors: make(map[T]T, len(nodes)),
	}
	r := &runner[T]{
		g:       g,
		opts:    cfg,
		res:     res,
		visited: make(map[T]bool, len(nodes)+1),
		pq:      make(nodePQ[T], 0, len(nodes)),
	}

	// 5) Initialize algorithm state and run the main loop.
	r.init(nodes)
	r.process()

	return res, nil
}

// ShortestPath computes one shortest path from source to target and returns
// it together with its total distance. It is a convenience wrapper around
// Dijkstra with an implicit WithTarget(target), so the run stops as soon as
// the target is finalized.
//
// Returns ErrNoPath when target is unreachable from source.
func ShortestPath[T comparable](g *core.Graph[T], source, target T, opts ...Option[T]) (Path[T], error) {
	// Append the target without clobbering a caller-owned options slice.
	all := make([]Option[T], 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithTarget(target))

	res, err := Dijkstra(g, source, all...)
	if err != nil {
		return Path[T]{}, err
	}

	return res.PathTo(target)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T comparable] struct {
	g       *core.Graph[T] // input graph; read-only during the run
	opts    Options[T]     // resolved configuration
	res     *Result[T]     // distances and predecessors being filled in
	visited map[T]bool     // nodes whose distance is finalized
	pq      nodePQ[T]      // min-heap of *nodeItem for the lazy priority queue
}

// init seeds every node of the graph at +Inf, forces the source to zero, and
// pushes the source onto the heap.
func (r *runner[T]) init(nodes []T) {
	// 1) dist[v] = +Inf for every node of the graph; no predecessors yet.
	inf := math.Inf(1)
	for _, v := range nodes {
		r.res.Distances[v] = inf
	}

	// 2) Distance to the source is zero. The write also covers a source
	//    that is absent from the graph.
	r.res.Distances[r.res.Source] = 0

	// 3) Establish the heap invariants and push the source at distance 0.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[T]{id: r.res.Source, dist: 0})
}

// process is the core loop. It repeatedly extracts the node with the minimum
// distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The target was popped; its distance is final the first time it surfaces.
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner[T]) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem[T])
		u, d := item.id, item.dist

		// 2) The first pop of the target carries its final distance. Stop.
		if r.opts.HasTarget && u == r.opts.Target {
			break
		}

		// 3) Drop stale heap entries: u already finalized, or a shorter
		//    route to u was recorded after this entry was pushed.
		if r.visited[u] {
			continue
		}
		if d > r.res.Distances[u] {
			continue
		}

		// 4) If this distance exceeds MaxDistance, stop exploring. Nothing
		//    closer remains in the heap. Do NOT mark u as visited.
		if d > r.opts.MaxDistance {
			break
		}

		// 5) Mark u as visited. Its shortest distance d is now final.
		r.visited[u] = true

		// 6) Relax all outgoing edges of u.
		r.relax(u, d)
	}
}

// relax offers the route Source → … → u → v to every neighbor v of u and
// keeps strictly shorter ones, pushing a fresh heap entry for each update.
//
// Assumes dist[u] == du is finalized before the call.
func (r *runner[T]) relax(u T, du float64) {
	for _, e := range r.g.Neighbors(u) {
		// Candidate distance if we go from Source → … → u → v.
		alt := du + e.Weight

		// Skip neighbors that would land beyond the exploration cap; they
		// stay at +Inf and count as unreached.
		if alt > r.opts.MaxDistance {
			continue
		}

		// Keep strict improvements only. Using “<” rather than “≤” avoids
		// pushing duplicates when distances are equal.
		if alt >= r.res.Distances[e.To] {
			continue
		}

		// Record the shorter route and its predecessor.
		r.res.Distances[e.To] = alt
		r.res.Predecessors[e.To] = u

		// Push the updated distance for v onto the heap. This is the lazy
		// decrease-key pattern: the old entry remains and is ignored later.
		heap.Push(&r.pq, &nodeItem[T]{id: e.To, dist: alt})
	}
}

// nodeItem represents a node and its distance from the source at push time.
// It is stored in the priority queue to order nodes by increasing distance.
type nodeItem[T comparable] struct {
	id   T       // node identifier
	dist float64 // distance from source when pushed
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist
// ascending. When a shorter distance to an existing node is found, a new
// *nodeItem is pushed; the outdated entry remains but is ignored when popped.
type nodePQ[T comparable] []*nodeItem[T]

// Len returns the number of items in the heap.
func (pq nodePQ[T]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[T]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ[T]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[T])) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ[T]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
