// Package astar implements A* search on weighted graphs with non-negative
// edge weights.
//
// A* is Dijkstra's algorithm steered by a heuristic: the priority queue
// orders nodes by f = g + h, where g is the exact cost from the start and h
// estimates the remaining cost to the goal. With an admissible heuristic the
// first pop of the goal carries an optimal path, and everything the
// heuristic rules out is never expanded.
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case, matching Dijkstra; a sharp
//     heuristic expands far fewer nodes in practice.
//   - Space: O(V + E) for the score maps and the open heap under lazy
//     decrease-key.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/wyrdian/pathfind/core"
)

// AStar finds one cheapest path from start to goal, guided by h.
//
// Ties on f are broken toward the larger g, preferring entries whose cost is
// settled knowledge over heuristic guesses. The search stops at the first
// pop of the goal; with an admissible h that path is optimal.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. h must be non-nil (ErrNilHeuristic).
//  3. No edge of g may carry a negative weight (ErrNegativeWeight).
//
// Returns ErrNoPath when the open set drains before the goal surfaces. A
// start unknown to the graph has no outgoing edges, so it reaches only
// itself.
func AStar[T comparable](g *core.Graph[T], start, goal T, h Heuristic[T]) (Path[T], error) {
	// 1) Validate inputs.
	if g == nil {
		return Path[T]{}, ErrNilGraph
	}
	if h == nil {
		return Path[T]{}, ErrNilHeuristic
	}

	// 2) Pre-scan all edges to detect negative weights. Fail fast.
	for _, u := range g.Nodes() {
		for _, e := range g.Neighbors(u) {
			if e.Weight < 0 {
				return Path[T]{}, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	// 3) Seed the search state with the start node.
	s := &searcher[T]{
		g:        g,
		h:        h,
		goal:     goal,
		gScore:   map[T]float64{start: 0},
		cameFrom: make(map[T]T),
		closed:   make(map[T]bool),
	}
	heap.Init(&s.open)
	heap.Push(&s.open, &openItem[T]{id: start, f: h(start, goal), g: 0})

	// 4) Expand until the goal surfaces or the open set drains.
	return s.search(start)
}

// searcher holds the mutable state for a single A* execution.
type searcher[T comparable] struct {
	g        *core.Graph[T] // input graph; read-only during the search
	h        Heuristic[T]   // remaining-cost estimate
	goal     T              // search target
	gScore   map[T]float64  // best known cost from start, per generated node
	cameFrom map[T]T        // predecessor on the best known route
	closed   map[T]bool     // nodes whose g is final
	open     openPQ[T]      // frontier ordered by f, then g
}

// search runs the expansion loop.
func (s *searcher[T]) search(start T) (Path[T], error) {
	for s.open.Len() > 0 {
		// 1) Pop the most promising entry (smallest f).
		it := heap.Pop(&s.open).(*openItem[T])

		// 2) Goal test on pop, before the closed check: the first pop of
		//    the goal is the cheapest way to reach it.
		if it.id == s.goal {
			nodes, err := reconstruct(s.cameFrom, start, s.goal)
			if err != nil {
				return Path[T]{}, err
			}

			return Path[T]{Distance: s.gScore[s.goal], Nodes: nodes}, nil
		}

		// 3) Discard stale pops of already-expanded nodes.
		if s.closed[it.id] {
			continue
		}
		s.closed[it.id] = true

		// 4) Generate successors.
		s.expand(it.id)
	}

	return Path[T]{}, fmt.Errorf("%w: from %v to %v", ErrNoPath, start, s.goal)
}

// expand relaxes every edge out of u, pushing improved routes onto the open
// heap (lazy decrease-key, as in package dijkstra).
func (s *searcher[T]) expand(u T) {
	gu := s.gScore[u]
	for _, e := range s.g.Neighbors(u) {
		// Expanded nodes already hold their final cost.
		if s.closed[e.To] {
			continue
		}

		// Keep strict improvements only.
		alt := gu + e.Weight
		if cur, ok := s.gScore[e.To]; ok && alt >= cur {
			continue
		}

		s.gScore[e.To] = alt
		s.cameFrom[e.To] = u
		heap.Push(&s.open, &openItem[T]{id: e.To, f: alt + s.h(e.To, s.goal), g: alt})
	}
}

// openItem is one frontier entry: a node plus the f and g scores it was
// pushed with.
type openItem[T comparable] struct {
	id T       // node identifier
	f  float64 // g + heuristic estimate to the goal
	g  float64 // exact cost from the start when pushed
}

// openPQ is a min-heap of *openItem ordered by f ascending, with g
// descending as the tie-break. Stale entries remain after an improvement and
// are discarded against the closed set when popped.
type openPQ[T comparable] []*openItem[T]

// Len returns the number of items in the heap.
func (pq openPQ[T]) Len() int { return len(pq) }

// Less orders by smaller f; on equal f the larger g (less guesswork) wins.
func (pq openPQ[T]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].g > pq[j].g
}

// Swap swaps two elements in the heap.
func (pq openPQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *openItem.
func (pq *openPQ[T]) Push(x interface{}) { *pq = append(*pq, x.(*openItem[T])) }

// Pop removes and returns the smallest element from the heap.
func (pq *openPQ[T]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
