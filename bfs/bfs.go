// bfs.go implements the queue-driven traversal core plus the hop-count
// query helpers ShortestPath, AllShortestPaths and Components.

package bfs

import (
	"fmt"

	"github.com/wyrdian/pathfind/core"
)

// BFS walks g breadth-first from start and returns the visit order, the
// hop count of every reached node and the predecessor tree.
//
// Edge weights are ignored: every hop costs exactly one. A start node
// unknown to the graph is not an error; the result then holds the trivial
// one-node traversal {start: 0}.
//
// Steps:
//  1. Apply options, surfacing any recorded violation.
//  2. Validate the graph.
//  3. Seed the queue with start at depth zero.
//  4. Dequeue, record visit order, enqueue unseen neighbors (FIFO).
//
// Complexity: O(V + E) time, O(V) extra space.
func BFS[T comparable](g *core.Graph[T], start T, opts ...Option) (*Result[T], error) {
	// 1) Assemble options and catch invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate input.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Prepare the walker with pre-sized structures.
	n := g.NodeCount()
	w := &walker[T]{
		graph: g,
		opts:  o,
		queue: make([]queueItem[T], 0, n),
		res: &Result[T]{
			Source:       start,
			Order:        make([]T, 0, n),
			Depth:        make(map[T]int, n),
			Predecessors: make(map[T]T, n),
		},
	}

	// 4) Seed and drain the queue.
	w.enqueue(start, 0)
	w.loop()

	return w.res, nil
}

// ShortestPath returns the minimal hop count from start to end together
// with one such route. It runs an early-exit BFS: the walk stops as soon
// as end is dequeued, so nodes farther away are never expanded.
//
// Returns ErrNilGraph for a nil graph and ErrNoPath when end is
// unreachable. start == end yields (0, [start], nil) without touching
// the graph.
func ShortestPath[T comparable](g *core.Graph[T], start, end T) (int, []T, error) {
	if g == nil {
		return 0, nil, ErrNilGraph
	}
	if start == end {
		return 0, []T{start}, nil
	}

	depth := map[T]int{start: 0}
	preds := make(map[T]T)
	queue := []T{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		// First dequeue of end already carries its minimal hop count.
		if cur == end {
			break
		}
		next := depth[cur] + 1
		for _, e := range g.Neighbors(cur) {
			if _, seen := depth[e.To]; seen {
				continue
			}
			depth[e.To] = next
			preds[e.To] = cur
			queue = append(queue, e.To)
		}
	}

	d, ok := depth[end]
	if !ok {
		return 0, nil, fmt.Errorf("%w: from %v to %v", ErrNoPath, start, end)
	}
	path, err := walkBack(preds, start, end)
	if err != nil {
		return 0, nil, err
	}

	return d, path, nil
}

// AllShortestPaths enumerates every hop-minimal route from start to end,
// capped by WithMaxPaths (default 10). WithMaxDepth bounds the discovery
// phase: when end lies beyond the limit no route is found.
//
// An unreachable end is not an error here; the function returns an empty
// slice. Routes come out in edge-insertion order, so repeated runs over
// the same graph enumerate them identically.
func AllShortestPaths[T comparable](g *core.Graph[T], start, end T, opts ...Option) ([][]T, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if start == end {
		return [][]T{{start}}, nil
	}

	// Phase 1: hop distances via plain BFS, stopping once end is
	// discovered. Nodes past its depth cannot sit on a minimal route.
	depth := map[T]int{start: 0}
	queue := []T{start}
	for len(queue) > 0 {
		if _, done := depth[end]; done {
			break
		}
		cur := queue[0]
		queue = queue[1:]
		next := depth[cur] + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		for _, e := range g.Neighbors(cur) {
			if _, seen := depth[e.To]; seen {
				continue
			}
			depth[e.To] = next
			queue = append(queue, e.To)
		}
	}
	target, ok := depth[end]
	if !ok {
		return [][]T{}, nil
	}

	// Phase 2: grow partial routes forward, following only edges that
	// descend exactly one BFS layer. FIFO keeps enumeration stable.
	type partial struct {
		id   T
		path []T
	}
	paths := [][]T{}
	frontier := []partial{{id: start, path: []T{start}}}
	for len(frontier) > 0 && len(paths) < o.MaxPaths {
		p := frontier[0]
		frontier = frontier[1:]
		if p.id == end {
			paths = append(paths, p.path)
			continue
		}
		if len(p.path)-1 >= target {
			continue
		}
		for _, e := range g.Neighbors(p.id) {
			dv, seen := depth[e.To]
			if !seen || dv != depth[p.id]+1 {
				continue
			}
			// Each branch needs its own backing array.
			branch := make([]T, len(p.path), len(p.path)+1)
			copy(branch, p.path)
			frontier = append(frontier, partial{id: e.To, path: append(branch, e.To)})
		}
	}

	return paths, nil
}

// Components groups the nodes of g into connected components, each listed
// in BFS visit order. Roots are tried in node-insertion order, so the
// grouping is deterministic.
//
// Edges are followed as stored. For undirected semantics build the graph
// with AddUndirectedEdge; on a directed graph the grouping reflects
// one-way reachability from whichever root is tried first.
func Components[T comparable](g *core.Graph[T]) ([][]T, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	visited := make(map[T]bool, g.NodeCount())
	var comps [][]T
	for _, root := range g.Nodes() {
		if visited[root] {
			continue
		}
		visited[root] = true
		comp := []T{root}
		queue := []T{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, e := range g.Neighbors(cur) {
				if visited[e.To] {
					continue
				}
				visited[e.To] = true
				comp = append(comp, e.To)
				queue = append(queue, e.To)
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// queueItem is one pending visit.
type queueItem[T comparable] struct {
	id    T
	depth int
}

// walker carries the traversal state for one BFS run. The Depth map of
// the result doubles as the visited set: a node gains its entry the
// moment it is enqueued.
type walker[T comparable] struct {
	graph *core.Graph[T]
	opts  Options
	queue []queueItem[T]
	res   *Result[T]
}

// loop drains the queue in FIFO order, recording each dequeued node.
func (w *walker[T]) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		w.enqueueNeighbors(item)
	}
}

// enqueueNeighbors schedules every unseen neighbor of item one layer
// deeper, honoring the MaxDepth cutoff. Edge weights play no role.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Neighbors(item.id) {
		if _, seen := w.res.Depth[e.To]; seen {
			continue
		}
		w.res.Predecessors[e.To] = item.id
		w.enqueue(e.To, next)
	}
}

// enqueue marks id as seen at the given depth and appends it to the queue.
func (w *walker[T]) enqueue(id T, depth int) {
	w.res.Depth[id] = depth
	w.queue = append(w.queue, queueItem[T]{id: id, depth: depth})
}
