package bfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyrdian/pathfind/core"
)

// buildSimple returns the directed graph
//
//	A → B, A → C, B → D, C → D, C → E, D → E
//
// used across the traversal tests.
func buildSimple(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.New[string]()
	edges := [][2]string{
		{"A", "B"}, {"A", "C"},
		{"B", "D"},
		{"C", "D"}, {"C", "E"},
		{"D", "E"},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g
}

// buildDiamond returns a graph with two parallel hop-minimal A → D routes.
func buildDiamond(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	return g
}

func TestBFS_NilGraph(t *testing.T) {
	_, err := BFS[string](nil, "A")
	require.ErrorIs(t, err, ErrNilGraph)
}

func TestBFS_OptionViolation(t *testing.T) {
	g := buildSimple(t)

	_, err := BFS(g, "A", WithMaxDepth(-1))
	require.ErrorIs(t, err, ErrOptionViolation)

	_, err = AllShortestPaths(g, "A", "E", WithMaxPaths(0))
	require.ErrorIs(t, err, ErrOptionViolation)
}

func TestBFS_VisitOrderAndDepths(t *testing.T) {
	g := buildSimple(t)

	res, err := BFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2, "E": 2}, res.Depth)
}

func TestBFS_Predecessors(t *testing.T) {
	g := buildSimple(t)

	res, err := BFS(g, "A")
	require.NoError(t, err)

	want := map[string]string{"B": "A", "C": "A", "D": "B", "E": "C"}
	assert.Equal(t, want, res.Predecessors)

	p, ok := res.Predecessor("D")
	assert.True(t, ok)
	assert.Equal(t, "B", p)

	_, ok = res.Predecessor("A")
	assert.False(t, ok, "source has no predecessor")
}

func TestBFS_StartNotInGraph(t *testing.T) {
	g := buildSimple(t)

	res, err := BFS(g, "Z")
	require.NoError(t, err)

	assert.Equal(t, []string{"Z"}, res.Order)
	assert.Equal(t, map[string]int{"Z": 0}, res.Depth)
	assert.Empty(t, res.Predecessors)
}

func TestBFS_WeightsIgnored(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 100))
	require.NoError(t, g.AddEdge("B", "C", 0.5))

	res, err := BFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Depth["C"], "hops, not weight")
}

func TestBFS_MaxDepthCutsWalk(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	res, err := BFS(g, "A", WithMaxDepth(2))
	require.NoError(t, err)

	assert.True(t, res.Reached("C"))
	assert.False(t, res.Reached("D"), "D lies past the depth limit")
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

func TestBFS_MaxDepthZeroMeansUnlimited(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))

	res, err := BFS(g, "A", WithMaxDepth(0))
	require.NoError(t, err)

	assert.True(t, res.Reached("C"))
}

func TestResult_PathTo(t *testing.T) {
	g := buildSimple(t)

	res, err := BFS(g, "A")
	require.NoError(t, err)

	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "E"}, path)

	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path, "source route is just itself")

	_, err = res.PathTo("nowhere")
	require.ErrorIs(t, err, ErrNoPath)
}

func TestResult_PathTo_TamperedPredecessors(t *testing.T) {
	g := buildSimple(t)

	res, err := BFS(g, "A")
	require.NoError(t, err)

	// Break the chain: E now points into a two-node loop.
	res.Predecessors["E"] = "D"
	res.Predecessors["D"] = "E"
	_, err = res.PathTo("E")
	require.ErrorIs(t, err, ErrCorruptPath)

	// Sever the chain entirely.
	res, err = BFS(g, "A")
	require.NoError(t, err)
	delete(res.Predecessors, "C")
	_, err = res.PathTo("E")
	require.ErrorIs(t, err, ErrCorruptPath)
}

func TestShortestPath_PicksFirstDiscovered(t *testing.T) {
	g := buildDiamond(t)

	hops, path, err := ShortestPath(g, "A", "D")
	require.NoError(t, err)

	assert.Equal(t, 2, hops)
	assert.Equal(t, []string{"A", "B", "D"}, path, "B branch was inserted first")
}

func TestShortestPath_StartEqualsEnd(t *testing.T) {
	g := buildSimple(t)

	hops, path, err := ShortestPath(g, "A", "A")
	require.NoError(t, err)

	assert.Equal(t, 0, hops)
	assert.Equal(t, []string{"A"}, path)
}

func TestShortestPath_NoPath(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	g.AddNode("X")

	_, _, err := ShortestPath(g, "A", "X")
	require.ErrorIs(t, err, ErrNoPath)
}

func TestShortestPath_NilGraph(t *testing.T) {
	_, _, err := ShortestPath[string](nil, "A", "B")
	require.ErrorIs(t, err, ErrNilGraph)
}

func TestShortestPath_Cycle(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "A", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	hops, path, err := ShortestPath(g, "A", "D")
	require.NoError(t, err)

	assert.Equal(t, 3, hops)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
}

func TestShortestPath_LinearChain(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	hops, path, err := ShortestPath(g, "A", "D")
	require.NoError(t, err)

	assert.Equal(t, 3, hops)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
}

func TestAllShortestPaths_EnumeratesTies(t *testing.T) {
	g := buildDiamond(t)

	routes, err := AllShortestPaths(g, "A", "D")
	require.NoError(t, err)

	want := [][]string{
		{"A", "B", "D"},
		{"A", "C", "D"},
	}
	assert.Equal(t, want, routes)
}

func TestAllShortestPaths_WiderDiamond(t *testing.T) {
	g := core.New[string]()
	for _, e := range [][2]string{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"B", "E"},
		{"C", "D"}, {"C", "E"},
		{"D", "F"}, {"E", "F"},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	routes, err := AllShortestPaths(g, "A", "F")
	require.NoError(t, err)

	want := [][]string{
		{"A", "B", "D", "F"},
		{"A", "B", "E", "F"},
		{"A", "C", "D", "F"},
		{"A", "C", "E", "F"},
	}
	assert.Equal(t, want, routes)
}

func TestAllShortestPaths_MaxPathsCap(t *testing.T) {
	g := buildDiamond(t)

	routes, err := AllShortestPaths(g, "A", "D", WithMaxPaths(1))
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"A", "B", "D"}}, routes)
}

func TestAllShortestPaths_Unreachable(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	g.AddNode("X")

	routes, err := AllShortestPaths(g, "A", "X")
	require.NoError(t, err, "unreachable end is not an error here")
	assert.Empty(t, routes)
}

func TestAllShortestPaths_StartEqualsEnd(t *testing.T) {
	g := buildSimple(t)

	routes, err := AllShortestPaths(g, "A", "A")
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"A"}}, routes)
}

func TestAllShortestPaths_MaxDepthBlocks(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))

	routes, err := AllShortestPaths(g, "A", "C", WithMaxDepth(1))
	require.NoError(t, err)

	assert.Empty(t, routes, "C lies past the depth limit")
}

func TestComponents_Groups(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddUndirectedEdge("A", "B", 1))
	require.NoError(t, g.AddUndirectedEdge("C", "D", 1))
	g.AddNode("E")

	comps, err := Components(g)
	require.NoError(t, err)

	want := [][]string{{"A", "B"}, {"C", "D"}, {"E"}}
	assert.Equal(t, want, comps)
}

func TestComponents_DirectedReachability(t *testing.T) {
	g := core.New[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	g.AddNode("X")

	comps, err := Components(g)
	require.NoError(t, err)

	// A reaches B one-way, so they land in the same group.
	want := [][]string{{"A", "B"}, {"X"}}
	assert.Equal(t, want, comps)
}

func TestComponents_EmptyGraph(t *testing.T) {
	comps, err := Components(core.New[string]())
	require.NoError(t, err)
	assert.Empty(t, comps)
}

func TestComponents_NilGraph(t *testing.T) {
	_, err := Components[string](nil)
	require.ErrorIs(t, err, ErrNilGraph)
}

func TestBFS_IntNodes(t *testing.T) {
	g := core.New[int]()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(2, 4, 1))

	res, err := BFS(g, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4}, res.Order)
	assert.Equal(t, 2, res.Depth[4])
}

func TestBFS_RepeatedRunsIdentical(t *testing.T) {
	g := buildSimple(t)

	first, err := BFS(g, "A")
	require.NoError(t, err)
	second, err := BFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, first.Order, second.Order)
	assert.Equal(t, first.Depth, second.Depth)
	assert.Equal(t, first.Predecessors, second.Predecessors)
}
