package bellmanford_test

import (
	"fmt"
	"math"
	"strings"

	"github.com/wyrdian/pathfind/bellmanford"
	"github.com/wyrdian/pathfind/core"
)

// ExampleBellmanFord computes distances over a graph with a negative edge,
// which Dijkstra would reject outright.
func ExampleBellmanFord() {
	g := core.New[string]()
	_ = g.AddEdge("A", "B", -1)
	_ = g.AddEdge("A", "C", 4)
	_ = g.AddEdge("B", "C", 3)
	_ = g.AddEdge("B", "D", 2)
	_ = g.AddEdge("D", "B", 1)
	_ = g.AddEdge("D", "C", 5)

	res, err := bellmanford.BellmanFord(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("dist[B] =", res.Distances["B"])
	fmt.Println("dist[C] =", res.Distances["C"])
	fmt.Println("dist[D] =", res.Distances["D"])

	// Output:
	// dist[B] = -1
	// dist[C] = 2
	// dist[D] = 1
}

// ExampleShortestPath follows a discount edge that makes the longer route
// cheaper overall.
func ExampleShortestPath() {
	g := core.New[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "C", 4)
	_ = g.AddEdge("B", "C", -2)
	_ = g.AddEdge("B", "D", 5)
	_ = g.AddEdge("C", "D", 1)

	p, err := bellmanford.ShortestPath(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("distance:", p.Distance)
	fmt.Println("route:", p.Nodes)

	// Output:
	// distance: 0
	// route: [A B C D]
}

// ExampleDetectNegativeCycle hunts for currency arbitrage: pricing a
// conversion at −ln(rate) turns "rates multiply above 1" into "weights sum
// below 0".
func ExampleDetectNegativeCycle() {
	rates := []struct {
		from, to string
		rate     float64
	}{
		{"USD", "EUR", 0.90},
		{"EUR", "GBP", 0.85},
		{"GBP", "USD", 1.32},
	}

	g := core.New[string]()
	for _, r := range rates {
		_ = g.AddEdge(r.from, r.to, -math.Log(r.rate))
	}

	cycle, err := bellmanford.DetectNegativeCycle(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if cycle == nil {
		fmt.Println("no arbitrage")
		return
	}

	fmt.Println("arbitrage:", strings.Join(cycle, " → "))

	profit := 1.0
	for i := 0; i+1 < len(cycle); i++ {
		for _, r := range rates {
			if r.from == cycle[i] && r.to == cycle[i+1] {
				profit *= r.rate
			}
		}
	}
	fmt.Printf("profit per lap: %.2f%%\n", (profit-1)*100)

	// Output:
	// arbitrage: EUR → GBP → USD → EUR
	// profit per lap: 0.98%
}
