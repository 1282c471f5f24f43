package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/wyrdian/pathfind/core"
	"github.com/wyrdian/pathfind/dijkstra"
)

// ExampleDijkstra runs the algorithm on a four-node directed graph and reads
// distances off the result.
func ExampleDijkstra() {
	// Build the graph:
	//
	//	A →4→ B →5→ D
	//	 ↘2  ↙1   ↗8
	//	   C ─────┘
	g := core.New[string]()
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("A", "C", 2)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("B", "D", 5)
	_ = g.AddEdge("C", "D", 8)

	res, err := dijkstra.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("dist[B] =", res.Distances["B"])
	fmt.Println("dist[C] =", res.Distances["C"])
	fmt.Println("dist[D] =", res.Distances["D"])

	// Output:
	// dist[B] = 4
	// dist[C] = 2
	// dist[D] = 9
}

// ExampleDijkstra_cityRoutes models a small road network with two-way roads
// and picks the cheaper of two competing routes.
func ExampleDijkstra_cityRoutes() {
	g := core.New[string]()
	_ = g.AddUndirectedEdge("Istanbul", "Kocaeli", 100)
	_ = g.AddUndirectedEdge("Istanbul", "Bursa", 155)
	_ = g.AddUndirectedEdge("Kocaeli", "Ankara", 380)
	_ = g.AddUndirectedEdge("Bursa", "Eskişehir", 155)
	_ = g.AddUndirectedEdge("Eskişehir", "Ankara", 235)

	// Istanbul→Ankara: 480 km through Kocaeli beats 545 km through Bursa.
	p, err := dijkstra.ShortestPath(g, "Istanbul", "Ankara")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.0f km via %s\n", p.Distance, strings.Join(p.Nodes, " → "))

	// Output:
	// 480 km via Istanbul → Kocaeli → Ankara
}

// ExampleResult_PathTo reconstructs a concrete route after a full run.
func ExampleResult_PathTo() {
	g := core.New[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "C", 4)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("B", "D", 5)
	_ = g.AddEdge("C", "D", 1)

	res, err := dijkstra.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, err := res.PathTo("D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("distance:", p.Distance)
	fmt.Println("route:", p.Nodes)

	// Output:
	// distance: 4
	// route: [A B C D]
}

// ExampleWithMaxDistance bounds exploration to a radius around the source;
// nodes beyond the cap stay unreached.
func ExampleWithMaxDistance() {
	g := core.New[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)

	res, err := dijkstra.Dijkstra(g, "A", dijkstra.WithMaxDistance[string](1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("B reached:", res.Reached("B"))
	fmt.Println("C reached:", res.Reached("C"))

	// Output:
	// B reached: true
	// C reached: false
}
