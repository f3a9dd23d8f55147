// Package dijkstra_test provides examples demonstrating the shortest-path search.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/floorpath/core"
	"github.com/katalvlaran/floorpath/dijkstra"
	"github.com/katalvlaran/floorpath/pq"
)

// ExampleShortestPath shows the search taking a cheaper two-hop detour
// over a costly direct edge.
func ExampleShortestPath() {
	g, err := core.NewGraph(
		[]core.Node{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}},
		map[core.NodeID][]core.Edge{
			1: {{To: 2, Cost: 10}, {To: 3, Cost: 20}},
			2: {{To: 3, Cost: 5}},
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, err := dijkstra.ShortestPath(g, 1, 3, dijkstra.WithQueue(pq.NewBTree))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Outcome, p.Nodes, p.Cost)

	p, _ = dijkstra.ShortestPath(g, 3, 1)
	fmt.Println(p.Outcome, p.Nodes)
	// Output:
	// found [1 2 3] 15
	// unreachable []
}
