package traverse_test

import (
	"fmt"

	"github.com/jpcunhadias/ds-algo-lab/graph"
	"github.com/jpcunhadias/ds-algo-lab/traverse"
)

// ExampleBFS narrates a breadth-first sweep of a diamond-shaped graph.
func ExampleBFS() {
	g := graph.New()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")
	g.AddEdge("D", "E")

	for step := range traverse.BFS(g, "A") {
		if step.Detail.Phase == traverse.PhaseDequeuing {
			fmt.Println(step.Description)
		}
	}
	// Output:
	// Processing vertex A
	// Processing vertex B
	// Processing vertex C
	// Processing vertex D
	// Processing vertex E
}

// ExampleExecute drives a traversal by registry name, the way a frontend
// holding only a string would.
func ExampleExecute() {
	g := graph.New()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	steps, err := traverse.Execute("dfs", g, "A", false)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	last := steps[len(steps)-1]
	fmt.Println(last.Description)
	// Output:
	// DFS complete. Traversal order: [A B C]
}
