package prim_kruskal_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/prim_kruskal"
)

func printMST(edges []core.Edge, total int64, err error) {
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	names := make([]string, len(edges))
	for i, e := range edges {
		names[i] = e.From + "-" + e.To
	}
	fmt.Printf("Total: %d, Edges: %s\n", total, strings.Join(names, " "))
}

// ExampleKruskal draws edges lightest-first; A—C (4) closes a cycle and is skipped.
func ExampleKruskal() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 4)

	printMST(prim_kruskal.Kruskal(g))
	// Output: Total: 3, Edges: A-B B-C
}

// ExampleKruskal_envelope: A—B, B—C, C—D, D—A plus both diagonals.
// Edges keep the orientation they were added with.
func ExampleKruskal_envelope() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 2)
	g.AddEdge("B", "D", 3)
	g.AddEdge("C", "D", 5)
	g.AddEdge("D", "A", 4)

	printMST(prim_kruskal.Kruskal(g))
	// Output: Total: 6, Edges: A-C C-B B-D
}

// ExamplePrim grows a pentagon's tree from A. E is first queued through
// A—E (12) and later lowered to D—E (5).
func ExamplePrim() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "E", 12)
	g.AddEdge("B", "C", 2)
	g.AddEdge("C", "D", 3)
	g.AddEdge("D", "E", 5)

	printMST(prim_kruskal.Prim(g, "A"))
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}

// ExamplePrim_decreaseKeyChain: F is queued through D (7), lowered through
// E (6) and finally through G (3). Edges are listed in the order their far
// endpoint joined the tree, From on the tree side.
func ExamplePrim_decreaseKeyChain() {
	g := core.NewGraph()
	for _, e := range []core.Edge{
		{From: "A", To: "B", Weight: 2}, {From: "B", To: "C", Weight: 1},
		{From: "D", To: "E", Weight: 1}, {From: "E", To: "G", Weight: 2},
		{From: "F", To: "G", Weight: 3}, {From: "A", To: "C", Weight: 3},
		{From: "B", To: "D", Weight: 4}, {From: "C", To: "E", Weight: 5},
		{From: "E", To: "F", Weight: 6}, {From: "D", To: "F", Weight: 7},
	} {
		g.AddEdge(e.From, e.To, e.Weight)
	}

	printMST(prim_kruskal.Prim(g, "A"))
	// Output: Total: 13, Edges: A-B B-C B-D D-E E-G G-F
}

// ExampleCompute shows the error for a graph with no vertices.
func ExampleCompute() {
	_, _, err := prim_kruskal.Compute(core.NewGraph(), prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot("A"))
	fmt.Println(err)
	// Output: prim_kruskal: graph is disconnected
}
