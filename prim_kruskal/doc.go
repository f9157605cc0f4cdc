// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// on an undirected, weighted *core.Graph: Prim’s algorithm and Kruskal’s algorithm.
// Both draw from a fibheap.Heap instead of container/heap.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V (i.e., spans the graph) and the sum of weights of edges in T is minimized.
//
//   - Network Design: Build cost-efficient communication or transportation networks.
//   - Clustering: cutting the largest MST edges yields single-linkage clusters.
//   - Subroutines: MST is a building block in many approximation algorithms (e.g., Christofides).
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//
//   - Strategy: Insert every edge into a Fibonacci heap in O(1) each, then extract lightest-first.
//     A Disjoint-Set (Union-Find) merges components, skipping edges whose endpoints are already
//     connected. Stop once |V|−1 edges have been added; the remaining edges are never ordered.
//
//   - Time: O(E + k log E + α(V)·k), k = number of edges drawn before the tree closes.
//
//   - Space: O(V + E).
//
//   - Prim(g *core.Graph, root string) ([]core.Edge, int64, error)
//
//   - Strategy: Grow a single tree from root. Each outside vertex is queued once, keyed by the
//     cheapest edge reaching it from the tree; a cheaper edge found later is applied with
//     DecreaseKey in O(1) amortized.
//
//   - Time: O(E + V log V).
//
//   - Space: O(V).
//
// Error Conditions
//
//	- ErrInvalidGraph
//	    - Graph is nil, OR
//	    - graph.Directed() == true (MST requires undirected), OR
//	    - graph.HasDirectedEdges() == true (a per-edge override made some edge one-way).
//
//	- ErrEmptyRoot (Prim only)
//	    - root == "" (no starting vertex specified).
//
//	- core.ErrVertexNotFound (Prim only)
//	    - root does not exist in graph.Vertices().
//
//	- ErrDisconnected
//	    - |V| == 0 (empty graph), OR
//	    - |V| > 1 but the graph is not fully connected.
//
// Negative weights are accepted: an MST is well defined for any real weights.
// Self-loops are ignored and parallel edges are allowed (the lighter one wins).
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
