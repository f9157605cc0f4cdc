package prim_kruskal

import (
	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/fibheap"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Instead of sorting every edge up front, all edges are inserted into a
// Fibonacci heap (O(1) each) and drawn lightest-first only until the tree is
// complete, so a dense graph whose MST closes early never pays for a full sort.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil, graph.Directed() == true, or any edge is directed.
//   - ErrDisconnected  : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Validate and retrieve sorted vertex IDs; |V| == 1 → trivial MST (empty, weight=0).
//  2. Insert every non-loop edge into the heap keyed by Weight.
//  3. Initialize DSU maps parent[] and rank[] for each vertex.
//  4. ExtractMin repeatedly: if find(u) != find(v), union(u,v) and include the edge.
//  5. Stop at |V|-1 edges. If the heap runs dry first → ErrDisconnected.
//
// Complexity: O(E + k log E + α(V)·k) where k ≤ E is the number of edges drawn. Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	vertices, err := validate(graph)
	if err != nil {
		return nil, 0, err
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	allEdges := graph.Edges()
	pq := fibheap.New[int64](fibheap.WithCapacity(len(allEdges)))
	byHandle := make(map[fibheap.Handle]core.Edge, len(allEdges))
	for _, e := range allEdges {
		// Self-loops cannot be part of a spanning tree.
		if e.From == e.To {
			continue
		}
		byHandle[pq.Insert(e.Weight)] = e
	}

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
	}

	// Iterative find with path halving.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	union := func(rootU, rootV string) {
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
			return
		}
		parent[rootV] = rootU
		if rank[rootU] == rank[rootV] {
			rank[rootU]++
		}
	}

	var (
		mst         = make([]core.Edge, 0, len(vertices)-1)
		totalWeight int64
	)
	for len(mst) < len(vertices)-1 {
		hd, w, ok := pq.ExtractMin()
		if !ok {
			break
		}
		e := byHandle[hd]
		delete(byHandle, hd)

		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		union(ru, rv)
		mst = append(mst, e)
		totalWeight += w
	}

	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
