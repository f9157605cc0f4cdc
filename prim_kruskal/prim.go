package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/fibheap"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root vertex.
//
// Every vertex outside the tree sits in a Fibonacci heap at most once, keyed by
// the cheapest edge that reaches it from the tree. A cheaper edge found later
// lowers that key in place with DecreaseKey.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil, graph.Directed() == true, or any edge is directed.
//   - ErrDisconnected       : if |V| == 0 (empty graph) or |V| > 1 but the graph is not fully connected.
//   - ErrEmptyRoot          : if the provided root string is empty.
//   - core.ErrVertexNotFound: if the root vertex does not exist in the graph.
//
// Edges are returned in the order their far endpoint joined the tree, with
// From on the tree side.
//
// Complexity: O(E + V log V) time, O(V) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	vertices, err := validate(graph)
	if err != nil {
		return nil, 0, err
	}
	if len(vertices) == 1 {
		if vertices[0] != root {
			return nil, 0, core.ErrVertexNotFound
		}

		return []core.Edge{}, 0, nil
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	n := len(vertices)
	var (
		visited = make(map[string]bool, n)
		best    = make(map[string]core.Edge, n) // cheapest known edge into v from the tree
		queued  = make(map[string]fibheap.Handle, n)
		owner   = make(map[fibheap.Handle]string, n)
		pq      = fibheap.New[int64](fibheap.WithCapacity(n))

		mst         = make([]core.Edge, 0, n-1)
		totalWeight int64
	)

	hd := pq.Insert(0)
	queued[root], owner[hd] = hd, root

	for len(mst) < n-1 {
		hd, w, ok := pq.ExtractMin()
		if !ok {
			break
		}
		u := owner[hd]
		delete(owner, hd)
		delete(queued, u)
		visited[u] = true
		if u != root {
			mst = append(mst, best[u])
			totalWeight += w
		}

		neighbors, err := graph.Neighbors(u)
		if err != nil {
			return nil, 0, err
		}
		for _, e := range neighbors {
			v := e.To
			if visited[v] {
				continue
			}
			if qh, ok := queued[v]; ok {
				if e.Weight >= best[v].Weight {
					continue
				}
				if err := pq.DecreaseKey(qh, e.Weight); err != nil {
					return nil, 0, fmt.Errorf("prim_kruskal: lower key of %q: %w", v, err)
				}
			} else {
				qh := pq.Insert(e.Weight)
				queued[v], owner[qh] = qh, v
			}
			best[v] = e
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
