package core

import (
	"fmt"
	"sort"
	"strconv"
)

// AddVertex adds id if it is not present yet. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID for an empty id.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}

	return nil
}

// AddEdge connects from→to with weight w, creating missing vertices, and
// returns the new edge ID. Undirected edges (the default) are also reachable
// as to→from. Weights are not validated here; algorithms reject the ones
// they cannot handle.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, w int64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	e := Edge{From: from, To: to, Weight: w, Directed: g.directed}
	for _, opt := range opts {
		opt(&e)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextEdgeID++
	e.ID = "e" + strconv.FormatUint(g.nextEdgeID, 10)

	g.adj[from] = append(g.adj[from], e)
	if e.Directed || from == to {
		if _, ok := g.adj[to]; !ok {
			g.adj[to] = nil
		}
	} else {
		g.adj[to] = append(g.adj[to], Edge{ID: e.ID, From: to, To: from, Weight: w})
	}
	g.edges = append(g.edges, e)

	return e.ID, nil
}

// Directed reports whether new edges default to directed.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// HasDirectedEdges reports whether any stored edge is one-way.
// Complexity: O(E)
func (g *Graph) HasDirectedEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// HasVertex reports whether id is in the graph.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns the edges in ID order, as they were added.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Edge(nil), g.edges...)
}

// Neighbors returns the outgoing edges of id (From == id).
// Returns an error wrapping ErrVertexNotFound for an unknown vertex.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return append([]Edge(nil), out...), nil
}
