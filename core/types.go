package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, integer Weight, and a Directed
// flag. Undirected edges are stored once per direction in the adjacency list,
// so Neighbors(u) always yields edges with From == u; both halves share the ID.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge.
	Weight int64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is a weighted adjacency-list graph with string vertex IDs.
//
// mu guards every field below it; a Graph may be built from several
// goroutines while readers (Dijkstra, Prim, Kruskal) hold only the read lock.
type Graph struct {
	mu sync.RWMutex

	directed   bool   // default directedness
	nextEdgeID uint64 // edge ID generator

	adj   map[string][]Edge // vertex ID → outgoing edges
	edges []Edge            // every AddEdge call, in ID order
}

// NewGraph creates an empty Graph. By default the Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adj: make(map[string][]Edge)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
