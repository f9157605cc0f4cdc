// Package core provides the weighted, thread-safe in-memory Graph consumed
// by the shortest-path and spanning-tree packages.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation overrides (WithEdgeDirected)
//   - Parallel edges and self-loops, always allowed
//   - Sequential edge IDs ("e1", "e2", …) in insertion order
//   - A single sync.RWMutex; algorithms only take the read side
//
// Deterministic iteration: Vertices() is sorted, Edges() is in ID order and
// Neighbors() preserves insertion order per vertex.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
package core
