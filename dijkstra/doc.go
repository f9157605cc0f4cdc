// Package dijkstra provides Dijkstra's shortest-path algorithm on weighted
// graphs with non-negative edge weights, driven by a Fibonacci heap.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices. It always expands the next-closest vertex, taken from
//     a fibheap.Heap keyed by tentative distance.
//   - Every vertex enters the heap at most once. When a shorter route to a
//     queued vertex is found, its key is lowered in place with DecreaseKey
//     instead of pushing a duplicate entry ("eager decrease-key").
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a “predecessor” map, so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//   - Mixed edges support: per-edge core.WithEdgeDirected overrides the graph default.
//   - Logger: a zap logger receives a Debug summary (settled vertices, decrease-keys, cuts).
//
// Performance and complexity:
//
//   - Time:  O(E + V log V)
//   - V inserts and V extractions, O(log V) amortized per extraction.
//   - Up to E decrease-keys, O(1) amortized each.
//   - Space: O(V) for distance, predecessor and handle maps; the heap never
//     holds more than V entries.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     the Source string is empty.
//   - ErrNilGraph:        a nil *core.Graph was passed.
//   - ErrVertexNotFound:  the source vertex does not exist in the graph.
//   - ErrNegativeWeight:  some edge has a negative weight (O(E) pre-scan).
//   - ErrBadMaxDistance:  WithMaxDistance got a negative value (panics).
//   - ErrBadInfThreshold: WithInfEdgeThreshold got zero or a negative value (panics).
//
// API reference:
//
//	func Dijkstra(
//	    g *core.Graph,
//	    opts ...Option,
//	) (dist map[string]int64, prev map[string]string, err error)
//
//	  - dist:    map[v] = minimal distance from Source to v, or math.MaxInt64 if unreachable.
//	  - prev:    map[v] = immediate predecessor of v on one shortest path from Source,
//	              or "" if v is the Source or v is unreachable. Nil if ReturnPath=false.
//
// Thread safety:
//
//   - core.Graph guards its maps with an RWMutex. Dijkstra only reads the graph and
//     keeps all other state (including its heap) local to the call.
//
// See also:
//
//   - fibheap.Heap: the priority queue used here.
package dijkstra
