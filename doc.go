// Package lvheap is a generic Fibonacci heap for Go, together with the
// graph algorithms that make its O(1) amortized decrease-key pay off.
//
// What is inside?
//
//	fibheap/      — Heap[K]: Insert, PeekMin, ExtractMin, DecreaseKey, Delete,
//	                Clear, plus inspection (Walk, Roots, Inspect, Validate) and
//	                textual dumps (DumpNodes, DumpTree)
//	heapmetrics/  — Prometheus collector exporting a heap's size and operation counters
//	core/         — weighted, thread-safe Graph with string vertex IDs
//	dijkstra/     — single-source shortest paths, eager decrease-key on fibheap
//	prim_kruskal/ — minimum spanning trees drawn from fibheap
//
// Handles, not pointers:
//
//	Insert returns a fibheap.Handle. Handles stay valid until their entry is
//	extracted, deleted or cleared; after that every handle-based call reports
//	fibheap.ErrStaleHandle instead of touching someone else's node.
//
// Quick example:
//
//	h := fibheap.New[int]()
//	a := h.Insert(7)
//	h.Insert(3)
//	_ = h.DecreaseKey(a, 1)
//	_, k, _ := h.ExtractMin() // k == 1
//
//	go get github.com/katalvlaran/lvheap
package lvheap
