// Package fibheap provides a Fibonacci heap: a min-priority queue with
// amortized O(1) Insert and DecreaseKey and amortized O(log n) ExtractMin.
//
// Overview:
//
//   - The heap is a forest of min-ordered trees whose roots form a circular
//     doubly-linked "root list". Every node's children form their own circular
//     list, and the heap keeps a reference to the root holding the minimum key.
//   - Insert only splices a new singleton tree into the root list. All the
//     restructuring is deferred to ExtractMin, which consolidates the root list
//     so that no two roots share a degree.
//   - DecreaseKey cuts a node out of its parent when heap order is violated and
//     propagates the cut upwards through marked ancestors ("cascading cut").
//     Marks bound how many children a node may lose, which in turn bounds the
//     degree of every node by floor(log_phi(n)).
//
// Storage model:
//
//   - Nodes live in an arena (a slice) and link to each other by index, so the
//     sibling, parent and child references never alias Go pointers.
//   - Insert returns a Handle (arena index plus generation). A Handle stays valid
//     across cuts, links and consolidation, and becomes stale once its node is
//     extracted, deleted, or the heap is cleared. Stale handles are detected and
//     rejected with ErrStaleHandle.
//
// Complexity:
//
//	Insert        O(1)
//	PeekMin       O(1)
//	IsEmpty/Len   O(1)
//	ExtractMin    O(log n) amortized, O(n) worst case
//	DecreaseKey   O(1) amortized
//	Delete        O(log n) amortized
//	Clear         O(1)
//
// Options:
//
//   - WithLogger(*zap.Logger):        structured Debug events (default: no-op logger).
//   - WithConsolidationBound(Bound):  scratch array sizing for consolidation.
//   - WithCapacity(int):              preallocate arena slots.
//
// Errors (sentinel):
//
//   - ErrInvalidKey   DecreaseKey with a key that is not strictly lower (or NaN).
//   - ErrStaleHandle  the handle does not refer to a live node of this heap.
//   - ErrCorrupt      Validate found a broken structural invariant.
//   - ErrBadCapacity  WithCapacity received a negative value (panics).
//
// An empty heap is not an error: PeekMin and ExtractMin report it through
// their boolean result.
//
// Thread safety:
//
//   - A Heap is not safe for concurrent use. Guard it with a mutex if it is
//     shared between goroutines.
//
// Example:
//
//	h := fibheap.New[int]()
//	a := h.Insert(7)
//	h.Insert(3)
//	_ = h.DecreaseKey(a, 1)
//	_, key, _ := h.ExtractMin() // key == 1
package fibheap
