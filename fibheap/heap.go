package fibheap

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

// heapIDs issues Heap.id; 0 is never used.
var heapIDs atomic.Uint64

// Heap is a Fibonacci min-heap of keys of type K.
//
// The zero value is not usable; create heaps with New.
type Heap[K Key] struct {
	id    uint64    // stamped into every Handle
	nodes []node[K] // arena; index is the node identity
	free  []int     // released slots, reused LIFO
	seq   uint64    // last generation handed out

	min  int // root holding the minimum key, or none
	size int // live nodes

	scratch []int // consolidation degree table, reused between passes

	log   *zap.Logger
	bound Bound
	stats Stats
}

// New creates an empty heap configured by opts.
func New[K Key](opts ...Option) *Heap[K] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Heap[K]{
		id:    heapIDs.Add(1),
		nodes: make([]node[K], 0, cfg.Capacity),
		min:   none,
		log:   cfg.Logger,
		bound: cfg.Bound,
	}
}

// Insert adds key to the heap and returns the handle of its node.
// Complexity: O(1).
func (h *Heap[K]) Insert(key K) Handle {
	x := h.alloc(key)
	if h.min == none {
		h.min = x
	} else {
		h.spliceRight(h.min, x)
		if key < h.nodes[h.min].key {
			h.min = x
		}
	}
	h.size++
	h.stats.Inserts++

	return h.handle(x)
}

// IsEmpty reports whether the heap holds no nodes.
func (h *Heap[K]) IsEmpty() bool { return h.min == none }

// Len returns the number of live nodes.
func (h *Heap[K]) Len() int { return h.size }

// PeekMin returns the handle and key of the minimum node without removing it.
// ok is false when the heap is empty.
func (h *Heap[K]) PeekMin() (hd Handle, key K, ok bool) {
	if h.min == none {
		return Handle{}, key, false
	}

	return h.handle(h.min), h.nodes[h.min].key, true
}

// ExtractMin removes the minimum node and returns its handle and key.
// ok is false when the heap is empty. The returned handle is stale.
// Complexity: O(log n) amortized.
func (h *Heap[K]) ExtractMin() (hd Handle, key K, ok bool) {
	if h.min == none {
		return Handle{}, key, false
	}
	hd, key = h.handle(h.min), h.nodes[h.min].key
	h.extract()
	h.stats.Extractions++

	return hd, key, true
}

// extract removes h.min, promotes its children and consolidates.
func (h *Heap[K]) extract() {
	m := h.min
	n := h.nodes

	// 1) Move every child of m into the root list, right next to m.
	for c := n[m].child; n[m].degree > 0; {
		next := n[c].right
		h.unlink(c)
		h.spliceRight(m, c)
		n[c].parent = none
		n[c].mark = false
		n[m].degree--
		c = next
	}
	n[m].child = none

	// 2) Unlink m; if it was the last root the heap is now empty.
	right := n[m].right
	h.unlink(m)
	if right == m {
		h.min = none
	} else {
		h.min = right
		h.consolidate()
	}

	h.size--
	h.release(m)
}

// DecreaseKey lowers the key of the node behind hd to newKey.
//
// Returns ErrStaleHandle if hd is not live, and ErrInvalidKey if newKey is not
// strictly lower than the current key. On error the heap is unchanged.
// Complexity: O(1) amortized.
func (h *Heap[K]) DecreaseKey(hd Handle, newKey K) error {
	x, err := h.resolve(hd)
	if err != nil {
		h.stats.Rejections++
		return fmt.Errorf("decrease key %v: %w", hd, err)
	}
	cur := h.nodes[x].key
	if newKey != newKey || newKey >= cur { // NaN never compares lower
		h.stats.Rejections++
		h.log.Debug("decrease key rejected",
			zap.Stringer("handle", hd),
			zap.Any("current", cur),
			zap.Any("requested", newKey))
		return fmt.Errorf("%w: current=%v requested=%v", ErrInvalidKey, cur, newKey)
	}

	n := h.nodes
	n[x].key = newKey
	if p := n[x].parent; p != none && newKey < n[p].key {
		h.cut(x, p)
		h.cascadingCut(p)
	}
	if newKey < n[h.min].key {
		h.min = x
	}
	h.stats.DecreaseKeys++

	return nil
}

// Delete removes the node behind hd, wherever it sits in the forest.
// Returns ErrStaleHandle if hd is not live. The handle is stale afterwards.
// Complexity: O(log n) amortized.
func (h *Heap[K]) Delete(hd Handle) error {
	x, err := h.resolve(hd)
	if err != nil {
		h.stats.Rejections++
		return fmt.Errorf("delete %v: %w", hd, err)
	}
	if p := h.nodes[x].parent; p != none {
		h.cut(x, p)
		h.cascadingCut(p)
	}
	// x is a root now; extract treats it as the minimum and consolidation
	// recomputes the real one.
	h.min = x
	h.extract()
	h.stats.Deletions++

	return nil
}

// Clear drops every node in O(1). All outstanding handles become stale.
// Clearing an empty heap is a no-op apart from the Clears counter.
func (h *Heap[K]) Clear() {
	dropped := h.size
	h.nodes = h.nodes[:0]
	h.free = h.free[:0]
	h.min = none
	h.size = 0
	h.stats.Clears++
	h.log.Debug("heap cleared", zap.Int("dropped", dropped))
}

// Key returns the current key of the node behind hd.
func (h *Heap[K]) Key(hd Handle) (K, error) {
	x, err := h.resolve(hd)
	if err != nil {
		var zero K
		return zero, err
	}

	return h.nodes[x].key, nil
}

// Contains reports whether hd refers to a live node of this heap.
func (h *Heap[K]) Contains(hd Handle) bool {
	_, err := h.resolve(hd)
	return err == nil
}

// Stats returns a copy of the heap's operation counters.
func (h *Heap[K]) Stats() Stats { return h.stats }
