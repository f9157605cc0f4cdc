package fibheap

// node is one arena slot. Links are arena indices; none means absent.
//
// left/right always form a circular list: a node with no siblings points to
// itself on both sides. seq is 0 for a free slot.
type node[K Key] struct {
	key    K
	parent int
	child  int
	left   int
	right  int
	degree int
	mark   bool
	seq    uint64
}

// newNode returns a singleton node stored at index self.
func newNode[K Key](self int, key K, seq uint64) node[K] {
	return node[K]{
		key:    key,
		parent: none,
		child:  none,
		left:   self,
		right:  self,
		seq:    seq,
	}
}

// alloc stores a new singleton node in a free or fresh slot and returns its index.
func (h *Heap[K]) alloc(key K) int {
	h.seq++
	var i int
	if n := len(h.free); n > 0 {
		i = h.free[n-1]
		h.free = h.free[:n-1]
		h.nodes[i] = newNode(i, key, h.seq)
	} else {
		i = len(h.nodes)
		h.nodes = append(h.nodes, newNode(i, key, h.seq))
	}

	return i
}

// release returns slot i to the free list; handles to it become stale.
func (h *Heap[K]) release(i int) {
	h.nodes[i] = node[K]{parent: none, child: none, left: none, right: none}
	h.free = append(h.free, i)
}

// handle builds the public Handle for index i, or the zero Handle for none.
func (h *Heap[K]) handle(i int) Handle {
	if i == none {
		return Handle{}
	}

	return Handle{heap: h.id, index: i, seq: h.nodes[i].seq}
}

// resolve maps a Handle back to a live arena index of this heap.
func (h *Heap[K]) resolve(hd Handle) (int, error) {
	if hd.heap != h.id || hd.seq == 0 || hd.index < 0 || hd.index >= len(h.nodes) || h.nodes[hd.index].seq != hd.seq {
		return none, ErrStaleHandle
	}

	return hd.index, nil
}

// spliceRight inserts the singleton x into anchor's list, immediately to its right.
func (h *Heap[K]) spliceRight(anchor, x int) {
	n := h.nodes
	n[x].left = anchor
	n[x].right = n[anchor].right
	n[n[anchor].right].left = x
	n[anchor].right = x
}

// unlink removes x from its sibling list and leaves it as a singleton.
func (h *Heap[K]) unlink(x int) {
	n := h.nodes
	n[n[x].left].right = n[x].right
	n[n[x].right].left = n[x].left
	n[x].left = x
	n[x].right = x
}

// siblings returns the members of the circular list containing start,
// beginning at start and moving right.
func (h *Heap[K]) siblings(start int) []int {
	if start == none {
		return nil
	}
	out := []int{start}
	for x := h.nodes[start].right; x != start; x = h.nodes[x].right {
		out = append(out, x)
	}

	return out
}
