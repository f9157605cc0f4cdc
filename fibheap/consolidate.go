package fibheap

import (
	"math"

	"go.uber.org/zap"
)

// Phi is the golden ratio, the base of the degree bound.
var Phi = (1 + math.Sqrt(5)) / 2

// MaxDegreeBound returns floor(log_phi(n)): no node of a heap holding n
// nodes can have more children than this.
func MaxDegreeBound(n int) int {
	if n <= 1 {
		return 0
	}

	return int(math.Floor(math.Log(float64(n))/math.Log(Phi) + 1e-9))
}

// cut moves child x out of p's child list into the root list, unmarked.
func (h *Heap[K]) cut(x, p int) {
	n := h.nodes
	if n[p].child == x {
		if n[x].right == x {
			n[p].child = none
		} else {
			n[p].child = n[x].right
		}
	}
	h.unlink(x)
	n[p].degree--

	h.spliceRight(h.min, x)
	n[x].parent = none
	n[x].mark = false
	h.stats.Cuts++
}

// cascadingCut walks up from p, which has just lost a child. An unmarked
// non-root is marked and the walk stops; a marked one is cut and the walk
// continues with its former parent. Roots stop the walk.
func (h *Heap[K]) cascadingCut(p int) {
	n := h.nodes
	depth := 0
	for {
		gp := n[p].parent
		if gp == none {
			break
		}
		if !n[p].mark {
			n[p].mark = true
			h.stats.Marks++
			break
		}
		h.cut(p, gp)
		h.stats.CascadingCuts++
		depth++
		p = gp
	}
	if depth == 0 {
		return
	}
	if ce := h.log.Check(zap.DebugLevel, "cascading cut"); ce != nil {
		ce.Write(zap.Int("depth", depth))
	}
}

// link makes root y a child of root x. Caller guarantees key(x) <= key(y).
func (h *Heap[K]) link(y, x int) {
	n := h.nodes
	h.unlink(y)
	if n[x].child == none {
		n[x].child = y
	} else {
		h.spliceRight(n[x].child, y)
	}
	n[x].degree++
	n[y].parent = x
	n[y].mark = false
	h.stats.Links++
}

// degreeTable returns the reset scratch table sized by the configured bound.
func (h *Heap[K]) degreeTable() []int {
	size := MaxDegreeBound(h.size) + 2
	if h.bound == BoundConservative && h.size > size {
		size = h.size
	}
	t := h.scratch[:0]
	for i := 0; i < size; i++ {
		t = append(t, none)
	}

	return t
}

// consolidate links equal-degree roots until every root degree is distinct,
// then rebuilds the root list and recomputes min. h.min must be some root.
func (h *Heap[K]) consolidate() {
	n := h.nodes
	table := h.degreeTable()

	// Count the roots first: linking rearranges the list during the walk.
	roots := 1
	for x := n[h.min].right; x != h.min; x = n[x].right {
		roots++
	}

	linksBefore := h.stats.Links
	w := h.min
	for i := 0; i < roots; i++ {
		x := w
		w = n[w].right
		d := n[x].degree
		for {
			for d >= len(table) {
				table = append(table, none)
			}
			y := table[d]
			if y == none {
				break
			}
			if n[y].key < n[x].key {
				x, y = y, x
			}
			h.link(y, x)
			table[d] = none
			d++
		}
		table[d] = x
	}

	// Rebuild the root list in ascending degree order.
	h.min = none
	last := none
	survivors := 0
	for _, x := range table {
		if x == none {
			continue
		}
		h.unlink(x)
		if last == none {
			h.min = x
		} else {
			h.spliceRight(last, x)
			if n[x].key < n[h.min].key {
				h.min = x
			}
		}
		last = x
		survivors++
	}
	h.scratch = table
	h.stats.Consolidations++

	if ce := h.log.Check(zap.DebugLevel, "consolidated root list"); ce != nil {
		ce.Write(
			zap.Int("roots_before", roots),
			zap.Int("roots_after", survivors),
			zap.Uint64("links", h.stats.Links-linksBefore),
			zap.Int("table_size", len(table)),
			zap.Stringer("bound", h.bound))
	}
}
