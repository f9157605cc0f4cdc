package fibheap

import "fmt"

// Inspect returns a snapshot of the node behind hd. Depth is 0 for roots.
func (h *Heap[K]) Inspect(hd Handle) (NodeInfo[K], error) {
	x, err := h.resolve(hd)
	if err != nil {
		return NodeInfo[K]{}, err
	}
	depth := 0
	for p := h.nodes[x].parent; p != none; p = h.nodes[p].parent {
		depth++
	}

	return h.info(x, depth), nil
}

// Roots returns the handles of the root list, starting at the minimum.
func (h *Heap[K]) Roots() []Handle {
	roots := h.siblings(h.min)
	out := make([]Handle, len(roots))
	for i, x := range roots {
		out[i] = h.handle(x)
	}

	return out
}

// Walk visits every live node exactly once in depth-first pre-order: roots
// from the minimum rightwards, each followed by its subtree. Children are
// visited starting at the parent's child reference. fn returning false stops
// the walk.
func (h *Heap[K]) Walk(fn func(NodeInfo[K]) bool) {
	type frame struct{ x, depth int }

	var stack []frame
	push := func(start, depth int) {
		list := h.siblings(start)
		for i := len(list) - 1; i >= 0; i-- {
			stack = append(stack, frame{list[i], depth})
		}
	}

	push(h.min, 0)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(h.info(f.x, f.depth)) {
			return
		}
		if c := h.nodes[f.x].child; c != none {
			push(c, f.depth+1)
		}
	}
}

func (h *Heap[K]) info(x, depth int) NodeInfo[K] {
	nd := h.nodes[x]
	return NodeInfo[K]{
		Handle: h.handle(x),
		Key:    nd.key,
		Parent: h.handle(nd.parent),
		Child:  h.handle(nd.child),
		Left:   h.handle(nd.left),
		Right:  h.handle(nd.right),
		Degree: nd.degree,
		Marked: nd.mark,
		Depth:  depth,
	}
}

// Validate checks every structural invariant: intact circular lists, parent
// back-references, exact degrees, heap order, unmarked roots, a minimal min
// and a node count equal to Len. Violations wrap ErrCorrupt.
// Complexity: O(n).
func (h *Heap[K]) Validate() error {
	if (h.min == none) != (h.size == 0) {
		return fmt.Errorf("%w: min=%d but size=%d", ErrCorrupt, h.min, h.size)
	}
	if h.min == none {
		return nil
	}

	live := func(i int) bool { return i >= 0 && i < len(h.nodes) && h.nodes[i].seq != 0 }
	if !live(h.min) {
		return fmt.Errorf("%w: min refers to free slot %d", ErrCorrupt, h.min)
	}

	type list struct{ start, parent int }
	seen := make([]bool, len(h.nodes))
	stack := []list{{h.min, none}}
	minKey := h.nodes[h.min].key
	count := 0

	for len(stack) > 0 {
		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		members := 0
		x := l.start
		for {
			if !live(x) {
				return fmt.Errorf("%w: dangling index %d", ErrCorrupt, x)
			}
			if seen[x] {
				return fmt.Errorf("%w: node %d reached twice", ErrCorrupt, x)
			}
			seen[x] = true
			count++
			if count > h.size {
				return fmt.Errorf("%w: more than %d nodes reachable", ErrCorrupt, h.size)
			}

			nd := h.nodes[x]
			if !live(nd.left) || !live(nd.right) ||
				h.nodes[nd.right].left != x || h.nodes[nd.left].right != x {
				return fmt.Errorf("%w: sibling list broken at node %d", ErrCorrupt, x)
			}
			if nd.parent != l.parent {
				return fmt.Errorf("%w: node %d has parent %d, listed under %d", ErrCorrupt, x, nd.parent, l.parent)
			}
			if l.parent == none {
				if nd.mark {
					return fmt.Errorf("%w: root %d is marked", ErrCorrupt, x)
				}
				if nd.key < minKey {
					return fmt.Errorf("%w: root %d key %v below min key %v", ErrCorrupt, x, nd.key, minKey)
				}
			} else if nd.key < h.nodes[l.parent].key {
				return fmt.Errorf("%w: node %d key %v below parent key %v", ErrCorrupt, x, nd.key, h.nodes[l.parent].key)
			}
			if nd.child != none {
				stack = append(stack, list{nd.child, x})
			} else if nd.degree != 0 {
				return fmt.Errorf("%w: node %d has degree %d and no child", ErrCorrupt, x, nd.degree)
			}

			members++
			x = nd.right
			if x == l.start {
				break
			}
		}
		if l.parent != none && members != h.nodes[l.parent].degree {
			return fmt.Errorf("%w: node %d has degree %d but %d children", ErrCorrupt, l.parent, h.nodes[l.parent].degree, members)
		}
	}
	if count != h.size {
		return fmt.Errorf("%w: %d nodes reachable, size is %d", ErrCorrupt, count, h.size)
	}

	return nil
}
