package fibheap

import (
	"fmt"
	"strings"
)

const emptyDump = "Empty Fibonacci Heap\n"

// DumpNodes renders the attributes of every node, one line per node, in
// Walk order. Missing links print as "---".
func (h *Heap[K]) DumpNodes() string {
	if h.IsEmpty() {
		return emptyDump
	}

	var sb strings.Builder
	sb.WriteString("Fibonacci Heap nodes:\n")
	h.Walk(func(n NodeInfo[K]) bool {
		fmt.Fprintf(&sb, "Node = [parent = %s, key = %v, degree = %d, right = %s, left = %s, child = %s, mark = %t]\n",
			h.keyOf(n.Parent), n.Key, n.Degree, h.keyOf(n.Right), h.keyOf(n.Left), h.keyOf(n.Child), n.Marked)
		return true
	})

	return sb.String()
}

// DumpTree renders the forest as an indented tree, one key per line:
//
//	7
//	|---8
//	|---11
//	|   |---13
func (h *Heap[K]) DumpTree() string {
	if h.IsEmpty() {
		return emptyDump
	}

	var sb strings.Builder
	sb.WriteString("Fibonacci Heap tree:\n")
	h.Walk(func(n NodeInfo[K]) bool {
		if n.Depth > 0 {
			sb.WriteString("|")
			sb.WriteString(strings.Repeat("   |", n.Depth-1))
			sb.WriteString("---")
		}
		fmt.Fprintf(&sb, "%v\n", n.Key)
		return true
	})

	return sb.String()
}

func (h *Heap[K]) keyOf(hd Handle) string {
	if hd.IsZero() {
		return "---"
	}

	return fmt.Sprint(h.nodes[hd.index].key)
}
