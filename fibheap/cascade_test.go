package fibheap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvheap/fibheap"
)

// buildReferenceForest inserts 5..14 and extracts 5. Consolidation then
// leaves two roots:
//
//	6
//	7
//	|---8
//	|---11
//	|   |---12
//	|   |---13
//	|   |   |---14
//	|---9
//	|   |---10
func buildReferenceForest(t *testing.T) (*fibheap.Heap[int], map[int]fibheap.Handle) {
	t.Helper()
	h := fibheap.New[int]()
	byKey := insertRange(h, 5, 14)
	_, k, ok := h.ExtractMin()
	require.True(t, ok)
	require.Equal(t, 5, k)
	require.NoError(t, h.Validate())

	return h, byKey
}

func inspect(t *testing.T, h *fibheap.Heap[int], hd fibheap.Handle) fibheap.NodeInfo[int] {
	t.Helper()
	info, err := h.Inspect(hd)
	require.NoError(t, err)

	return info
}

func TestConsolidate_ReferenceForest(t *testing.T) {
	h, byKey := buildReferenceForest(t)

	roots := h.Roots()
	require.Len(t, roots, 2)
	assert.Equal(t, byKey[6], roots[0])
	assert.Equal(t, byKey[7], roots[1])

	assert.Equal(t, 3, inspect(t, h, byKey[7]).Degree)
	assert.Equal(t, 2, inspect(t, h, byKey[11]).Degree)
	assert.Equal(t, byKey[13], inspect(t, h, byKey[14]).Parent)
	assert.Equal(t, 3, inspect(t, h, byKey[14]).Depth)
	assert.Equal(t, uint64(7), h.Stats().Links)
	assert.Equal(t, uint64(1), h.Stats().Consolidations)
}

// TestCascadingCut walks a node through every mark transition:
// 11 loses one child (stays attached, marked), then a second one
// (cut to the root list, unmarked).
func TestCascadingCut(t *testing.T) {
	h, byKey := buildReferenceForest(t)

	// 14 < 13 violates order: 14 is cut, 13 (a non-root) gets marked.
	require.NoError(t, h.DecreaseKey(byKey[14], 1))
	require.NoError(t, h.Validate())
	n14 := inspect(t, h, byKey[14])
	assert.True(t, n14.IsRoot())
	assert.False(t, n14.Marked)
	assert.True(t, inspect(t, h, byKey[13]).Marked)
	assert.Equal(t, byKey[11], inspect(t, h, byKey[13]).Parent)

	// First lost child of 11: it stays under 7 but is marked.
	require.NoError(t, h.DecreaseKey(byKey[12], 2))
	require.NoError(t, h.Validate())
	n11 := inspect(t, h, byKey[11])
	assert.Equal(t, byKey[7], n11.Parent)
	assert.True(t, n11.Marked)
	assert.Equal(t, 1, n11.Degree)

	// 13 is marked and loses its place; its cut is the second loss for 11,
	// so 11 is cut as well. 7 is a root, which stops the cascade.
	require.NoError(t, h.DecreaseKey(byKey[13], 3))
	require.NoError(t, h.Validate())

	n13 := inspect(t, h, byKey[13])
	assert.True(t, n13.IsRoot())
	assert.False(t, n13.Marked, "cut clears the mark")

	n11 = inspect(t, h, byKey[11])
	assert.True(t, n11.IsRoot(), "second lost child detaches the node")
	assert.False(t, n11.Marked)
	assert.Equal(t, 0, n11.Degree)

	n7 := inspect(t, h, byKey[7])
	assert.True(t, n7.IsRoot())
	assert.False(t, n7.Marked)
	assert.Equal(t, 2, n7.Degree)

	st := h.Stats()
	assert.Equal(t, uint64(4), st.Cuts)
	assert.Equal(t, uint64(1), st.CascadingCuts)
	assert.Equal(t, uint64(2), st.Marks)
	assert.Equal(t, uint64(3), st.DecreaseKeys)

	_, k, _ := h.PeekMin()
	assert.Equal(t, 1, k)
	assert.Len(t, h.Roots(), 6)
	assert.Equal(t, []int{1, 2, 3, 6, 7, 8, 9, 10, 11}, drain(t, h))
}

// TestExtractMin_PromotedChildrenAreUnmarked checks that children moved to
// the root list by ExtractMin lose their mark.
func TestExtractMin_PromotedChildrenAreUnmarked(t *testing.T) {
	h, byKey := buildReferenceForest(t)
	require.NoError(t, h.DecreaseKey(byKey[14], 1)) // marks 13
	require.True(t, inspect(t, h, byKey[13]).Marked)

	// Draining through 11 promotes 13 while it is still marked.
	for _, want := range []int{1, 6, 7, 8, 9, 10, 11} {
		_, k, ok := h.ExtractMin()
		require.True(t, ok)
		require.Equal(t, want, k)
		require.NoError(t, h.Validate())
	}
	assert.False(t, inspect(t, h, byKey[13]).Marked)
}
