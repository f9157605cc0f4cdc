package fibheap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvheap/fibheap"
)

func observedHeap(level zapcore.Level) (*fibheap.Heap[int], *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return fibheap.New[int](fibheap.WithLogger(zap.New(core))), logs
}

func TestLogging_Consolidation(t *testing.T) {
	h, logs := observedHeap(zap.DebugLevel)
	insertRange(h, 5, 14)
	h.ExtractMin()

	entries := logs.FilterMessage("consolidated root list").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(9), fields["roots_before"])
	assert.Equal(t, int64(2), fields["roots_after"])
	assert.Equal(t, uint64(7), fields["links"])
	assert.Equal(t, "logphi", fields["bound"])
}

func TestLogging_CascadeAndRejection(t *testing.T) {
	h, logs := observedHeap(zap.DebugLevel)
	byKey := insertRange(h, 5, 14)
	h.ExtractMin()
	require.NoError(t, h.DecreaseKey(byKey[14], 1))
	require.NoError(t, h.DecreaseKey(byKey[12], 2))
	require.NoError(t, h.DecreaseKey(byKey[13], 3))

	cascades := logs.FilterMessage("cascading cut").All()
	require.Len(t, cascades, 1)
	assert.Equal(t, int64(1), cascades[0].ContextMap()["depth"])

	require.Error(t, h.DecreaseKey(byKey[9], 50))
	assert.Equal(t, 1, logs.FilterMessage("decrease key rejected").Len())

	h.Clear()
	cleared := logs.FilterMessage("heap cleared").All()
	require.Len(t, cleared, 1)
	assert.Equal(t, int64(9), cleared[0].ContextMap()["dropped"])
}

func TestLogging_QuietAboveDebug(t *testing.T) {
	h, logs := observedHeap(zap.InfoLevel)
	insertRange(h, 1, 64)
	for !h.IsEmpty() {
		h.ExtractMin()
	}
	assert.Zero(t, logs.Len())
}
