package heapmetrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvheap/fibheap"
	"github.com/katalvlaran/lvheap/heapmetrics"
)

func TestCollector_Registers(t *testing.T) {
	h := fibheap.New[int]()
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(heapmetrics.NewCollector("lvheap", h, prometheus.Labels{"heap": "test"})))

	assert.Equal(t, 12, testutil.CollectAndCount(heapmetrics.NewCollector("lvheap", h, nil)))
}

func TestCollector_ReportsHeapWork(t *testing.T) {
	h := fibheap.New[int]()
	byKey := make(map[int]fibheap.Handle)
	for k := 5; k <= 14; k++ {
		byKey[k] = h.Insert(k)
	}
	h.ExtractMin()
	require.NoError(t, h.DecreaseKey(byKey[14], 1))
	require.NoError(t, h.DecreaseKey(byKey[12], 2))
	require.NoError(t, h.DecreaseKey(byKey[13], 3))
	require.Error(t, h.DecreaseKey(byKey[6], 6))

	c := heapmetrics.NewCollector("lvheap", h, nil)
	expected := `
# HELP lvheap_fibheap_size Number of live nodes in the heap.
# TYPE lvheap_fibheap_size gauge
lvheap_fibheap_size 9
# HELP lvheap_fibheap_inserts_total Number of keys inserted into the heap.
# TYPE lvheap_fibheap_inserts_total counter
lvheap_fibheap_inserts_total 10
# HELP lvheap_fibheap_cuts_total Number of nodes cut from their parent into the root list.
# TYPE lvheap_fibheap_cuts_total counter
lvheap_fibheap_cuts_total 4
# HELP lvheap_fibheap_cascading_cuts_total Number of cuts performed while cascading through marked ancestors.
# TYPE lvheap_fibheap_cascading_cuts_total counter
lvheap_fibheap_cascading_cuts_total 1
# HELP lvheap_fibheap_links_total Number of roots linked under another root during consolidation.
# TYPE lvheap_fibheap_links_total counter
lvheap_fibheap_links_total 7
# HELP lvheap_fibheap_rejections_total Number of operations rejected for an invalid key or stale handle.
# TYPE lvheap_fibheap_rejections_total counter
lvheap_fibheap_rejections_total 1
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"lvheap_fibheap_size",
		"lvheap_fibheap_inserts_total",
		"lvheap_fibheap_cuts_total",
		"lvheap_fibheap_cascading_cuts_total",
		"lvheap_fibheap_links_total",
		"lvheap_fibheap_rejections_total",
	)
	require.NoError(t, err)
}

func TestCollector_FollowsClear(t *testing.T) {
	h := fibheap.New[float64]()
	h.Insert(1.5)
	h.Insert(0.5)
	h.Clear()

	c := heapmetrics.NewCollector("", h, nil)
	expected := `
# HELP fibheap_size Number of live nodes in the heap.
# TYPE fibheap_size gauge
fibheap_size 0
# HELP fibheap_clears_total Number of Clear calls.
# TYPE fibheap_clears_total counter
fibheap_clears_total 1
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "fibheap_size", "fibheap_clears_total"))
}
