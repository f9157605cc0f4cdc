package heapmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvheap/fibheap"
)

// Source is what a Collector scrapes.
type Source interface {
	Stats() fibheap.Stats
	Len() int
}

// counter pairs a descriptor with the Stats field it reports.
type counter struct {
	desc  *prometheus.Desc
	value func(fibheap.Stats) uint64
}

// Collector implements prometheus.Collector for one Source.
type Collector struct {
	src      Source
	size     *prometheus.Desc
	counters []counter
}

// NewCollector builds a collector for src. namespace may be empty;
// constLabels may be nil.
func NewCollector(namespace string, src Source, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "fibheap", name), help, nil, constLabels)
	}

	return &Collector{
		src:  src,
		size: desc("size", "Number of live nodes in the heap."),
		counters: []counter{
			{desc("inserts_total", "Number of keys inserted into the heap."),
				func(s fibheap.Stats) uint64 { return s.Inserts }},
			{desc("extractions_total", "Number of minimum nodes extracted."),
				func(s fibheap.Stats) uint64 { return s.Extractions }},
			{desc("deletions_total", "Number of nodes removed by Delete."),
				func(s fibheap.Stats) uint64 { return s.Deletions }},
			{desc("decrease_keys_total", "Number of successful decrease-key operations."),
				func(s fibheap.Stats) uint64 { return s.DecreaseKeys }},
			{desc("rejections_total", "Number of operations rejected for an invalid key or stale handle."),
				func(s fibheap.Stats) uint64 { return s.Rejections }},
			{desc("cuts_total", "Number of nodes cut from their parent into the root list."),
				func(s fibheap.Stats) uint64 { return s.Cuts }},
			{desc("cascading_cuts_total", "Number of cuts performed while cascading through marked ancestors."),
				func(s fibheap.Stats) uint64 { return s.CascadingCuts }},
			{desc("marks_total", "Number of nodes marked after losing a first child."),
				func(s fibheap.Stats) uint64 { return s.Marks }},
			{desc("links_total", "Number of roots linked under another root during consolidation."),
				func(s fibheap.Stats) uint64 { return s.Links }},
			{desc("consolidations_total", "Number of consolidation passes."),
				func(s fibheap.Stats) uint64 { return s.Consolidations }},
			{desc("clears_total", "Number of Clear calls."),
				func(s fibheap.Stats) uint64 { return s.Clears }},
		},
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	for _, m := range c.counters {
		ch <- m.desc
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(c.src.Len()))
	for _, m := range c.counters {
		ch <- prometheus.MustNewConstMetric(m.desc, prometheus.CounterValue, float64(m.value(st)))
	}
}
