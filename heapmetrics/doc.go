// Package heapmetrics exports fibheap counters to Prometheus.
//
// A Collector reads a Source (anything with Stats and Len, such as
// *fibheap.Heap[K] for any K) at scrape time, so registering it costs
// nothing on the heap's hot paths.
//
// Exported series (namespace "app" shown):
//
//	app_fibheap_size                     gauge, live nodes
//	app_fibheap_inserts_total            counter
//	app_fibheap_extractions_total        counter
//	app_fibheap_deletions_total          counter
//	app_fibheap_decrease_keys_total      counter
//	app_fibheap_rejections_total         counter
//	app_fibheap_cuts_total               counter
//	app_fibheap_cascading_cuts_total     counter
//	app_fibheap_marks_total              counter
//	app_fibheap_links_total              counter
//	app_fibheap_consolidations_total     counter
//	app_fibheap_clears_total             counter
//
// Heaps are not safe for concurrent use, and Prometheus scrapes run on their
// own goroutine. Wrap the heap in a Source that takes the same lock as the
// heap's owner when scraping a heap that is mutated concurrently.
//
// Example:
//
//	h := fibheap.New[int64]()
//	prometheus.MustRegister(heapmetrics.NewCollector("router", h, nil))
package heapmetrics
