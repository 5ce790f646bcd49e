// Package metrics exposes dynbvh.Tree pool statistics as Prometheus
// gauges. It graduates the "TODO: remove it once the code is stable"
// atomic counters from bart/pool.go into permanent, production-grade
// instrumentation rather than leaving them as debug-only fields.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Statter is implemented by dynbvh.Tree: anything that can report
// live/total pool node counts, leaf count and tree height.
type Statter interface {
	PoolStats() (live, total int64)
	Len() int
	Height() int
}

// Collector is a prometheus.Collector reporting a Tree's pool and
// shape statistics on each scrape.
type Collector struct {
	tree Statter

	liveNodes  *prometheus.Desc
	totalNodes *prometheus.Desc
	leafCount  *prometheus.Desc
	height     *prometheus.Desc
}

// NewCollector returns a Collector reporting tree's statistics under
// the given constant labels (e.g. {"tree": "world"} to distinguish
// multiple trees in one process).
func NewCollector(tree Statter, constLabels prometheus.Labels) *Collector {
	return &Collector{
		tree: tree,
		liveNodes: prometheus.NewDesc(
			"dynbvh_pool_live_nodes",
			"Number of pool nodes currently allocated (not on the free list).",
			nil, constLabels,
		),
		totalNodes: prometheus.NewDesc(
			"dynbvh_pool_total_nodes",
			"Total number of pool nodes ever allocated.",
			nil, constLabels,
		),
		leafCount: prometheus.NewDesc(
			"dynbvh_leaf_count",
			"Number of live leaves (inserted objects) in the tree.",
			nil, constLabels,
		),
		height: prometheus.NewDesc(
			"dynbvh_tree_height",
			"Height of the tree's root, 0 if empty.",
			nil, constLabels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.liveNodes
	ch <- c.totalNodes
	ch <- c.leafCount
	ch <- c.height
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	live, total := c.tree.PoolStats()
	ch <- prometheus.MustNewConstMetric(c.liveNodes, prometheus.GaugeValue, float64(live))
	ch <- prometheus.MustNewConstMetric(c.totalNodes, prometheus.GaugeValue, float64(total))
	ch <- prometheus.MustNewConstMetric(c.leafCount, prometheus.GaugeValue, float64(c.tree.Len()))
	ch <- prometheus.MustNewConstMetric(c.height, prometheus.GaugeValue, float64(c.tree.Height()))
}
