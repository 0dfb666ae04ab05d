// SPDX-License-Identifier: MIT

// Package metrics records solver outcomes in a Prometheus registry. The CLI
// runs one solve per process, so the registry is dumped to a node-exporter
// textfile instead of being served.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvknap/knapsack"
)

const namespace = "lvknap"

// Recorder is a knapsack.Observer backed by its own registry.
type Recorder struct {
	registry *prometheus.Registry

	Solves     *prometheus.CounterVec // by status
	Nodes      prometheus.Histogram
	Duration   prometheus.Histogram
	Incumbents prometheus.Counter
	Items      prometheus.Gauge // size of the last instance
}

var _ knapsack.Observer = (*Recorder)(nil)

// NewRecorder creates the solver metrics in a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.Solves = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "solves_total",
		Help:      "Finished solves by termination status.",
	}, []string{"status"})
	r.Nodes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "nodes_expanded",
		Help:      "Frontier pops per solve.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
	})
	r.Duration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "solve_duration_seconds",
		Help:      "Wall-clock time per solve.",
		Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
	})
	r.Incumbents = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "incumbent_updates_total",
		Help:      "Strict improvements of the best-known solution.",
	})
	r.Items = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "instance_items",
		Help:      "Item count of the last solved instance.",
	})
	r.registry.MustRegister(r.Solves, r.Nodes, r.Duration, r.Incumbents, r.Items)

	return r
}

// ObserveSolve implements knapsack.Observer.
func (r *Recorder) ObserveSolve(n int, _ float64, res knapsack.Result) {
	r.Solves.WithLabelValues(res.Status.String()).Inc()
	r.Nodes.Observe(float64(res.NodesExpanded))
	r.Duration.Observe(res.Stats.Elapsed.Seconds())
	r.Incumbents.Add(float64(res.Stats.Incumbents))
	r.Items.Set(float64(n))
}

// WriteTextfile writes every metric to path in the text exposition format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
