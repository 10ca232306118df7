// Package gmetrics provides optional Prometheus instrumentation for the
// graph engine. Like pkg/glog, the engine only ever depends on a narrow
// recorder interface (engine.MetricsRecorder in internal/engine, injected
// through pkg/graph's WithMetrics) — this package is the concrete
// implementation callers may inject.
package gmetrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the engine's Prometheus metrics.
type Registry struct {
	TransactionsStarted     prometheus.Counter
	TransactionsCommitted   prometheus.Counter
	TransactionsAborted     *prometheus.CounterVec // labeled by reason: "conflict", "explicit"
	ActiveTransactions      prometheus.Gauge
	CommitValidationSeconds prometheus.Histogram

	NodesCreatedTotal prometheus.Counter
	EdgesCreatedTotal prometheus.Counter
	CollisionsTotal   prometheus.Counter
	TraversalHops     prometheus.Histogram

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide metrics registry, created lazily.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new, independent metrics registry.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}
	r.init()
	return r
}

func (r *Registry) init() {
	r.TransactionsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "graphmvcc_transactions_started_total",
		Help: "Total number of transactions started, including implicit ones.",
	})
	r.TransactionsCommitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "graphmvcc_transactions_committed_total",
		Help: "Total number of transactions that committed successfully.",
	})
	r.TransactionsAborted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "graphmvcc_transactions_aborted_total",
		Help: "Total number of transactions aborted, labeled by reason.",
	}, []string{"reason"})
	r.ActiveTransactions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "graphmvcc_active_transactions",
		Help: "Number of transactions currently active.",
	})
	r.CommitValidationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "graphmvcc_commit_validation_seconds",
		Help:    "Time spent validating a transaction's read set at commit.",
		Buckets: prometheus.DefBuckets,
	})
	r.NodesCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "graphmvcc_nodes_created_total",
		Help: "Total number of nodes created.",
	})
	r.EdgesCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "graphmvcc_edges_created_total",
		Help: "Total number of edges created.",
	})
	r.CollisionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "graphmvcc_edge_collisions_total",
		Help: "Total number of add_edge calls rejected by the edge-type uniqueness check.",
	})
	r.TraversalHops = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "graphmvcc_traversal_hops",
		Help:    "Number of hops requested per get_nodes call.",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
	})

	r.registry.MustRegister(
		r.TransactionsStarted,
		r.TransactionsCommitted,
		r.TransactionsAborted,
		r.ActiveTransactions,
		r.CommitValidationSeconds,
		r.NodesCreatedTotal,
		r.EdgesCreatedTotal,
		r.CollisionsTotal,
		r.TraversalHops,
	)
}

// PrometheusRegistry returns the underlying *prometheus.Registry for serving /metrics.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}
