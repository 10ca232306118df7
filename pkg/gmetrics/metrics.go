package gmetrics

import (
	"time"
)

// RecordBegin records a transaction start.
func (r *Registry) RecordBegin() {
	r.TransactionsStarted.Inc()
	r.ActiveTransactions.Inc()
}

// RecordCommit records a successful commit.
func (r *Registry) RecordCommit(validation time.Duration) {
	r.TransactionsCommitted.Inc()
	r.ActiveTransactions.Dec()
	r.CommitValidationSeconds.Observe(validation.Seconds())
}

// RecordAbort records an abort, labeled by whether it was an explicit
// abort_transaction call or a commit-time conflict.
func (r *Registry) RecordAbort(reason string) {
	r.TransactionsAborted.WithLabelValues(reason).Inc()
	r.ActiveTransactions.Dec()
}

// RecordNodeCreated records a node creation.
func (r *Registry) RecordNodeCreated() {
	r.NodesCreatedTotal.Inc()
}

// RecordEdgeCreated records a successful edge creation.
func (r *Registry) RecordEdgeCreated() {
	r.EdgesCreatedTotal.Inc()
}

// RecordCollision records an add_edge call rejected by the uniqueness check.
func (r *Registry) RecordCollision() {
	r.CollisionsTotal.Inc()
}

// RecordTraversal records the hop count of a get_nodes call.
func (r *Registry) RecordTraversal(hops int) {
	r.TraversalHops.Observe(float64(hops))
}
