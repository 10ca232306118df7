package gmetrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegistry_RecordCommit(t *testing.T) {
	r := NewRegistry()

	r.RecordBegin()
	r.RecordCommit(5 * time.Millisecond)

	if got := testutil.ToFloat64(r.TransactionsCommitted); got != 1 {
		t.Errorf("TransactionsCommitted = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.ActiveTransactions); got != 0 {
		t.Errorf("ActiveTransactions = %v, want 0", got)
	}
}

func TestRegistry_RecordAbort(t *testing.T) {
	r := NewRegistry()

	r.RecordBegin()
	r.RecordAbort("conflict")

	if got := testutil.ToFloat64(r.TransactionsAborted.WithLabelValues("conflict")); got != 1 {
		t.Errorf("TransactionsAborted[conflict] = %v, want 1", got)
	}
}

func TestRegistry_RecordCollision(t *testing.T) {
	r := NewRegistry()

	r.RecordCollision()
	r.RecordCollision()

	if got := testutil.ToFloat64(r.CollisionsTotal); got != 2 {
		t.Errorf("CollisionsTotal = %v, want 2", got)
	}
}
