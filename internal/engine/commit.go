package engine

import "time"

// Commit validates tx against every transaction that has committed since
// tx began and, if no conflict is found, makes tx's writes permanently
// visible. Validation aborts tx if any (node, edge-type) slot it read was
// also touched by a concurrently-committed transaction's write. This is
// first-committer-wins — the loser is rolled back before Commit returns.
func (e *Engine) Commit(tx *Transaction) error {
	start := timeNow()

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireActive(tx); err != nil {
		return err
	}

	if conflict := e.findConflict(tx); conflict {
		e.rollback(tx)
		e.retire(tx.ID, statusAborted)
		e.metric.RecordAbort("conflict")
		e.log.Warn("transaction aborted on commit", "tx", tx.ID)
		return ErrAbort
	}

	e.commitSeq++
	e.commitSeqOf[tx.ID] = e.commitSeq
	e.retire(tx.ID, statusCommitted)

	elapsed := timeNow().Sub(start)
	e.metric.RecordCommit(elapsed)
	e.log.Info("transaction committed", "tx", tx.ID, "validation", elapsed)
	return nil
}

// findConflict reports whether any slot tx read was also written by a
// transaction that committed after tx's snapshot was taken but before
// tx's own commit attempt — i.e. a transaction tx could not have seen,
// yet which changed data tx depended on. Caller must hold mu.
func (e *Engine) findConflict(tx *Transaction) bool {
	for _, read := range tx.ReadSet {
		for _, r := range e.slotRecords(read.node, read.typ) {
			if e.wasConcurrentWriter(r.Creator, tx) {
				return true
			}
			if r.Expirer != NoTx && e.wasConcurrentWriter(r.Expirer, tx) {
				return true
			}
		}
	}
	return false
}

// wasConcurrentWriter reports whether writer committed strictly after
// tx's snapshot was taken (so tx could not have observed its effects) and
// strictly before now (so it is a genuine committed conflict, not tx
// racing against something still active or aborted). Caller must hold mu.
func (e *Engine) wasConcurrentWriter(writer TxID, tx *Transaction) bool {
	if writer == tx.ID {
		return false
	}
	if e.status[writer] != statusCommitted {
		return false
	}
	seq, ok := e.commitSeqOf[writer]
	return ok && seq > tx.snapshot
}

// Abort unconditionally rolls tx back and retires it, regardless of
// whether any conflict exists.
func (e *Engine) Abort(tx *Transaction) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireActive(tx); err != nil {
		return err
	}

	e.rollback(tx)
	e.retire(tx.ID, statusAborted)
	e.metric.RecordAbort("explicit")
	e.log.Info("transaction aborted", "tx", tx.ID)
	return nil
}

// rollback walks tx's write set in reverse and inverts each entry: a
// created record is expired by tx; an expiry performed by tx is undone by
// resetting Expirer back to zero. Walking in reverse and keying by record
// pointer rather than position makes this correct even if the same record
// was touched twice in one transaction.
func (e *Engine) rollback(tx *Transaction) {
	for i := len(tx.WriteSet) - 1; i >= 0; i-- {
		w := tx.WriteSet[i]
		if w.created {
			w.record.Expirer = tx.ID
		} else {
			w.record.Expirer = NoTx
		}
	}
}

// timeNow is the engine's sole source of wall-clock time, isolated here
// so commit-latency instrumentation has one seam.
func timeNow() time.Time {
	return time.Now()
}
