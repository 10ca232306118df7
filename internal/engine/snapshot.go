package engine

// visible decides whether tx can see record r.
//
// Creation: tx sees r only if r was created by tx itself, or by a
// transaction that had already committed by the time tx began.
//
// Expiry: a record that passes the creation check is still visible unless
// it has been expired — by tx itself, or by a transaction that had
// already committed by the time tx began. An expiry performed by some
// other transaction that is still active, or that aborted, or that
// committed too late to be in tx's snapshot, does not hide the record
// from tx.
//
// Caller must hold mu.
func (e *Engine) visible(r *Record, tx *Transaction) bool {
	if !e.createdVisibleTo(r.Creator, tx) {
		return false
	}
	if r.Expirer == NoTx {
		return true
	}
	return !e.expiredVisibleTo(r.Expirer, tx)
}

func (e *Engine) createdVisibleTo(creator TxID, tx *Transaction) bool {
	if creator == tx.ID {
		return true
	}
	return e.committedBefore(creator, tx.snapshot)
}

func (e *Engine) expiredVisibleTo(expirer TxID, tx *Transaction) bool {
	if expirer == tx.ID {
		return true
	}
	return e.committedBefore(expirer, tx.snapshot)
}

// liveVisible filters records to those that are both live (undeleted, per
// the writer's own view) and visible to tx. It records no read itself —
// callers record the slot they scanned (e.g. nodeVisible, GetNodes).
func (e *Engine) liveVisible(records []*Record, tx *Transaction) []*Record {
	out := make([]*Record, 0, len(records))
	for _, r := range records {
		if e.visible(r, tx) {
			out = append(out, r)
		}
	}
	return out
}

// recordRead appends (node, typ) to tx's read set.
func recordRead(tx *Transaction, node NodeID, typ EdgeType) {
	tx.ReadSet = append(tx.ReadSet, readEntry{node: node, typ: typ})
}
