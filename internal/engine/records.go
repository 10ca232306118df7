package engine

// DeleteNode expires the visible node-exists record for n within tx. It
// does not cascade to edges already attached to n — a dangling edge
// reference is a caller concern, not something this layer resolves.
func (e *Engine) DeleteNode(tx *Transaction, n NodeID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requireActive(tx); err != nil {
		return err
	}
	r, err := e.findLiveSlotRecord(n, NodeCreation, tx)
	if err != nil {
		return err
	}
	return e.expireRecord(tx, r)
}

// DeleteEdge expires both halves of the visible edge (a, b, typ) within
// tx, atomically — either both halves expire or neither does.
func (e *Engine) DeleteEdge(tx *Transaction, a, b NodeID, typ EdgeType) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requireActive(tx); err != nil {
		return err
	}
	fwd, err := e.findLiveEdgeRecord(a, b, typ, tx)
	if err != nil {
		return err
	}
	rev, err := e.findLiveEdgeRecord(b, a, typ, tx)
	if err != nil {
		return err
	}
	if err := e.expireRecord(tx, fwd); err != nil {
		return err
	}
	return e.expireRecord(tx, rev)
}

// UpdateEdgeType retypes the visible edge (a, b, oldType) to newType,
// preserving its EdgeID. Implemented as an atomic expire-then-append of
// the old and new halves, the same primitive DeleteEdge and AddEdge each
// use on their own.
func (e *Engine) UpdateEdgeType(tx *Transaction, a, b NodeID, oldType, newType EdgeType) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requireActive(tx); err != nil {
		return err
	}
	if newType == NodeCreation {
		return collisionError("NODE_CREATION is a reserved edge type")
	}
	fwdOld, err := e.findLiveEdgeRecord(a, b, oldType, tx)
	if err != nil {
		return err
	}
	revOld, err := e.findLiveEdgeRecord(b, a, oldType, tx)
	if err != nil {
		return err
	}
	if oldType != newType {
		if err := e.checkEdgeCollision(a, b, newType, tx); err != nil {
			return err
		}
	}
	if err := e.expireRecord(tx, fwdOld); err != nil {
		return err
	}
	if err := e.expireRecord(tx, revOld); err != nil {
		return err
	}

	id := fwdOld.EdgeID
	fwdNew := &Record{Kind: kindEdgeHalf, Creator: tx.ID, Source: a, Target: b, Type: newType, EdgeID: id}
	revNew := &Record{Kind: kindEdgeHalf, Creator: tx.ID, Source: b, Target: a, Type: newType, EdgeID: id}
	e.appendRecord(fwdNew)
	e.appendRecord(revNew)
	tx.WriteSet = append(tx.WriteSet,
		writeEntry{record: fwdNew, created: true},
		writeEntry{record: revNew, created: true})
	return nil
}

// expireRecord marks r as expired by tx, recording the inverse in tx's
// write set for rollback. A record another still-active transaction has
// already (tentatively) expired is locked against a second expirer until
// that transaction resolves.
func (e *Engine) expireRecord(tx *Transaction, r *Record) error {
	if r.Expirer != NoTx && r.Expirer != tx.ID && e.status[r.Expirer] == statusActive {
		return ErrTransactionLocked
	}
	r.Expirer = tx.ID
	tx.WriteSet = append(tx.WriteSet, writeEntry{record: r, created: false})
	return nil
}

func (e *Engine) findLiveSlotRecord(node NodeID, typ EdgeType, tx *Transaction) (*Record, error) {
	recordRead(tx, node, typ)
	for _, r := range e.liveVisible(e.slotRecords(node, typ), tx) {
		return r, nil
	}
	return nil, ErrNodeNotFound
}

func (e *Engine) findLiveEdgeRecord(a, b NodeID, typ EdgeType, tx *Transaction) (*Record, error) {
	recordRead(tx, a, typ)
	for _, r := range e.liveVisible(e.slotRecords(a, typ), tx) {
		if r.Target == b {
			return r, nil
		}
	}
	return nil, ErrElementNotFound
}
