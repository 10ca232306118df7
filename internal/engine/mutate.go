package engine

// AddNode mints a fresh node and records it as created by tx.
func (e *Engine) AddNode(tx *Transaction) (NodeID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireActive(tx); err != nil {
		return "", err
	}

	n := e.ids.NewNodeID()
	r := &Record{Kind: kindNodeExists, Creator: tx.ID, Node: n}
	e.appendRecord(r)
	tx.WriteSet = append(tx.WriteSet, writeEntry{record: r, created: true})
	recordRead(tx, n, NodeCreation)

	e.metric.RecordNodeCreated()
	e.log.Info("node created", "tx", tx.ID, "node", n)
	return n, nil
}

// nodeVisible reports whether node n is visible to tx. Caller must hold
// mu, and records the read as a side effect.
func (e *Engine) nodeVisible(n NodeID, tx *Transaction) bool {
	recs := e.slotRecords(n, NodeCreation)
	recordRead(tx, n, NodeCreation)
	return len(e.liveVisible(recs, tx)) > 0
}

// AddEdge connects a and b with an undirected edge labeled typ, stored as
// two symmetric Records sharing one EdgeID. typ must not be the reserved
// NodeCreation label. Both endpoints must already be visible to tx. A
// live edge of the same type already leaving a — whether to b (duplicate)
// or to any other node (uniqueness violation) — is rejected as a
// Collision.
func (e *Engine) AddEdge(tx *Transaction, a, b NodeID, typ EdgeType) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireActive(tx); err != nil {
		return err
	}
	if typ == NodeCreation {
		return collisionError("NODE_CREATION is a reserved edge type")
	}
	if !e.nodeVisible(a, tx) {
		return ErrNodeNotFound
	}
	if !e.nodeVisible(b, tx) {
		return ErrNodeNotFound
	}
	if err := e.checkEdgeCollision(a, b, typ, tx); err != nil {
		e.metric.RecordCollision()
		e.log.Warn("edge collision", "tx", tx.ID, "type", typ)
		return err
	}

	id := e.ids.NewEdgeID()
	fwd := &Record{Kind: kindEdgeHalf, Creator: tx.ID, Source: a, Target: b, Type: typ, EdgeID: id}
	rev := &Record{Kind: kindEdgeHalf, Creator: tx.ID, Source: b, Target: a, Type: typ, EdgeID: id}
	e.appendRecord(fwd)
	e.appendRecord(rev)
	tx.WriteSet = append(tx.WriteSet,
		writeEntry{record: fwd, created: true},
		writeEntry{record: rev, created: true},
	)
	recordRead(tx, a, typ)
	recordRead(tx, b, typ)

	e.metric.RecordEdgeCreated()
	e.log.Info("edge created", "tx", tx.ID, "edge", id, "type", typ)
	return nil
}

// checkEdgeCollision enforces that at most one live (a, typ) edge may
// exist in tx's snapshot, to exactly one destination. A duplicate of the
// exact edge being added is also a collision, not a silent no-op. Caller
// must hold mu.
func (e *Engine) checkEdgeCollision(a, b NodeID, typ EdgeType, tx *Transaction) error {
	existing := e.liveVisible(e.slotRecords(a, typ), tx)
	for _, r := range existing {
		if r.Target == b {
			return collisionError("duplicate edge")
		}
		return collisionError("edge type already used for a different destination")
	}
	return nil
}

// requireActive rejects operations against a transaction that has already
// reached a terminal state: terminal transactions reject further work
// with Abort, not a fresh error, since from the caller's point of view the
// transaction is already gone. Caller must hold mu.
func (e *Engine) requireActive(tx *Transaction) error {
	if e.status[tx.ID] != statusActive {
		return ErrAbort
	}
	return nil
}
