package engine

// GetNodes walks path hop by hop from origin, following live edges visible
// to tx, and returns the set of nodes reachable at the end of the path.
// An empty path returns {origin} if origin is visible, else NodeNotFound.
// Every hop fans out over all matching neighbours, not just the first one
// found — the result is deduplicated by construction since the frontier
// is tracked as a set.
func (e *Engine) GetNodes(tx *Transaction, origin NodeID, path []EdgeType) ([]NodeID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireActive(tx); err != nil {
		return nil, err
	}
	if !e.nodeVisible(origin, tx) {
		return nil, ErrNodeNotFound
	}

	frontier := map[NodeID]struct{}{origin: {}}
	for _, hop := range path {
		next := make(map[NodeID]struct{})
		for n := range frontier {
			recordRead(tx, n, hop)
			for _, r := range e.liveVisible(e.slotRecords(n, hop), tx) {
				next[r.Target] = struct{}{}
			}
		}
		frontier = next
	}

	result := make([]NodeID, 0, len(frontier))
	for n := range frontier {
		result = append(result, n)
	}

	e.metric.RecordTraversal(len(path))
	return result, nil
}
