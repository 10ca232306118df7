package engine

import (
	"strconv"
	"sync/atomic"
)

// seqMinter mints deterministic, collision-free IDs for tests without
// pulling in a UUID dependency at this layer.
type seqMinter struct {
	nodes atomic.Uint64
	edges atomic.Uint64
}

func (m *seqMinter) NewNodeID() NodeID {
	return NodeID("n" + strconv.FormatUint(m.nodes.Add(1), 10))
}

func (m *seqMinter) NewEdgeID() EdgeID {
	return EdgeID("e" + strconv.FormatUint(m.edges.Add(1), 10))
}

func newTestEngine() *Engine {
	return New(&seqMinter{}, nil, nil)
}
