package graph

import (
	"github.com/google/uuid"

	"github.com/cryptopatrick/graph-mvcc/internal/engine"
)

// uuidMinter mints NodeIDs and EdgeIDs from independent UUID namespaces.
// Collisions are astronomically unlikely, which is all an identifier
// service needs in practice.
type uuidMinter struct{}

func (uuidMinter) NewNodeID() engine.NodeID {
	return engine.NodeID("n-" + uuid.NewString())
}

func (uuidMinter) NewEdgeID() engine.EdgeID {
	return engine.EdgeID("e-" + uuid.NewString())
}
