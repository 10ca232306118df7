package graph

// addNodeImplicit wraps AddNode in a single-operation transaction: begin,
// perform, commit. If the implicit commit itself fails — which, for a
// single-write transaction, only happens if something else concurrently
// touched the same brand-new node's slot, a practical impossibility —
// the whole call fails with that same error.
func addNodeImplicit(g *Graph) (NodeID, error) {
	t := g.StartTransaction()
	n, err := g.AddNode(t)
	if err != nil {
		_ = g.AbortTransaction(t)
		return "", err
	}
	if err := g.CommitTransaction(t); err != nil {
		return "", err
	}
	return n, nil
}

func addEdgeImplicit(g *Graph, a, b NodeID, typ EdgeType) error {
	t := g.StartTransaction()
	if err := g.AddEdge(t, a, b, typ); err != nil {
		_ = g.AbortTransaction(t)
		return err
	}
	return g.CommitTransaction(t)
}

func getNodesImplicit(g *Graph, origin NodeID, path []EdgeType) ([]NodeID, error) {
	t := g.StartTransaction()
	nodes, err := g.GetNodes(t, origin, path)
	if err != nil {
		_ = g.AbortTransaction(t)
		return nil, err
	}
	if err := g.CommitTransaction(t); err != nil {
		return nil, err
	}
	return nodes, nil
}

func deleteNodeImplicit(g *Graph, n NodeID) error {
	t := g.StartTransaction()
	if err := g.DeleteNode(t, n); err != nil {
		_ = g.AbortTransaction(t)
		return err
	}
	return g.CommitTransaction(t)
}

func deleteEdgeImplicit(g *Graph, a, b NodeID, typ EdgeType) error {
	t := g.StartTransaction()
	if err := g.DeleteEdge(t, a, b, typ); err != nil {
		_ = g.AbortTransaction(t)
		return err
	}
	return g.CommitTransaction(t)
}

func updateEdgeTypeImplicit(g *Graph, a, b NodeID, oldType, newType EdgeType) error {
	t := g.StartTransaction()
	if err := g.UpdateEdgeType(t, a, b, oldType, newType); err != nil {
		_ = g.AbortTransaction(t)
		return err
	}
	return g.CommitTransaction(t)
}
