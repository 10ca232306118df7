package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteEdgeImplicit(t *testing.T) {
	g := New()
	a, err := g.AddNode(NoTx)
	require.NoError(t, err)
	b, err := g.AddNode(NoTx)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(NoTx, a, b, friendOf))

	require.NoError(t, g.DeleteEdge(NoTx, a, b, friendOf))

	got, err := g.GetNodes(NoTx, a, []EdgeType{friendOf})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteNodeImplicit(t *testing.T) {
	g := New()
	a, err := g.AddNode(NoTx)
	require.NoError(t, err)

	require.NoError(t, g.DeleteNode(NoTx, a))

	_, err = g.GetNodes(NoTx, a, nil)
	assert.True(t, errors.Is(err, ErrNodeNotFound))
}

func TestUpdateEdgeTypeImplicit(t *testing.T) {
	g := New()
	a, err := g.AddNode(NoTx)
	require.NoError(t, err)
	b, err := g.AddNode(NoTx)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(NoTx, a, b, friendOf))

	require.NoError(t, g.UpdateEdgeType(NoTx, a, b, friendOf, knows))

	oldType, err := g.GetNodes(NoTx, a, []EdgeType{friendOf})
	require.NoError(t, err)
	assert.Empty(t, oldType)

	newType, err := g.GetNodes(NoTx, a, []EdgeType{knows})
	require.NoError(t, err)
	assert.ElementsMatch(t, []NodeID{b}, newType)
}

func TestDeleteEdgeLockedAgainstConcurrentActiveDelete(t *testing.T) {
	g := New()
	a, err := g.AddNode(NoTx)
	require.NoError(t, err)
	b, err := g.AddNode(NoTx)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(NoTx, a, b, friendOf))

	t1 := g.StartTransaction()
	require.NoError(t, g.DeleteEdge(t1, a, b, friendOf))

	t2 := g.StartTransaction()
	err = g.DeleteEdge(t2, a, b, friendOf)
	assert.True(t, errors.Is(err, ErrTransactionLocked))

	require.NoError(t, g.CommitTransaction(t1))
	require.NoError(t, g.AbortTransaction(t2))
}
