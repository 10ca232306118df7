package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	friendOf EdgeType = "FRIEND_OF"
	knows    EdgeType = "KNOWS"
)

// TestBasicRoundTrip adds a node, adds an edge, and reads it back.
func TestBasicRoundTrip(t *testing.T) {
	g := New()
	tx := g.StartTransaction()

	a, err := g.AddNode(tx)
	require.NoError(t, err)
	b, err := g.AddNode(tx)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(tx, a, b, friendOf))
	require.NoError(t, g.CommitTransaction(tx))

	check := g.StartTransaction()
	got, err := g.GetNodes(check, a, []EdgeType{friendOf})
	require.NoError(t, err)
	assert.ElementsMatch(t, []NodeID{b}, got)
}

// TestSnapshotIsolationOfCommittedWork verifies a reader never sees work committed after its own snapshot.
func TestSnapshotIsolationOfCommittedWork(t *testing.T) {
	g := New()

	setup := g.StartTransaction()
	a, err := g.AddNode(setup)
	require.NoError(t, err)
	require.NoError(t, g.CommitTransaction(setup))

	reader := g.StartTransaction()

	writer := g.StartTransaction()
	b, err := g.AddNode(writer)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(writer, a, b, friendOf))
	require.NoError(t, g.CommitTransaction(writer))

	got, err := g.GetNodes(reader, a, []EdgeType{friendOf})
	require.NoError(t, err)
	assert.Empty(t, got, "reader must not see work committed after its snapshot")
	// The reader read the slot the writer committed to, so its commit aborts.
	require.ErrorIs(t, g.CommitTransaction(reader), ErrAbort)

	after := g.StartTransaction()
	got, err = g.GetNodes(after, a, []EdgeType{friendOf})
	require.NoError(t, err)
	assert.ElementsMatch(t, []NodeID{b}, got)
}

// TestWriteWriteConflict verifies first commit wins and the loser aborts.
func TestWriteWriteConflict(t *testing.T) {
	g := New()

	setup := g.StartTransaction()
	a, err := g.AddNode(setup)
	require.NoError(t, err)
	require.NoError(t, g.CommitTransaction(setup))

	t1 := g.StartTransaction()
	t2 := g.StartTransaction()

	b1, err := g.AddNode(t1)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(t1, a, b1, friendOf))

	b2, err := g.AddNode(t2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(t2, a, b2, friendOf))

	require.NoError(t, g.CommitTransaction(t1))
	err = g.CommitTransaction(t2)
	assert.True(t, errors.Is(err, ErrAbort))
}

// TestMultiHopTraversal walks a several-hop typed path.
func TestMultiHopTraversal(t *testing.T) {
	g := New()
	tx := g.StartTransaction()

	a, _ := g.AddNode(tx)
	b, _ := g.AddNode(tx)
	c, _ := g.AddNode(tx)
	d, _ := g.AddNode(tx)

	require.NoError(t, g.AddEdge(tx, a, b, knows))
	require.NoError(t, g.AddEdge(tx, b, c, friendOf))
	require.NoError(t, g.AddEdge(tx, c, d, knows))

	got, err := g.GetNodes(tx, a, []EdgeType{knows, friendOf, knows})
	require.NoError(t, err)
	assert.ElementsMatch(t, []NodeID{d}, got)
}

// TestIntraTransactionUniquenessViolation verifies a second edge of the same type to a different destination collides.
func TestIntraTransactionUniquenessViolation(t *testing.T) {
	g := New()
	tx := g.StartTransaction()
	a, _ := g.AddNode(tx)
	b, _ := g.AddNode(tx)
	c, _ := g.AddNode(tx)

	require.NoError(t, g.AddEdge(tx, a, b, friendOf))
	err := g.AddEdge(tx, a, c, friendOf)
	assert.True(t, errors.Is(err, ErrCollision))
}

// TestDuplicateEdgeRejected verifies an exact duplicate edge is rejected.
func TestDuplicateEdgeRejected(t *testing.T) {
	g := New()
	tx := g.StartTransaction()
	a, _ := g.AddNode(tx)
	b, _ := g.AddNode(tx)

	require.NoError(t, g.AddEdge(tx, a, b, friendOf))
	err := g.AddEdge(tx, a, b, friendOf)
	assert.True(t, errors.Is(err, ErrCollision))
}

// TestImplicitTransactionEquivalence verifies calling without a TxID behaves
// the same as wrapping the same call in an explicit transaction.
func TestImplicitTransactionEquivalence(t *testing.T) {
	g := New()

	a, err := g.AddNode(NoTx)
	require.NoError(t, err)
	b, err := g.AddNode(NoTx)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(NoTx, a, b, friendOf))

	got, err := g.GetNodes(NoTx, a, []EdgeType{friendOf})
	require.NoError(t, err)
	assert.ElementsMatch(t, []NodeID{b}, got)
}

func TestAddEdgeRejectsReservedType(t *testing.T) {
	g := New()
	a, err := g.AddNode(NoTx)
	require.NoError(t, err)
	b, err := g.AddNode(NoTx)
	require.NoError(t, err)

	err = g.AddEdge(NoTx, a, b, NodeCreation)
	assert.True(t, errors.Is(err, ErrCollision))
}

func TestCurrentTxIDTracksHighestIssued(t *testing.T) {
	g := New()
	assert.Equal(t, NoTx, g.CurrentTxID())

	t1 := g.StartTransaction()
	assert.Equal(t, t1, g.CurrentTxID())

	t2 := g.StartTransaction()
	assert.Equal(t, t2, g.CurrentTxID())
	assert.Greater(t, uint32(t2), uint32(t1))
}
