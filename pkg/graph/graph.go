// Package graph is the public façade for an in-memory, undirected, typed
// property graph with snapshot-isolated MVCC transactions. It re-exports
// the domain vocabulary defined in internal/engine and wraps every
// operation so a caller may either manage a transaction explicitly or let
// the façade wrap a single call in an implicit one.
package graph

import (
	"os"
	"sync"
	"time"

	"github.com/cryptopatrick/graph-mvcc/internal/config"
	"github.com/cryptopatrick/graph-mvcc/internal/engine"
	"github.com/cryptopatrick/graph-mvcc/pkg/glog"
	"github.com/cryptopatrick/graph-mvcc/pkg/gmetrics"
)

// Re-exported domain types. Aliasing rather than redeclaring avoids an
// import cycle between this package and internal/engine while keeping a
// single canonical definition of each type.
type (
	NodeID   = engine.NodeID
	EdgeID   = engine.EdgeID
	EdgeType = engine.EdgeType
	TxID     = engine.TxID
)

// NodeCreation is the reserved edge type callers may never pass to
// AddEdge.
const NodeCreation = engine.NodeCreation

// NoTx means "no explicit transaction" when passed to AddNode, AddEdge or
// GetNodes: the call is wrapped in an implicit transaction.
const NoTx = engine.NoTx

// Error sentinels, re-exported for errors.Is comparisons against values
// returned by this package.
var (
	ErrAbort             = engine.ErrAbort
	ErrNodeNotFound      = engine.ErrNodeNotFound
	ErrElementNotFound   = engine.ErrElementNotFound
	ErrCollision         = engine.ErrCollision
	ErrInvalidRecord     = engine.ErrInvalidRecord
	ErrTransactionLocked = engine.ErrTransactionLocked
)

// Graph is a handle to one in-memory graph engine and its transaction
// table. The zero value is not usable; construct with New.
type Graph struct {
	eng *engine.Engine

	mu   sync.Mutex
	txns map[TxID]*txHandle
}

type txHandle struct {
	mu sync.Mutex
	tx *engine.Transaction
}

// Option configures a Graph at construction time.
type Option func(*options)

type options struct {
	logger  engine.Logger
	metrics engine.MetricsRecorder
	ids     engine.IDMinter
}

// WithLogger injects a structured logging collaborator. Without it, New
// uses a no-op logger unless GRAPHMVCC_LOGGING_ENABLED is set.
func WithLogger(l glog.Logger) Option {
	return func(o *options) { o.logger = loggerAdapter{l} }
}

// WithMetrics injects a prometheus-backed metrics collaborator. Without
// it, New uses a no-op recorder unless GRAPHMVCC_METRICS_ENABLED is set.
func WithMetrics(r *gmetrics.Registry) Option {
	return func(o *options) { o.metrics = r }
}

// New constructs an empty Graph. Engine tunables not otherwise exposed by
// Option are read from internal/config.
func New(opts ...Option) *Graph {
	cfg := config.Load()
	o := &options{ids: uuidMinter{}}
	for _, opt := range opts {
		opt(o)
	}
	if o.metrics == nil && cfg.MetricsEnabled {
		o.metrics = gmetrics.DefaultRegistry()
	}
	if o.logger == nil && cfg.LoggingEnabled {
		o.logger = loggerAdapter{glog.NewJSONLogger(os.Stdout, glog.ParseLevel(cfg.LogLevel))}
	}
	return &Graph{
		eng:  engine.New(o.ids, o.logger, o.metrics),
		txns: make(map[TxID]*txHandle),
	}
}

// StartTransaction begins a new transaction and returns its ID.
func (g *Graph) StartTransaction() TxID {
	tx := g.eng.Begin()
	g.mu.Lock()
	g.txns[tx.ID] = &txHandle{tx: tx}
	g.mu.Unlock()
	return tx.ID
}

// CommitTransaction validates and commits t, returning ErrAbort on
// conflict.
func (g *Graph) CommitTransaction(t TxID) error {
	h, err := g.lockHandle(t)
	if err != nil {
		return err
	}
	defer h.mu.Unlock()
	return g.eng.Commit(h.tx)
}

// AbortTransaction unconditionally rolls back t.
func (g *Graph) AbortTransaction(t TxID) error {
	h, err := g.lockHandle(t)
	if err != nil {
		return err
	}
	defer h.mu.Unlock()
	return g.eng.Abort(h.tx)
}

// AddNode creates a node. Pass NoTx to run in an implicit transaction.
func (g *Graph) AddNode(t TxID) (NodeID, error) {
	if t == NoTx {
		return addNodeImplicit(g)
	}
	h, err := g.lockHandle(t)
	if err != nil {
		return "", err
	}
	defer h.mu.Unlock()
	return g.eng.AddNode(h.tx)
}

// AddEdge connects a and b with an undirected edge of type typ. Pass NoTx
// to run in an implicit transaction.
func (g *Graph) AddEdge(t TxID, a, b NodeID, typ EdgeType) error {
	if t == NoTx {
		return addEdgeImplicit(g, a, b, typ)
	}
	h, err := g.lockHandle(t)
	if err != nil {
		return err
	}
	defer h.mu.Unlock()
	return g.eng.AddEdge(h.tx, a, b, typ)
}

// GetNodes walks path hop by hop from origin and returns the reachable
// node set. Pass NoTx to run in an implicit transaction.
func (g *Graph) GetNodes(t TxID, origin NodeID, path []EdgeType) ([]NodeID, error) {
	if t == NoTx {
		return getNodesImplicit(g, origin, path)
	}
	h, err := g.lockHandle(t)
	if err != nil {
		return nil, err
	}
	defer h.mu.Unlock()
	return g.eng.GetNodes(h.tx, origin, path)
}

// DeleteNode expires n. Pass NoTx to run in an implicit transaction.
func (g *Graph) DeleteNode(t TxID, n NodeID) error {
	if t == NoTx {
		return deleteNodeImplicit(g, n)
	}
	h, err := g.lockHandle(t)
	if err != nil {
		return err
	}
	defer h.mu.Unlock()
	return g.eng.DeleteNode(h.tx, n)
}

// DeleteEdge expires the edge (a, b, typ). Pass NoTx to run in an
// implicit transaction.
func (g *Graph) DeleteEdge(t TxID, a, b NodeID, typ EdgeType) error {
	if t == NoTx {
		return deleteEdgeImplicit(g, a, b, typ)
	}
	h, err := g.lockHandle(t)
	if err != nil {
		return err
	}
	defer h.mu.Unlock()
	return g.eng.DeleteEdge(h.tx, a, b, typ)
}

// UpdateEdgeType retypes the edge (a, b, oldType) to newType, preserving
// its identity. Pass NoTx to run in an implicit transaction.
func (g *Graph) UpdateEdgeType(t TxID, a, b NodeID, oldType, newType EdgeType) error {
	if t == NoTx {
		return updateEdgeTypeImplicit(g, a, b, oldType, newType)
	}
	h, err := g.lockHandle(t)
	if err != nil {
		return err
	}
	defer h.mu.Unlock()
	return g.eng.UpdateEdgeType(h.tx, a, b, oldType, newType)
}

// CurrentTxID returns the highest transaction ID issued so far. Returns
// NoTx if no transaction has ever been started.
func (g *Graph) CurrentTxID() TxID {
	g.mu.Lock()
	defer g.mu.Unlock()
	var max TxID
	for id := range g.txns {
		if id > max {
			max = id
		}
	}
	return max
}

// lockHandle finds and locks the handle for t. A handle already locked by
// a concurrent call on the same TxID yields ErrTransactionLocked rather
// than blocking — two goroutines driving the same transaction handle at
// once is caller error, not something to serialize silently.
func (g *Graph) lockHandle(t TxID) (*txHandle, error) {
	g.mu.Lock()
	h, ok := g.txns[t]
	g.mu.Unlock()
	if !ok {
		return nil, engine.ErrElementNotFound
	}
	if !h.mu.TryLock() {
		return nil, engine.ErrTransactionLocked
	}
	return h, nil
}

// loggerAdapter adapts pkg/glog.Logger to the narrow engine.Logger
// interface, converting alternating key/value pairs into glog.Fields
// typed by what the engine actually logs under each key.
type loggerAdapter struct{ l glog.Logger }

func (a loggerAdapter) Info(msg string, kv ...any) { a.l.Info(msg, fieldsOf(kv)...) }
func (a loggerAdapter) Warn(msg string, kv ...any) { a.l.Warn(msg, fieldsOf(kv)...) }

func fieldsOf(kv []any) []glog.Field {
	fields := make([]glog.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		fields = append(fields, fieldFor(key, kv[i+1]))
	}
	return fields
}

// fieldFor routes each key the engine logs under to the typed glog
// constructor for it, falling back to glog.Any for anything else.
func fieldFor(key string, value any) glog.Field {
	switch key {
	case "tx":
		if id, ok := value.(TxID); ok {
			return glog.TxID(uint32(id))
		}
	case "node":
		if id, ok := value.(NodeID); ok {
			return glog.NodeID(string(id))
		}
	case "edge":
		if id, ok := value.(EdgeID); ok {
			return glog.EdgeID(string(id))
		}
	case "type":
		if typ, ok := value.(EdgeType); ok {
			return glog.String(key, string(typ))
		}
	case "validation":
		if d, ok := value.(time.Duration); ok {
			return glog.Duration(key, d)
		}
	}
	return glog.Any(key, value)
}
