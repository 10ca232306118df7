package engine

import "fmt"

// ErrorKind enumerates the error kinds the façade contract promises
// callers. Mirrors the original Rust crate's TxError enum one-for-one.
type ErrorKind uint8

const (
	_ ErrorKind = iota
	KindAbort
	KindNodeNotFound
	KindElementNotFound
	KindCollision
	KindInvalidRecord
	KindTransactionLocked
)

// TxError is the error type returned by every fallible engine operation.
// Collision carries a diagnostic reason string; the reason is never
// load-bearing — callers must branch on Kind, not on the message.
type TxError struct {
	Kind   ErrorKind
	Reason string
}

func (e *TxError) Error() string {
	switch e.Kind {
	case KindAbort:
		return "transaction aborted"
	case KindNodeNotFound:
		return "node not found"
	case KindElementNotFound:
		return "element not found"
	case KindCollision:
		return fmt.Sprintf("collision: %s", e.Reason)
	case KindInvalidRecord:
		return "invalid record"
	case KindTransactionLocked:
		return "transaction locked"
	default:
		return "unknown transaction error"
	}
}

// Is allows errors.Is(err, ErrAbort) style comparisons against the
// exported sentinels below, matching on Kind rather than identity.
func (e *TxError) Is(target error) bool {
	t, ok := target.(*TxError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel errors for errors.Is comparisons. Collision reasons vary per
// call, so ErrCollision carries no reason and must not be used for its
// Error() text — only for Kind matching.
var (
	ErrAbort             = &TxError{Kind: KindAbort}
	ErrNodeNotFound      = &TxError{Kind: KindNodeNotFound}
	ErrElementNotFound   = &TxError{Kind: KindElementNotFound}
	ErrCollision         = &TxError{Kind: KindCollision}
	ErrInvalidRecord     = &TxError{Kind: KindInvalidRecord}
	ErrTransactionLocked = &TxError{Kind: KindTransactionLocked}
)

func collisionError(reason string) error {
	return &TxError{Kind: KindCollision, Reason: reason}
}
