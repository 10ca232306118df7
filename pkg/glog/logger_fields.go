package glog

import (
	"time"
)

// String is the fallback field constructor for plain string values —
// edge types, in this domain, since EdgeType has no dedicated helper.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Duration renders a time.Duration as its String() form, used for the
// commit validation latency attached to "transaction committed" events.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Any is the fallback for values none of the typed constructors below
// cover.
func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// NodeID tags a log line with the node identifier it concerns.
func NodeID(id string) Field {
	return String("node_id", id)
}

// EdgeID tags a log line with the edge identifier it concerns.
func EdgeID(id string) Field {
	return String("edge_id", id)
}

// TxID tags a log line with the transaction identifier it concerns.
func TxID(id uint32) Field {
	return Field{Key: "txid", Value: id}
}
