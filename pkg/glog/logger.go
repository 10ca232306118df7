package glog

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// NewJSONLogger creates a JSONLogger writing to writer, suppressing
// anything below level — e.g. a logger constructed at WarnLevel never
// emits the per-mutation Info events, only commit-time aborts and edge
// collisions.
func NewJSONLogger(writer io.Writer, level Level) *JSONLogger {
	return &JSONLogger{writer: writer, level: level}
}

// log is the internal logging method shared by Info and Warn.
func (l *JSONLogger) log(level Level, msg string, fields ...Field) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var fieldMap map[string]any
	if len(fields) > 0 {
		fieldMap = make(map[string]any, len(fields))
		for _, f := range fields {
			fieldMap[f.Key] = f.Value
		}
	}

	entry := LogEntry{
		Time:    time.Now().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
		Fields:  fieldMap,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(l.writer, "[ERROR] failed to marshal log entry: %v\n", err)
		return
	}

	l.writer.Write(data)
	l.writer.Write([]byte("\n"))
}

// Info logs a transaction-lifecycle event: begin, node/edge created,
// commit, explicit abort.
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(InfoLevel, msg, fields...)
}

// Warn logs a commit-time abort or an edge rejected as a collision.
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(WarnLevel, msg, fields...)
}
