package appender

import (
	"github.com/treelog/treelog/core"
)

// Appender is the sink contract of the logger tree. The tree guarantees
// per-emission ordering and at-most-once delivery per appender; everything
// beyond that is the appender's business. An appender whose underlying sink
// is not safe for concurrent use must serialize its own Append calls — the
// tree does not serialize across appenders or across the ancestor walk.
//
// An error returned from Append propagates uncaught to the caller of the
// emitting logger. The tree performs no retry and writes to no fallback
// sink: a misbehaving appender is a configuration bug, not a runtime
// condition to paper over.
type Appender interface {
	// Append delivers one record to the sink. The record is only valid for
	// the duration of the call; implementations must not retain it.
	Append(rec *core.Record) error

	// Close closes the appender and releases resources
	Close() error
}
