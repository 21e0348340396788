// Package appender provides the Appender interface and its built-in
// implementations for delivering records the logger tree has decided to
// emit.
//
// The tree hands every appender the same record — stamped with the
// originating logger's category and level, never the ancestor node the
// appender is attached to — and guarantees at-most-once delivery per
// appender per emission. Appenders own their sink's thread safety: the
// built-in console and file appenders guard their stream with a mutex so
// concurrent emissions never interleave within a record.
//
// Built-in appenders:
//
//   - Console writes formatted records to any io.Writer (default: stdout),
//     auto-enabling ANSI colors when the writer is a terminal.
//   - File writes to an append-only file through a buffered writer. There
//     is deliberately no rotation; that belongs to external tooling.
//   - Memory captures record snapshots for assertions in tests.
//
// All appenders count processed and failed deliveries via the Stats type,
// which can be queried at runtime.
package appender
