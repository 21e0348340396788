// Package layout provides the Layout interface and a plain-text
// implementation for rendering records delivered to appenders.
//
// The logger tree treats rendering as an external concern: it decides which
// appenders receive a record, and each appender asks its layout to turn the
// record into bytes. TextLayout is the default; it prints the timestamp, a
// bracketed level (optionally ANSI-colored), the originating category, and
// the lazily produced message.
//
// Layouts share a pooled bytes.Buffer so formatting does not allocate per
// record beyond the returned slice; implement WriterLayout to skip even
// that copy.
package layout
