package benchmark

import (
	"github.com/treelog/treelog/appender"
	"github.com/treelog/treelog/core"
)

type noopAppender struct{}

func newNoopAppender() appender.Appender {
	return &noopAppender{}
}

// Append renders the message and discards it, so benchmarks measure the
// engine plus producer cost without any I/O.
func (a *noopAppender) Append(rec *core.Record) error {
	_ = len(rec.Message())
	return nil
}

func (a *noopAppender) Close() error {
	return nil
}
