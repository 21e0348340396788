package layout

import (
	"bytes"
	"io"
	"sync"

	"github.com/treelog/treelog/core"
)

// Layout renders a record into its final textual form. Layouts are
// collaborators of appenders; the logger tree itself never calls one.
type Layout interface {
	// Format renders a record into bytes
	Format(rec *core.Record) ([]byte, error)
}

// WriterLayout is an optional interface that layouts can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterLayout interface {
	// FormatTo renders a record and writes it directly to the writer
	FormatTo(rec *core.Record, w io.Writer) error
}

// Config holds common layout configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
	// Color enables ANSI color codes around the level name
	Color bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
