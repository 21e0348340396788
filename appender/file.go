package appender

import (
	"bufio"
	"os"
	"sync"

	"go.uber.org/multierr"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/layout"
)

// FileConfig holds configuration for the file appender
type FileConfig struct {
	// Path of the log file, opened with O_CREATE|O_APPEND
	Path string
	// Layout to use (default: plain TextLayout)
	Layout layout.Layout
	// BufferSize for the buffered writer (default: 4096)
	BufferSize int
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Layout == nil {
		cfg.Layout = layout.NewTextLayout(layout.Config{})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
}

// File writes formatted records to an append-only file through a buffered
// writer. It does no rotation or retention; pair it with external tooling
// when those are needed.
type File struct {
	mu     sync.Mutex
	file   *os.File
	buf    *bufio.Writer
	layout layout.Layout
	stats  Stats
	closed chan struct{}
}

// NewFile creates a file appender, opening (or creating) the file at
// cfg.Path for appending.
func NewFile(cfg FileConfig) (*File, error) {
	applyFileDefaults(&cfg)

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	return &File{
		file:   f,
		buf:    bufio.NewWriterSize(f, cfg.BufferSize),
		layout: cfg.Layout,
		closed: make(chan struct{}),
	}, nil
}

// Append formats and writes one record to the buffered file.
func (f *File) Append(rec *core.Record) error {
	data, err := f.layout.Format(rec)
	if err != nil {
		f.stats.IncrementFailed()
		return err
	}

	f.mu.Lock()
	_, err = f.buf.Write(data)
	f.mu.Unlock()

	if err != nil {
		f.stats.IncrementFailed()
		return err
	}
	f.stats.IncrementProcessed()
	return nil
}

// Flush forces buffered data out to the file.
func (f *File) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.buf.Flush()
}

// Stats returns a snapshot of the delivery counters.
func (f *File) Stats() Snapshot {
	return f.stats.GetSnapshot()
}

// Close flushes and closes the underlying file. Safe to call more than once.
func (f *File) Close() error {
	select {
	case <-f.closed:
		return nil // Already closed
	default:
		close(f.closed)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return multierr.Append(f.buf.Flush(), f.file.Close())
}
