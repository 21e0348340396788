package appender

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/layout"
)

// ColorMode controls ANSI color usage for the console appender's default
// layout.
type ColorMode int

const (
	// ColorAuto enables color when the writer is a terminal
	ColorAuto ColorMode = iota
	// ColorAlways enables color unconditionally
	ColorAlways
	// ColorNever disables color
	ColorNever
)

// ConsoleConfig holds configuration for the console appender
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Layout to use (default: TextLayout, colored per Color)
	Layout layout.Layout
	// Color controls ANSI colors when Layout is left nil
	Color ColorMode
}

// Console writes formatted records to a single shared stream. All writes
// happen under one mutex so concurrent emissions never interleave within a
// record; the lock is released on every exit path.
type Console struct {
	mu     sync.Mutex
	writer io.Writer
	layout layout.Layout
	stats  Stats
}

// NewConsole creates a console appender.
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Layout == nil {
		cfg.Layout = layout.NewTextLayout(layout.Config{
			Color: useColor(cfg.Color, cfg.Writer),
		})
	}
	return &Console{
		writer: cfg.Writer,
		layout: cfg.Layout,
	}
}

// useColor resolves a ColorMode against the actual writer.
func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Append formats and writes one record.
func (c *Console) Append(rec *core.Record) error {
	if wl, ok := c.layout.(layout.WriterLayout); ok {
		c.mu.Lock()
		err := wl.FormatTo(rec, c.writer)
		c.mu.Unlock()
		if err != nil {
			c.stats.IncrementFailed()
			return err
		}
		c.stats.IncrementProcessed()
		return nil
	}

	data, err := c.layout.Format(rec)
	if err != nil {
		c.stats.IncrementFailed()
		return err
	}

	c.mu.Lock()
	_, err = c.writer.Write(data)
	c.mu.Unlock()

	if err != nil {
		c.stats.IncrementFailed()
		return err
	}
	c.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the delivery counters.
func (c *Console) Stats() Snapshot {
	return c.stats.GetSnapshot()
}

// Close is a no-op: the console does not own its stream.
func (c *Console) Close() error {
	return nil
}
