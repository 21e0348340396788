package appender

import (
	"sync"
	"time"

	"github.com/treelog/treelog/core"
)

// Captured is an immutable snapshot of one delivered record. Records
// themselves are pooled and must not be retained, so Memory copies the
// fields it needs.
type Captured struct {
	Time     time.Time
	Level    core.Level
	Category string
	Message  string
}

// Memory captures records for later inspection, primarily in tests.
type Memory struct {
	mu      sync.Mutex
	entries []Captured
}

// NewMemory creates an empty memory appender.
func NewMemory() *Memory {
	return &Memory{}
}

// Append captures a snapshot of the record.
func (m *Memory) Append(rec *core.Record) error {
	m.mu.Lock()
	m.entries = append(m.entries, Captured{
		Time:     rec.Time,
		Level:    rec.Level,
		Category: rec.Category,
		Message:  rec.Message(),
	})
	m.mu.Unlock()
	return nil
}

// Entries returns a copy of everything captured so far.
func (m *Memory) Entries() []Captured {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Captured, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of captured records.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// ResetEntries discards captured records.
func (m *Memory) ResetEntries() {
	m.mu.Lock()
	m.entries = nil
	m.mu.Unlock()
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
