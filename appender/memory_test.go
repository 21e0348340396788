package appender

import (
	"testing"

	"github.com/treelog/treelog/core"
)

func TestMemory_CapturesSnapshots(t *testing.T) {
	m := NewMemory()

	rec := newRecord(core.ErrorLevel, "svc.api", "request failed")
	if err := m.Append(rec); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	core.PutRecord(rec)

	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
	got := m.Entries()[0]
	if got.Category != "svc.api" || got.Level != core.ErrorLevel || got.Message != "request failed" {
		t.Errorf("captured %+v", got)
	}
	if got.Time.IsZero() {
		t.Error("captured record has no timestamp")
	}

	// Entries returns a copy: mutating it must not touch the appender.
	entries := m.Entries()
	entries[0].Message = "mutated"
	if m.Entries()[0].Message != "request failed" {
		t.Error("Entries returned a live reference to internal state")
	}

	m.ResetEntries()
	if m.Len() != 0 {
		t.Errorf("Len() = %d after ResetEntries, want 0", m.Len())
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}
