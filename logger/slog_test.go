package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/treelog/treelog/core"
)

func TestSlogHandler_EmitsThroughHierarchy(t *testing.T) {
	h, mem := newTestHierarchy()
	l := h.Get("svc.api")

	sl := slog.New(l.SlogHandler())
	sl.Info("hello", "key", "value")

	entries := mem.Entries()
	if len(entries) != 1 {
		t.Fatalf("captured %d records, want 1", len(entries))
	}
	if entries[0].Category != "svc.api" {
		t.Errorf("origin = %q, want %q", entries[0].Category, "svc.api")
	}
	if entries[0].Level != core.InfoLevel {
		t.Errorf("level = %v, want INFO", entries[0].Level)
	}
	if entries[0].Message != "hello key=value" {
		t.Errorf("message = %q, want %q", entries[0].Message, "hello key=value")
	}
}

func TestSlogHandler_EnabledUsesMask(t *testing.T) {
	h, mem := newTestHierarchy()
	l := h.Get("svc.api")
	handler := l.SlogHandler()

	if handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled(DEBUG) = true under the root's INFO")
	}
	if !handler.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Enabled(WARN) = false under the root's INFO")
	}

	slog.New(handler).Debug("dropped")
	if mem.Len() != 0 {
		t.Errorf("captured %d records at a disabled level, want 0", mem.Len())
	}
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	h, mem := newTestHierarchy()
	l := h.Get("svc.api")

	sl := slog.New(l.SlogHandler()).With("tenant", "acme").WithGroup("req")
	sl.Info("handled", "id", "7")

	entries := mem.Entries()
	if len(entries) != 1 {
		t.Fatalf("captured %d records, want 1", len(entries))
	}
	want := "handled tenant=acme req.id=7"
	if entries[0].Message != want {
		t.Errorf("message = %q, want %q", entries[0].Message, want)
	}
}
