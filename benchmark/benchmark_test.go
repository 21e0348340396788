package benchmark

import (
	"testing"

	"github.com/treelog/treelog/core"
	"github.com/treelog/treelog/logger"
)

// newHierarchy builds a hierarchy that delivers to a no-op appender so the
// numbers isolate the engine.
func newHierarchy() *logger.Hierarchy {
	return logger.New(logger.Config{
		NewDefaultAppender: newNoopAppender,
	})
}

func BenchmarkEnablementCheck(b *testing.B) {
	h := newHierarchy()

	b.Run("shallow", func(b *testing.B) {
		l := h.Get("a")
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.IsEnabled(core.TraceLevel)
		}
	})

	// The cached mask makes depth irrelevant; this should match shallow.
	b.Run("deep", func(b *testing.B) {
		l := h.Get("a.b.c.d.e.f.g.h")
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.IsEnabled(core.TraceLevel)
		}
	})
}

func BenchmarkEmit_AncestorWalk(b *testing.B) {
	h := newHierarchy()
	h.Get("a.b").AddAppender(newNoopAppender())
	h.Get("a.b.c.d").AddAppender(newNoopAppender())
	l := h.Get("a.b.c.d.e.f")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Info("walked up three attachment points")
	}
}

func BenchmarkContextSwitch(b *testing.B) {
	h := newHierarchy()
	slot := h.RegisterContext("bench")
	l := h.Get("a.b.c")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.IsEnabledIn(slot, core.InfoLevel)
		l.IsEnabledIn(0, core.InfoLevel)
	}
}
