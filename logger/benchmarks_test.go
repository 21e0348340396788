package logger

import (
	"testing"

	"github.com/treelog/treelog/appender"
	"github.com/treelog/treelog/core"
)

// discardAppender renders the message and throws it away, keeping the
// engine's own cost visible.
type discardAppender struct{}

func (discardAppender) Append(rec *core.Record) error {
	_ = rec.Message()
	return nil
}

func (discardAppender) Close() error { return nil }

func newBenchHierarchy() *Hierarchy {
	return New(Config{
		NewDefaultAppender: func() appender.Appender { return discardAppender{} },
	})
}

func BenchmarkIsEnabled_Miss(b *testing.B) {
	h := newBenchHierarchy()
	l := h.Get("a.b.c.d.e") // depth is irrelevant for the cached check

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if l.IsEnabled(core.TraceLevel) {
			b.Fatal("trace should be disabled")
		}
	}
}

func BenchmarkIsEnabled_Hit(b *testing.B) {
	h := newBenchHierarchy()
	l := h.Get("a.b.c.d.e")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !l.IsEnabled(core.InfoLevel) {
			b.Fatal("info should be enabled")
		}
	}
}

func BenchmarkLog_Disabled(b *testing.B) {
	h := newBenchHierarchy()
	l := h.Get("a.b.c")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Debugf("value %d", i)
	}
}

func BenchmarkLog_Enabled(b *testing.B) {
	h := newBenchHierarchy()
	l := h.Get("a.b.c")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Info("steady state message")
	}
}

func BenchmarkLog_EnabledParallel(b *testing.B) {
	h := newBenchHierarchy()
	l := h.Get("a.b.c")

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = l.Info("steady state message")
		}
	})
}
