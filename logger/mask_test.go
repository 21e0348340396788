package logger

import (
	"math/rand"
	"testing"

	"github.com/treelog/treelog/appender"
	"github.com/treelog/treelog/core"
)

// bruteForceEnabled recomputes enablement from first principles by walking
// the tree, ignoring the cached masks entirely.
func bruteForceEnabled(l *Logger, slot int, level core.Level) bool {
	if level < core.TraceLevel || level >= core.OffLevel {
		return false
	}

	eff := core.OffLevel
	for n := l; n != nil; n = n.parent {
		if lvl := n.State(slot).Level(); lvl != core.UnsetLevel {
			eff = lvl
			break
		}
	}
	if level < eff {
		return false
	}

	for n := l; n != nil; n = n.parent {
		st := n.State(slot)
		if len(st.Appenders()) > 0 {
			return true
		}
		if !st.Additive() {
			return false
		}
	}
	return false
}

// TestMask_MatchesBruteForce drives a fixed tree through a long random
// mutation sequence across several contexts and checks, after every step,
// that the cached mask agrees with a brute-force walk for every logger,
// slot, and level.
func TestMask_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h, _ := newTestHierarchy()

	categories := []string{
		"a", "b",
		"a.a", "a.b", "b.a",
		"a.a.a", "a.a.b", "a.b.a", "b.a.a",
	}
	loggers := []*Logger{h.Root()}
	for _, c := range categories {
		loggers = append(loggers, h.Get(c))
	}

	slots := []int{0, h.RegisterContext("two"), h.RegisterContext("three")}

	levels := []core.Level{
		core.TraceLevel, core.DebugLevel, core.InfoLevel,
		core.WarnLevel, core.ErrorLevel, core.FatalLevel,
		core.OffLevel, core.UnsetLevel,
	}
	pool := []appender.Appender{
		appender.NewMemory(), appender.NewMemory(),
		appender.NewMemory(), appender.NewMemory(),
	}

	verify := func(step int) {
		for _, l := range loggers {
			for _, slot := range slots {
				for lvl := core.TraceLevel; lvl < core.OffLevel; lvl++ {
					want := bruteForceEnabled(l, slot, lvl)
					if got := l.IsEnabledIn(slot, lvl); got != want {
						t.Fatalf("step %d: mask disagrees with brute force for (%q, slot %d, %v): got %v, want %v",
							step, l.Category(), slot, lvl, got, want)
					}
				}
			}
		}
	}

	verify(-1)
	for step := 0; step < 400; step++ {
		h.SelectContext(slots[rng.Intn(len(slots))])
		l := loggers[rng.Intn(len(loggers))]
		switch rng.Intn(4) {
		case 0:
			l.SetLevel(levels[rng.Intn(len(levels))])
		case 1:
			l.SetAdditive(rng.Intn(2) == 0)
		case 2:
			l.AddAppender(pool[rng.Intn(len(pool))])
		case 3:
			l.RemoveAppender(pool[rng.Intn(len(pool))])
		}
		verify(step)
	}
	h.SelectContext(0)
}

// TestMask_DeferredBatchConverges checks that a batch of deferred edits
// followed by one RefreshMasks lands in the same state an eager sequence
// would have.
func TestMask_DeferredBatchConverges(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	h, _ := newTestHierarchy()

	loggers := []*Logger{h.Root(), h.Get("m"), h.Get("m.n"), h.Get("m.n.o"), h.Get("m.p")}
	levels := []core.Level{
		core.TraceLevel, core.DebugLevel, core.InfoLevel, core.WarnLevel,
		core.ErrorLevel, core.FatalLevel, core.OffLevel, core.UnsetLevel,
	}

	for batch := 0; batch < 20; batch++ {
		for i := 0; i < 10; i++ {
			l := loggers[rng.Intn(len(loggers))]
			if rng.Intn(2) == 0 {
				l.SetLevelDeferred(levels[rng.Intn(len(levels))])
			} else {
				l.SetAdditiveDeferred(rng.Intn(2) == 0)
			}
		}
		h.RefreshMasks()
		for _, l := range loggers {
			for lvl := core.TraceLevel; lvl < core.OffLevel; lvl++ {
				want := bruteForceEnabled(l, 0, lvl)
				if got := l.IsEnabledIn(0, lvl); got != want {
					t.Fatalf("batch %d: (%q, %v): got %v, want %v", batch, l.Category(), lvl, got, want)
				}
			}
		}
	}
}
