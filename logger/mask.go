package logger

import "github.com/treelog/treelog/core"

// effectiveLevel returns the level this logger actually gates on in the
// given context: its own level when set, else the nearest ancestor's
// explicit level, else Off.
func (l *Logger) effectiveLevel(slot int) core.Level {
	for n := l; n != nil; n = n.parent {
		if lvl := n.state(slot).Level(); lvl != core.UnsetLevel {
			return lvl
		}
	}
	return core.OffLevel
}

// appenderReachable reports whether a record emitted at this logger would
// find at least one appender, walking upward while additivity holds.
func (l *Logger) appenderReachable(slot int) bool {
	for n := l; n != nil; n = n.parent {
		st := n.state(slot)
		if len(st.Appenders()) > 0 {
			return true
		}
		if !st.Additive() {
			return false
		}
	}
	return false
}

// refresh recomputes the cached enablement mask of this logger and every
// descendant for one context slot. A level's bit is set iff the level
// clears the effective level and an appender is reachable through the
// additivity chain. The mask is published with a single store so readers
// never observe a torn value.
//
// Callers must hold the hierarchy's configuration lock.
func (l *Logger) refresh(slot int) {
	var mask uint32
	if eff := l.effectiveLevel(slot); eff < core.OffLevel && l.appenderReachable(slot) {
		for lvl := eff; lvl < core.OffLevel; lvl++ {
			mask |= 1 << uint(lvl)
		}
	}
	l.state(slot).mask.Store(mask)

	for _, c := range l.children {
		c.refresh(slot)
	}
}

// refreshAll recomputes masks over this logger's subtree for every
// registered context slot.
func (l *Logger) refreshAll(slots int) {
	for slot := 0; slot < slots; slot++ {
		l.refresh(slot)
	}
}
