package logger

import (
	"fmt"

	"go.uber.org/atomic"

	"github.com/treelog/treelog/appender"
	"github.com/treelog/treelog/core"
)

// Logger is one node of a hierarchy's category tree. Loggers are created on
// first lookup of their category and live for the lifetime of their
// Hierarchy; whole-hierarchy Reset clears their configuration but never
// removes nodes. All configuration is per context: a Logger carries exactly
// one State per registered context slot.
type Logger struct {
	owner     *Hierarchy
	category  string
	separator string
	nameStart int // offset into category where the short name begins
	parent    *Logger
	depth     int

	// children is keyed by short name, created lazily on the first child,
	// and accessed only under the owner's configuration lock.
	children map[string]*Logger

	// states holds one entry per registered context slot. The slice is
	// republished wholesale when the registry grows it, so hot-path reads
	// need no lock.
	states atomic.Pointer[[]*State]
}

func newLogger(owner *Hierarchy, category string, nameStart int, parent *Logger, slots int) *Logger {
	l := &Logger{
		owner:     owner,
		category:  category,
		separator: owner.separator,
		nameStart: nameStart,
		parent:    parent,
	}
	if parent != nil {
		l.depth = parent.depth + 1
	}
	states := make([]*State, slots)
	for i := range states {
		states[i] = newState()
	}
	l.states.Store(&states)
	return l
}

// Category returns the full category path of this logger; empty for root.
func (l *Logger) Category() string {
	return l.category
}

// Name returns the short name: the part of the category after the last
// separator.
func (l *Logger) Name() string {
	return l.category[l.nameStart:]
}

// Separator returns the category separator this logger was created with.
func (l *Logger) Separator() string {
	return l.separator
}

// Parent returns the parent logger; nil only for the root.
func (l *Logger) Parent() *Logger {
	return l.parent
}

// Depth returns the distance from the root.
func (l *Logger) Depth() int {
	return l.depth
}

// Hierarchy returns the owning hierarchy.
func (l *Logger) Hierarchy() *Hierarchy {
	return l.owner
}

// state returns the State for a context slot. Indexing a slot that was
// never registered with the owning hierarchy is a programming error and
// panics.
func (l *Logger) state(slot int) *State {
	return (*l.states.Load())[slot]
}

// State exposes the per-context configuration record for a slot.
func (l *Logger) State(slot int) *State {
	return l.state(slot)
}

// grow appends one default State to this logger and every descendant.
// Called by the registry under the configuration lock when a new context
// is assigned a slot.
func (l *Logger) grow() {
	old := *l.states.Load()
	states := make([]*State, len(old)+1)
	copy(states, old)
	states[len(old)] = newState()
	l.states.Store(&states)

	for _, c := range l.children {
		c.grow()
	}
}

// resetSubtree restores every State of this logger and its descendants to
// defaults. Callers must hold the configuration lock.
func (l *Logger) resetSubtree() {
	for _, st := range *l.states.Load() {
		st.reset()
	}
	for _, c := range l.children {
		c.resetSubtree()
	}
}

// Level returns this logger's own configured level in the currently
// selected context; UnsetLevel when it inherits.
func (l *Logger) Level() core.Level {
	return l.state(l.owner.CurrentContext()).Level()
}

// EffectiveLevel returns the level this logger gates on, following the
// ancestor chain when its own level is unset; Off when no ancestor has an
// explicit level either.
func (l *Logger) EffectiveLevel() core.Level {
	return l.effectiveLevel(l.owner.CurrentContext())
}

// Additive reports this logger's additivity flag in the currently selected
// context.
func (l *Logger) Additive() bool {
	return l.state(l.owner.CurrentContext()).Additive()
}

// Appenders returns this logger's own appenders in the currently selected
// context, in insertion order.
func (l *Logger) Appenders() []appender.Appender {
	return l.state(l.owner.CurrentContext()).Appenders()
}

// SetLevel sets this logger's own level for the currently selected context
// and recomputes the enablement masks of this logger and its descendants.
// It reports whether anything changed: setting the level the logger already
// has is a no-op. level must be a real level or one of the sentinels;
// anything else panics.
func (l *Logger) SetLevel(level core.Level) bool {
	return l.setLevel(level, true)
}

// SetLevelDeferred is SetLevel without the mask recomputation, for bulk
// reconfiguration. Masks are stale until Hierarchy.RefreshMasks (or a later
// non-deferred mutation covering the subtree) runs.
func (l *Logger) SetLevelDeferred(level core.Level) bool {
	return l.setLevel(level, false)
}

func (l *Logger) setLevel(level core.Level, refresh bool) bool {
	if !level.Valid() {
		panic(fmt.Sprintf("treelog: invalid level %d", int8(level)))
	}
	h := l.owner
	h.mu.Lock()
	defer h.mu.Unlock()

	slot := int(h.current.Load())
	st := l.state(slot)
	if st.Level() == level {
		return false
	}
	st.level.Store(int32(level))
	if refresh {
		l.refresh(slot)
	}
	return true
}

// SetAdditive sets whether this logger's records continue to ancestor
// appenders, for the currently selected context, and reports whether the
// flag changed. Only this node's and its descendants' reachability can be
// affected — what the ancestors themselves reach never depends on it — so
// recomputation is scoped to the subtree.
func (l *Logger) SetAdditive(additive bool) bool {
	return l.setAdditive(additive, true)
}

// SetAdditiveDeferred is SetAdditive without the mask recomputation.
func (l *Logger) SetAdditiveDeferred(additive bool) bool {
	return l.setAdditive(additive, false)
}

func (l *Logger) setAdditive(additive bool, refresh bool) bool {
	h := l.owner
	h.mu.Lock()
	defer h.mu.Unlock()

	slot := int(h.current.Load())
	st := l.state(slot)
	if st.Additive() == additive {
		return false
	}
	st.additive.Store(additive)
	if refresh {
		l.refresh(slot)
	}
	return true
}

// AddAppender attaches a to this logger for the currently selected context.
// Attaching an appender that is already present (same identity) is a no-op.
// Appenders at one node are delivered in the order they were added.
func (l *Logger) AddAppender(a appender.Appender) {
	h := l.owner
	h.mu.Lock()
	defer h.mu.Unlock()

	slot := int(h.current.Load())
	st := l.state(slot)
	cur := st.Appenders()
	for _, existing := range cur {
		if existing == a {
			return
		}
	}
	next := make([]appender.Appender, len(cur)+1)
	copy(next, cur)
	next[len(cur)] = a
	st.setAppenders(next)
	l.refresh(slot)
}

// RemoveAppender detaches a from this logger for the currently selected
// context and reports whether it was attached. The appender is not closed.
func (l *Logger) RemoveAppender(a appender.Appender) bool {
	h := l.owner
	h.mu.Lock()
	defer h.mu.Unlock()

	slot := int(h.current.Load())
	st := l.state(slot)
	cur := st.Appenders()
	for i, existing := range cur {
		if existing == a {
			next := make([]appender.Appender, 0, len(cur)-1)
			next = append(next, cur[:i]...)
			next = append(next, cur[i+1:]...)
			st.setAppenders(next)
			l.refresh(slot)
			return true
		}
	}
	return false
}

// ClearAppenders detaches every appender from this logger for the currently
// selected context. Appenders are not closed.
func (l *Logger) ClearAppenders() {
	h := l.owner
	h.mu.Lock()
	defer h.mu.Unlock()

	slot := int(h.current.Load())
	st := l.state(slot)
	if len(st.Appenders()) == 0 {
		return
	}
	st.setAppenders(nil)
	l.refresh(slot)
}

// RefreshMasks recomputes this logger's subtree masks for the currently
// selected context; the finishing step after Deferred mutations scoped to
// a subtree.
func (l *Logger) RefreshMasks() {
	h := l.owner
	h.mu.Lock()
	defer h.mu.Unlock()
	l.refresh(int(h.current.Load()))
}

// IsEnabled reports whether a record at the given level would reach at
// least one appender from this logger in the currently selected context.
// It is a single atomic load and a bit test regardless of tree depth.
func (l *Logger) IsEnabled(level core.Level) bool {
	return l.IsEnabledIn(l.owner.CurrentContext(), level)
}

// IsEnabledIn is IsEnabled against an explicit context slot.
func (l *Logger) IsEnabledIn(slot int, level core.Level) bool {
	if level < core.TraceLevel || level >= core.OffLevel {
		return false
	}
	return l.state(slot).Mask()&(1<<uint(level)) != 0
}

// Log emits a lazily produced message at the given level in the currently
// selected context. The producer runs only when the level is live, and at
// most once however many appenders the record reaches. The first appender
// error aborts the ancestor walk and is returned.
func (l *Logger) Log(level core.Level, produce core.MessageProducer) error {
	return l.LogIn(l.owner.CurrentContext(), level, produce)
}

// LogIn is Log against an explicit context slot.
func (l *Logger) LogIn(slot int, level core.Level, produce core.MessageProducer) error {
	if !l.IsEnabledIn(slot, level) {
		return nil
	}
	return l.emit(slot, level, produce)
}

// emit walks from this logger toward the root, delivering the record to
// each node's own appenders in insertion order, and stops ascending at the
// first node with additivity disabled. Every appender receives the same
// record: the originating category and level, never the node the appender
// hangs off.
func (l *Logger) emit(slot int, level core.Level, produce core.MessageProducer) error {
	rec := core.GetRecord(level, l.category, produce)
	for n := l; n != nil; n = n.parent {
		st := n.state(slot)
		for _, a := range st.Appenders() {
			if err := a.Append(rec); err != nil {
				return err
			}
		}
		if !st.Additive() {
			break
		}
	}
	core.PutRecord(rec)
	return nil
}

// Trace logs a message at TraceLevel
func (l *Logger) Trace(msg string) error {
	slot := l.owner.CurrentContext()
	if !l.IsEnabledIn(slot, core.TraceLevel) {
		return nil
	}
	return l.emit(slot, core.TraceLevel, func() string { return msg })
}

// Debug logs a message at DebugLevel
func (l *Logger) Debug(msg string) error {
	slot := l.owner.CurrentContext()
	if !l.IsEnabledIn(slot, core.DebugLevel) {
		return nil
	}
	return l.emit(slot, core.DebugLevel, func() string { return msg })
}

// Info logs a message at InfoLevel
func (l *Logger) Info(msg string) error {
	slot := l.owner.CurrentContext()
	if !l.IsEnabledIn(slot, core.InfoLevel) {
		return nil
	}
	return l.emit(slot, core.InfoLevel, func() string { return msg })
}

// Warn logs a message at WarnLevel
func (l *Logger) Warn(msg string) error {
	slot := l.owner.CurrentContext()
	if !l.IsEnabledIn(slot, core.WarnLevel) {
		return nil
	}
	return l.emit(slot, core.WarnLevel, func() string { return msg })
}

// Error logs a message at ErrorLevel
func (l *Logger) Error(msg string) error {
	slot := l.owner.CurrentContext()
	if !l.IsEnabledIn(slot, core.ErrorLevel) {
		return nil
	}
	return l.emit(slot, core.ErrorLevel, func() string { return msg })
}

// Fatal logs a message at FatalLevel. It does not terminate the process;
// Fatal is simply the highest live severity.
func (l *Logger) Fatal(msg string) error {
	slot := l.owner.CurrentContext()
	if !l.IsEnabledIn(slot, core.FatalLevel) {
		return nil
	}
	return l.emit(slot, core.FatalLevel, func() string { return msg })
}

// Tracef logs a formatted message at TraceLevel; formatting runs only when
// the level is live
func (l *Logger) Tracef(format string, args ...interface{}) error {
	slot := l.owner.CurrentContext()
	if !l.IsEnabledIn(slot, core.TraceLevel) {
		return nil
	}
	return l.emit(slot, core.TraceLevel, func() string { return fmt.Sprintf(format, args...) })
}

// Debugf logs a formatted message at DebugLevel
func (l *Logger) Debugf(format string, args ...interface{}) error {
	slot := l.owner.CurrentContext()
	if !l.IsEnabledIn(slot, core.DebugLevel) {
		return nil
	}
	return l.emit(slot, core.DebugLevel, func() string { return fmt.Sprintf(format, args...) })
}

// Infof logs a formatted message at InfoLevel
func (l *Logger) Infof(format string, args ...interface{}) error {
	slot := l.owner.CurrentContext()
	if !l.IsEnabledIn(slot, core.InfoLevel) {
		return nil
	}
	return l.emit(slot, core.InfoLevel, func() string { return fmt.Sprintf(format, args...) })
}

// Warnf logs a formatted message at WarnLevel
func (l *Logger) Warnf(format string, args ...interface{}) error {
	slot := l.owner.CurrentContext()
	if !l.IsEnabledIn(slot, core.WarnLevel) {
		return nil
	}
	return l.emit(slot, core.WarnLevel, func() string { return fmt.Sprintf(format, args...) })
}

// Errorf logs a formatted message at ErrorLevel
func (l *Logger) Errorf(format string, args ...interface{}) error {
	slot := l.owner.CurrentContext()
	if !l.IsEnabledIn(slot, core.ErrorLevel) {
		return nil
	}
	return l.emit(slot, core.ErrorLevel, func() string { return fmt.Sprintf(format, args...) })
}

// Fatalf logs a formatted message at FatalLevel
func (l *Logger) Fatalf(format string, args ...interface{}) error {
	slot := l.owner.CurrentContext()
	if !l.IsEnabledIn(slot, core.FatalLevel) {
		return nil
	}
	return l.emit(slot, core.FatalLevel, func() string { return fmt.Sprintf(format, args...) })
}
