package logger

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/treelog/treelog/appender"
	"github.com/treelog/treelog/core"
)

// Hierarchy owns one category tree together with its context registry. The
// same tree can carry an independent configuration per registered context;
// the ambient API works against whichever context the current-context
// selector points at, while the *In variants take the slot explicitly.
type Hierarchy struct {
	separator          string
	defaultLevel       core.Level
	newDefaultAppender func() appender.Appender

	// mu guards tree structure (children maps) and all configuration
	// mutation, including mask recomputation. Enablement checks and
	// emission never take it.
	mu   sync.RWMutex
	root *Logger

	contexts map[string]int // name -> slot; grows monotonically, never reused
	slots    int

	current atomic.Int32 // currently selected context slot
}

// Config holds configuration for a Hierarchy
type Config struct {
	// Separator between category path elements (default: ".")
	Separator string
	// DefaultLevel seeded onto the root by New and Reset (default:
	// InfoLevel; the zero value selects the default, so a TraceLevel seed
	// has to be set explicitly after New)
	DefaultLevel core.Level
	// NewDefaultAppender builds the appender Reset seeds the root with
	// (default: a console appender on stdout)
	NewDefaultAppender func() appender.Appender
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Separator == "" {
		cfg.Separator = "."
	}
	if cfg.DefaultLevel == 0 {
		cfg.DefaultLevel = core.InfoLevel
	}
	if cfg.NewDefaultAppender == nil {
		cfg.NewDefaultAppender = func() appender.Appender {
			return appender.NewConsole(appender.ConsoleConfig{})
		}
	}
}

// New creates a hierarchy with the context "default" registered at slot 0
// and selected, and the root seeded the way Reset leaves it: DefaultLevel
// and one default appender.
func New(cfg Config) *Hierarchy {
	applyDefaults(&cfg)
	h := &Hierarchy{
		separator:          cfg.Separator,
		defaultLevel:       cfg.DefaultLevel,
		newDefaultAppender: cfg.NewDefaultAppender,
		contexts:           map[string]int{"default": 0},
		slots:              1,
	}
	h.root = newLogger(h, "", 0, nil, 1)

	h.mu.Lock()
	h.seedLocked()
	h.mu.Unlock()
	return h
}

// Root returns the root logger. The root is created with the hierarchy and
// never destroyed.
func (h *Hierarchy) Root() *Logger {
	return h.root
}

// Get returns the logger for a category, creating it and any missing
// ancestors on first use. The empty category returns the root. Lookups are
// idempotent: the same category always yields the identical node. Category
// parsing is purely mechanical — split on the last separator occurrence —
// so repeated or dangling separators just produce oddly named nodes.
func (h *Hierarchy) Get(category string) *Logger {
	if category == "" {
		return h.root
	}

	h.mu.RLock()
	l := h.find(category)
	h.mu.RUnlock()
	if l != nil {
		return l
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.create(category)
}

// find resolves an existing logger without creating anything; nil when any
// element of the chain is missing. Callers hold at least the read lock.
func (h *Hierarchy) find(category string) *Logger {
	if category == "" {
		return h.root
	}
	parent := h.root
	name := category
	if i := strings.LastIndex(category, h.separator); i >= 0 {
		parent = h.find(category[:i])
		if parent == nil {
			return nil
		}
		name = category[i+len(h.separator):]
	}
	return parent.children[name]
}

// create resolves or builds the chain down to category. Callers hold the
// write lock. A freshly built node has its masks computed for every
// registered context before it becomes visible to the caller.
func (h *Hierarchy) create(category string) *Logger {
	if category == "" {
		return h.root
	}
	parent := h.root
	name := category
	nameStart := 0
	if i := strings.LastIndex(category, h.separator); i >= 0 {
		parent = h.create(category[:i])
		name = category[i+len(h.separator):]
		nameStart = i + len(h.separator)
	}
	if child, ok := parent.children[name]; ok {
		return child
	}

	child := newLogger(h, category, nameStart, parent, h.slots)
	if parent.children == nil {
		parent.children = make(map[string]*Logger)
	}
	parent.children[name] = child
	child.refreshAll(h.slots)
	return child
}

// RegisterContext resolves a context name to its slot, assigning the next
// sequential slot on first sight. Assignment grows every logger's state
// vector by one default slot, so the invariant "one State per context per
// logger" never needs a per-access check. Slots are stable for the
// hierarchy's lifetime. A fresh context starts fully default — unset
// levels, no appenders — and stays dark until configured.
func (h *Hierarchy) RegisterContext(name string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	if slot, ok := h.contexts[name]; ok {
		return slot
	}
	slot := h.slots
	h.contexts[name] = slot
	h.slots++
	h.root.grow()
	return slot
}

// ResolveContext looks up a context name without registering it.
func (h *Hierarchy) ResolveContext(name string) (int, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	slot, ok := h.contexts[name]
	return slot, ok
}

// ContextCount returns the number of registered contexts.
func (h *Hierarchy) ContextCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.slots
}

// CurrentContext returns the currently selected context slot.
func (h *Hierarchy) CurrentContext() int {
	return int(h.current.Load())
}

// SelectContext makes slot the context every ambient operation works
// against. Selecting a slot that was never registered is a programming
// error and panics.
func (h *Hierarchy) SelectContext(slot int) {
	if slot < 0 || slot >= h.ContextCount() {
		panic(fmt.Sprintf("treelog: context slot %d out of range", slot))
	}
	h.current.Store(int32(slot))
}

// SelectContextName selects a context by name, registering it first when
// needed, and returns its slot.
func (h *Hierarchy) SelectContextName(name string) int {
	slot := h.RegisterContext(name)
	h.current.Store(int32(slot))
	return slot
}

// WithContext runs fn with slot selected and restores the previous
// selection afterwards, panics included. The selector is a single
// process-wide cell on the hierarchy, not goroutine-local: concurrent
// WithContext calls against the same hierarchy interleave their
// selections. Code that needs isolation should thread slots explicitly
// through the *In variants instead.
func (h *Hierarchy) WithContext(slot int, fn func()) {
	if slot < 0 || slot >= h.ContextCount() {
		panic(fmt.Sprintf("treelog: context slot %d out of range", slot))
	}
	prev := h.current.Swap(int32(slot))
	defer h.current.Store(prev)
	fn()
}

// RefreshMasks recomputes every cached mask in the tree for every context;
// the finishing step after a batch of Deferred mutations.
func (h *Hierarchy) RefreshMasks() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.root.refreshAll(h.slots)
}

// Reset clears every logger's configuration in every registered context —
// levels back to unset, additivity back on, appender lists emptied — then
// re-seeds the root in each context with DefaultLevel and one freshly built
// default appender, and recomputes all masks. Nodes themselves are never
// removed. Appenders detached by the reset are not closed: they may be
// attached elsewhere or owned by the caller.
func (h *Hierarchy) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seedLocked()
}

func (h *Hierarchy) seedLocked() {
	h.root.resetSubtree()
	for slot := 0; slot < h.slots; slot++ {
		st := h.root.state(slot)
		st.level.Store(int32(h.defaultLevel))
		st.setAppenders([]appender.Appender{h.newDefaultAppender()})
	}
	h.root.refreshAll(h.slots)
}

// Close closes every distinct appender attached anywhere in the tree, in
// any context. Each appender is closed once even when attached at several
// nodes; errors are collected rather than aborting the sweep.
func (h *Hierarchy) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	seen := make(map[appender.Appender]struct{})
	var err error
	var walk func(l *Logger)
	walk = func(l *Logger) {
		for _, st := range *l.states.Load() {
			for _, a := range st.Appenders() {
				if _, dup := seen[a]; dup {
					continue
				}
				seen[a] = struct{}{}
				err = multierr.Append(err, a.Close())
			}
		}
		for _, c := range l.children {
			walk(c)
		}
	}
	walk(h.root)
	return err
}
