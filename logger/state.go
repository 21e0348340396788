package logger

import (
	"go.uber.org/atomic"

	"github.com/treelog/treelog/appender"
	"github.com/treelog/treelog/core"
)

// State is the configuration record of one logger in one context. Every
// field read on a hot path is an atomic cell so readers never take a lock;
// writers — always under the hierarchy's configuration lock — publish whole
// values, never partial updates.
type State struct {
	level     atomic.Int32                         // core.Level; UnsetLevel when inheriting
	additive  atomic.Bool                          // propagate records to ancestor appenders
	appenders atomic.Pointer[[]appender.Appender]  // copy-on-write, insertion order
	mask      atomic.Uint32                        // one bit per real level, see refresh
}

func newState() *State {
	s := &State{}
	s.level.Store(int32(core.UnsetLevel))
	s.additive.Store(true)
	return s
}

// reset restores defaults: unset level, additive, no appenders, dark mask.
func (s *State) reset() {
	s.level.Store(int32(core.UnsetLevel))
	s.additive.Store(true)
	s.appenders.Store(nil)
	s.mask.Store(0)
}

// Level returns the explicitly configured level, or UnsetLevel when this
// state inherits.
func (s *State) Level() core.Level {
	return core.Level(s.level.Load())
}

// Additive reports whether records continue on to ancestor appenders.
func (s *State) Additive() bool {
	return s.additive.Load()
}

// Appenders returns the directly attached appenders in insertion order.
// The returned slice is never mutated in place; callers may iterate it
// without holding any lock.
func (s *State) Appenders() []appender.Appender {
	p := s.appenders.Load()
	if p == nil {
		return nil
	}
	return *p
}

func (s *State) setAppenders(list []appender.Appender) {
	if len(list) == 0 {
		s.appenders.Store(nil)
		return
	}
	s.appenders.Store(&list)
}

// Mask returns the cached enablement bitmask.
func (s *State) Mask() uint32 {
	return s.mask.Load()
}
