package logger

import "sync"

var (
	defaultHierarchy *Hierarchy
	defaultMu        sync.RWMutex
)

func init() {
	// Default hierarchy: console appender on stdout, Info at the root
	defaultHierarchy = New(Config{})
}

// Default returns the package-level hierarchy
func Default() *Hierarchy {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultHierarchy
}

// SetDefault replaces the package-level hierarchy
func SetDefault(h *Hierarchy) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultHierarchy = h
}

// Package-level convenience functions using the default hierarchy

// Get returns the logger for category from the default hierarchy
func Get(category string) *Logger {
	return Default().Get(category)
}

// Root returns the default hierarchy's root logger
func Root() *Logger {
	return Default().Root()
}

// RegisterContext registers a context on the default hierarchy
func RegisterContext(name string) int {
	return Default().RegisterContext(name)
}

// SelectContext selects the ambient context slot on the default hierarchy
func SelectContext(slot int) {
	Default().SelectContext(slot)
}

// WithContext runs fn with slot selected on the default hierarchy
func WithContext(slot int, fn func()) {
	Default().WithContext(slot, fn)
}

// Reset restores the default hierarchy to its freshly seeded state
func Reset() {
	Default().Reset()
}
