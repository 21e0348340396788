// Package logger implements a hierarchical, multi-context logger tree.
//
// Loggers form a tree keyed by dotted categories: Get("svc.db.pool")
// creates (or finds) the node for svc.db.pool along with its ancestors
// svc.db and svc. A logger with no explicit level inherits the nearest
// ancestor's, and a record it emits climbs the ancestor chain visiting
// every directly attached appender until a node with additivity disabled
// stops the walk.
//
// A Hierarchy can carry several independent configurations over the same
// tree, one per registered context. Each logger keeps one State per
// context slot — level, appenders, additivity — and the registry grows
// every state vector in lockstep when a new context is registered.
// SelectContext (or the scoped WithContext) picks which slice the ambient
// API operates on; every hot operation also exists as an explicit-slot
// *In variant.
//
// The hot path is O(1): every State caches a bitmask of the severities
// that would currently reach at least one appender, recomputed over the
// affected subtree whenever a level, appender list, or additivity flag
// changes. IsEnabled is a single atomic load and a bit test no matter how
// deep the tree is, and the leveled methods build their message producer
// only after that check passes.
package logger
