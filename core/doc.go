// Package core defines the shared leaf types used across treelog.
//
// It provides the Level type for severity filtering, with the OffLevel and
// UnsetLevel sentinels that drive suppression and inheritance in the logger
// tree, and the Record type that carries a single log event to appenders.
//
// Record objects are pooled via sync.Pool so that emitting on an enabled
// logger allocates nothing beyond what the message producer itself does.
// The producer is memoized: no matter how many appenders a record reaches
// during the ancestor walk, the message text is rendered at most once.
package core
