package core

import (
	"sync"
	"time"
)

// MessageProducer lazily renders the final message text. It runs at most
// once per Record; the result is memoized so every appender visited during
// an ancestor walk observes the same rendering.
type MessageProducer func() string

// Record is the unit handed to appenders. Category always names the
// originating logger, never the ancestor node a receiving appender happens
// to be attached to.
type Record struct {
	Time     time.Time
	Level    Level
	Category string

	produce  MessageProducer
	rendered string
	done     bool
}

// Message renders and returns the message text. The producer runs on the
// first call only.
func (r *Record) Message() string {
	if !r.done {
		if r.produce != nil {
			r.rendered = r.produce()
		}
		r.done = true
	}
	return r.rendered
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool, stamped with the current time.
func GetRecord(level Level, category string, produce MessageProducer) *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	r.Level = level
	r.Category = category
	r.produce = produce
	r.rendered = ""
	r.done = false
	return r
}

// PutRecord returns a Record to the pool. Appenders must not retain a
// Record past their Append call; the emitter recycles it once the walk
// completes.
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.produce = nil
	r.rendered = ""
	recordPool.Put(r)
}
