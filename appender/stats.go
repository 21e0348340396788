package appender

import "go.uber.org/atomic"

// Stats tracks delivery counters for an appender.
type Stats struct {
	processed atomic.Uint64
	failed    atomic.Uint64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Processed uint64
	Failed    uint64
}

// IncrementProcessed records one successful delivery.
func (s *Stats) IncrementProcessed() {
	s.processed.Inc()
}

// IncrementFailed records one failed delivery.
func (s *Stats) IncrementFailed() {
	s.failed.Inc()
}

// GetSnapshot returns a snapshot of the current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Processed: s.processed.Load(),
		Failed:    s.failed.Load(),
	}
}
