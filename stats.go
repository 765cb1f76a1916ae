package dlis

import "go.uber.org/atomic"

// Stats is a point-in-time snapshot of a File's read-only accounting
// counters.
type Stats struct {
	VisibleRecords    int64
	Segments          int64
	BytesMaterialised int64
	Warnings          int64
}

// statCounters holds the live counters backing a File. The core is
// single-threaded per the concurrency model; atomic.Int64 is used for its
// Load()-based snapshot API, not for concurrent-mutation safety.
type statCounters struct {
	visibleRecords    atomic.Int64
	segments          atomic.Int64
	bytesMaterialised atomic.Int64
	warnings          atomic.Int64
}

func newStats() *statCounters {
	return &statCounters{}
}

func (s *statCounters) snapshot() Stats {
	return Stats{
		VisibleRecords:    s.visibleRecords.Load(),
		Segments:          s.segments.Load(),
		BytesMaterialised: s.bytesMaterialised.Load(),
		Warnings:          s.warnings.Load(),
	}
}
