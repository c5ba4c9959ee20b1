package intset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A collector may be shared by many sets, possibly used from different
// goroutines, so implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordResize is called when an operation changes the number of
	// storage words of a set.
	RecordResize(op string, oldWords, newWords int)

	// RecordMerge is called after each two-set algebra operation with the
	// word counts of both operands before the merge.
	RecordMerge(op string, dstWords, srcWords int)

	// RecordFanIn is called after UnionAll or IntersectAll.
	RecordFanIn(op string, inputs int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordResize(string, int, int)                 {}
func (NoopMetricsCollector) RecordMerge(string, int, int)                  {}
func (NoopMetricsCollector) RecordFanIn(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount       atomic.Int64
	ShrinkCount     atomic.Int64
	WordsAllocated  atomic.Int64
	MergeCount      atomic.Int64
	MergeWords      atomic.Int64
	FanInCount      atomic.Int64
	FanInInputs     atomic.Int64
	FanInErrors     atomic.Int64
	FanInTotalNanos atomic.Int64
}

// RecordResize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResize(_ string, oldWords, newWords int) {
	if newWords > oldWords {
		b.GrowCount.Add(1)
	} else {
		b.ShrinkCount.Add(1)
	}
	b.WordsAllocated.Add(int64(newWords - oldWords))
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(_ string, dstWords, srcWords int) {
	b.MergeCount.Add(1)
	b.MergeWords.Add(int64(min(dstWords, srcWords)))
}

// RecordFanIn implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFanIn(_ string, inputs int, duration time.Duration, err error) {
	b.FanInCount.Add(1)
	b.FanInInputs.Add(int64(inputs))
	b.FanInTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FanInErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:      b.GrowCount.Load(),
		ShrinkCount:    b.ShrinkCount.Load(),
		WordsAllocated: b.WordsAllocated.Load(),
		MergeCount:     b.MergeCount.Load(),
		MergeWords:     b.MergeWords.Load(),
		FanInCount:     b.FanInCount.Load(),
		FanInInputs:    b.FanInInputs.Load(),
		FanInErrors:    b.FanInErrors.Load(),
		FanInAvgNanos:  b.getAvgFanInNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgFanInNanos() int64 {
	count := b.FanInCount.Load()
	if count == 0 {
		return 0
	}
	return b.FanInTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount      int64
	ShrinkCount    int64
	WordsAllocated int64 // net words added across all sets
	MergeCount     int64
	MergeWords     int64 // overlapping words combined word-parallel
	FanInCount     int64
	FanInInputs    int64
	FanInErrors    int64
	FanInAvgNanos  int64
}
