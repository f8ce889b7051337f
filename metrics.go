package vecmask

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    deleteCounter prometheus.Counter
//	    scanHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordDelete(duration time.Duration, err error) {
//	    p.deleteCounter.Inc()
//	}
type MetricsCollector interface {
	// RecordDelete is called after each delete operation.
	RecordDelete(duration time.Duration, err error)

	// RecordRestore is called after each restore operation.
	RecordRestore(duration time.Duration, err error)

	// RecordSnapshot is called after a snapshot is taken.
	// deleted is the number of excluded ids in the snapshot.
	RecordSnapshot(duration time.Duration, deleted int)

	// RecordMerge is called after each merge of an exclusion mask.
	RecordMerge(duration time.Duration, err error)

	// RecordScan is called after each filtered scan.
	// visited is the number of ids handed to the caller.
	RecordScan(visited int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDelete(time.Duration, error)    {}
func (NoopMetricsCollector) RecordRestore(time.Duration, error)   {}
func (NoopMetricsCollector) RecordSnapshot(time.Duration, int)    {}
func (NoopMetricsCollector) RecordMerge(time.Duration, error)     {}
func (NoopMetricsCollector) RecordScan(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DeleteCount      atomic.Int64
	DeleteErrors     atomic.Int64
	DeleteTotalNanos atomic.Int64
	RestoreCount     atomic.Int64
	RestoreErrors    atomic.Int64
	SnapshotCount    atomic.Int64
	SnapshotDeleted  atomic.Int64
	MergeCount       atomic.Int64
	MergeErrors      atomic.Int64
	ScanCount        atomic.Int64
	ScanErrors       atomic.Int64
	ScanVisited      atomic.Int64
	ScanTotalNanos   atomic.Int64
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(duration time.Duration, err error) {
	b.DeleteCount.Add(1)
	b.DeleteTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DeleteErrors.Add(1)
	}
}

// RecordRestore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRestore(duration time.Duration, err error) {
	b.RestoreCount.Add(1)
	if err != nil {
		b.RestoreErrors.Add(1)
	}
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(duration time.Duration, deleted int) {
	b.SnapshotCount.Add(1)
	b.SnapshotDeleted.Store(int64(deleted))
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(duration time.Duration, err error) {
	b.MergeCount.Add(1)
	if err != nil {
		b.MergeErrors.Add(1)
	}
}

// RecordScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScan(visited int, duration time.Duration, err error) {
	b.ScanCount.Add(1)
	b.ScanVisited.Add(int64(visited))
	b.ScanTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScanErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		DeleteCount:     b.DeleteCount.Load(),
		DeleteErrors:    b.DeleteErrors.Load(),
		DeleteAvgNanos:  avgNanos(b.DeleteTotalNanos.Load(), b.DeleteCount.Load()),
		RestoreCount:    b.RestoreCount.Load(),
		RestoreErrors:   b.RestoreErrors.Load(),
		SnapshotCount:   b.SnapshotCount.Load(),
		SnapshotDeleted: b.SnapshotDeleted.Load(),
		MergeCount:      b.MergeCount.Load(),
		MergeErrors:     b.MergeErrors.Load(),
		ScanCount:       b.ScanCount.Load(),
		ScanErrors:      b.ScanErrors.Load(),
		ScanVisited:     b.ScanVisited.Load(),
		ScanAvgNanos:    avgNanos(b.ScanTotalNanos.Load(), b.ScanCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DeleteCount     int64
	DeleteErrors    int64
	DeleteAvgNanos  int64
	RestoreCount    int64
	RestoreErrors   int64
	SnapshotCount   int64
	SnapshotDeleted int64
	MergeCount      int64
	MergeErrors     int64
	ScanCount       int64
	ScanErrors      int64
	ScanVisited     int64
	ScanAvgNanos    int64
}
