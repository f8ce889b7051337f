package vecmask

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hupe1980/vecmask/bitset"
	"github.com/hupe1980/vecmask/filter"
	"github.com/hupe1980/vecmask/tombstone"
)

// Mask tracks deleted ids of a fixed-size collection and hands out
// exclusion masks for search.
//
// All methods are safe for concurrent use. Delete and Restore never block
// each other; Deleted, Snapshot, Merge and Scan briefly wait for in-flight
// deletes to finish.
type Mask struct {
	tracker *tombstone.Tracker
	metrics MetricsCollector
	logger  *Logger
}

// New creates a Mask covering ids in [0, size). Every id starts live.
func New(size uint32, optFns ...Option) *Mask {
	opts := applyOptions(optFns)
	logger := opts.logger.WithSize(size)

	trackerOpts := []tombstone.Option{
		tombstone.WithLogger(logger.Logger),
		tombstone.WithMetricsObserver(&snapshotObserver{metrics: opts.metricsCollector}),
	}
	if opts.checked {
		trackerOpts = append(trackerOpts, tombstone.WithChecks())
	}

	return &Mask{
		tracker: tombstone.New(size, trackerOpts...),
		metrics: opts.metricsCollector,
		logger:  logger,
	}
}

// Size returns the number of ids the mask covers.
func (m *Mask) Size() uint32 {
	return m.tracker.Size()
}

// Delete marks id as deleted. Deleting an already deleted id is a no-op.
func (m *Mask) Delete(ctx context.Context, id uint32) error {
	start := time.Now()
	changed, err := m.tracker.MarkDeleted(id)
	err = m.translateError(err, 0)
	duration := time.Since(start)
	m.metrics.RecordDelete(duration, err)
	m.logger.LogDelete(ctx, id, changed, err)
	return err
}

// Restore marks id as live again. Restoring a live id is a no-op.
func (m *Mask) Restore(ctx context.Context, id uint32) error {
	start := time.Now()
	changed, err := m.tracker.Restore(id)
	err = m.translateError(err, 0)
	duration := time.Since(start)
	m.metrics.RecordRestore(duration, err)
	m.logger.LogRestore(ctx, id, changed, err)
	return err
}

// IsDeleted reports whether id is deleted. Ids outside the mask are live.
func (m *Mask) IsDeleted(id uint32) bool {
	return m.tracker.IsDeleted(id)
}

// Deleted returns the number of deleted ids.
func (m *Mask) Deleted() int {
	return m.tracker.Count()
}

// Snapshot returns a stable exclusion mask of the current deletions.
func (m *Mask) Snapshot() bitset.View {
	return m.tracker.Snapshot()
}

// Filter returns a filter over the live deletions. Deletes issued after
// Filter returns are visible through it.
func (m *Mask) Filter() filter.Filter {
	return m.tracker.Filter()
}

// Merge marks every id set in v as deleted.
//
// v must cover exactly Size ids, otherwise *ErrSizeMismatch is returned and
// the mask is left unchanged.
func (m *Mask) Merge(ctx context.Context, v bitset.View) error {
	start := time.Now()
	err := m.translateError(m.tracker.Merge(v), v.Size())
	duration := time.Since(start)
	m.metrics.RecordMerge(duration, err)
	m.logger.LogMerge(ctx, v.Size(), err)
	return err
}

// Scan calls fn for each live id in ascending order, as of a snapshot taken
// when Scan starts. fn returning false stops the scan.
func (m *Mask) Scan(ctx context.Context, fn func(id uint32) bool) error {
	start := time.Now()
	snap := m.Snapshot()

	var visited int
	err := filter.Scan(ctx, m.Size(), filter.Exclude(snap), func(id uint32) bool {
		visited++
		return fn(id)
	})

	m.metrics.RecordScan(visited, time.Since(start), err)
	m.logger.LogScan(ctx, visited, snap.Count(), err)
	return err
}

// ScanParallel is like Scan but fans the id space out over at most workers
// goroutines. Ids arrive in no particular order and fn must be safe for
// concurrent use. The first error returned by fn stops the scan.
func (m *Mask) ScanParallel(ctx context.Context, workers int, fn func(id uint32) error) error {
	start := time.Now()
	snap := m.Snapshot()

	var visited atomic.Int64
	err := filter.ScanParallel(ctx, m.Size(), filter.Exclude(snap), workers, func(id uint32) error {
		visited.Add(1)
		return fn(id)
	})

	n := int(visited.Load())
	m.metrics.RecordScan(n, time.Since(start), err)
	m.logger.LogScan(ctx, n, snap.Count(), err)
	return err
}

// snapshotObserver forwards tracker snapshot timings to a MetricsCollector.
// Mark, restore and merge are timed by Mask itself.
type snapshotObserver struct {
	tombstone.NoopMetricsObserver
	metrics MetricsCollector
}

func (o *snapshotObserver) OnSnapshot(duration time.Duration, deleted int) {
	o.metrics.RecordSnapshot(duration, deleted)
}
