package tombstone

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/vecmask/bitset"
	"github.com/hupe1980/vecmask/filter"
)

// Tracker records deleted row ids in a fixed-size bitset and publishes them
// to search as exclusion masks.
//
// Concurrency:
//   - MarkDeleted and Restore share a read lock and mutate single bits
//     atomically, so any number of writers proceed in parallel.
//   - IsDeleted, Publish views and Filter are lock-free readers.
//   - Count, Snapshot, Merge, LoadRoaring and ToRoaring take the write lock,
//     which waits for in-flight writers and freezes the bitset for the
//     duration of the bulk work. Lock-free readers are not excluded, so
//     Merge and LoadRoaring fold their input in with atomic word ORs.
type Tracker struct {
	mu  sync.RWMutex
	set *bitset.Bitset

	size    uint32
	checked bool

	logger  *slog.Logger
	metrics MetricsObserver
}

// New creates a tracker for ids in [0, size).
func New(size uint32, optFns ...Option) *Tracker {
	t := &Tracker{
		size:    size,
		logger:  discardLogger(),
		metrics: &NoopMetricsObserver{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(t)
		}
	}

	var bopts []bitset.Option
	if t.checked {
		bopts = append(bopts, bitset.WithChecks())
	}
	t.set = bitset.New(size, bopts...)
	return t
}

// Size returns the number of ids the tracker covers.
func (t *Tracker) Size() uint32 {
	return t.size
}

// MarkDeleted marks id as deleted. It reports whether the id was live before.
func (t *Tracker) MarkDeleted(id uint32) (bool, error) {
	if id >= t.size {
		return false, fmt.Errorf("%w: %d >= %d", ErrOutOfRange, id, t.size)
	}

	t.mu.RLock()
	changed := !t.set.TestAndSet(id)
	t.mu.RUnlock()

	t.metrics.OnMark(changed)
	return changed, nil
}

// Restore un-deletes id. It reports whether the id was deleted before.
func (t *Tracker) Restore(id uint32) (bool, error) {
	if id >= t.size {
		return false, fmt.Errorf("%w: %d >= %d", ErrOutOfRange, id, t.size)
	}

	t.mu.RLock()
	changed := t.set.TestAndClear(id)
	t.mu.RUnlock()

	t.metrics.OnRestore(changed)
	return changed, nil
}

// IsDeleted reports whether id is deleted. Ids out of range are live.
func (t *Tracker) IsDeleted(id uint32) bool {
	if id >= t.size {
		return false
	}
	return t.set.Test(id)
}

// Count returns the number of deleted ids.
func (t *Tracker) Count() int {
	var n int
	t.frozen(func() {
		n = t.set.Count()
	})
	return n
}

// Publish returns a zero-copy view over the live deletion bitset.
//
// The view aliases the tracker's storage: deletions and restores that happen
// after Publish are visible through it. Use Snapshot for a stable mask.
func (t *Tracker) Publish() bitset.View {
	return t.set.View()
}

// Filter returns an exclusion filter over the live deletion bitset.
func (t *Tracker) Filter() *filter.Exclusion {
	return filter.Exclude(t.Publish())
}

// Snapshot returns a view over a frozen copy of the current deletions.
// Later mutations of the tracker do not affect it.
func (t *Tracker) Snapshot() bitset.View {
	start := time.Now()

	var snap *bitset.Bitset
	t.frozen(func() {
		snap = t.set.Clone()
	})
	snap.Freeze()

	deleted := snap.Count()
	t.metrics.OnSnapshot(time.Since(start), deleted)
	t.logger.Debug("Tombstone snapshot taken", "size", t.size, "deleted", deleted)

	return snap.View()
}

// Merge marks every id set in v as deleted. v must cover exactly Size ids.
func (t *Tracker) Merge(v bitset.View) error {
	start := time.Now()

	if v.Size() != t.size {
		err := fmt.Errorf("%w: mask %d, tracker %d", ErrSizeMismatch, v.Size(), t.size)
		t.metrics.OnMerge(time.Since(start), err)
		t.logger.Error("Tombstone merge failed", "error", err)
		return err
	}

	var before, after int
	t.frozen(func() {
		before = t.set.Count()
		t.set.OrAtomic(v)
		after = t.set.Count()
	})

	t.metrics.OnMerge(time.Since(start), nil)
	t.logger.Info("Tombstone merge completed", "added", after-before, "deleted", after)
	return nil
}

// LoadRoaring marks every id in rb as deleted.
func (t *Tracker) LoadRoaring(rb *roaring.Bitmap) error {
	if rb == nil || rb.IsEmpty() {
		return nil
	}
	if maxID := rb.Maximum(); maxID >= t.size {
		return fmt.Errorf("%w: %d >= %d", ErrOutOfRange, maxID, t.size)
	}

	loaded, err := bitset.FromRoaring(t.size, rb)
	if err != nil {
		return err
	}

	var deleted int
	t.frozen(func() {
		t.set.OrAtomic(loaded)
		deleted = t.set.Count()
	})

	t.logger.Info("Tombstones loaded", "loaded", rb.GetCardinality(), "deleted", deleted)
	return nil
}

// ToRoaring exports the deleted ids as a roaring bitmap.
func (t *Tracker) ToRoaring() *roaring.Bitmap {
	var rb *roaring.Bitmap
	t.frozen(func() {
		rb = t.set.ToRoaring()
	})
	return rb
}

// frozen runs fn with writers excluded and the bitset in the frozen regime.
func (t *Tracker) frozen(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.set.Freeze()
	defer t.set.Thaw()

	fn()
}
