// Package vecmask provides concurrent deletion masks for fixed-size id spaces.
//
// A Mask records which ids of a collection (rows of a vector segment, slots
// of a table) are deleted, and hands out exclusion masks that search code
// uses to skip them. Ids are dense uint32 values in [0, Size).
//
// # Quick Start
//
//	ctx := context.Background()
//	m := vecmask.New(1_000_000)
//
//	_ = m.Delete(ctx, 42)
//	_ = m.Delete(ctx, 4711)
//
//	// Visit every live id.
//	err := m.Scan(ctx, func(id uint32) bool {
//	    // ...
//	    return true
//	})
//
// # Exclusion Masks
//
// Snapshot returns a bitset.View over a frozen copy of the deletions. The
// view stays valid and unchanged however the mask is mutated afterwards:
//
//	snap := m.Snapshot()
//	f := filter.Exclude(snap)
//	f.Matches(42) // false
//
// Masks produced elsewhere (a compaction job, a replica) can be folded in
// with Merge, as long as they cover exactly as many ids:
//
//	err := m.Merge(ctx, bitset.NewView(buf, m.Size()))
//	var sm *vecmask.ErrSizeMismatch
//	if errors.As(err, &sm) {
//	    // ...
//	}
//
// # Observability
//
// Operations report to a MetricsCollector and a structured Logger:
//
//	metrics := &vecmask.BasicMetricsCollector{}
//	m := vecmask.New(n,
//	    vecmask.WithMetricsCollector(metrics),
//	    vecmask.WithLogLevel(slog.LevelDebug),
//	)
//
// # Sub-packages
//
//   - bitset: the fixed-size concurrent bitset and its non-owning View
//   - filter: candidate filters and filtered id scans
//   - tombstone: the lock discipline between single-bit writers and bulk work
package vecmask
