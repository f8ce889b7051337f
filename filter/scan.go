package filter

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// batchSize is the number of candidates evaluated per MatchesBatch call.
const batchSize = 256

// chunkSize is the per-goroutine range of ScanParallel; a multiple of 64 so
// chunks never share a storage word.
const chunkSize = 1 << 14

// Scan calls fn for each id in [0, n) accepted by f, in ascending order.
// fn returning false stops the scan. The context is checked between batches.
// A nil filter accepts everything.
func Scan(ctx context.Context, n uint32, f Filter, fn func(id uint32) bool) error {
	return scanRange(ctx, 0, n, f, func(id uint32) (bool, error) {
		return fn(id), nil
	})
}

// ScanParallel calls fn for each id in [0, n) accepted by f, using at most
// workers goroutines (workers <= 0 means one). Ids are not visited in order
// and fn must be safe for concurrent use. The first error returned by fn, or
// the context's error, cancels the remaining chunks and is returned.
func ScanParallel(ctx context.Context, n uint32, f Filter, workers int, fn func(id uint32) error) error {
	if workers <= 0 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := uint64(0); start < uint64(n); start += chunkSize {
		lo := uint32(start)
		hi := uint32(min(start+chunkSize, uint64(n)))
		g.Go(func() error {
			return scanRange(gctx, lo, hi, f, func(id uint32) (bool, error) {
				if err := fn(id); err != nil {
					return false, err
				}
				return true, nil
			})
		})
	}

	return g.Wait()
}

// scanRange visits accepted ids in [lo, hi) until fn stops it or fails.
func scanRange(ctx context.Context, lo, hi uint32, f Filter, fn func(id uint32) (bool, error)) error {
	if f == nil {
		f = All()
	}

	var (
		ids [batchSize]uint32
		out [batchSize]bool
	)

	for start := uint64(lo); start < uint64(hi); start += batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := min(start+batchSize, uint64(hi))
		k := int(end - start)
		for i := 0; i < k; i++ {
			ids[i] = uint32(start) + uint32(i)
		}
		f.MatchesBatch(ids[:k], out[:k])

		for i := 0; i < k; i++ {
			if !out[i] {
				continue
			}
			ok, err := fn(ids[i])
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}
	return nil
}
