package vecmask

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hupe1980/vecmask/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	ctx := context.Background()

	t.Run("DeleteAndRestore", func(t *testing.T) {
		m := New(100)
		assert.Equal(t, uint32(100), m.Size())
		assert.Equal(t, 0, m.Deleted())

		require.NoError(t, m.Delete(ctx, 7))
		require.NoError(t, m.Delete(ctx, 7))
		assert.True(t, m.IsDeleted(7))
		assert.Equal(t, 1, m.Deleted())

		require.NoError(t, m.Restore(ctx, 7))
		assert.False(t, m.IsDeleted(7))
		assert.Equal(t, 0, m.Deleted())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		m := New(10)

		err := m.Delete(ctx, 10)
		require.ErrorIs(t, err, ErrOutOfRange)
		err = m.Restore(ctx, 99)
		require.ErrorIs(t, err, ErrOutOfRange)
		assert.False(t, m.IsDeleted(10))
	})

	t.Run("Snapshot", func(t *testing.T) {
		m := New(64)
		require.NoError(t, m.Delete(ctx, 3))

		snap := m.Snapshot()
		require.NoError(t, m.Delete(ctx, 4))

		assert.Equal(t, uint32(64), snap.Size())
		assert.True(t, snap.Test(3))
		assert.False(t, snap.Test(4))
		assert.True(t, m.IsDeleted(4))
	})

	t.Run("LiveFilter", func(t *testing.T) {
		m := New(64)
		f := m.Filter()
		require.NoError(t, m.Delete(ctx, 9))

		assert.False(t, f.Matches(9))
		assert.True(t, f.Matches(10))
	})

	t.Run("Merge", func(t *testing.T) {
		m := New(16)
		require.NoError(t, m.Merge(ctx, bitset.NewView([]byte{0x05, 0x00}, 16)))
		assert.Equal(t, 2, m.Deleted())
		assert.True(t, m.IsDeleted(0))
		assert.True(t, m.IsDeleted(2))

		require.NoError(t, m.Merge(ctx, bitset.New(16).View()), "an all-clear mask adds nothing")
		assert.Equal(t, 2, m.Deleted())
	})

	t.Run("MergeSizeMismatch", func(t *testing.T) {
		m := New(16)
		err := m.Merge(ctx, bitset.NewView([]byte{0xFF}, 8))

		var sm *ErrSizeMismatch
		require.True(t, errors.As(err, &sm))
		assert.Equal(t, uint32(16), sm.Expected)
		assert.Equal(t, uint32(8), sm.Actual)
		assert.NotNil(t, errors.Unwrap(err))
		assert.Equal(t, 0, m.Deleted())
	})

	t.Run("Scan", func(t *testing.T) {
		m := New(10)
		for _, id := range []uint32{0, 3, 9} {
			require.NoError(t, m.Delete(ctx, id))
		}

		var got []uint32
		require.NoError(t, m.Scan(ctx, func(id uint32) bool {
			got = append(got, id)
			return true
		}))
		assert.Equal(t, []uint32{1, 2, 4, 5, 6, 7, 8}, got)
	})

	t.Run("ScanStops", func(t *testing.T) {
		m := New(1000)
		var n int
		require.NoError(t, m.Scan(ctx, func(uint32) bool {
			n++
			return n < 5
		}))
		assert.Equal(t, 5, n)
	})

	t.Run("ScanCanceled", func(t *testing.T) {
		m := New(1000)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := m.Scan(cctx, func(uint32) bool { return true })
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("ScanParallel", func(t *testing.T) {
		const n = 100_000
		m := New(n)
		for id := uint32(0); id < n; id += 2 {
			require.NoError(t, m.Delete(ctx, id))
		}

		var (
			mu   sync.Mutex
			seen = make(map[uint32]struct{})
		)
		require.NoError(t, m.ScanParallel(ctx, 4, func(id uint32) error {
			mu.Lock()
			defer mu.Unlock()
			seen[id] = struct{}{}
			return nil
		}))

		assert.Len(t, seen, n/2)
		for id := range seen {
			assert.Equal(t, uint32(1), id%2)
		}
	})

	t.Run("ScanParallelError", func(t *testing.T) {
		m := New(100_000)
		boom := errors.New("boom")

		err := m.ScanParallel(ctx, 4, func(id uint32) error {
			if id == 77_777 {
				return boom
			}
			return nil
		})
		require.ErrorIs(t, err, boom)
	})
}

func TestMask_ConcurrentDeletes(t *testing.T) {
	const (
		n             = 64_000
		numGoroutines = 8
	)

	ctx := context.Background()
	m := New(n, WithChecks())

	var wg sync.WaitGroup
	wg.Add(numGoroutines + 1)
	for g := 0; g < numGoroutines; g++ {
		go func(offset uint32) {
			defer wg.Done()
			for id := offset; id < n; id += numGoroutines {
				assert.NoError(t, m.Delete(ctx, id))
			}
		}(uint32(g))
	}
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			_ = m.Deleted()
			_ = m.Scan(ctx, func(uint32) bool { return true })
		}
	}()
	wg.Wait()

	assert.Equal(t, n, m.Deleted())
	require.NoError(t, m.Scan(ctx, func(id uint32) bool {
		t.Errorf("id %d should be deleted", id)
		return false
	}))
}

func TestMask_ReadersDuringMerge(t *testing.T) {
	const n = 2048

	ctx := context.Background()
	m := New(n)
	f := m.Filter()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			for id := uint32(0); id < n; id += 3 {
				_ = m.IsDeleted(id)
				_ = f.Matches(id)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			assert.NoError(t, m.Merge(ctx, bitset.New(n, bitset.WithFill(0x55)).View()))
		}
	}()
	wg.Wait()

	assert.Equal(t, n/2, m.Deleted())
	assert.False(t, f.Matches(0))
	assert.True(t, f.Matches(1))
}
