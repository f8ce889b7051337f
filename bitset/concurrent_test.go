package bitset

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentSet_NoLostUpdates(t *testing.T) {
	const (
		n             = 100_000
		numGoroutines = 16
	)

	b := New(n)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for g := 0; g < numGoroutines; g++ {
		go func(offset int) {
			defer wg.Done()
			// Interleaved ids so every goroutine hits every word.
			for id := offset; id < n; id += numGoroutines {
				b.Set(uint32(id))
			}
		}(g)
	}
	wg.Wait()

	require.Equal(t, n, b.Count())
}

func TestConcurrentSetClear_SameWords(t *testing.T) {
	const n = 64 * 32

	b := New(n)
	for id := uint32(1); id < n; id += 2 {
		b.Set(id)
	}

	var wg sync.WaitGroup
	wg.Add(2)

	// Even ids get set while odd ids get cleared; both touch every word.
	go func() {
		defer wg.Done()
		for id := uint32(0); id < n; id += 2 {
			b.Set(id)
		}
	}()
	go func() {
		defer wg.Done()
		for id := uint32(1); id < n; id += 2 {
			b.Clear(id)
		}
	}()
	wg.Wait()

	for id := uint32(0); id < n; id++ {
		require.Equal(t, id%2 == 0, b.Test(id), "id=%d", id)
	}
	assert.Equal(t, n/2, b.Count())
}

func TestConcurrentTestAndSet_SingleWinner(t *testing.T) {
	const (
		n             = 4096
		numGoroutines = 8
	)

	b := New(n)
	wins := make([]int, numGoroutines)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for g := 0; g < numGoroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for id := uint32(0); id < n; id++ {
				if !b.TestAndSet(id) {
					wins[g]++
				}
			}
		}(g)
	}
	wg.Wait()

	total := 0
	for _, w := range wins {
		total += w
	}
	assert.Equal(t, n, total, "each id must be newly set exactly once")
}

func TestConcurrentViewReaders(t *testing.T) {
	const n = 10_000

	b := New(n)
	v := b.View()

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		for id := uint32(0); id < n; id++ {
			b.Set(id)
		}
	}()
	for r := 0; r < 2; r++ {
		go func() {
			defer wg.Done()
			for id := uint32(0); id < n; id++ {
				_ = v.Test(id)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, n, v.Count())
}

func TestOrAtomic_WithConcurrentSetAndReaders(t *testing.T) {
	const n = 64 * 64

	b := New(n)
	v := b.View()
	other := New(n)
	for id := uint32(0); id < n; id += 2 {
		other.Set(id)
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for id := uint32(1); id < n; id += 2 {
			b.Set(id)
		}
	}()
	go func() {
		defer wg.Done()
		b.OrAtomic(other.View())
	}()
	go func() {
		defer wg.Done()
		for id := uint32(0); id < n; id++ {
			_ = v.Test(id)
		}
	}()
	wg.Wait()

	assert.Equal(t, n, v.Count(), "no update may be lost")
}
