package bitset

import (
	"math/bits"
	"sync/atomic"

	"github.com/hupe1980/vecmask/internal/bitops"
)

// Bitset is a fixed-size bit vector with lock-free single-bit mutation.
//
// Storage is a slice of 64-bit words. Bit id lives in word id>>6 at position
// id&63. The size is fixed at construction; bits past Size in the last word
// are padding. Count, String, ForEach and the exports never observe them.
// Equal and Bytes see the padding bits of the last byte as stored.
//
// A Bitset has two usage regimes:
//
//   - Mutating: any number of goroutines call Set, Clear, Test, TestAndSet and
//     TestAndClear concurrently. Each is an atomic operation on one word.
//   - Frozen: no single-bit mutation is in flight. Bulk operations (And, Or,
//     AndNot, Negate), Count, ForEach, Bytes and the interop exports are only
//     valid here; they use plain word access.
//
// The caller drives the transition between regimes. Freeze and Thaw record it,
// and bitsets built WithChecks assert it on entry to each operation.
type Bitset struct {
	words   []uint64
	size    uint32
	checked bool
	frozen  atomic.Bool
}

// New creates a bitset of size bits, each word initialized from the fill byte.
func New(size uint32, optFns ...Option) *Bitset {
	o := applyOptions(optFns)

	b := newBitset(size, o.checked)
	if o.fill != 0 {
		w := bitops.Broadcast(o.fill)
		for i := range b.words {
			b.words[i] = w
		}
	}
	return b
}

// FromBytes creates a bitset of size bits copied from src in the canonical
// little-endian byte layout. src must hold at least ceil(size/8) bytes.
func FromBytes(size uint32, src []byte, optFns ...Option) (*Bitset, error) {
	n := bitops.BytesFor(size)
	if len(src) < n {
		return nil, ErrShortBuffer
	}

	o := applyOptions(optFns)
	b := newBitset(size, o.checked)
	for i := range b.words {
		b.words[i] = bitops.LoadWord(src[:n], i)
	}
	return b, nil
}

func newBitset(size uint32, checked bool) *Bitset {
	return &Bitset{
		words:   make([]uint64, bitops.WordsFor(size)),
		size:    size,
		checked: checked,
	}
}

// Test reports whether bit id is set. id must be below Size.
//
//go:nosplit
func (b *Bitset) Test(id uint32) bool {
	return atomic.LoadUint64(&b.words[bitops.WordIndex(id)])&bitops.BitMask(id) != 0
}

// Set sets bit id. id must be below Size.
func (b *Bitset) Set(id uint32) {
	b.checkMutable()
	atomic.OrUint64(&b.words[bitops.WordIndex(id)], bitops.BitMask(id))
}

// Clear clears bit id. id must be below Size.
func (b *Bitset) Clear(id uint32) {
	b.checkMutable()
	atomic.AndUint64(&b.words[bitops.WordIndex(id)], ^bitops.BitMask(id))
}

// TestAndSet sets bit id and reports whether it was already set.
func (b *Bitset) TestAndSet(id uint32) bool {
	b.checkMutable()
	mask := bitops.BitMask(id)
	return atomic.OrUint64(&b.words[bitops.WordIndex(id)], mask)&mask != 0
}

// TestAndClear clears bit id and reports whether it was set.
func (b *Bitset) TestAndClear(id uint32) bool {
	b.checkMutable()
	mask := bitops.BitMask(id)
	return atomic.AndUint64(&b.words[bitops.WordIndex(id)], ^mask)&mask != 0
}

// Count returns the number of set bits among the Size logical bits.
func (b *Bitset) Count() int {
	b.checkFrozen()
	return bitops.CountWords(b.words, b.size)
}

// Size returns the number of logical bits.
func (b *Bitset) Size() uint32 {
	return b.size
}

// ByteSize returns ceil(Size/8), the length of the canonical byte layout.
func (b *Bitset) ByteSize() int {
	return bitops.BytesFor(b.size)
}

// Bytes returns a copy of the bitset in the canonical little-endian byte layout.
// Padding bits in the last byte are copied as stored.
func (b *Bitset) Bytes() []byte {
	out := make([]byte, b.ByteSize())
	bitops.PutWords(out, b.words)
	return out
}

// Clone returns an independent copy with the same size and checks setting.
// The clone starts in the mutating regime.
func (b *Bitset) Clone() *Bitset {
	c := newBitset(b.size, b.checked)
	copy(c.words, b.words)
	return c
}

// Equal reports whether o has the same size and byte-for-byte identical
// contents in the canonical layout. Padding bits inside the last byte take
// part, so Equal agrees with comparing Bytes.
func (b *Bitset) Equal(o *Bitset) bool {
	if b == o {
		return true
	}
	if o == nil || b.size != o.size {
		return false
	}

	last := len(b.words) - 1
	for i := 0; i < last; i++ {
		if b.words[i] != o.words[i] {
			return false
		}
	}
	if last >= 0 {
		mask := bitops.StoredTailMask(b.size)
		return b.words[last]&mask == o.words[last]&mask
	}
	return true
}

// ForEach calls fn for every set bit in ascending order until fn returns false.
func (b *Bitset) ForEach(fn func(id uint32) bool) {
	for i, w := range b.words {
		if i == len(b.words)-1 {
			w &= bitops.TailMask(b.size)
		}
		base := uint32(i) * bitops.WordBits
		for w != 0 {
			if !fn(base + uint32(bits.TrailingZeros64(w))) {
				return
			}
			w &= w - 1
		}
	}
}

// String renders Size characters of '0'/'1', highest id first.
func (b *Bitset) String() string {
	return bitops.Render(b.size, b.Test)
}

// View returns a view that borrows this bitset's storage.
//
// The view aliases the live words: Set and Clear on b are visible through it
// immediately. It holds b, so b stays reachable for the view's lifetime.
func (b *Bitset) View() View {
	return View{owner: b, size: b.size}
}

// Freeze marks the bitset as frozen: single-bit mutation has stopped and bulk
// operations may run.
func (b *Bitset) Freeze() {
	b.frozen.Store(true)
}

// Thaw returns the bitset to the mutating regime.
func (b *Bitset) Thaw() {
	b.frozen.Store(false)
}

// Frozen reports whether the bitset is in the frozen regime.
func (b *Bitset) Frozen() bool {
	return b.frozen.Load()
}

// Checked reports whether regime and size assertions are enabled.
func (b *Bitset) Checked() bool {
	return b.checked
}

func (b *Bitset) checkMutable() {
	if b.checked && b.frozen.Load() {
		panic(ErrFrozen)
	}
}

func (b *Bitset) checkFrozen() {
	if b.checked && !b.frozen.Load() {
		panic(ErrNotFrozen)
	}
}
