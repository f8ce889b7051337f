package bitset

import (
	"math/bits"
	"sync/atomic"

	"github.com/hupe1980/vecmask/internal/bitops"
)

// View is a non-owning, read-only projection of a bit buffer.
//
// A View borrows either a raw byte buffer (NewView) or a Bitset (ViewOf,
// Bitset.View). It never copies and never frees. The zero View is the null
// view: it is empty, inactive and reports every id as unset, which consumers
// treat as "no filter".
//
// Views are always byte addressed: ByteSize is ceil(Size/8) regardless of
// the word width of the bitset they came from. A view over a Bitset reads the
// live words with atomic loads, so it observes concurrent Set and Clear calls
// on its owner without a data race. A view over a raw buffer requires the
// buffer to stay unchanged while the view is in use.
type View struct {
	data  []byte
	owner *Bitset
	size  uint32
}

// NewView returns a view over data representing size bits.
// data must hold at least ceil(size/8) bytes in the canonical layout.
func NewView(data []byte, size uint32) View {
	return View{data: data, size: size}
}

// ViewOf returns a view borrowing b. A nil b yields the null view.
func ViewOf(b *Bitset) View {
	if b == nil {
		return View{}
	}
	return b.View()
}

// Empty reports whether the view covers no bits.
func (v View) Empty() bool {
	return v.size == 0
}

// Active reports whether the view filters anything, i.e. it is not empty.
func (v View) Active() bool {
	return !v.Empty()
}

// Size returns the number of logical bits.
func (v View) Size() uint32 {
	return v.size
}

// ByteSize returns ceil(Size/8).
func (v View) ByteSize() int {
	return bitops.BytesFor(v.size)
}

// Test reports whether bit id is set. Ids at or beyond Size report false.
func (v View) Test(id uint32) bool {
	if id >= v.size {
		return false
	}
	if v.owner != nil {
		return atomic.LoadUint64(&v.owner.words[bitops.WordIndex(id)])&bitops.BitMask(id) != 0
	}
	return (v.data[id>>3]>>(id&7))&1 != 0
}

// Count returns the number of set bits among the Size logical bits.
func (v View) Count() int {
	if v.owner != nil {
		count := 0
		n := bitops.WordsFor(v.size)
		for i := 0; i < n; i++ {
			w := v.word(i)
			if i == n-1 {
				w &= bitops.TailMask(v.size)
			}
			count += bits.OnesCount64(w)
		}
		return count
	}
	return bitops.CountBytes(v.data, v.size)
}

// Bytes returns a copy of the view's ByteSize bytes in the canonical layout.
// Writing to the result never affects the view or what it borrows.
func (v View) Bytes() []byte {
	if v.owner != nil {
		words := make([]uint64, bitops.WordsFor(v.size))
		for i := range words {
			words[i] = v.word(i)
		}
		out := make([]byte, v.ByteSize())
		bitops.PutWords(out, words)
		return out
	}
	return append([]byte(nil), v.data[:v.ByteSize()]...)
}

// Equal reports whether o has the same size and byte-for-byte identical
// contents over ByteSize bytes, padding bits of the last byte included.
func (v View) Equal(o View) bool {
	if v.size != o.size {
		return false
	}

	n := bitops.WordsFor(v.size)
	for i := 0; i < n; i++ {
		a, b := v.word(i), o.word(i)
		if i == n-1 {
			mask := bitops.StoredTailMask(v.size)
			a, b = a&mask, b&mask
		}
		if a != b {
			return false
		}
	}
	return true
}

// String renders Size characters of '0'/'1', highest id first.
func (v View) String() string {
	return bitops.Render(v.size, v.Test)
}

// word returns word i of the view, translated from bytes when needed.
func (v View) word(i int) uint64 {
	if v.owner != nil {
		return atomic.LoadUint64(&v.owner.words[i])
	}
	return bitops.LoadWord(v.data[:v.ByteSize()], i)
}
