package bitset

import "sync/atomic"

// Source is a read-only bit source usable as the right-hand operand of bulk
// operations. *Bitset and View implement it.
//
// Operands are combined a 64-bit word at a time; a View supplies its words
// by assembling them little-endian from its bytes, so a Bitset and a View
// over the same canonical bytes are interchangeable.
type Source interface {
	Size() uint32
	word(i int) uint64
}

var (
	_ Source = (*Bitset)(nil)
	_ Source = View{}
)

func (b *Bitset) word(i int) uint64 {
	return b.words[i]
}

// And intersects b with o in place. Frozen regime only; sizes must match.
func (b *Bitset) And(o Source) {
	b.checkBulk(o)
	for i := range b.words {
		b.words[i] &= o.word(i)
	}
}

// Or unions o into b in place. Frozen regime only; sizes must match.
func (b *Bitset) Or(o Source) {
	b.checkBulk(o)
	for i := range b.words {
		b.words[i] |= o.word(i)
	}
}

// AndNot clears every bit of b that is set in o. Frozen regime only; sizes must match.
func (b *Bitset) AndNot(o Source) {
	b.checkBulk(o)
	for i := range b.words {
		b.words[i] &^= o.word(i)
	}
}

// OrAtomic unions o into b one word at a time with atomic OR.
//
// Unlike Or it is valid in either regime: concurrent Test calls, live views
// and single-bit Set and Clear on b stay race free. Each word is updated
// atomically, not the bitset as a whole. Sizes must match.
func (b *Bitset) OrAtomic(o Source) {
	if b.checked && b.size != o.Size() {
		panic(&SizeMismatchError{Left: b.size, Right: o.Size()})
	}
	for i := range b.words {
		if w := o.word(i); w != 0 {
			atomic.OrUint64(&b.words[i], w)
		}
	}
}

// Negate flips every bit in place, padding included. Frozen regime only.
func (b *Bitset) Negate() {
	b.checkFrozen()
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
}

// Intersection returns a new bitset holding a AND o.
// a must be frozen; sizes must match. The result is unfrozen.
func Intersection(a *Bitset, o Source) *Bitset {
	a.checkBulk(o)
	r := newBitset(a.size, a.checked)
	for i := range r.words {
		r.words[i] = a.words[i] & o.word(i)
	}
	return r
}

// Union returns a new bitset holding a OR o.
// a must be frozen; sizes must match. The result is unfrozen.
func Union(a *Bitset, o Source) *Bitset {
	a.checkBulk(o)
	r := newBitset(a.size, a.checked)
	for i := range r.words {
		r.words[i] = a.words[i] | o.word(i)
	}
	return r
}

func (b *Bitset) checkBulk(o Source) {
	if !b.checked {
		return
	}
	b.checkFrozen()
	if b.size != o.Size() {
		panic(&SizeMismatchError{Left: b.size, Right: o.Size()})
	}
}
