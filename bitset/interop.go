package bitset

import (
	"github.com/RoaringBitmap/roaring/v2"
	bbitset "github.com/bits-and-blooms/bitset"
)

// ToRoaring exports the set bits as a roaring bitmap. Frozen regime only.
func (b *Bitset) ToRoaring() *roaring.Bitmap {
	ids := make([]uint32, 0, b.Count())
	b.ForEach(func(id uint32) bool {
		ids = append(ids, id)
		return true
	})

	rb := roaring.New()
	rb.AddMany(ids)
	return rb
}

// FromRoaring creates a bitset of size bits with every id in rb set.
// It returns ErrOutOfRange if rb holds an id >= size.
func FromRoaring(size uint32, rb *roaring.Bitmap, optFns ...Option) (*Bitset, error) {
	o := applyOptions(optFns)
	b := newBitset(size, o.checked)
	if rb == nil || rb.IsEmpty() {
		return b, nil
	}
	if rb.Maximum() >= size {
		return nil, ErrOutOfRange
	}

	it := rb.Iterator()
	for it.HasNext() {
		id := it.Next()
		b.words[id>>6] |= uint64(1) << (id & 63)
	}
	return b, nil
}

// ToBitSet exports the set bits as a bits-and-blooms BitSet of length Size.
// Frozen regime only.
func (b *Bitset) ToBitSet() *bbitset.BitSet {
	bs := bbitset.New(uint(b.size))
	b.ForEach(func(id uint32) bool {
		bs.Set(uint(id))
		return true
	})
	return bs
}

// FromBitSet creates a bitset of size bits with every bit set in bs set.
// It returns ErrOutOfRange if bs has a set bit at or beyond size.
func FromBitSet(size uint32, bs *bbitset.BitSet, optFns ...Option) (*Bitset, error) {
	o := applyOptions(optFns)
	b := newBitset(size, o.checked)
	if bs == nil {
		return b, nil
	}

	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if i >= uint(size) {
			return nil, ErrOutOfRange
		}
		b.words[i>>6] |= uint64(1) << (i & 63)
	}
	return b, nil
}
