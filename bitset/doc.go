// Package bitset provides a fixed-size concurrent bitset and a borrowed,
// read-only view over bit buffers, used as exclusion masks for vector search.
//
// # Bitset
//
// A Bitset owns ceil(n/64) 64-bit words. Single-bit operations are atomic and
// lock-free, so many goroutines can mark ids at once:
//
//	deleted := bitset.New(1_000_000)
//
//	// Any number of writers.
//	deleted.Set(42)
//	deleted.Clear(7)
//
// Bulk operations work word by word with plain loads and stores. They are for
// combining snapshots once writers have stopped:
//
//	deleted.Freeze()
//	deleted.Or(other)          // in place
//	live := bitset.Intersection(deleted, candidates) // new, unfrozen bitset
//	live.Freeze()
//	n := live.Count()
//
// # Regimes
//
// A Bitset is either being mutated (atomic single-bit access only) or frozen
// (bulk access allowed). The caller enforces the transition. Freeze and Thaw
// record it, and WithChecks turns violations into panics for debugging.
//
// # View
//
// A View is a non-owning projection used by consumers:
//
//	v := deleted.View()        // zero copy, aliases live storage
//	raw := bitset.NewView(buf, n)
//	var none bitset.View        // null view: no filter
//
//	if v.Active() && v.Test(id) {
//	    // skip id
//	}
//
// Views are byte addressed. Byte i of the canonical layout holds bits
// [8i, 8i+8), least significant bit first, which is the little-endian encoding
// of the Bitset's words. FromBytes, Bytes and NewView all use this layout, so
// a View over Bytes() is bit-for-bit equivalent to a View over the Bitset.
//
// # Interop
//
// ToRoaring/FromRoaring and ToBitSet/FromBitSet convert to and from
// github.com/RoaringBitmap/roaring/v2 and github.com/bits-and-blooms/bitset.
package bitset
