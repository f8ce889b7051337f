package bitops

import (
	"encoding/binary"
	"math/bits"
)

// WordBits is the number of bits per storage word.
const WordBits = 64

// WordBytes is the number of bytes per storage word.
const WordBytes = WordBits / 8

// broadcastUnit replicates a byte across all eight lanes of a word when multiplied.
const broadcastUnit = 0x0101010101010101

// WordsFor returns the number of words needed to hold n bits.
func WordsFor(n uint32) int {
	return int((uint64(n) + WordBits - 1) / WordBits)
}

// BytesFor returns the number of bytes needed to hold n bits.
func BytesFor(n uint32) int {
	return int((uint64(n) + 7) / 8)
}

// WordIndex returns the index of the word containing bit id.
//
//go:nosplit
func WordIndex(id uint32) int {
	return int(id >> 6)
}

// BitMask returns the single-bit mask for id within its word.
//
//go:nosplit
func BitMask(id uint32) uint64 {
	return uint64(1) << (id & 63)
}

// Broadcast returns a word with every byte set to b.
func Broadcast(b byte) uint64 {
	return uint64(b) * broadcastUnit
}

// TailMask returns the mask of logical bits in the last word of an n-bit set.
// It is all ones when n is a multiple of WordBits.
func TailMask(n uint32) uint64 {
	if r := n % WordBits; r != 0 {
		return (uint64(1) << r) - 1
	}
	return ^uint64(0)
}

// StoredTailMask returns the mask of the bits in the last word of an n-bit
// set that fall inside its ceil(n/8) canonical bytes. Padding bits of the
// last byte are included; whole bytes past the end are not.
func StoredTailMask(n uint32) uint64 {
	if r := BytesFor(n) % WordBytes; r != 0 {
		return (uint64(1) << (8 * r)) - 1
	}
	return ^uint64(0)
}

// TailByteMask returns the mask of logical bits in the last byte of an n-bit set.
func TailByteMask(n uint32) byte {
	if r := n % 8; r != 0 {
		return byte(1<<r) - 1
	}
	return 0xFF
}

// LoadWord assembles word i from data in little-endian order.
// Bytes past the end of data read as zero.
func LoadWord(data []byte, i int) uint64 {
	start := i * WordBytes
	if start+WordBytes <= len(data) {
		return binary.LittleEndian.Uint64(data[start:])
	}

	var w uint64
	for j := start; j < len(data); j++ {
		w |= uint64(data[j]) << (8 * uint(j-start))
	}
	return w
}

// PutWords encodes words into dst in little-endian order.
// Encoding stops at len(dst), so dst may end mid-word.
func PutWords(dst []byte, words []uint64) {
	for i, w := range words {
		start := i * WordBytes
		if start >= len(dst) {
			return
		}
		if start+WordBytes <= len(dst) {
			binary.LittleEndian.PutUint64(dst[start:], w)
			continue
		}
		for j := start; j < len(dst); j++ {
			dst[j] = byte(w >> (8 * uint(j-start)))
		}
	}
}

// CountWords returns the number of set bits among the first n bits of words.
// Bits past n in the final word are masked off.
func CountWords(words []uint64, n uint32) int {
	full := int(n / WordBits)
	count := 0
	for _, w := range words[:full] {
		count += bits.OnesCount64(w)
	}
	if n%WordBits != 0 {
		count += bits.OnesCount64(words[full] & TailMask(n))
	}
	return count
}

// CountBytes returns the number of set bits among the first n bits of data.
//
// The aligned prefix is counted a word at a time; the remaining whole bytes
// are folded in with a byte popcount and the last partial byte is masked.
func CountBytes(data []byte, n uint32) int {
	fullBytes := int(n / 8)
	chunks := fullBytes / WordBytes

	count := 0
	for i := 0; i < chunks; i++ {
		count += bits.OnesCount64(binary.LittleEndian.Uint64(data[i*WordBytes:]))
	}
	for _, b := range data[chunks*WordBytes : fullBytes] {
		count += bits.OnesCount8(b)
	}
	if n%8 != 0 {
		count += bits.OnesCount8(data[fullBytes] & TailByteMask(n))
	}
	return count
}

// Render returns n characters of '0' and '1', highest id first.
func Render(n uint32, test func(id uint32) bool) string {
	buf := make([]byte, n)
	for i := uint32(0); i < n; i++ {
		c := byte('0')
		if test(i) {
			c = '1'
		}
		buf[n-1-i] = c
	}
	return string(buf)
}
