// Package bitops holds the bit arithmetic shared by Bitset and View.
//
// Storage is addressed in 64-bit words with LSB0 bit order: bit id lives in
// word id>>6 at position id&63. The canonical byte layout is the
// little-endian encoding of those words, so byte i holds bits [8i, 8i+8).
// Everything that converts between the two representations goes through
// LoadWord and PutWords instead of reinterpreting memory.
package bitops
