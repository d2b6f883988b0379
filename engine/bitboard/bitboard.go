// Package bitboard implements the 64-bit occupancy-set primitive used by
// every other engine package: one bit per square, little-endian
// rank-file mapped (bit 0 = a1, bit 7 = h1, bit 56 = a8, bit 63 = h8).
//
// Grounded on the bit-twiddling helpers in Blunder's core/utils.go
// (setBit/clearBit/popLSB), re-expressed for the LSB-first convention
// that the magic-bitboard tables in engine/magic require.
package bitboard

import "math/bits"

// Board is a set of squares packed into a 64-bit word.
type Board uint64

// Empty is the bitboard with no squares set.
const Empty Board = 0

// Full is the bitboard with every square set.
const Full Board = 0xFFFFFFFFFFFFFFFF

// FromSquare returns the singleton bitboard containing sq.
func FromSquare(sq int) Board {
	return Board(1) << uint(sq)
}

// Set sets the bit for sq in place.
func (b *Board) Set(sq int) {
	*b |= FromSquare(sq)
}

// Clear clears the bit for sq in place.
func (b *Board) Clear(sq int) {
	*b &^= FromSquare(sq)
}

// Has reports whether sq is a member of b.
func (b Board) Has(sq int) bool {
	return b&FromSquare(sq) != 0
}

// Count returns the population count (number of set squares).
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the index of the least-significant set bit, or 64 if b is
// empty.
func (b Board) LSB() int {
	return bits.TrailingZeros64(uint64(b))
}

// MSB returns the index of the most-significant set bit, or -1 if b is
// empty.
func (b Board) MSB() int {
	if b == 0 {
		return -1
	}
	return 63 - bits.LeadingZeros64(uint64(b))
}

// PopLSB clears and returns the least-significant set square. Calling
// PopLSB on an empty board is undefined (callers must check b != 0 in
// the loop condition, per the standard `for bb != 0 { sq := bb.PopLSB() }`
// idiom used across engine/movegen).
func (b *Board) PopLSB() int {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Shift returns b shifted by n bits; positive n shifts toward the
// high-order (h8) end, negative n toward the low-order (a1) end.
func (b Board) Shift(n int) Board {
	if n >= 0 {
		return b << uint(n)
	}
	return b >> uint(-n)
}

// Squares returns the set squares in ascending order.
func (b Board) Squares() []int {
	out := make([]int, 0, b.Count())
	for bb := b; bb != 0; {
		out = append(out, bb.PopLSB())
	}
	return out
}
