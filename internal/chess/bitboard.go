package chess

import "math/bits"

// Bitboard is a set of squares, one bit per square index (a1 = bit 0).
type Bitboard uint64

// SquareBB returns a bitboard containing only sq.
func SquareBB(sq Square) Bitboard {
	return Bitboard(1) << uint(sq.Index())
}

// Has reports whether sq is in the set.
func (b Bitboard) Has(sq Square) bool {
	return sq.Valid() && b&SquareBB(sq) != 0
}

// With returns the set with sq added.
func (b Bitboard) With(sq Square) Bitboard {
	return b | SquareBB(sq)
}

// Count returns the number of squares in the set.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

