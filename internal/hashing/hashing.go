// Package hashing provides Zobrist position keys and the occurrence counters
// built on them: repetition tracking and a shared perft node cache.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chesscore/internal/chess"
)

// Zobrist key tables. Generated once from a fixed seed so keys are stable
// across runs.
var (
	pieceKeys     [2][chess.NumPieceTypes][chess.NumSquares]uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
	sideKey       uint64
)

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))

	for c := range pieceKeys {
		for p := range pieceKeys[c] {
			for sq := range pieceKeys[c][p] {
				pieceKeys[c][p][sq] = rnd.Uint64()
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = rnd.Uint64()
	}
	for f := range enPassantKeys {
		enPassantKeys[f] = rnd.Uint64()
	}
	sideKey = rnd.Uint64()
}

// PlacementKey hashes only the piece placement of a board.
func PlacementKey(board *chess.Board) uint64 {
	var key uint64
	for i, p := range board.Squares {
		if !p.IsEmpty() {
			key ^= pieceKeys[p.Colour][p.Type][i]
		}
	}
	return key
}

// Key hashes everything that makes two positions identical for repetition
// purposes: placement, side to move, castling rights and en-passant target.
func Key(board *chess.Board, side chess.Colour, rights chess.CastlingRights, ep chess.Square) uint64 {
	key := PlacementKey(board)

	if side == chess.Black {
		key ^= sideKey
	}

	for i, r := range []chess.CastlingRights{
		chess.WhiteKingside, chess.WhiteQueenside, chess.BlackKingside, chess.BlackQueenside,
	} {
		if rights.Has(r) {
			key ^= castlingKeys[i]
		}
	}

	if ep.Valid() {
		key ^= enPassantKeys[ep.File]
	}

	return key
}

// RepetitionTable counts how often each position key has occurred in a game.
type RepetitionTable struct {
	counts map[uint64]int
	total  int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Add records one occurrence of key and returns the new count.
func (r *RepetitionTable) Add(key uint64) int {
	r.counts[key]++
	r.total++
	return r.counts[key]
}

// Remove takes back one occurrence of key. Entries that drop to zero are deleted.
func (r *RepetitionTable) Remove(key uint64) {
	n, ok := r.counts[key]
	if !ok {
		return
	}
	r.total--
	if n <= 1 {
		delete(r.counts, key)
		return
	}
	r.counts[key] = n - 1
}

// Count returns the number of recorded occurrences of key. A nil table
// has recorded nothing.
func (r *RepetitionTable) Count(key uint64) int {
	if r == nil {
		return 0
	}
	return r.counts[key]
}

// Len returns the number of distinct positions recorded.
func (r *RepetitionTable) Len() int {
	if r == nil {
		return 0
	}
	return len(r.counts)
}

// Total returns the number of occurrences recorded across all positions.
func (r *RepetitionTable) Total() int {
	if r == nil {
		return 0
	}
	return r.total
}

// Clone returns an independent copy of the table. Cloning nil gives an
// empty table.
func (r *RepetitionTable) Clone() *RepetitionTable {
	if r == nil {
		return NewRepetitionTable()
	}
	c := &RepetitionTable{counts: make(map[uint64]int, len(r.counts)), total: r.total}
	for k, v := range r.counts {
		c.counts[k] = v
	}
	return c
}
