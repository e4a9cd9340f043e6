package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
)

// CheckState counts the pieces giving check, saturating at two.
type CheckState int

const (
	NotInCheck CheckState = iota
	SingleCheck
	DoubleCheck
)

// String returns the string representation of a check state.
func (c CheckState) String() string {
	switch c {
	case SingleCheck:
		return "Single"
	case DoubleCheck:
		return "Double"
	}
	return "None"
}

// KingStatus is the derived safety record for one colour's king.
//
// Blocking holds the squares a non-king move must land on to resolve a single
// check: the checker's square plus, for a slider, the squares between it and
// the king. Pinned pieces may only move along PinDirections[square].
type KingStatus struct {
	King          chess.Square
	Check         CheckState
	Blocking      chess.Bitboard
	Pinned        chess.Bitboard
	PinDirections [chess.NumSquares]chess.Vector
	Attacked      chess.Bitboard
}

// InCheck reports whether the king is attacked.
func (k *KingStatus) InCheck() bool {
	return k.Check != NotInCheck
}

// PinDirection returns the pin line through sq, if the piece there is pinned.
func (k *KingStatus) PinDirection(sq chess.Square) (chess.Vector, bool) {
	if !k.Pinned.Has(sq) {
		return chess.Vector{}, false
	}
	return k.PinDirections[sq.Index()], true
}

// addCheck records one more checking piece whose resolving squares are block.
func (k *KingStatus) addCheck(block chess.Bitboard) {
	switch k.Check {
	case NotInCheck:
		k.Check = SingleCheck
		k.Blocking = block
	default:
		k.Check = DoubleCheck
		k.Blocking = 0
	}
}

func (k *KingStatus) addPin(sq chess.Square, dir chess.Vector) {
	k.Pinned = k.Pinned.With(sq)
	k.PinDirections[sq.Index()] = dir
}

// computeStatus derives colour c's king status from the board.
//
// Knight and pawn checks come from the attackers' own generation pass; slider
// checks and pins come from the ray sweep outward from the king.
func (p *Position) computeStatus(c chess.Colour) KingStatus {
	ks := KingStatus{King: p.kings[c]}
	enemy := c.Opposite()

	for _, pc := range p.board.Squares {
		if pc.IsEmpty() || pc.Colour != enemy {
			continue
		}
		attacks := p.generate(pc, nil)
		ks.Attacked |= attacks
		if !pc.IsSliding() && attacks.Has(ks.King) {
			ks.addCheck(chess.SquareBB(pc.Square))
		}
	}

	p.sweepRays(&ks, c)
	return ks
}

// sweepRays walks the eight rays out from c's king, recording slider checks
// and absolute pins.
func (p *Position) sweepRays(ks *KingStatus, c chess.Colour) {
	for _, dir := range chess.AllDirections {
		var ray chess.Bitboard
		candidate := chess.NoSquare

		for sq := ks.King.Add(dir); sq.Valid(); sq = sq.Add(dir) {
			ray = ray.With(sq)
			pc, ok := p.board.Get(sq)
			if !ok {
				continue
			}
			if pc.Colour == c {
				if candidate.Valid() {
					break // two friendly pieces shield the king
				}
				candidate = sq
				continue
			}
			if pc.Type.SlidesAlong(dir) {
				if candidate.Valid() {
					ks.addPin(candidate, dir)
				} else {
					ks.addCheck(ray)
				}
			}
			break
		}
	}
}

// exposesKing reports whether c's king would be attacked by an enemy slider
// on board. Used to verify en-passant captures, which remove two pieces from a
// line at once.
func exposesKing(board *chess.Board, king chess.Square, c chess.Colour) bool {
	for _, dir := range chess.AllDirections {
		for sq := king.Add(dir); sq.Valid(); sq = sq.Add(dir) {
			pc, ok := board.Get(sq)
			if !ok {
				continue
			}
			if pc.Colour != c && pc.Type.SlidesAlong(dir) {
				return true
			}
			break
		}
	}
	return false
}
