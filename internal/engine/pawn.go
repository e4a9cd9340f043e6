package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
)

// generatePawn returns the two diagonal squares a pawn attacks and, when
// collecting, its pushes, captures and en-passant capture. Moves onto the
// last rank expand into one move per promotion type.
func (p *Position) generatePawn(pc chess.Piece, moves *[]chess.Move) chess.Bitboard {
	forward := pc.Colour.Forward()
	var attacks chess.Bitboard

	for _, df := range []int{-1, 1} {
		to := pc.Square.Add(chess.Vector{File: df, Rank: forward})
		if !to.Valid() {
			continue
		}
		attacks = attacks.With(to)
		if moves == nil {
			continue
		}
		if target, ok := p.board.Get(to); ok {
			if target.Colour != pc.Colour && target.Type != chess.King {
				addPawnMove(moves, pc, to, target)
			}
			continue
		}
		if to == p.enPassant {
			// The captured pawn stands beside the mover, behind the target square.
			victim, ok := p.board.Get(chess.Sq(to.File, pc.Square.Rank))
			if ok && victim.Type == chess.Pawn && victim.Colour != pc.Colour {
				*moves = append(*moves, chess.Move{
					Piece:    pc,
					From:     pc.Square,
					To:       to,
					Captured: victim,
					Kind:     chess.EnPassantMove,
				})
			}
		}
	}

	if moves == nil {
		return attacks
	}

	one := pc.Square.Add(chess.Vector{Rank: forward})
	if p.board.IsEmpty(one) {
		addPawnMove(moves, pc, one, chess.Piece{})
		two := one.Add(chess.Vector{Rank: forward})
		if pc.Square.Rank == pc.Colour.PawnRank() && p.board.IsEmpty(two) {
			addPawnMove(moves, pc, two, chess.Piece{})
		}
	}

	return attacks
}

// addPawnMove appends a pawn move, expanding promotions.
func addPawnMove(moves *[]chess.Move, pc chess.Piece, to chess.Square, captured chess.Piece) {
	if to.Rank != pc.Colour.PromotionRank() {
		addMove(moves, pc, to, captured)
		return
	}
	for _, promo := range chess.PromotionTypes {
		*moves = append(*moves, chess.Move{
			Piece:     pc,
			From:      pc.Square,
			To:        to,
			Captured:  captured,
			Kind:      chess.PromotionMove,
			Promotion: promo,
		})
	}
}
