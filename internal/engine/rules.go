package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
)

// Draw thresholds.
const (
	FiftyMoveHalfmoves = 100
	RepetitionLimit    = 3
)

// updateResult evaluates termination for the side to move: checkmate or
// stalemate first, then the fifty-move rule, then threefold repetition.
// It reports whether the position was added to the repetition table.
func (p *Position) updateResult() bool {
	if !p.hasLegalMove() {
		if p.IsInCheck() {
			p.result, p.method = winner(p.toMove.Opposite()), Checkmate
		} else {
			p.result, p.method = Draw, Stalemate
		}
		return false
	}

	if p.halfmove >= FiftyMoveHalfmoves {
		p.result, p.method = Draw, FiftyMoveRule
		return false
	}

	if p.repetitions.Add(p.Key()) >= RepetitionLimit {
		p.result, p.method = Draw, ThreefoldRepetition
	}
	return true
}

// IsCheckmate returns true if the side to move has been checkmated.
func (p *Position) IsCheckmate() bool {
	return p.method == Checkmate
}

// IsStalemate returns true if the side to move has been stalemated.
func (p *Position) IsStalemate() bool {
	return p.method == Stalemate
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side. It is informational only and never ends
// the game.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(p *Position) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, pc := range p.board.Pieces() {
		// Kings don't count for material
		if pc.Type == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if pc.Type == chess.Pawn || pc.Type == chess.Rook || pc.Type == chess.Queen {
			return false
		}

		if pc.Colour == chess.White {
			whitePieces = append(whitePieces, pc.Type)
			if pc.Type == chess.Bishop {
				whiteBishopOnLight = pc.Square.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, pc.Type)
			if pc.Type == chess.Bishop {
				blackBishopOnLight = pc.Square.IsLight()
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}
