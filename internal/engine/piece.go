package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
)

// generate appends pc's pseudo-legal moves to moves (when non-nil) and returns
// the set of squares pc attacks. Attacked squares include those holding
// friendly pieces, so a defended piece cannot be taken by the enemy king.
//
// Slider rays continue through the enemy king: the squares behind it stay
// attacked and the king cannot step back along the line of check. A king is
// never generated as a capture target.
func (p *Position) generate(pc chess.Piece, moves *[]chess.Move) chess.Bitboard {
	switch pc.Type {
	case chess.Pawn:
		return p.generatePawn(pc, moves)
	case chess.Knight:
		return p.generateSteps(pc, chess.KnightOffsets, moves)
	case chess.King:
		attacks := p.generateSteps(pc, chess.AllDirections, moves)
		if moves != nil {
			p.generateCastles(pc, moves)
		}
		return attacks
	case chess.Bishop:
		return p.generateSlides(pc, chess.DiagonalDirections, moves)
	case chess.Rook:
		return p.generateSlides(pc, chess.OrthogonalDirections, moves)
	case chess.Queen:
		return p.generateSlides(pc, chess.AllDirections, moves)
	}
	return 0
}

// generateSlides walks each ray until it meets a piece.
func (p *Position) generateSlides(pc chess.Piece, dirs []chess.Vector, moves *[]chess.Move) chess.Bitboard {
	var attacks chess.Bitboard
	for _, dir := range dirs {
		for to := pc.Square.Add(dir); to.Valid(); to = to.Add(dir) {
			attacks = attacks.With(to)
			target, occupied := p.board.Get(to)
			if !occupied {
				addMove(moves, pc, to, chess.Piece{})
				continue
			}
			if target.Colour == pc.Colour {
				break
			}
			if target.Type == chess.King {
				if moves != nil {
					break
				}
				continue
			}
			addMove(moves, pc, to, target)
			break
		}
	}
	return attacks
}

// generateSteps handles the single-step pieces. King steps onto attacked
// squares are dropped here since the opponent's attack map is already known.
func (p *Position) generateSteps(pc chess.Piece, offsets []chess.Vector, moves *[]chess.Move) chess.Bitboard {
	var attacks chess.Bitboard
	var guarded chess.Bitboard
	if pc.Type == chess.King {
		guarded = p.status[pc.Colour].Attacked
	}

	for _, off := range offsets {
		to := pc.Square.Add(off)
		if !to.Valid() {
			continue
		}
		attacks = attacks.With(to)
		if moves == nil || guarded.Has(to) {
			continue
		}
		target, occupied := p.board.Get(to)
		if occupied && (target.Colour == pc.Colour || target.Type == chess.King) {
			continue
		}
		addMove(moves, pc, to, target)
	}
	return attacks
}

// addMove appends a normal move or capture when moves is being collected.
func addMove(moves *[]chess.Move, pc chess.Piece, to chess.Square, captured chess.Piece) {
	if moves == nil {
		return
	}
	*moves = append(*moves, chess.Move{
		Piece:    pc,
		From:     pc.Square,
		To:       to,
		Captured: captured,
		Kind:     chess.NormalMove,
	})
}
