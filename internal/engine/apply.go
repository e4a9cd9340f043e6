package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
)

// MakeMove plays m if it is legal, updating every derived field and the game
// result. It returns false and leaves the position untouched otherwise.
//
// m is matched against the legal moves of the piece on m.From by destination
// and promotion type (and by piece, when m.Piece is set); capture and kind
// details are taken from the generated move.
func (p *Position) MakeMove(m chess.Move) bool {
	legal, ok := p.findLegal(m)
	if !ok {
		return false
	}
	p.apply(legal)
	return true
}

// findLegal looks m up in the legal-move set.
func (p *Position) findLegal(m chess.Move) (chess.Move, bool) {
	pc, ok := p.board.Get(m.From)
	if !ok {
		return chess.Move{}, false
	}
	if !m.Piece.IsEmpty() && m.Piece != pc {
		return chess.Move{}, false
	}
	for _, lm := range p.LegalMoves(pc) {
		if lm.To != m.To {
			continue
		}
		if lm.IsPromotion() && lm.Promotion != m.Promotion {
			continue
		}
		return lm, true
	}
	return chess.Move{}, false
}

// apply performs a move already known to be legal.
func (p *Position) apply(m chess.Move) {
	rec := undoRecord{
		move:      m,
		castling:  p.castling,
		enPassant: p.enPassant,
		halfmove:  p.halfmove,
		result:    p.result,
		method:    p.method,
	}
	c := m.Piece.Colour

	p.halfmove++

	if m.IsCapture() {
		p.board.Clear(m.Captured.Square)
		p.halfmove = 0
		if r, ok := chess.CornerRight(m.Captured.Square); ok && m.Captured.Type == chess.Rook {
			p.castling = p.castling.Without(r & colourRights(m.Captured.Colour))
		}
	}

	p.board.Clear(m.From)
	moved := m.Piece.At(m.To)
	if m.IsPromotion() {
		moved.Type = m.Promotion
	}
	p.board.Place(moved)

	switch m.Piece.Type {
	case chess.Pawn:
		p.halfmove = 0
	case chess.King:
		p.kings[c] = m.To
		p.castling = p.castling.Without(colourRights(c))
		if m.IsCastle() {
			p.moveCastleRook(m, false)
		}
	case chess.Rook:
		if r, ok := chess.CornerRight(m.From); ok {
			p.castling = p.castling.Without(r & colourRights(c))
		}
	}

	p.enPassant = chess.NoSquare
	if m.Piece.Type == chess.Pawn && chess.Abs(m.To.Rank-m.From.Rank) == 2 {
		p.enPassant = chess.Sq(m.From.File, (m.From.Rank+m.To.Rank)/2)
	}

	if c == chess.Black {
		p.fullmove++
	}
	p.toMove = c.Opposite()

	p.refresh()
	rec.counted = p.updateResult()
	p.history = append(p.history, rec)
}

