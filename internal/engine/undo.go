package engine

import "github.com/lgbarn/chesscore/internal/chess"

// UndoMove takes back the most recent move, restoring the position exactly.
// It is a no-op when there is nothing to undo.
func (p *Position) UndoMove() {
	n := len(p.history)
	if n == 0 {
		return
	}
	rec := p.history[n-1]
	p.history = p.history[:n-1]

	if rec.counted {
		p.repetitions.Remove(p.Key())
	}

	m := rec.move
	c := m.Piece.Colour

	p.board.Clear(m.To)
	if m.IsCastle() {
		p.moveCastleRook(m, true)
	}
	// m.Piece still records the original type and square, which also undoes a promotion.
	p.board.Place(m.Piece)
	if m.IsCapture() {
		p.board.Place(m.Captured)
	}
	if m.Piece.Type == chess.King {
		p.kings[c] = m.From
	}

	p.castling = rec.castling
	p.enPassant = rec.enPassant
	p.halfmove = rec.halfmove
	p.result = rec.result
	p.method = rec.method
	if c == chess.Black {
		p.fullmove--
	}
	p.toMove = c

	p.refresh()
}
