package engine

import "github.com/lgbarn/chesscore/internal/chess"

// LegalMoves returns the strictly legal moves of pc. It returns nil when the
// game is over, when pc does not stand on the board, or when pc does not
// belong to the side to move.
func (p *Position) LegalMoves(pc chess.Piece) []chess.Move {
	if !p.canMove(pc) {
		return nil
	}
	var moves []chess.Move
	p.generate(pc, &moves)
	return p.filterLegal(moves)
}

// AllLegalMoves returns the legal moves of every piece of the side to move.
func (p *Position) AllLegalMoves() []chess.Move {
	if p.result != NoResult {
		return nil
	}
	moves := make([]chess.Move, 0, 48)
	for _, pc := range p.board.PiecesOf(p.toMove) {
		p.generate(pc, &moves)
	}
	return p.filterLegal(moves)
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	if p.result != NoResult {
		return false
	}
	return p.hasLegalMove()
}

// hasLegalMove stops at the first legal move found, ignoring the result flag.
func (p *Position) hasLegalMove() bool {
	var buf []chess.Move
	ks := &p.status[p.toMove]
	for _, pc := range p.board.PiecesOf(p.toMove) {
		if ks.Check == DoubleCheck && pc.Type != chess.King {
			continue
		}
		buf = buf[:0]
		p.generate(pc, &buf)
		for _, m := range buf {
			if p.isLegal(m) {
				return true
			}
		}
	}
	return false
}

func (p *Position) canMove(pc chess.Piece) bool {
	if p.result != NoResult || pc.IsEmpty() || pc.Colour != p.toMove {
		return false
	}
	onBoard, ok := p.board.Get(pc.Square)
	return ok && onBoard == pc
}

// filterLegal drops the pseudo-legal moves that leave the mover's king attacked.
// The result reuses the backing array of moves.
func (p *Position) filterLegal(moves []chess.Move) []chess.Move {
	legal := moves[:0]
	for _, m := range moves {
		if p.isLegal(m) {
			legal = append(legal, m)
		}
	}
	if len(legal) == 0 {
		return nil
	}
	return legal
}

// isLegal applies the check and pin restrictions to one pseudo-legal move.
// King steps and castles are already restricted to safe squares by generation.
func (p *Position) isLegal(m chess.Move) bool {
	ks := &p.status[m.Piece.Colour]

	if m.Piece.Type == chess.King {
		return true
	}

	switch ks.Check {
	case DoubleCheck:
		return false
	case SingleCheck:
		resolves := ks.Blocking.Has(m.To) ||
			(m.IsEnPassant() && ks.Blocking.Has(m.Captured.Square))
		if !resolves {
			return false
		}
	}

	if dir, pinned := ks.PinDirection(m.From); pinned {
		if !m.To.Sub(m.From).IsMultipleOf(dir) {
			return false
		}
	}

	if m.IsEnPassant() {
		return p.enPassantIsSafe(m)
	}
	return true
}

// enPassantIsSafe plays the capture on a scratch board and looks for a slider
// that the two vacated squares would expose, as in a rank pin through both pawns.
func (p *Position) enPassantIsSafe(m chess.Move) bool {
	scratch := p.board
	scratch.Clear(m.From)
	scratch.Clear(m.Captured.Square)
	scratch.Place(m.Piece.At(m.To))
	return !exposesKing(&scratch, p.kings[m.Piece.Colour], m.Piece.Colour)
}
