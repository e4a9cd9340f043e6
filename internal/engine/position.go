// Package engine implements the chess rules: legal move generation, make/undo,
// termination detection and the FEN codec, all operating on a Position.
package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/hashing"
)

// Result is the outcome of a game.
type Result int

const (
	NoResult Result = iota
	WhiteWon
	BlackWon
	Draw
)

// String returns the PGN-style result token.
func (r Result) String() string {
	switch r {
	case WhiteWon:
		return "1-0"
	case BlackWon:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// Method records why a game ended.
type Method int

const (
	NoMethod Method = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	ThreefoldRepetition
)

// String returns the string representation of a method.
func (m Method) String() string {
	switch m {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case FiftyMoveRule:
		return "FiftyMoveRule"
	case ThreefoldRepetition:
		return "ThreefoldRepetition"
	}
	return "NoMethod"
}

// winner maps a colour to the result of that colour winning.
func winner(c chess.Colour) Result {
	if c == chess.White {
		return WhiteWon
	}
	return BlackWon
}

// undoRecord carries exactly what UndoMove needs to invert one ply.
type undoRecord struct {
	move      chess.Move
	castling  chess.CastlingRights
	enPassant chess.Square
	halfmove  int
	result    Result
	method    Method
	// counted is set when the resulting position was added to the repetition table.
	counted bool
}

// Position is a full game state. It is owned by a single goroutine; callers
// that share one must serialize access themselves.
//
// The zero value is an empty board with no legal moves. Use NewPosition or
// NewPositionFromFEN for a playable game.
type Position struct {
	board     chess.Board
	castling  chess.CastlingRights
	enPassant chess.Square
	halfmove  int
	fullmove  int
	toMove    chess.Colour

	kings  [2]chess.Square
	status [2]KingStatus

	result Result
	method Method

	repetitions *hashing.RepetitionTable
	history     []undoRecord
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p, err := NewPositionFromFEN(InitialFEN)
	if err != nil {
		panic(fmt.Sprintf("initial position: %v", err))
	}
	return p
}

// SetPosition replaces the position with the one described by fen. On error
// the receiver is left untouched.
func (p *Position) SetPosition(fen string) error {
	fresh, err := NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	*p = *fresh
	return nil
}

// Clone returns an independent deep copy, including the undo history.
func (p *Position) Clone() *Position {
	c := *p
	c.repetitions = p.repetitions.Clone()
	c.history = make([]undoRecord, len(p.history))
	copy(c.history, p.history)
	return &c
}

// Board returns a copy of the piece grid.
func (p *Position) Board() chess.Board {
	return p.board
}

// Piece returns the piece on sq, if any.
func (p *Position) Piece(sq chess.Square) (chess.Piece, bool) {
	return p.board.Get(sq)
}

// Pieces lists every piece on the board in square order.
func (p *Position) Pieces() []chess.Piece {
	return p.board.Pieces()
}

// SideToMove returns the colour whose turn it is.
func (p *Position) SideToMove() chess.Colour {
	return p.toMove
}

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() chess.CastlingRights {
	return p.castling
}

// EnPassant returns the en-passant target square, or chess.NoSquare.
func (p *Position) EnPassant() chess.Square {
	return p.enPassant
}

// HalfmoveClock returns the number of plies since the last capture or pawn move.
func (p *Position) HalfmoveClock() int {
	return p.halfmove
}

// FullmoveNumber returns the move number, starting at 1 and incremented after Black moves.
func (p *Position) FullmoveNumber() int {
	return p.fullmove
}

// KingSquare returns the tracked square of colour's king.
func (p *Position) KingSquare(c chess.Colour) chess.Square {
	return p.kings[c]
}

// Status returns the derived king status for colour.
func (p *Position) Status(c chess.Colour) KingStatus {
	return p.status[c]
}

// IsInCheck reports whether the side to move is in check.
func (p *Position) IsInCheck() bool {
	return p.status[p.toMove].InCheck()
}

// Result returns the game result; NoResult while the game is in progress.
func (p *Position) Result() Result {
	return p.result
}

// Method returns how the game ended; NoMethod while the game is in progress.
func (p *Position) Method() Method {
	return p.method
}

// Key returns the repetition hash of the current position.
func (p *Position) Key() uint64 {
	return hashing.Key(&p.board, p.toMove, p.castling, p.enPassant)
}

// RepetitionCount returns how many times the current position has occurred.
func (p *Position) RepetitionCount() int {
	return p.repetitions.Count(p.Key())
}

// Ply returns the number of moves that can be undone.
func (p *Position) Ply() int {
	return len(p.history)
}

// LastMove returns the most recent move, if any.
func (p *Position) LastMove() (chess.Move, bool) {
	if len(p.history) == 0 {
		return chess.Move{}, false
	}
	return p.history[len(p.history)-1].move, true
}

// Moves returns the moves played since the position was set, oldest first.
func (p *Position) Moves() []chess.Move {
	out := make([]chess.Move, len(p.history))
	for i, rec := range p.history {
		out[i] = rec.move
	}
	return out
}

// String returns the FEN of the position.
func (p *Position) String() string {
	return p.ToFEN()
}

// Validate checks the structural invariants: every grid slot records its own
// square, each colour has exactly one king and the tracked king squares agree
// with the grid. A failure indicates a defect in the engine, not bad input.
func (p *Position) Validate() error {
	var kings [2]int
	for i, pc := range p.board.Squares {
		if pc.IsEmpty() {
			continue
		}
		if pc.Square.Index() != i {
			return fmt.Errorf("slot %s holds %v", chess.SquareFromIndex(i), pc)
		}
		if pc.Type == chess.King {
			kings[pc.Colour]++
		}
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if kings[c] != 1 {
			return fmt.Errorf("%s has %d kings", c, kings[c])
		}
		if got := p.board.FindKing(c); got != p.kings[c] {
			return fmt.Errorf("%s king tracked on %s but found on %s", c, p.kings[c], got)
		}
	}
	return nil
}

// refresh recomputes both king statuses from scratch.
func (p *Position) refresh() {
	p.status[chess.White] = p.computeStatus(chess.White)
	p.status[chess.Black] = p.computeStatus(chess.Black)
}
