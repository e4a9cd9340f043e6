package engine

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/testutil"
)

// Positions shared by several tests.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
)

func mustPosition(t testing.TB, fen string) *Position {
	t.Helper()
	p, err := NewPositionFromFEN(fen)
	testutil.RequireNoError(t, err, "NewPositionFromFEN(%q)", fen)
	return p
}

func mustPiece(t testing.TB, p *Position, square string) chess.Piece {
	t.Helper()
	pc, ok := p.Piece(chess.MustParseSquare(square))
	if !ok {
		t.Fatalf("Piece(%s) is empty", square)
	}
	return pc
}

func hasMove(moves []chess.Move, uci string) bool {
	for _, m := range moves {
		if m.UCI() == uci {
			return true
		}
	}
	return false
}

// snapshot is the comparable observable state of a position.
type snapshot struct {
	Board       chess.Board
	Castling    chess.CastlingRights
	EnPassant   chess.Square
	Halfmove    int
	Fullmove    int
	ToMove      chess.Colour
	White       KingStatus
	Black       KingStatus
	Result      Result
	Method      Method
	Repetitions int
	Ply         int
}

func takeSnapshot(p *Position) snapshot {
	return snapshot{
		Board:       p.Board(),
		Castling:    p.CastlingRights(),
		EnPassant:   p.EnPassant(),
		Halfmove:    p.HalfmoveClock(),
		Fullmove:    p.FullmoveNumber(),
		ToMove:      p.SideToMove(),
		White:       p.Status(chess.White),
		Black:       p.Status(chess.Black),
		Result:      p.Result(),
		Method:      p.Method(),
		Repetitions: p.repetitions.Total(),
		Ply:         p.Ply(),
	}
}

// walk visits every legal move sequence to depth, calling visit after each
// move is made.
func walk(p *Position, depth int, visit func(m chess.Move)) {
	if depth == 0 {
		return
	}
	for _, m := range p.AllLegalMoves() {
		p.MakeMove(m)
		visit(m)
		walk(p, depth-1, visit)
		p.UndoMove()
	}
}
