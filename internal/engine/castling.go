package engine

import (
	"github.com/lgbarn/chesscore/internal/chess"
)

// castleGeometry names the squares involved in one castle.
type castleGeometry struct {
	kingFrom, kingTo chess.Square
	rookFrom, rookTo chess.Square
	// empty must be vacant; safe must not be attacked (the king's transit and destination).
	empty []chess.Square
	safe  []chess.Square
}

var castles [2][2]castleGeometry

func init() {
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		r := c.HomeRank()
		castles[c][chess.Kingside] = castleGeometry{
			kingFrom: chess.Sq(4, r), kingTo: chess.Sq(6, r),
			rookFrom: chess.Sq(7, r), rookTo: chess.Sq(5, r),
			empty: []chess.Square{chess.Sq(5, r), chess.Sq(6, r)},
			safe:  []chess.Square{chess.Sq(5, r), chess.Sq(6, r)},
		}
		castles[c][chess.Queenside] = castleGeometry{
			kingFrom: chess.Sq(4, r), kingTo: chess.Sq(2, r),
			rookFrom: chess.Sq(0, r), rookTo: chess.Sq(3, r),
			empty: []chess.Square{chess.Sq(1, r), chess.Sq(2, r), chess.Sq(3, r)},
			safe:  []chess.Square{chess.Sq(3, r), chess.Sq(2, r)},
		}
	}
}

// colourRights returns both castling flags of c.
func colourRights(c chess.Colour) chess.CastlingRights {
	return chess.CastlingRight(c, chess.Kingside) | chess.CastlingRight(c, chess.Queenside)
}

// generateCastles appends the castle moves available to king.
func (p *Position) generateCastles(king chess.Piece, moves *[]chess.Move) {
	ks := &p.status[king.Colour]
	if ks.InCheck() {
		return
	}

	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if !p.castling.Can(king.Colour, side) {
			continue
		}
		g := castles[king.Colour][side]
		if king.Square != g.kingFrom {
			continue
		}
		rook, ok := p.board.Get(g.rookFrom)
		if !ok || rook.Type != chess.Rook || rook.Colour != king.Colour {
			continue
		}
		if !p.castlePathClear(g, ks.Attacked) {
			continue
		}
		*moves = append(*moves, chess.Move{
			Piece: king,
			From:  g.kingFrom,
			To:    g.kingTo,
			Kind:  chess.CastleMove,
			Side:  side,
		})
	}
}

func (p *Position) castlePathClear(g castleGeometry, attacked chess.Bitboard) bool {
	for _, sq := range g.empty {
		if !p.board.IsEmpty(sq) {
			return false
		}
	}
	for _, sq := range g.safe {
		if attacked.Has(sq) {
			return false
		}
	}
	return true
}

// moveCastleRook relocates the rook of a castle, forwards or backwards.
func (p *Position) moveCastleRook(m chess.Move, undo bool) {
	g := castles[m.Piece.Colour][m.Side]
	from, to := g.rookFrom, g.rookTo
	if undo {
		from, to = to, from
	}
	rook := p.board.Clear(from)
	p.board.Place(rook.At(to))
}
