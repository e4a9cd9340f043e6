// Package diagram draws a board position as an SVG image.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
)

// DefaultSquareSize is the edge length of one square in pixels.
const DefaultSquareSize = 45

const (
	lightColour     = "#f0d9b5"
	darkColour      = "#b58863"
	highlightColour = "#cdd26a"
	checkColour     = "#e06c5f"
)

// Options controls the rendering.
type Options struct {
	SquareSize  int            // Pixels per square; DefaultSquareSize when zero
	Flip        bool           // Draw from Black's side
	Coordinates bool           // Label files and ranks along the edges
	Highlight   []chess.Square // Tinted squares, e.g. the last move
	Check       []chess.Square // Squares drawn in the check colour
}

// glyphs maps colour and piece type to the Unicode chess symbol.
var glyphs = [2][chess.NumPieceTypes]string{
	chess.White: {chess.King: "♔", chess.Queen: "♕", chess.Rook: "♖",
		chess.Bishop: "♗", chess.Knight: "♘", chess.Pawn: "♙"},
	chess.Black: {chess.King: "♚", chess.Queen: "♛", chess.Rook: "♜",
		chess.Bishop: "♝", chess.Knight: "♞", chess.Pawn: "♟"},
}

// errWriter keeps the first write error; svgo itself ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Render writes board as a standalone SVG document to w.
func Render(w io.Writer, board *chess.Board, opts Options) error {
	size := opts.SquareSize
	if size == 0 {
		size = DefaultSquareSize
	}
	if size < 0 {
		return fmt.Errorf("diagram: square size %d", size)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	edge := size * chess.BoardSize
	canvas.Start(edge, edge)

	highlighted, checked := squareSet(opts.Highlight), squareSet(opts.Check)

	fontSize := size * 4 / 5
	pieceStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", fontSize)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			x, y := origin(sq, size, opts.Flip)

			fill := darkColour
			if sq.IsLight() {
				fill = lightColour
			}
			switch {
			case checked.Has(sq):
				fill = checkColour
			case highlighted.Has(sq):
				fill = highlightColour
			}
			canvas.Rect(x, y, size, size, "fill:"+fill)

			if pc, ok := board.Get(sq); ok {
				canvas.Text(x+size/2, y+size/2, glyphs[pc.Colour][pc.Type], pieceStyle)
			}
		}
	}

	if opts.Coordinates {
		drawCoordinates(canvas, size, opts.Flip)
	}
	canvas.End()
	return ew.err
}

// RenderPosition renders pos, highlighting its last move and a checked king.
func RenderPosition(w io.Writer, pos *engine.Position, opts Options) error {
	if last, ok := pos.LastMove(); ok && opts.Highlight == nil {
		opts.Highlight = []chess.Square{last.From, last.To}
	}
	if pos.IsInCheck() {
		opts.Check = []chess.Square{pos.KingSquare(pos.SideToMove())}
	}
	board := pos.Board()
	return Render(w, &board, opts)
}

func squareSet(squares []chess.Square) chess.Bitboard {
	var bb chess.Bitboard
	for _, sq := range squares {
		if sq.Valid() {
			bb = bb.With(sq)
		}
	}
	return bb
}

// origin returns the top-left pixel of sq.
func origin(sq chess.Square, size int, flip bool) (x, y int) {
	col, row := sq.File, chess.BoardSize-1-sq.Rank
	if flip {
		col, row = chess.BoardSize-1-sq.File, sq.Rank
	}
	return col * size, row * size
}

func drawCoordinates(canvas *svg.SVG, size int, flip bool) {
	style := fmt.Sprintf("font-size:%dpx;fill:#555", size/5)
	for i := 0; i < chess.BoardSize; i++ {
		file := chess.Sq(i, 0)
		x, _ := origin(file, size, flip)
		canvas.Text(x+size-size/6, size*chess.BoardSize-size/12, string(rune('a'+i)), style)

		rank := chess.Sq(0, i)
		_, y := origin(rank, size, flip)
		canvas.Text(size/12, y+size/4, string(rune('1'+i)), style)
	}
}
