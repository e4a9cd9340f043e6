package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for i := 0; i < NumSquares; i++ {
			sq := SquareFromIndex(i)
			if p, ok := b.Get(sq); ok {
				t.Errorf("Get(%s) = %v; want empty", sq, p)
			}
		}
	})

	t.Run("no pieces listed", func(t *testing.T) {
		if got := len(b.Pieces()); got != 0 {
			t.Errorf("len(Pieces()) = %d; want 0", got)
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name   string
		square string
		colour Colour
		piece  PieceType
	}{
		// White back rank
		{"white rook a1", "a1", White, Rook},
		{"white knight b1", "b1", White, Knight},
		{"white bishop c1", "c1", White, Bishop},
		{"white queen d1", "d1", White, Queen},
		{"white king e1", "e1", White, King},
		{"white bishop f1", "f1", White, Bishop},
		{"white knight g1", "g1", White, Knight},
		{"white rook h1", "h1", White, Rook},
		// White pawns
		{"white pawn a2", "a2", White, Pawn},
		{"white pawn e2", "e2", White, Pawn},
		{"white pawn h2", "h2", White, Pawn},
		// Black pawns
		{"black pawn a7", "a7", Black, Pawn},
		{"black pawn e7", "e7", Black, Pawn},
		{"black pawn h7", "h7", Black, Pawn},
		// Black back rank
		{"black rook a8", "a8", Black, Rook},
		{"black queen d8", "d8", Black, Queen},
		{"black king e8", "e8", Black, King},
		{"black rook h8", "h8", Black, Rook},
		// Empty squares
		{"empty e3", "e3", White, Empty},
		{"empty d4", "d4", White, Empty},
		{"empty c6", "c6", White, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := MustParseSquare(tt.square)
			got, ok := b.Get(sq)
			if tt.piece == Empty {
				if ok {
					t.Errorf("Get(%s) = %v; want empty", sq, got)
				}
				return
			}
			want := NewPiece(tt.colour, tt.piece, sq)
			if got != want {
				t.Errorf("Get(%s) = %v; want %v", sq, got, want)
			}
		})
	}

	t.Run("piece counts", func(t *testing.T) {
		if got := len(b.PiecesOf(White)); got != 16 {
			t.Errorf("len(PiecesOf(White)) = %d; want 16", got)
		}
		if got := len(b.PiecesOf(Black)); got != 16 {
			t.Errorf("len(PiecesOf(Black)) = %d; want 16", got)
		}
	})

	t.Run("king positions", func(t *testing.T) {
		if got := b.FindKing(White); got != MustParseSquare("e1") {
			t.Errorf("FindKing(White) = %s; want e1", got)
		}
		if got := b.FindKing(Black); got != MustParseSquare("e8") {
			t.Errorf("FindKing(Black) = %s; want e8", got)
		}
	})

	t.Run("every piece knows its square", func(t *testing.T) {
		for i, p := range b.Squares {
			if !p.IsEmpty() && p.Square.Index() != i {
				t.Errorf("slot %d holds %v", i, p)
			}
		}
	})
}

func TestBoardPlaceClear(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
	}{
		{"white pawn on e4", NewPiece(White, Pawn, MustParseSquare("e4"))},
		{"black knight on f6", NewPiece(Black, Knight, MustParseSquare("f6"))},
		{"white queen on d1", NewPiece(White, Queen, MustParseSquare("d1"))},
		{"black king on e8", NewPiece(Black, King, MustParseSquare("e8"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			b.Place(tt.piece)
			got, ok := b.Get(tt.piece.Square)
			if !ok || got != tt.piece {
				t.Errorf("after Place(%v), Get() = %v, %v; want %v", tt.piece, got, ok, tt.piece)
			}
			if cleared := b.Clear(tt.piece.Square); cleared != tt.piece {
				t.Errorf("Clear() = %v; want %v", cleared, tt.piece)
			}
			if !b.IsEmpty(tt.piece.Square) {
				t.Errorf("IsEmpty(%s) = false after Clear", tt.piece.Square)
			}
		})
	}

	t.Run("off-board squares are never occupied", func(t *testing.T) {
		b := NewBoard()
		b.SetupInitialPosition()
		if _, ok := b.Get(Sq(8, 0)); ok {
			t.Error("Get(8,0) reported a piece")
		}
		if b.IsEmpty(Sq(-1, 3)) {
			t.Error("IsEmpty(-1,3) = true; want false for off-board")
		}
		b.Place(NewPiece(White, Queen, Sq(9, 9)))
		if got := len(b.Pieces()); got != 32 {
			t.Errorf("len(Pieces()) = %d after off-board Place; want 32", got)
		}
	})
}

func TestBoardValueCopy(t *testing.T) {
	original := NewBoard()
	original.SetupInitialPosition()

	copied := *original
	copied.Clear(MustParseSquare("e2"))
	copied.Place(NewPiece(White, Pawn, MustParseSquare("e4")))

	if _, ok := original.Get(MustParseSquare("e4")); ok {
		t.Error("original Get(e4) occupied after copy modification")
	}
	if _, ok := original.Get(MustParseSquare("e2")); !ok {
		t.Error("original Get(e2) empty after copy modification")
	}
}

func TestBitboard(t *testing.T) {
	bb := SquareBB(MustParseSquare("a1")).With(MustParseSquare("h8"))
	if bb.Count() != 2 {
		t.Errorf("Count() = %d; want 2", bb.Count())
	}
	if !bb.Has(MustParseSquare("h8")) || bb.Has(MustParseSquare("a8")) {
		t.Errorf("bitboard %#x holds the wrong squares", uint64(bb))
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{NewPiece(White, King, NoSquare), 'K'},
		{NewPiece(Black, King, NoSquare), 'k'},
		{NewPiece(White, Knight, NoSquare), 'N'},
		{NewPiece(Black, Pawn, NoSquare), 'p'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", tt.piece, got, tt.want)
		}
	}
}
