package hashing

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
)

func initialBoard() *chess.Board {
	b := chess.NewBoard()
	b.SetupInitialPosition()
	return b
}

func TestKeyConsistency(t *testing.T) {
	// Two identical boards must produce the same key
	board1 := initialBoard()
	board2 := initialBoard()

	key1 := Key(board1, chess.White, chess.AllCastling, chess.NoSquare)
	key2 := Key(board2, chess.White, chess.AllCastling, chess.NoSquare)

	if key1 != key2 {
		t.Errorf("Identical boards produced different keys: %x != %x", key1, key2)
	}
}

func TestKeyDistinguishesState(t *testing.T) {
	base := initialBoard()
	baseKey := Key(base, chess.White, chess.AllCastling, chess.NoSquare)

	moved := initialBoard()
	moved.Clear(chess.MustParseSquare("e2"))
	moved.Place(chess.NewPiece(chess.White, chess.Pawn, chess.MustParseSquare("e4")))

	tests := []struct {
		name string
		key  uint64
	}{
		{"placement", Key(moved, chess.White, chess.AllCastling, chess.NoSquare)},
		{"side to move", Key(base, chess.Black, chess.AllCastling, chess.NoSquare)},
		{"castling rights", Key(base, chess.White, chess.AllCastling.Without(chess.BlackQueenside), chess.NoSquare)},
		{"en-passant target", Key(base, chess.White, chess.AllCastling, chess.MustParseSquare("e3"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.key == baseKey {
				t.Errorf("changing %s did not change the key", tt.name)
			}
		})
	}
}

func TestPlacementKeyIgnoresSide(t *testing.T) {
	b := initialBoard()
	if PlacementKey(b) != Key(b, chess.White, chess.NoCastling, chess.NoSquare) {
		t.Error("Key with White to move, no rights and no target should equal PlacementKey")
	}
}

func TestRepetitionTable(t *testing.T) {
	table := NewRepetitionTable()

	if got := table.Add(42); got != 1 {
		t.Errorf("first Add(42) = %d; want 1", got)
	}
	if got := table.Add(42); got != 2 {
		t.Errorf("second Add(42) = %d; want 2", got)
	}
	table.Add(7)

	if table.Len() != 2 {
		t.Errorf("Len() = %d; want 2", table.Len())
	}
	if table.Total() != 3 {
		t.Errorf("Total() = %d; want 3", table.Total())
	}

	table.Remove(42)
	if got := table.Count(42); got != 1 {
		t.Errorf("Count(42) after Remove = %d; want 1", got)
	}
	table.Remove(42)
	if table.Len() != 1 {
		t.Errorf("Len() after removing last occurrence = %d; want 1", table.Len())
	}

	// Removing an absent key is a no-op
	table.Remove(99)
	if table.Total() != 1 {
		t.Errorf("Total() = %d; want 1", table.Total())
	}
}

func TestRepetitionTableClone(t *testing.T) {
	table := NewRepetitionTable()
	table.Add(1)
	table.Add(1)

	clone := table.Clone()
	clone.Add(1)

	if table.Count(1) != 2 {
		t.Errorf("original Count(1) = %d after clone modification; want 2", table.Count(1))
	}
	if clone.Count(1) != 3 {
		t.Errorf("clone Count(1) = %d; want 3", clone.Count(1))
	}
}

func TestRepetitionTableNil(t *testing.T) {
	var table *RepetitionTable
	if table.Count(1) != 0 || table.Len() != 0 || table.Total() != 0 {
		t.Errorf("nil table Count/Len/Total = %d/%d/%d; want 0/0/0",
			table.Count(1), table.Len(), table.Total())
	}
	clone := table.Clone()
	if clone.Add(1) != 1 {
		t.Error("clone of a nil table is not usable")
	}
}
