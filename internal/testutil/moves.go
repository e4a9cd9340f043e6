package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chesscore/internal/chess"
)

// MoveStrings renders moves in move-string form, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	sort.Strings(out)
	return out
}

// AssertSameMoves compares a generated move list with the expected move
// strings, ignoring order.
func AssertSameMoves(t testing.TB, got []chess.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	gotStrings := MoveStrings(got)
	if want == nil {
		want = []string{}
	}
	less := func(a, b string) bool { return a < b }
	if diff := cmp.Diff(want, gotStrings, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%smove set mismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// Squares parses a list of algebraic squares, for building expected tables.
func Squares(names ...string) []chess.Square {
	out := make([]chess.Square, len(names))
	for i, n := range names {
		out[i] = chess.MustParseSquare(n)
	}
	return out
}
