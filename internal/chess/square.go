package chess

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Square is an immutable board coordinate: file 0-7 (a-h) and rank 0-7 (1-8).
type Square struct {
	File int
	Rank int
}

// NoSquare marks the absence of a square (e.g. no en-passant target).
var NoSquare = Square{File: -1, Rank: -1}

// Sq builds a square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// SquareFromIndex converts a 0-63 index (a1 = 0, h8 = 63) to a square.
func SquareFromIndex(i int) Square {
	return Square{File: i % BoardSize, Rank: i / BoardSize}
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("square %q: want two characters", s)
	}
	sq := Square{File: int(s[0]) - FileBase, Rank: int(s[1]) - RankBase}
	if !sq.Valid() {
		return NoSquare, fmt.Errorf("square %q: out of range", s)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for tables of constant squares.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Index returns the 0-63 index of the square (a1 = 0, h8 = 63).
func (s Square) Index() int {
	return s.Rank*BoardSize + s.File
}

// Add returns the square offset by v. The result may be off the board.
func (s Square) Add(v Vector) Square {
	return Square{File: s.File + v.File, Rank: s.Rank + v.Rank}
}

// Sub returns the vector leading from o to s.
func (s Square) Sub(o Square) Vector {
	return Vector{File: s.File - o.File, Rank: s.Rank - o.Rank}
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.File+s.Rank)%2 == 1
}

// String returns the algebraic name of the square, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// Vector is a file/rank offset between two squares.
type Vector struct {
	File int
	Rank int
}

// The eight ray directions, orthogonal first.
var (
	North     = Vector{File: 0, Rank: 1}
	South     = Vector{File: 0, Rank: -1}
	East      = Vector{File: 1, Rank: 0}
	West      = Vector{File: -1, Rank: 0}
	NorthEast = Vector{File: 1, Rank: 1}
	NorthWest = Vector{File: -1, Rank: 1}
	SouthEast = Vector{File: 1, Rank: -1}
	SouthWest = Vector{File: -1, Rank: -1}

	OrthogonalDirections = []Vector{North, South, East, West}
	DiagonalDirections   = []Vector{NorthEast, NorthWest, SouthEast, SouthWest}
	AllDirections        = []Vector{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

	KnightOffsets = []Vector{
		{File: 1, Rank: 2}, {File: 2, Rank: 1}, {File: 2, Rank: -1}, {File: 1, Rank: -2},
		{File: -1, Rank: -2}, {File: -2, Rank: -1}, {File: -2, Rank: 1}, {File: -1, Rank: 2},
	}
)

// IsZero reports whether the vector is the null offset.
func (v Vector) IsZero() bool {
	return v.File == 0 && v.Rank == 0
}

// IsOrthogonal reports whether v is a non-zero offset along a file or rank.
func (v Vector) IsOrthogonal() bool {
	return !v.IsZero() && (v.File == 0 || v.Rank == 0)
}

// IsDiagonal reports whether v is a non-zero offset along a diagonal.
func (v Vector) IsDiagonal() bool {
	return !v.IsZero() && Abs(v.File) == Abs(v.Rank)
}

// Unit reduces an orthogonal or diagonal vector to its single-step direction.
func (v Vector) Unit() Vector {
	return Vector{File: sign(v.File), Rank: sign(v.Rank)}
}

// IsMultipleOf reports whether v is a non-zero integer multiple of dir
// (pointing either way along the line).
func (v Vector) IsMultipleOf(dir Vector) bool {
	if v.IsZero() || dir.IsZero() {
		return false
	}
	if v.File*dir.Rank != v.Rank*dir.File {
		return false
	}
	if dir.File != 0 {
		return v.File%dir.File == 0
	}
	return v.Rank%dir.Rank == 0
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign[T constraints.Signed](x T) T {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
