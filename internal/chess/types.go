// Package chess provides the core chess value types: squares, pieces, moves and the board grid.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index from which the colour's pawns may advance two squares.
func (c Colour) PawnRank() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank index on which the colour's pawns promote.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// PieceType represents a colourless chess piece type.
type PieceType int

const (
	Empty PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// PromotionTypes lists the piece types a pawn may promote to, strongest first.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsSliding reports whether the piece type moves along rays.
func (p PieceType) IsSliding() bool {
	return p == Bishop || p == Rook || p == Queen
}

// SlidesAlong reports whether a sliding piece of this type attacks along dir.
func (p PieceType) SlidesAlong(dir Vector) bool {
	switch p {
	case Queen:
		return true
	case Rook:
		return dir.IsOrthogonal()
	case Bishop:
		return dir.IsDiagonal()
	}
	return false
}

// PieceTypeFromLetter converts a piece letter (either case) to a piece type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// CastleSide identifies the wing a king castles towards.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	if s == Kingside {
		return "Kingside"
	}
	return "Queenside"
}

// CastlingRights holds the four castling flags as a bit set.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingRight returns the flag for the given colour and side.
func CastlingRight(colour Colour, side CastleSide) CastlingRights {
	switch {
	case colour == White && side == Kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case side == Kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// Has reports whether every flag in r is set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return r != NoCastling && c&r == r
}

// Without returns the rights with the flags in r cleared.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// Can reports whether colour may still castle towards side.
func (c CastlingRights) Can(colour Colour, side CastleSide) bool {
	return c.Has(CastlingRight(colour, side))
}

// String returns the FEN representation of the rights ("KQkq" subset or "-").
func (c CastlingRights) String() string {
	var buf [4]byte
	n := 0
	for i, r := range []CastlingRights{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside} {
		if c.Has(r) {
			buf[n] = "KQkq"[i]
			n++
		}
	}
	if n == 0 {
		return "-"
	}
	return string(buf[:n])
}

// CornerRight returns the castling right tied to a rook standing on sq, if any.
func CornerRight(sq Square) (CastlingRights, bool) {
	switch sq {
	case Square{File: 7, Rank: 0}:
		return WhiteKingside, true
	case Square{File: 0, Rank: 0}:
		return WhiteQueenside, true
	case Square{File: 7, Rank: 7}:
		return BlackKingside, true
	case Square{File: 0, Rank: 7}:
		return BlackQueenside, true
	}
	return NoCastling, false
}
