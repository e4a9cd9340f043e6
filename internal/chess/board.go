package chess

// Piece is a piece standing on the board. The zero value (Type Empty) is an empty slot.
// Two pieces are equal only if they have the same type, colour and square.
type Piece struct {
	Type   PieceType
	Colour Colour
	Square Square
}

// NewPiece creates a piece of the given colour and type on sq.
func NewPiece(colour Colour, pieceType PieceType, sq Square) Piece {
	return Piece{Type: pieceType, Colour: colour, Square: sq}
}

// IsEmpty reports whether p is the empty slot value.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// IsSliding reports whether the piece moves along rays.
func (p Piece) IsSliding() bool {
	return p.Type.IsSliding()
}

// At returns a copy of the piece relocated to sq.
func (p Piece) At(sq Square) Piece {
	p.Square = sq
	return p
}

// Letter returns the FEN letter of the piece: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Type.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns a short description such as "White Knight g1".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String() + " " + p.Square.String()
}

// Board is the 8x8 grid: a fixed 64-slot array of optional pieces, indexed by Square.Index.
// It is the single source of truth for piece placement; iteration over pieces is derived from it.
type Board struct {
	Squares [NumSquares]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Place(NewPiece(White, backRank[file], Sq(file, 0)))
		b.Place(NewPiece(White, Pawn, Sq(file, 1)))
		b.Place(NewPiece(Black, Pawn, Sq(file, 6)))
		b.Place(NewPiece(Black, backRank[file], Sq(file, 7)))
	}
}

// Get returns the piece on sq and whether the square is occupied.
// Off-board squares are reported as empty.
func (b *Board) Get(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := b.Squares[sq.Index()]
	return p, !p.IsEmpty()
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.Valid() && b.Squares[sq.Index()].IsEmpty()
}

// Place puts p on its own square, replacing whatever stood there.
func (b *Board) Place(p Piece) {
	if p.Square.Valid() {
		b.Squares[p.Square.Index()] = p
	}
}

// Clear empties sq and returns the piece that stood there.
func (b *Board) Clear(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	p := b.Squares[sq.Index()]
	b.Squares[sq.Index()] = Piece{}
	return p
}

// Pieces lists the occupied slots in square-index order.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, 0, 32)
	for _, p := range b.Squares {
		if !p.IsEmpty() {
			out = append(out, p)
		}
	}
	return out
}

// PiecesOf lists the pieces of one colour in square-index order.
func (b *Board) PiecesOf(colour Colour) []Piece {
	out := make([]Piece, 0, 16)
	for _, p := range b.Squares {
		if !p.IsEmpty() && p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// FindKing returns the square of colour's king, or NoSquare if there is none.
func (b *Board) FindKing(colour Colour) Square {
	for _, p := range b.Squares {
		if p.Type == King && p.Colour == colour {
			return p.Square
		}
	}
	return NoSquare
}

