package chess

// MoveKind categorizes moves by the extra work needed to apply and undo them.
type MoveKind int

const (
	NormalMove MoveKind = iota
	CastleMove
	EnPassantMove
	PromotionMove
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case NormalMove:
		return "Normal"
	case CastleMove:
		return "Castle"
	case EnPassantMove:
		return "EnPassant"
	case PromotionMove:
		return "Promotion"
	}
	return "Unknown"
}

// Move is a transient value describing a single ply.
//
// Captured is the empty Piece when nothing is taken. For en-passant moves the captured pawn's
// Square is the vacated square, which differs from To. Side is meaningful only for CastleMove and
// Promotion only for PromotionMove.
type Move struct {
	Piece     Piece
	From      Square
	To        Square
	Captured  Piece
	Kind      MoveKind
	Side      CastleSide
	Promotion PieceType
}

// IsCapture returns true if this move takes a piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Kind == PromotionMove
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == CastleMove
}

// IsEnPassant returns true if this move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Kind == EnPassantMove
}

// UCI returns the move string: from and to squares plus a lowercase promotion letter.
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Kind == PromotionMove {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// String implements fmt.Stringer using the move string form.
func (m Move) String() string {
	return m.UCI()
}
