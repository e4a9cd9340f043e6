package engine

import (
	"strings"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/errors"
)

// ParseMoveString splits a move string such as "e2e4" or "e7e8q" into its
// squares and optional promotion piece type (chess.Empty when absent).
func ParseMoveString(s string) (from, to chess.Square, promotion chess.PieceType, err error) {
	if len(s) != 4 && len(s) != 5 {
		return chess.NoSquare, chess.NoSquare, chess.Empty,
			errors.Wrapf(errors.ErrInvalidMoveString, "%q: want 4 or 5 characters", s)
	}

	from, err = chess.ParseSquare(s[0:2])
	if err != nil {
		return chess.NoSquare, chess.NoSquare, chess.Empty, errors.Wrapf(errors.ErrInvalidMoveString, "%q", s)
	}
	to, err = chess.ParseSquare(s[2:4])
	if err != nil {
		return chess.NoSquare, chess.NoSquare, chess.Empty, errors.Wrapf(errors.ErrInvalidMoveString, "%q", s)
	}

	promotion = chess.Empty
	if len(s) == 5 {
		promotion = chess.PieceTypeFromLetter(s[4])
		switch promotion {
		case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		default:
			return chess.NoSquare, chess.NoSquare, chess.Empty,
				errors.Wrapf(errors.ErrInvalidMoveString, "%q: bad promotion letter %q", s, s[4])
		}
	}
	return from, to, promotion, nil
}

// MoveFromString resolves a move string against the legal moves of the
// position. A pawn reaching the last rank without a promotion letter promotes
// to a queen.
func (p *Position) MoveFromString(s string) (chess.Move, error) {
	from, to, promotion, err := ParseMoveString(strings.TrimSpace(s))
	if err != nil {
		return chess.Move{}, err
	}

	pc, ok := p.board.Get(from)
	if !ok {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "%q: no piece on %s", s, from)
	}
	explicit := promotion != chess.Empty
	if !explicit {
		promotion = chess.Queen
	}

	for _, m := range p.LegalMoves(pc) {
		if m.To != to {
			continue
		}
		if m.IsPromotion() && m.Promotion != promotion {
			continue
		}
		if explicit && !m.IsPromotion() {
			continue
		}
		return m, nil
	}
	return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "%q", s)
}

// PlayMove parses s and plays it.
func (p *Position) PlayMove(s string) error {
	m, err := p.MoveFromString(s)
	if err != nil {
		return err
	}
	if !p.MakeMove(m) {
		return errors.Wrapf(errors.ErrIllegalMove, "%q", s)
	}
	return nil
}

// PlayMoves plays a sequence of move strings, stopping at the first failure.
// Moves already played stay on the board.
func (p *Position) PlayMoves(moves ...string) error {
	for i, s := range moves {
		if err := p.PlayMove(s); err != nil {
			return errors.Wrapf(err, "move %d", i+1)
		}
	}
	return nil
}
