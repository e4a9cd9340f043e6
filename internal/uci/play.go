package uci

import (
	"context"
	"time"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
)

// Play asks eng for a move in pos and applies it.
//
// The proposal goes through the same validation as any other move string:
// a reply that is malformed fails with ErrInvalidMoveString, one that is not
// legal in pos fails with ErrIllegalMove, and pos is left untouched.
func Play(ctx context.Context, eng Proposer, pos *engine.Position, moveTime time.Duration) (chess.Move, error) {
	fen := pos.ToFEN()
	replies, err := eng.BestMove(ctx, fen, moveTime)
	if err != nil {
		return chess.Move{}, err
	}

	var prop Proposal
	select {
	case <-ctx.Done():
		return chess.Move{}, ctx.Err()
	case prop = <-replies:
	}
	if prop.Err != nil {
		return chess.Move{}, prop.Err
	}
	if prop.Move == NoMove {
		return chess.Move{}, &errors.EngineError{
			Line: "bestmove " + prop.Move,
			Err:  errors.Wrapf(errors.ErrIllegalMove, "no move proposed for %s", fen),
		}
	}

	m, err := pos.MoveFromString(prop.Move)
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "engine proposal")
	}
	if !pos.MakeMove(m) {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "engine proposal %s", prop.Move)
	}
	return m, nil
}
