package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/uci"
)

// fakeEngine proposes moves from a queue.
type fakeEngine struct {
	moves    []string
	newGames int
	newErr   error
	closed   bool
}

func (f *fakeEngine) BestMove(_ context.Context, _ string, _ time.Duration) (<-chan uci.Proposal, error) {
	ch := make(chan uci.Proposal, 1)
	if len(f.moves) == 0 {
		ch <- uci.Proposal{Move: uci.NoMove}
	} else {
		ch <- uci.Proposal{Move: f.moves[0]}
		f.moves = f.moves[1:]
	}
	close(ch)
	return ch, nil
}

func (f *fakeEngine) NewGame(context.Context) error {
	f.newGames++
	return f.newErr
}

func (f *fakeEngine) Close() error {
	f.closed = true
	return nil
}

func noEngine(context.Context, *config.EngineConfig) (proposer, error) {
	return nil, fmt.Errorf("no engine in this test")
}

func runConfig(t *testing.T, b *config.ConfigBuilder) (string, string, error) {
	t.Helper()
	var out, log bytes.Buffer
	cfg := b.WithOutput(&out).WithLog(&log).Build()
	require.NoError(t, cfg.Validate())
	err := run(context.Background(), cfg, noEngine)
	return out.String(), log.String(), err
}

func TestRun_Report(t *testing.T) {
	out, _, err := runConfig(t, config.NewConfigBuilder().
		WithMoves("e2e4", "e7e5", "g1f3").
		ListLegal(true))
	require.NoError(t, err)

	assert.Contains(t, out, "fen: rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2\n")
	assert.Contains(t, out, "to move: Black\n")
	assert.Contains(t, out, "check: None\n")
	assert.Contains(t, out, "result: *\n")
	assert.Contains(t, out, "legal moves (29): ")
}

func TestRun_Checkmate(t *testing.T) {
	out, _, err := runConfig(t, config.NewConfigBuilder().
		WithMoves("f2f3", "e7e5", "g2g4", "d8h4"))
	require.NoError(t, err)

	assert.Contains(t, out, "check: Single\n")
	assert.Contains(t, out, "result: 0-1 (Checkmate)\n")
}

func TestRun_Board(t *testing.T) {
	b := config.NewConfigBuilder().
		WithFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		PrintBoard(true)
	out, _, err := runConfig(t, b)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "8 . . . . k . . .", lines[0])
	assert.Equal(t, "1 . . . . K . . .", lines[7])
	assert.Equal(t, "  a b c d e f g h", lines[8])
	assert.Contains(t, out, "insufficient material\n")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := runConfig(t, config.NewConfigBuilder().WithFEN("not a fen"))
	assert.ErrorIs(t, err, errors.ErrInvalidFEN)

	_, _, err = runConfig(t, config.NewConfigBuilder().WithMoves("e2e4", "e2e4"))
	assert.ErrorIs(t, err, errors.ErrIllegalMove)

	_, _, err = runConfig(t, config.NewConfigBuilder().WithMoves("e2"))
	assert.ErrorIs(t, err, errors.ErrInvalidMoveString)
}

func TestRun_Perft(t *testing.T) {
	out, log, err := runConfig(t, config.NewConfigBuilder().WithPerft(3, false))
	require.NoError(t, err)
	assert.Equal(t, "perft(3) = 8902\n", out)
	assert.Contains(t, log, "8902 nodes in")
}

func TestRun_PerftDivide(t *testing.T) {
	out, _, err := runConfig(t, config.NewConfigBuilder().
		WithMoves("e2e4").
		WithPerft(2, true).
		WithPerftWorkers(3).
		WithPerftCache(-1))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 21)
	assert.Equal(t, "a7a5: 30", lines[0])
	assert.Equal(t, "Total: 600", lines[20])
}

func TestRun_Diagram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.svg")
	_, log, err := runConfig(t, config.NewConfigBuilder().
		WithMoves("e2e4").
		WithDiagram(path, 30, true))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, log, "diagram written to "+path)
}

func TestRun_DiagramBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "board.svg")
	_, _, err := runConfig(t, config.NewConfigBuilder().WithDiagram(path, 30, false))
	assert.Error(t, err)
}

func TestRun_Engine(t *testing.T) {
	fake := &fakeEngine{moves: []string{"e2e4", "c7c5"}}
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithEngine("fake").
		WithEnginePlay(2, 10*time.Millisecond).
		WithOutput(&out).
		WithLog(&bytes.Buffer{}).
		Build()

	start := func(context.Context, *config.EngineConfig) (proposer, error) { return fake, nil }
	require.NoError(t, run(context.Background(), cfg, start))

	assert.True(t, fake.closed, "engine closed")
	assert.Equal(t, 1, fake.newGames, "ucinewgame before the first move")
	assert.Contains(t, out.String(), "fen: rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2\n")
}

func TestRun_EngineNewGameFails(t *testing.T) {
	fake := &fakeEngine{moves: []string{"e2e4"}, newErr: errors.ErrEngineClosed}
	cfg := config.NewConfigBuilder().
		WithEngine("fake").
		WithEnginePlay(1, time.Millisecond).
		WithOutput(&bytes.Buffer{}).
		WithLog(&bytes.Buffer{}).
		Build()

	start := func(context.Context, *config.EngineConfig) (proposer, error) { return fake, nil }
	err := run(context.Background(), cfg, start)
	assert.ErrorIs(t, err, errors.ErrEngineClosed)
	assert.True(t, fake.closed, "engine closed after a failed new game")
	assert.Len(t, fake.moves, 1, "no move requested")
}

func TestPlayEngine_StopsWhenGameEnds(t *testing.T) {
	pos, err := engine.NewPositionFromFEN("7k/8/4Q3/6K1/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	cfg := config.NewConfigBuilder().WithEngine("fake").WithEnginePlay(5, time.Millisecond).Build()

	fake := &fakeEngine{moves: []string{"e6f7"}}
	require.NoError(t, playEngine(context.Background(), cfg, pos, fake))
	assert.Equal(t, engine.Stalemate, pos.Method())
}

func TestPlayEngine_BadProposal(t *testing.T) {
	pos := engine.NewPosition()
	cfg := config.NewConfigBuilder().WithEngine("fake").WithEnginePlay(1, time.Millisecond).Build()

	err := playEngine(context.Background(), cfg, pos, &fakeEngine{moves: []string{"e2e5"}})
	assert.ErrorIs(t, err, errors.ErrIllegalMove)
	assert.Contains(t, err.Error(), "engine move 1")
	assert.Equal(t, engine.InitialFEN, pos.ToFEN())
}
