// chesscore plays moves on a chess position and reports the result: legal
// moves, perft counts, engine replies and SVG diagrams.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/diagram"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/hashing"
	"github.com/lgbarn/chesscore/internal/perft"
	"github.com/lgbarn/chesscore/internal/uci"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg, flag.Args())
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)
	if *transcript {
		cfg.Engine.Transcript = &levelWriter{cfg: cfg, level: 2}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, startEngine); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if cfg.LogFilename == "" {
		return
	}
	file, err := os.Create(cfg.LogFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", cfg.LogFilename, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}
	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// engineStarter launches the configured engine. Tests substitute a fake.
type engineStarter func(ctx context.Context, cfg *config.EngineConfig) (proposer, error)

// proposer is a uci.Proposer that must be told about a new game and closed
// after use.
type proposer interface {
	uci.Proposer
	NewGame(ctx context.Context) error
	Close() error
}

func startEngine(ctx context.Context, cfg *config.EngineConfig) (proposer, error) {
	var opts []uci.Option
	if cfg.Transcript != nil {
		opts = append(opts, uci.WithTranscript(cfg.Transcript))
	}
	names := make([]string, 0, len(cfg.Options))
	for name := range cfg.Options {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		opts = append(opts, uci.WithOption(name, cfg.Options[name]))
	}
	c, err := uci.Start(ctx, cfg.Path, cfg.Args, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// run executes the configured work against one position.
func run(ctx context.Context, cfg *config.Config, start engineStarter) error {
	pos := engine.NewPosition()
	if cfg.FEN != "" {
		if err := pos.SetPosition(cfg.FEN); err != nil {
			return err
		}
	}
	if err := pos.PlayMoves(cfg.Moves...); err != nil {
		return err
	}
	cfg.Logf(2, "played %d moves: %s", len(cfg.Moves), strings.Join(cfg.Moves, " "))

	if cfg.Perft.Depth > 0 {
		return runPerft(cfg, pos)
	}

	if cfg.Engine.Path != "" && cfg.Engine.Plies > 0 {
		eng, err := start(ctx, cfg.Engine)
		if err != nil {
			return err
		}
		err = eng.NewGame(ctx)
		if err == nil {
			err = playEngine(ctx, cfg, pos, eng)
		}
		if cerr := eng.Close(); cerr != nil {
			cfg.Logf(1, "closing engine: %v", cerr)
		}
		if err != nil {
			return err
		}
	}

	report(cfg.OutputFile, cfg.Output, pos)

	if cfg.Diagram.Path != "" {
		if err := writeDiagram(cfg.Diagram, pos); err != nil {
			return err
		}
		cfg.Logf(1, "diagram written to %s", cfg.Diagram.Path)
	}
	return nil
}

// playEngine lets eng play up to cfg.Engine.Plies moves, stopping early if
// the game ends.
func playEngine(ctx context.Context, cfg *config.Config, pos *engine.Position, eng uci.Proposer) error {
	for i := 0; i < cfg.Engine.Plies && pos.Result() == engine.NoResult; i++ {
		m, err := uci.Play(ctx, eng, pos, cfg.Engine.MoveTime)
		if err != nil {
			return errors.Wrapf(err, "engine move %d", i+1)
		}
		cfg.Logf(2, "engine played %s", m.UCI())
	}
	return nil
}

func runPerft(cfg *config.Config, pos *engine.Position) error {
	var cache *hashing.NodeCache
	switch {
	case cfg.Perft.CacheSize > 0:
		cache = hashing.NewNodeCache(cfg.Perft.CacheSize)
	case cfg.Perft.CacheSize < 0:
		cache = hashing.NewNodeCache(0)
	}

	start := time.Now()
	var nodes uint64
	if cfg.Perft.Divide {
		counts, err := perft.ParallelDivide(pos, cfg.Perft.Depth, perft.Options{
			Workers: cfg.Perft.Workers,
			Cache:   cache,
		})
		if err != nil {
			return err
		}
		for _, c := range counts {
			fmt.Fprintln(cfg.OutputFile, c)
		}
		nodes = perft.Total(counts)
		fmt.Fprintf(cfg.OutputFile, "Total: %d\n", nodes)
	} else {
		nodes = perft.PerftCached(pos, cfg.Perft.Depth, cache)
		fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", cfg.Perft.Depth, nodes)
	}

	elapsed := time.Since(start)
	cfg.Logf(1, "%d nodes in %s (%.0f nps)", nodes, elapsed, float64(nodes)/elapsed.Seconds())
	if cache != nil {
		cfg.Logf(2, "cache: %d entries, %d hits", cache.Len(), cache.Hits())
	}
	return nil
}

// report prints the final position as selected by out.
func report(w io.Writer, out *config.OutputConfig, pos *engine.Position) {
	if out.Board {
		board := pos.Board()
		printBoard(w, &board)
	}
	if out.PrintFEN {
		fmt.Fprintf(w, "fen: %s\n", pos.ToFEN())
	}
	if out.PrintStatus {
		status := pos.Status(pos.SideToMove())
		fmt.Fprintf(w, "to move: %s\n", pos.SideToMove())
		fmt.Fprintf(w, "check: %s\n", status.Check)
		if pos.Result() != engine.NoResult {
			fmt.Fprintf(w, "result: %s (%s)\n", pos.Result(), pos.Method())
		} else {
			fmt.Fprintf(w, "result: %s\n", pos.Result())
		}
		if engine.HasInsufficientMaterial(pos) {
			fmt.Fprintln(w, "insufficient material")
		}
	}
	if out.ListLegal {
		moves := pos.AllLegalMoves()
		names := make([]string, len(moves))
		for i, m := range moves {
			names[i] = m.UCI()
		}
		sort.Strings(names)
		fmt.Fprintf(w, "legal moves (%d): %s\n", len(names), strings.Join(names, " "))
	}
}

// printBoard draws the board in text, rank 8 first, '.' for empty squares.
func printBoard(w io.Writer, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		var sb strings.Builder
		sb.WriteByte(byte(chess.RankBase + rank))
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			if pc, ok := board.Get(chess.Sq(file, rank)); ok {
				sb.WriteByte(pc.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}

func writeDiagram(cfg *config.DiagramConfig, pos *engine.Position) error {
	file, err := os.Create(cfg.Path)
	if err != nil {
		return errors.Wrapf(err, "creating diagram %s", cfg.Path)
	}
	err = diagram.RenderPosition(file, pos, diagram.Options{
		SquareSize:  cfg.SquareSize,
		Flip:        cfg.Flip,
		Coordinates: cfg.Coordinates,
	})
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "writing diagram %s", cfg.Path)
}

// levelWriter forwards writes to the log only at or above level.
type levelWriter struct {
	cfg   *config.Config
	level int
}

func (l *levelWriter) Write(p []byte) (int, error) {
	if l.cfg.Verbosity < l.level || l.cfg.LogFile == nil {
		return len(p), nil
	}
	return l.cfg.LogFile.Write(p)
}

func usage() {
	fmt.Fprintf(os.Stderr, `chesscore - chess rules engine toolkit

Usage: chesscore [options] [moves...]

Moves use coordinate notation (e2e4, e7e8q) and may also be given with -moves.

Options:
`)
	flag.PrintDefaults()
}
