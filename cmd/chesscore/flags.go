// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/lgbarn/chesscore/internal/config"
)

var (
	// Position
	fenString = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	moveList  = flag.String("moves", "", "Moves to play, e.g. \"e2e4 e7e5\" (commas also separate)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	listLegal  = flag.Bool("list", false, "List the legal moves of the final position")
	showBoard  = flag.Bool("board", false, "Print a text board")
	noFEN      = flag.Bool("nofen", false, "Don't print the final FEN")
	noStatus   = flag.Bool("nostatus", false, "Don't print side to move, check and result")

	// Perft
	perftDepth   = flag.Int("perft", 0, "Count leaf nodes to this depth")
	divide       = flag.Bool("divide", false, "Print per-move node counts at root")
	perftWorkers = flag.Int("workers", 1, "Goroutines used for -divide")
	perftCache   = flag.Int("cache", 0, "Perft subtree cache entries (0 = off, -1 = unlimited)")

	// Engine
	enginePath = flag.String("engine", "", "UCI engine binary")
	engineArgs = flag.String("engineargs", "", "Space separated engine arguments")
	moveTime   = flag.Duration("movetime", time.Second, "Engine thinking time per move")
	enginePly  = flag.Int("plies", 1, "Number of moves the engine plays (needs -engine)")
	transcript = flag.Bool("transcript", false, "Log the UCI exchange (needs -v 2)")

	// Diagram
	svgFile    = flag.String("svg", "", "Write an SVG diagram of the final position")
	squareSize = flag.Int("size", 45, "SVG square size in pixels")
	flipBoard  = flag.Bool("flip", false, "Draw the diagram from Black's side")
	noCoords   = flag.Bool("nocoords", false, "Omit file and rank labels in the diagram")

	// General
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 running commentary")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help      = flag.Bool("h", false, "Show help")
	version   = flag.Bool("version", false, "Show version")

	engineOptions = make(map[string]string)
)

func init() {
	flag.Func("setoption", "Engine option as name=value (repeatable)", func(s string) error {
		name, value, err := parseOption(s)
		if err != nil {
			return err
		}
		engineOptions[name] = value
		return nil
	})
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config, args []string) {
	cfg.FEN = *fenString
	cfg.Moves = append(splitMoves(*moveList), args...)
	cfg.OutputFilename = *outputFile
	cfg.LogFilename = *logFile

	applyOutputFlags(cfg)
	applyPerftFlags(cfg)
	applyEngineFlags(cfg)
	applyDiagramFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

func applyOutputFlags(cfg *config.Config) {
	cfg.Output.ListLegal = *listLegal
	cfg.Output.Board = *showBoard
	cfg.Output.PrintFEN = !*noFEN
	cfg.Output.PrintStatus = !*noStatus
}

func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *perftWorkers
	cfg.Perft.CacheSize = *perftCache
}

func applyEngineFlags(cfg *config.Config) {
	cfg.Engine.Path = *enginePath
	cfg.Engine.Args = strings.Fields(*engineArgs)
	cfg.Engine.MoveTime = *moveTime
	if *enginePath != "" {
		cfg.Engine.Plies = *enginePly
	}
	if len(engineOptions) > 0 {
		cfg.Engine.Options = engineOptions
	}
}

func applyDiagramFlags(cfg *config.Config) {
	cfg.Diagram.Path = *svgFile
	cfg.Diagram.SquareSize = *squareSize
	cfg.Diagram.Flip = *flipBoard
	cfg.Diagram.Coordinates = !*noCoords
}

// splitMoves splits a move list on whitespace and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// parseOption parses a name=value engine option.
func parseOption(s string) (name, value string, err error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("engine option %q: want name=value", s)
	}
	return name, strings.TrimSpace(value), nil
}
