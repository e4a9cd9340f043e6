package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.FEN = fen
	return b
}

// WithMoves appends move strings to play from the starting position.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Moves = append(b.cfg.Moves, moves...)
	return b
}

// WithPerft enables perft to depth.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithPerftWorkers sets the number of goroutines used by divide.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithPerftCache sets the subtree cache size.
func (b *ConfigBuilder) WithPerftCache(entries int) *ConfigBuilder {
	b.cfg.Perft.CacheSize = entries
	return b
}

// WithEngine sets the engine binary and its arguments.
func (b *ConfigBuilder) WithEngine(path string, args ...string) *ConfigBuilder {
	b.cfg.Engine.Path = path
	b.cfg.Engine.Args = args
	return b
}

// WithEnginePlay makes the engine play plies moves with moveTime each.
func (b *ConfigBuilder) WithEnginePlay(plies int, moveTime time.Duration) *ConfigBuilder {
	b.cfg.Engine.Plies = plies
	b.cfg.Engine.MoveTime = moveTime
	return b
}

// WithEngineOption adds a setoption sent after the handshake.
func (b *ConfigBuilder) WithEngineOption(name, value string) *ConfigBuilder {
	if b.cfg.Engine.Options == nil {
		b.cfg.Engine.Options = make(map[string]string)
	}
	b.cfg.Engine.Options[name] = value
	return b
}

// WithDiagram writes an SVG diagram of the final position to path.
func (b *ConfigBuilder) WithDiagram(path string, squareSize int, flip bool) *ConfigBuilder {
	b.cfg.Diagram.Path = path
	b.cfg.Diagram.SquareSize = squareSize
	b.cfg.Diagram.Flip = flip
	return b
}

// ListLegal controls whether legal moves are listed.
func (b *ConfigBuilder) ListLegal(list bool) *ConfigBuilder {
	b.cfg.Output.ListLegal = list
	return b
}

// PrintBoard controls whether a text board is printed.
func (b *ConfigBuilder) PrintBoard(print bool) *ConfigBuilder {
	b.cfg.Output.Board = print
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
