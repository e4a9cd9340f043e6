// Package config provides configuration for the chesscore command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Starting position and the moves to play from it
	FEN   string
	Moves []string

	// Grouped settings
	Output  *OutputConfig
	Perft   *PerftConfig
	Engine  *EngineConfig
	Diagram *DiagramConfig

	// File handling
	OutputFilename string
	LogFilename    string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		Engine:     NewEngineConfig(),
		Diagram:    NewDiagramConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the log writer.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line to LogFile if Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks the configuration and every group in it. All errors wrap
// ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	groups := []struct {
		name string
		v    interface{ Validate() error }
	}{
		{"perft", c.Perft},
		{"engine", c.Engine},
		{"diagram", c.Diagram},
	}
	for _, g := range groups {
		if err := g.v.Validate(); err != nil {
			return errors.Wrap(err, g.name)
		}
	}
	if c.Perft.Depth > 0 && c.Engine.Plies > 0 {
		return fmt.Errorf("perft and engine play are exclusive: %w", errors.ErrInvalidConfig)
	}
	return nil
}
