package config

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// DiagramConfig holds settings for the SVG board diagram.
type DiagramConfig struct {
	Path        string // Output file; empty disables the diagram
	SquareSize  int    // Pixels per square
	Flip        bool   // Draw from Black's side
	Coordinates bool   // Label files and ranks
}

// NewDiagramConfig creates a DiagramConfig with default values.
func NewDiagramConfig() *DiagramConfig {
	return &DiagramConfig{
		SquareSize:  45,
		Coordinates: true,
	}
}

// Validate checks that the diagram configuration is valid.
func (d *DiagramConfig) Validate() error {
	if d.SquareSize <= 0 {
		return fmt.Errorf("square size %d must be positive: %w", d.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
