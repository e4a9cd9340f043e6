package config

import (
	"fmt"
	"io"
	"time"

	"github.com/lgbarn/chesscore/internal/errors"
)

// EngineConfig holds settings for the external UCI engine.
type EngineConfig struct {
	// Path is the engine binary; empty disables engine play
	Path string

	// Args are passed to the engine binary
	Args []string

	// MoveTime is the thinking time per move
	MoveTime time.Duration

	// Plies is how many moves the engine plays from the position
	Plies int

	// Options are sent as setoption commands after the handshake
	Options map[string]string

	// Transcript receives the raw protocol exchange when set
	Transcript io.Writer
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		MoveTime: time.Second,
	}
}

// Validate checks that the engine configuration is valid.
func (e *EngineConfig) Validate() error {
	if e.Plies < 0 {
		return fmt.Errorf("plies %d is negative: %w", e.Plies, errors.ErrInvalidConfig)
	}
	if e.Plies > 0 && e.Path == "" {
		return fmt.Errorf("engine plies without an engine path: %w", errors.ErrInvalidConfig)
	}
	if e.MoveTime < time.Millisecond {
		return fmt.Errorf("move time %v below 1ms: %w", e.MoveTime, errors.ErrInvalidConfig)
	}
	return nil
}
