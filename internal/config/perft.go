package config

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// MaxPerftDepth bounds Depth; deeper trees take hours.
const MaxPerftDepth = 10

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	Depth     int  // 0 disables perft
	Divide    bool // Print per-root-move counts
	Workers   int  // Goroutines for divide; 1 counts serially
	CacheSize int  // Subtree cache entries; 0 disables the cache, -1 is unlimited
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Workers: 1}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.CacheSize < -1 {
		return fmt.Errorf("cache size %d < -1: %w", p.CacheSize, errors.ErrInvalidConfig)
	}
	if p.Divide && p.Depth == 0 {
		return fmt.Errorf("divide needs a depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
