// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the legal-move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMoveString indicates a move string that is not of the form e2e4[q].
	ErrInvalidMoveString = errors.New("invalid move string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEngineBusy indicates a search request while another is in flight.
	ErrEngineBusy = errors.New("engine busy")

	// ErrEngineClosed indicates the engine's output stream has ended.
	ErrEngineClosed = errors.New("engine closed")

	// ErrEngineProtocol indicates a reply the engine protocol does not allow.
	ErrEngineProtocol = errors.New("engine protocol violation")
)

// FEN field names reported by FENError.
const (
	FieldCount     = "fields"
	FieldPlacement = "placement"
	FieldSide      = "side"
	FieldCastling  = "castling"
	FieldEnPassant = "en-passant"
	FieldHalfmove  = "halfmove"
	FieldFullmove  = "fullmove"
	FieldPosition  = "position"
)

// FENError describes which field of a FEN string was rejected and why.
// It always unwraps to ErrInvalidFEN.
type FENError struct {
	Field  string // One of the Field* constants
	Value  string // The offending text, if any
	Reason string // Human readable explanation
}

// Error returns a formatted error message naming the field.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if len(parts) == 0 {
		return ErrInvalidFEN.Error()
	}
	return fmt.Sprintf("%v: %s", ErrInvalidFEN, strings.Join(parts, ": "))
}

// Unwrap returns ErrInvalidFEN so callers can test with errors.Is().
func (e *FENError) Unwrap() error {
	return ErrInvalidFEN
}

// NewFENError builds a FENError for the given field.
func NewFENError(field, value, reason string) *FENError {
	return &FENError{Field: field, Value: value, Reason: reason}
}

// EngineError wraps failures talking to an external search engine, with the
// command that was in flight and the offending line if one was read.
type EngineError struct {
	Err     error  // The underlying error
	Command string // Command sent to the engine (if applicable)
	Line    string // Line received from the engine (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *EngineError) Error() string {
	var parts []string

	if e.Command != "" {
		parts = append(parts, fmt.Sprintf("command %q", e.Command))
	}
	if e.Line != "" {
		parts = append(parts, fmt.Sprintf("reply %q", e.Line))
	}

	context := "engine"
	if len(parts) > 0 {
		context += " " + strings.Join(parts, ", ")
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the EngineError wrapper.
func (e *EngineError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
