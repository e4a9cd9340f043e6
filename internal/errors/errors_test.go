package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidMoveString", ErrInvalidMoveString, ErrInvalidMoveString},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrEngineBusy", ErrEngineBusy, ErrEngineBusy},
		{"ErrEngineClosed", ErrEngineClosed, ErrEngineClosed},
		{"ErrEngineProtocol", ErrEngineProtocol, ErrEngineProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrInvalidFEN, ErrIllegalMove, ErrInvalidMoveString, ErrInvalidConfig,
		ErrEngineBusy, ErrEngineClosed, ErrEngineProtocol}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

// TestFENError_Error verifies the error message format
func TestFENError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *FENError
		contains []string
	}{
		{
			name:     "full context",
			err:      NewFENError(FieldCastling, "KQkqK", "repeated letter"),
			contains: []string{"invalid FEN", "castling", "KQkqK", "repeated letter"},
		},
		{
			name:     "field only",
			err:      &FENError{Field: FieldCount},
			contains: []string{"invalid FEN", "fields"},
		},
		{
			name:     "empty",
			err:      &FENError{},
			contains: []string{"invalid FEN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("FENError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestFENError_As verifies FENError unwraps to ErrInvalidFEN and can be extracted
func TestFENError_As(t *testing.T) {
	wrapped := Wrap(NewFENError(FieldHalfmove, "-3", "negative clock"), "SetPosition")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}

	var fenErr *FENError
	if !errors.As(wrapped, &fenErr) {
		t.Fatal("errors.As() could not extract FENError")
	}
	if fenErr.Field != FieldHalfmove {
		t.Errorf("fenErr.Field = %q, want %q", fenErr.Field, FieldHalfmove)
	}
}

// TestEngineError_Error verifies EngineError formatting
func TestEngineError_Error(t *testing.T) {
	err := &EngineError{
		Err:     ErrEngineProtocol,
		Command: "go movetime 1000",
		Line:    "bestmove",
	}

	msg := err.Error()
	for _, s := range []string{"go movetime 1000", "bestmove", "protocol"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("EngineError.Error() = %q, should contain %q", msg, s)
		}
	}

	if got := (&EngineError{}).Error(); got != "engine" {
		t.Errorf("empty EngineError.Error() = %q, want %q", got, "engine")
	}
}

// TestEngineError_Unwrap verifies that EngineError properly implements Unwrap
func TestEngineError_Unwrap(t *testing.T) {
	engineErr := &EngineError{Err: ErrEngineClosed, Command: "isready"}

	wrapped := fmt.Errorf("handshake: %w", engineErr)
	if !errors.Is(wrapped, ErrEngineClosed) {
		t.Error("errors.Is(wrapped, ErrEngineClosed) = false, want true")
	}

	var extracted *EngineError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract EngineError")
	}
	if extracted.Command != "isready" {
		t.Errorf("extracted.Command = %q, want %q", extracted.Command, "isready")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %q at ply %d", "e2e5", 3)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "ply 3") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
