// Package errors provides sentinel errors and error types for the rules core.
// It separates caller contract violations (invariant errors) from ordinary
// input failures such as a malformed FEN, while allowing error inspection
// with errors.Is() and errors.As().
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

	// ErrIllegalMove indicates a move that the validator did not record as legal.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCellOutOfRange indicates a cell coordinate outside the board.
	ErrCellOutOfRange = errors.New("cell out of range")

	// ErrInvalidKind indicates a piece kind outside the configured set.
	ErrInvalidKind = errors.New("invalid piece kind")

	// ErrInvalidMoveKind indicates a move kind that cannot be applied.
	ErrInvalidMoveKind = errors.New("invalid move kind")

	// ErrInvalidPromotion indicates a promotion kind outside the promotable set.
	ErrInvalidPromotion = errors.New("invalid promotion kind")

	// ErrEmptySource indicates a move whose source cell holds no piece.
	ErrEmptySource = errors.New("empty source cell")

	// ErrGeometryMismatch indicates two boards of different shape were combined.
	ErrGeometryMismatch = errors.New("board geometry mismatch")
)

// InvariantError reports a broken caller contract: a coordinate, enum or
// promotion value that should never reach the rules core. It is always
// checked, independent of build flags.
type InvariantError struct {
	Err   error  // The underlying sentinel
	Op    string // Operation that detected the violation
	Cell  int    // Offending cell, or -1 when not applicable
	Value int    // Offending raw value (kind, move kind), or -1
}

// Invariant builds an InvariantError for op. Pass -1 for cell or value when
// they do not apply.
func Invariant(err error, op string, cell, value int) *InvariantError {
	return &InvariantError{Err: err, Op: op, Cell: cell, Value: value}
}

// Error returns a formatted error message including all available context.
func (e *InvariantError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Cell >= 0 {
		parts = append(parts, fmt.Sprintf("cell %d", e.Cell))
	}
	if e.Value >= 0 {
		parts = append(parts, fmt.Sprintf("value %d", e.Value))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		context = "invariant violation"
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the InvariantError wrapper.
func (e *InvariantError) Unwrap() error {
	return e.Err
}

// IsInvariant reports whether err is, or wraps, an InvariantError.
func IsInvariant(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}

// PositionError represents a position setup error with field context.
// It's used for FEN parsing errors.
type PositionError struct {
	Err   error  // The underlying error
	Field string // FEN field name ("placement", "side", ...)
	Got   string // What was found instead
}

// Error returns a formatted error message with field and context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "position error"
}

// Unwrap returns the underlying error.
func (e *PositionError) Unwrap() error {
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
