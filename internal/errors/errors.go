// Package errors provides sentinel errors and error types for the chess
// engine. It defines the recoverable failure conditions a caller can see
// when entering a move, and a structured error type that preserves the
// offending squares for inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates a coordinate outside a1-h8 or a square
	// string that failed to parse.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrNoPieceAtSquare indicates a move from an empty square.
	ErrNoPieceAtSquare = errors.New("no piece at square")

	// ErrWrongSideToMove indicates the square holds an opponent's piece.
	ErrWrongSideToMove = errors.New("wrong side to move")

	// ErrIllegalMove indicates a move that violates chess rules: a
	// blocked path, a broken castling precondition, or a move that
	// would leave the mover's own king in check.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrNothingToUndo indicates an undo request with an empty history.
	ErrNothingToUndo = errors.New("nothing to undo")
)

// MoveError wraps errors with move context: the squares the caller
// named and whose turn it was. It implements the error interface and
// supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	From string // Source square as entered (if known)
	To   string // Destination square as entered (if known)
	Side string // The side attempting the move (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	context := ""
	if e.From != "" && e.To != "" {
		context = fmt.Sprintf("move %s%s", e.From, e.To)
	} else if e.From != "" {
		context = fmt.Sprintf("square %s", e.From)
	}
	if e.Side != "" {
		if context != "" {
			context += ", "
		}
		context += e.Side + " to move"
	}

	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
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
