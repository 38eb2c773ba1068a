package dot

import (
	"errors"
	"fmt"
)

// Sentinel errors for dot package operations.
var (
	// ErrUnexpectedToken indicates the parser encountered a token kind
	// the grammar does not allow at that point.
	ErrUnexpectedToken = errors.New("dot: unexpected token")

	// ErrUnterminatedString indicates a quoted identifier was never closed.
	ErrUnterminatedString = errors.New("dot: unterminated quoted string")
)

// SyntaxError is returned by Parse when DOT source does not match the
// grammar this package implements. It wraps one of this package's
// sentinel errors, so callers can use errors.Is.
type SyntaxError struct {
	Pos     Position
	Message string
	cause   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("dot: %s: %s", e.Pos, e.Message)
}

func (e *SyntaxError) Unwrap() error { return e.cause }
