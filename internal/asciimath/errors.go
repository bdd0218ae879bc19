package asciimath

import (
	"errors"
	"fmt"
)

// Kinds of parse failures. A *ParseError unwraps to one of these, so callers
// can test for them with errors.Is.
var (
	ErrExpectedSymbol     = errors.New("expected symbol")
	ErrUnmatchedDelimiter = errors.New("unmatched delimiter")
	ErrMissingOperand     = errors.New("missing operand")
	ErrEmptyResult        = errors.New("empty result")
	ErrUnexpectedSymbol   = errors.New("unexpected symbol")
)

// ParseError describes why an equation could not be parsed and where the
// parser was when it gave up.
type ParseError struct {
	Kind    error
	Offset  int
	Sym     Symbol
	Message string
}

// NewParseError creates a new parse error. An empty symbol means the error was
// found at the end of the input.
func NewParseError(kind error, offset int, sym Symbol, message string) error {
	return &ParseError{kind, offset, sym, message}
}

func (err *ParseError) Error() string {
	if err.Sym == "" {
		return fmt.Sprintf(
			"[offset %d] Error at end: %s",
			err.Offset,
			err.Message,
		)
	}
	return fmt.Sprintf(
		"[offset %d] Error at '%s': %s",
		err.Offset,
		err.Sym,
		err.Message,
	)
}

func (err *ParseError) Unwrap() error {
	return err.Kind
}
