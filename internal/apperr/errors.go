package apperr

import (
	"errors"
	"fmt"
	"io/fs"
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// ParseError reports a word or token run that is not a well-formed expression.
// Pos is the rune offset in the source line, or -1 when unknown.
type ParseError struct {
	Word   string
	Pos    int
	Reason string
}

func (e *ParseError) Error() string {
	switch {
	case e.Word != "" && e.Pos >= 0:
		return fmt.Sprintf("parse error at position %d near %q: %s", e.Pos, e.Word, e.Reason)
	case e.Pos >= 0:
		return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Reason)
	default:
		return "parse error: " + e.Reason
	}
}

func NewParse(word string, pos int, reason string) *ParseError {
	return &ParseError{Word: word, Pos: pos, Reason: reason}
}

// UnbalancedParenError is returned when a '(' has no matching ')' or a ')' closes nothing.
type UnbalancedParenError struct {
	Pos      int
	Unclosed int
}

func (e *UnbalancedParenError) Error() string {
	if e.Unclosed > 0 {
		return fmt.Sprintf("unbalanced parentheses: %d unclosed, opened at position %d", e.Unclosed, e.Pos)
	}
	return fmt.Sprintf("unbalanced parentheses: unexpected closing parenthesis at position %d", e.Pos)
}

type DepthLimitError struct {
	Limit int
}

func (e *DepthLimitError) Error() string {
	return fmt.Sprintf("parenthesis nesting exceeds limit of %d", e.Limit)
}

type OverflowError struct {
	Op string
	A  int64
	B  int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("integer overflow: %d %s %d", e.A, e.Op, e.B)
}

// MissingInputError wraps fs.ErrNotExist so callers can use errors.Is on it.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input file %q does not exist", e.Path)
}

func (e *MissingInputError) Unwrap() error {
	return fs.ErrNotExist
}

// IsInput reports whether err was caused by bad user input rather than an internal failure.
func IsInput(err error) bool {
	var (
		ve *ValidationError
		pe *ParseError
		ue *UnbalancedParenError
		de *DepthLimitError
		oe *OverflowError
	)
	return errors.As(err, &ve) ||
		errors.As(err, &pe) ||
		errors.As(err, &ue) ||
		errors.As(err, &de) ||
		errors.As(err, &oe)
}

// Title returns a short human label for the kind of input error.
func Title(err error) string {
	var (
		pe *ParseError
		ue *UnbalancedParenError
		de *DepthLimitError
		oe *OverflowError
	)
	switch {
	case errors.As(err, &pe):
		return "parse error"
	case errors.As(err, &ue):
		return "unbalanced parentheses"
	case errors.As(err, &de):
		return "nesting too deep"
	case errors.As(err, &oe):
		return "overflow"
	default:
		return "validation error"
	}
}
