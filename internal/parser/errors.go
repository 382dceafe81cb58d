package parser

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax           = errors.New("syntax error")
	ErrMalformedLiteral = errors.New("malformed integer literal")
)

// ParseError reports tokens that do not form a sequence expression.
type ParseError struct {
	Offset   int
	Found    string
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: unexpected %s, expected %s", e.Offset, e.Found, e.Expected)
}

func (e *ParseError) Unwrap() error { return ErrSyntax }

// LiteralError reports an integer literal whose text is not a valid int64.
type LiteralError struct {
	Offset int
	Text   string
	Reason string
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("unable to parse %q as integer at offset %d: %s", e.Text, e.Offset, e.Reason)
}

func (e *LiteralError) Unwrap() error { return ErrMalformedLiteral }

func unexpected(c Cursor, expected string) error {
	found, off := c.describe()
	return &ParseError{Offset: off, Found: found, Expected: expected}
}
