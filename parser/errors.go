package parser

import (
	"errors"
	"fmt"
)

var (
	ErrMissingMarker        = errors.New("section marker not found")
	ErrDanglingOptional     = errors.New("@optional is not followed by a declaration")
	ErrMalformedDeclaration = errors.New("malformed declaration")
)

// ParseError reports a declaration line that could not be parsed.
type ParseError struct {
	Declaration string
	Msg         string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s in %q", ErrMalformedDeclaration, e.Msg, e.Declaration)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedDeclaration
}
