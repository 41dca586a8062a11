// Copyright (C) 2026 vincentzreo. All Rights Reserved.

package gammar

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors wrapped by the failures both parsing engines report.
// Use errors.Is to classify a failure.
var (
	// ErrUnexpectedToken means the remaining input does not begin with a
	// literal or delimiter required by the current production.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnterminated means a string or bracketed construct began but
	// the input ended before its required terminator.
	ErrUnterminated = errors.New("unterminated literal")

	// ErrInvalidNumber means a numeric literal could not be converted to
	// its target representation, for example by overflow.
	ErrInvalidNumber = errors.New("invalid numeric literal")
)

// A ParseError is a parse failure at a specific byte offset of the
// input. The wrapped error carries one of the sentinel errors above.
type ParseError struct {
	Offset int
	Err    error
}

// Error satisfies the error interface.
func (p *ParseError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.Err.Error(), p.Offset)
}

// Unwrap supports error wrapping.
func (p *ParseError) Unwrap() error { return p.Err }

// Errorf constructs a *ParseError at offset wrapping err, with a
// formatted message prefix.
func Errorf(offset int, err error, msg string, args ...any) error {
	args = append(args, err)
	return &ParseError{Offset: offset, Err: fmt.Errorf(msg+": %w", args...)}
}

// A NoMatchError reports that a dispatcher tried every alternative
// production at a position and all of them failed.
type NoMatchError struct {
	Offset int      // position where the alternatives were tried
	Tried  []string // names of the productions attempted, in order
	Cause  error    // most specific underlying failure, or nil
}

// Error satisfies the error interface.
func (n *NoMatchError) Error() string {
	msg := fmt.Sprintf("no value at offset %d (tried %s)",
		n.Offset, strings.Join(n.Tried, ", "))
	if n.Cause != nil {
		msg += ": " + n.Cause.Error()
	}
	return msg
}

// Unwrap supports error wrapping.
func (n *NoMatchError) Unwrap() error { return n.Cause }
