// Copyright (C) 2026 vincentzreo. All Rights Reserved.

// Package gammar provides the shared plumbing for a pair of parsers
// that read a JSON-like grammar into a typed value tree.
//
// # Cursor
//
// The Cursor type is a read-only view of a complete input document with
// a current byte offset. All recognition primitives consume input on
// success and leave the offset unchanged on failure, which is what
// allows a caller to try several competing productions at the same
// position:
//
//	c := gammar.NewCursor(input)
//	mark := c.Pos()
//	if !c.Eat("null") {
//	   c.Seek(mark) // try something else
//	}
//
// Seek restores a previously observed position; together with the
// consume-or-stand-still discipline this is the whole backtracking
// story. No exceptions or panics are involved.
//
// # Errors
//
// Parse failures are reported as *ParseError values carrying a byte
// offset and wrapping one of the sentinel errors ErrUnexpectedToken,
// ErrUnterminated, or ErrInvalidNumber. When a dispatcher has tried
// every alternative at a position, it reports a *NoMatchError naming
// the productions it tried. Use errors.Is to classify failures.
//
// # Parsers
//
// The ast subpackage defines the value tree and a hand-assembled
// recursive-descent parser over the Cursor. The grammar subpackage
// implements the same grammar declaratively: a rule set is compiled
// into a matcher that yields a concrete parse tree, which a converter
// then walks into the same value model. The two produce identical
// trees for any accepted input.
package gammar
