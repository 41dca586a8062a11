// Copyright (C) 2026 vincentzreo. All Rights Reserved.

package gammar

import (
	"go4.org/mem"
)

// A Cursor is a read-only view of an input document with a current
// offset. The input is held as a single contiguous buffer; the cursor
// never copies or modifies it. All methods that recognize input either
// consume it on success or leave the offset where it was on failure, so
// a caller may retry a different production from the same position.
//
// A Cursor is not safe for concurrent use, but independent cursors over
// independent inputs may be used from multiple goroutines freely.
type Cursor struct {
	in  mem.RO
	pos int
}

// NewCursor constructs a Cursor positioned at the start of input.
// The cursor retains input; the caller must not modify it.
func NewCursor(input []byte) *Cursor { return &Cursor{in: mem.B(input)} }

// NewCursorString constructs a Cursor positioned at the start of s.
func NewCursorString(s string) *Cursor { return &Cursor{in: mem.S(s)} }

// Pos reports the current byte offset of c.
func (c *Cursor) Pos() int { return c.pos }

// Seek restores c to a position previously reported by Pos.
func (c *Cursor) Seek(pos int) { c.pos = pos }

// AtEOF reports whether c has consumed its entire input.
func (c *Cursor) AtEOF() bool { return c.pos >= c.in.Len() }

// Peek returns the byte at the current position without consuming it.
// It reports false at the end of input.
func (c *Cursor) Peek() (byte, bool) {
	if c.AtEOF() {
		return 0, false
	}
	return c.in.At(c.pos), true
}

// Eat consumes lit if the remaining input begins with it, and reports
// whether it did. On a false report the position is unchanged.
func (c *Cursor) Eat(lit string) bool {
	if !mem.HasPrefix(c.in.SliceFrom(c.pos), mem.S(lit)) {
		return false
	}
	c.pos += len(lit)
	return true
}

// SkipSpace consumes any run of insignificant whitespace.
func (c *Cursor) SkipSpace() {
	for !c.AtEOF() && isSpace(c.in.At(c.pos)) {
		c.pos++
	}
}

// Digits consumes a run of one or more decimal digits and returns its
// text. It reports false, consuming nothing, if no digit is present.
func (c *Cursor) Digits() (string, bool) {
	start := c.pos
	for !c.AtEOF() && isDigit(c.in.At(c.pos)) {
		c.pos++
	}
	if c.pos == start {
		return "", false
	}
	return c.Text(start, c.pos), true
}

// Until consumes everything up to but not including the next occurrence
// of stop, and returns the consumed text. If stop does not occur in the
// remaining input, Until reports false and consumes nothing.
func (c *Cursor) Until(stop byte) (string, bool) {
	end := c.pos
	for end < c.in.Len() && c.in.At(end) != stop {
		end++
	}
	if end == c.in.Len() {
		return "", false
	}
	text := c.Text(c.pos, end)
	c.pos = end
	return text, true
}

// Text returns a copy of the input between the from and to offsets.
func (c *Cursor) Text(from, to int) string {
	return c.in.SliceFrom(from).SliceTo(to - from).StringCopy()
}

// Span returns the span from start to the current position.
func (c *Cursor) Span(start int) Span { return Span{Pos: start, End: c.pos} }

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }
func isDigit(b byte) bool { return '0' <= b && b <= '9' }
