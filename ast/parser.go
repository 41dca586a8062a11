// Copyright (C) 2026 vincentzreo. All Rights Reserved.

package ast

import (
	"errors"

	"github.com/vincentzreo/gammar"
)

// Parse parses a single complete document from data and returns its
// value tree. Whitespace around the root value is ignored; any other
// trailing input is an error. On error no partial tree is returned.
//
// Parsing recurses once per nesting level of the input, so the nesting
// depth a document may use is bounded by the goroutine stack (about
// 1 GiB at its default limit). No explicit depth limit is imposed.
func Parse(data []byte) (Value, error) { return parseDocument(gammar.NewCursor(data)) }

// ParseString parses a single complete document from s, as Parse.
func ParseString(s string) (Value, error) { return parseDocument(gammar.NewCursorString(s)) }

func parseDocument(c *gammar.Cursor) (Value, error) {
	c.SkipSpace()
	v, err := parseValue(c)
	if err != nil {
		return nil, err
	}
	c.SkipSpace()
	if !c.AtEOF() {
		return nil, gammar.Errorf(c.Pos(), gammar.ErrUnexpectedToken, "trailing input after value")
	}
	return v, nil
}

type production struct {
	name  string
	parse func(*gammar.Cursor) (Value, error)
}

// The value productions in dispatch order. The leading character makes
// them mutually exclusive in practice, so the order is a safety net
// rather than a semantic tie-break.
var productions []production

func init() {
	productions = []production{
		{"null", parseNull},
		{"bool", parseBool},
		{"number", parseNumber},
		{"string", parseString},
		{"array", parseArray},
		{"object", parseObject},
	}
}

// parseValue tries each production at the current position and returns
// the first success, restoring the cursor between attempts. If every
// production fails, it reports a *gammar.NoMatchError carrying the
// attempted production names and the failure that got furthest.
func parseValue(c *gammar.Cursor) (Value, error) {
	start := c.Pos()
	tried := make([]string, len(productions))
	var cause error
	for i, p := range productions {
		v, err := p.parse(c)
		if err == nil {
			return v, nil
		}
		if errors.Is(err, gammar.ErrInvalidNumber) {
			// The literal form matched; only its conversion failed.
			// No other production can do better with this input.
			return nil, err
		}
		tried[i] = p.name
		if cause == nil || errOffset(err) > errOffset(cause) {
			cause = err
		}
		c.Seek(start)
	}
	return nil, &gammar.NoMatchError{Offset: start, Tried: tried, Cause: cause}
}

func errOffset(err error) int {
	var pe *gammar.ParseError
	if errors.As(err, &pe) {
		return pe.Offset
	}
	var ne *gammar.NoMatchError
	if errors.As(err, &ne) {
		return ne.Offset
	}
	return -1
}

func parseNull(c *gammar.Cursor) (Value, error) {
	if !c.Eat("null") {
		return nil, gammar.Errorf(c.Pos(), gammar.ErrUnexpectedToken, `expected "null"`)
	}
	return Null{}, nil
}

func parseBool(c *gammar.Cursor) (Value, error) {
	if c.Eat("true") {
		return Bool(true), nil
	}
	if c.Eat("false") {
		return Bool(false), nil
	}
	return nil, gammar.Errorf(c.Pos(), gammar.ErrUnexpectedToken, `expected "true" or "false"`)
}

func parseNumber(c *gammar.Cursor) (Value, error) {
	start := c.Pos()
	c.Eat("-")
	if _, ok := c.Digits(); !ok {
		return nil, gammar.Errorf(c.Pos(), gammar.ErrUnexpectedToken, "expected digits")
	}
	if c.Eat(".") {
		if _, ok := c.Digits(); !ok {
			return nil, gammar.Errorf(c.Pos(), gammar.ErrUnexpectedToken,
				"expected digits after decimal point")
		}
	}
	n, err := ParseNumber(c.Text(start, c.Pos()))
	if err != nil {
		return nil, &gammar.ParseError{Offset: start, Err: err}
	}
	return n, nil
}

func parseString(c *gammar.Cursor) (Value, error) { return quoted(c) }

// quoted recognizes a quoted string: an opening quote, a raw run of
// characters up to the next quote, and the closing quote. No escape
// processing occurs; a backslash is an ordinary character and cannot
// protect a quote.
func quoted(c *gammar.Cursor) (Value, error) {
	if !c.Eat(`"`) {
		return nil, gammar.Errorf(c.Pos(), gammar.ErrUnexpectedToken, `expected '"'`)
	}
	text, ok := c.Until('"')
	if !ok {
		return nil, gammar.Errorf(c.Pos(), gammar.ErrUnterminated, "string")
	}
	c.Eat(`"`)
	return String(text), nil
}

func parseArray(c *gammar.Cursor) (Value, error) {
	c.SkipSpace()
	if !c.Eat("[") {
		return nil, gammar.Errorf(c.Pos(), gammar.ErrUnexpectedToken, `expected "["`)
	}
	c.SkipSpace()
	arr := Array{}
	if c.Eat("]") {
		return arr, nil
	}
	for {
		v, err := parseValue(c)
		if err != nil {
			return nil, err // committed past "[", fatal to the array
		}
		arr = append(arr, v)
		c.SkipSpace()
		if c.Eat(",") {
			c.SkipSpace()
			continue
		}
		break
	}
	if !c.Eat("]") {
		return nil, closeErr(c, `"]"`)
	}
	return arr, nil
}

func parseObject(c *gammar.Cursor) (Value, error) {
	c.SkipSpace()
	if !c.Eat("{") {
		return nil, gammar.Errorf(c.Pos(), gammar.ErrUnexpectedToken, `expected "{"`)
	}
	obj := make(Object)
	for {
		c.SkipSpace()
		key, err := quoted(c)
		if err != nil {
			return nil, err // at least one member is required: "{}" is not a value
		}
		c.SkipSpace()
		if !c.Eat(":") {
			return nil, gammar.Errorf(c.Pos(), gammar.ErrUnexpectedToken, `expected ":"`)
		}
		c.SkipSpace()
		v, err := parseValue(c)
		if err != nil {
			return nil, err
		}
		obj[string(key.(String))] = v // a repeated key keeps its last value
		c.SkipSpace()
		if !c.Eat(",") {
			break
		}
	}
	if !c.Eat("}") {
		return nil, closeErr(c, `"}"`)
	}
	return obj, nil
}

// closeErr reports a missing container terminator: the construct is
// unterminated at end of input, otherwise the next token is wrong.
func closeErr(c *gammar.Cursor, want string) error {
	if c.AtEOF() {
		return gammar.Errorf(c.Pos(), gammar.ErrUnterminated, "expected %s", want)
	}
	return gammar.Errorf(c.Pos(), gammar.ErrUnexpectedToken, "expected %s", want)
}
