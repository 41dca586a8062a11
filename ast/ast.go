// Copyright (C) 2026 vincentzreo. All Rights Reserved.

// Package ast defines a value tree for a JSON-like grammar, and a
// recursive-descent parser that constructs value trees from source
// text.
//
// The grammar is close to JSON but intentionally smaller: strings carry
// no escape sequences (a backslash is an ordinary character, so a
// literal double quote cannot occur inside a string), numbers have no
// exponent part, and an object requires at least one member, so "{}" is
// not a valid value. These restrictions are part of the grammar, not
// accidents of the implementation.
package ast

import "fmt"

// A Value is a single parsed value: one of Null, Bool, Int, Float,
// String, Array, or Object. The set of implementations is closed.
//
// A Value returned by a parse is fully formed and must be treated as
// immutable thereafter.
type Value interface{ isValue() }

// Null represents the null constant.
type Null struct{}

// A Bool is a Boolean constant, true or false.
type Bool bool

// An Int is a 64-bit signed integer value, produced for numeric
// literals without a fractional part.
type Int int64

// Int64 returns z as an int64.
func (z Int) Int64() int64 { return int64(z) }

// A Float is a 64-bit floating-point value, produced for numeric
// literals with a fractional part.
type Float float64

// A Number is a numeric Value, either an Int or a Float. The variant is
// decided by the form of the literal alone, never by the magnitude of
// its value.
type Number interface {
	Value
	Float64() float64
}

// Float64 returns z as a float64.
func (z Int) Float64() float64 { return float64(z) }

// Float64 returns f as a float64.
func (f Float) Float64() float64 { return float64(f) }

// A String is a string value. It holds the raw characters between the
// opening and closing quote, with no escape decoding applied.
type String string

// An Array is an ordered sequence of values.
type Array []Value

// Len returns the number of elements of a.
func (a Array) Len() int { return len(a) }

// An Object maps member keys to their values. Keys are unordered and
// unique; when a document repeats a key, the last value wins.
type Object map[string]Value

// Len returns the number of members of o.
func (o Object) Len() int { return len(o) }

// Find returns the value of the member of o with the given key, or nil
// if no such member exists.
func (o Object) Find(key string) Value { return o[key] }

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// ToValue converts a plain Go value of a compatible type to a Value.
// It panics for values of types that have no corresponding variant.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case string:
		return String(t)
	case []any:
		vs := make(Array, len(t))
		for i, elt := range t {
			vs[i] = ToValue(elt)
		}
		return vs
	case map[string]any:
		o := make(Object, len(t))
		for key, elt := range t {
			o[key] = ToValue(elt)
		}
		return o
	default:
		panic(fmt.Sprintf("no value for %T", v))
	}
}
