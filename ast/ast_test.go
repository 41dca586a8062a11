// Copyright (C) 2026 vincentzreo. All Rights Reserved.

package ast_test

import (
	"errors"
	"math"
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
	"github.com/vincentzreo/gammar"
	"github.com/vincentzreo/gammar/ast"
)

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  ast.Value
	}{
		{nil, ast.Null{}},
		{true, ast.Bool(true)},
		{false, ast.Bool(false)},
		{15, ast.Int(15)},
		{int64(-3), ast.Int(-3)},
		{0.25, ast.Float(0.25)},
		{"free your mind", ast.String("free your mind")},
		{ast.Int(9), ast.Int(9)}, // pass-through

		{[]any{1, "two", nil}, ast.Array{ast.Int(1), ast.String("two"), ast.Null{}}},
		{map[string]any{"ok": true, "n": 5}, ast.Object{"ok": ast.Bool(true), "n": ast.Int(5)}},
		{map[string]any{"deep": []any{map[string]any{"x": 1.5}}},
			ast.Object{"deep": ast.Array{ast.Object{"x": ast.Float(1.5)}}}},
	}
	for _, test := range tests {
		got := ast.ToValue(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ToValue(%+v): (-want, +got)\n%s", test.input, diff)
		}
	}

	t.Run("MustPanic", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
	})
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Number
		fail  bool
	}{
		{"0", ast.Int(0), false},
		{"30", ast.Int(30), false},
		{"-80", ast.Int(-80), false},
		{"123.45", ast.Float(123.45), false},
		{"-123.45", ast.Float(-123.45), false},
		{"85.1", ast.Float(85.1), false},
		{"1.05", ast.Float(1.05), false}, // fractional leading zero is significant
		{"0.0", ast.Float(0), false},
		{"-0.5", ast.Float(-0.5), false},
		{"9223372036854775807", ast.Int(math.MaxInt64), false},

		// Integer digits convert before the sign applies, so both of
		// these overflow.
		{"9223372036854775808", nil, true},
		{"-9223372036854775808", nil, true},
	}
	for _, test := range tests {
		got, err := ast.ParseNumber(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("ParseNumber(%#q): unexpected error: %v", test.input, err)
			} else if !errors.Is(err, gammar.ErrInvalidNumber) {
				t.Errorf("ParseNumber(%#q): error does not wrap ErrInvalidNumber: %v", test.input, err)
			}
			continue
		}
		if test.fail {
			t.Errorf("ParseNumber(%#q): got %v, want error", test.input, got)
		} else if got != test.want {
			t.Errorf("ParseNumber(%#q): got %#v, want %#v", test.input, got, test.want)
		}
	}
}

func TestNumberInterface(t *testing.T) {
	var n ast.Number = ast.Int(-25)
	if got := n.Float64(); got != -25 {
		t.Errorf("Int.Float64: got %v, want -25", got)
	}
	n = ast.Float(0.5)
	if got := n.Float64(); got != 0.5 {
		t.Errorf("Float.Float64: got %v, want 0.5", got)
	}
	if got := ast.Int(7).Int64(); got != 7 {
		t.Errorf("Int.Int64: got %v, want 7", got)
	}
}

func TestPath(t *testing.T) {
	v, err := ast.ParseString(`{
  "list": [
    {"x": 1},
    {"x": 2}
  ],
  "y": {"hello": "there"},
  "o": ["hi", "yourself"],
  "xyz": {"p": true, "d": true, "q": false}
}`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	lengthOf := func(v ast.Value) (ast.Value, error) {
		if ln, ok := v.(interface{ Len() int }); ok {
			return ast.Int(ln.Len()), nil
		}
		return nil, errors.New("not a thing with length")
	}

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, nil, true},
		{"WrongType", []any{11}, nil, true},

		{"ArrayPos", []any{"list", 1, "x"}, ast.Int(2), false},
		{"ArrayNeg", []any{"list", -1, "x"}, ast.Int(2), false},
		{"ArrayRange", []any{"o", 25}, nil, true},
		{"ObjPath", []any{"xyz", "d"}, ast.Bool(true), false},

		{"FuncArray", []any{"o", lengthOf}, ast.Int(2), false},
		{"FuncObj", []any{"xyz", lengthOf}, ast.Int(3), false},
		{"FuncWrong", []any{"xyz", "d", lengthOf}, nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ast.Path(v, tc.path...)
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
					return
				}
				t.Fatalf("Path: unexpected error: %v", err)
			} else if tc.fail {
				t.Fatalf("Path: got %v, want error", got)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Wrong result (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestObjectFind(t *testing.T) {
	obj := ast.Object{"name": ast.String("John Doe")}
	if got := obj.Find("name"); got != ast.String("John Doe") {
		t.Errorf(`Find("name"): got %v, want "John Doe"`, got)
	}
	if got := obj.Find("nonesuch"); got != nil {
		t.Errorf(`Find("nonesuch"): got %v, want nil`, got)
	}
	if obj.Len() != 1 {
		t.Errorf("Len: got %d, want 1", obj.Len())
	}
}
