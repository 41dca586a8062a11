// Copyright (C) 2026 vincentzreo. All Rights Reserved.

package grammar_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vincentzreo/gammar"
	"github.com/vincentzreo/gammar/ast"
	"github.com/vincentzreo/gammar/grammar"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Value
	}{
		{`null`, ast.Null{}},
		{`true`, ast.Bool(true)},
		{`false`, ast.Bool(false)},
		{`123`, ast.Int(123)},
		{`-123`, ast.Int(-123)},
		{`123.45`, ast.Float(123.45)},
		{`"hello"`, ast.String("hello")},
		{`""`, ast.String("")},
		{`[]`, ast.Array{}},
		{`[1, 2, 3]`, ast.Array{ast.Int(1), ast.Int(2), ast.Int(3)}},
		{`{"name": "John Doe", "age": 30}`,
			ast.Object{"name": ast.String("John Doe"), "age": ast.Int(30)}},
		{`{"k": 1, "k": 2}`, ast.Object{"k": ast.Int(2)}},
		{`{
        "name": "John Doe",
        "age": 30,
        "is_student": false,
        "marks": [90, -80, 85.1],
        "address": {
            "city": "New York",
            "zip": 10001
        }
    }`, ast.Object{
			"name":       ast.String("John Doe"),
			"age":        ast.Int(30),
			"is_student": ast.Bool(false),
			"marks":      ast.Array{ast.Int(90), ast.Int(-80), ast.Float(85.1)},
			"address": ast.Object{
				"city": ast.String("New York"),
				"zip":  ast.Int(10001),
			},
		}},
	}
	for _, test := range tests {
		got, err := grammar.Parse([]byte(test.input))
		if err != nil {
			t.Errorf("Parse(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Parse(%#q): (-want, +got)\n%s", test.input, diff)
		}
	}
}

// Both engines realize the same grammar: for any input they must agree,
// on the tree for inputs they accept and on rejection otherwise.
func TestEngineEquivalence(t *testing.T) {
	inputs := []string{
		// Accepted by both
		`null`, `true`, `false`,
		`0`, `-1`, `123.45`, `-123.45`, `1.05`,
		`""`, `"a b c"`, `"tab\there"`,
		`[]`, `[ ]`, `[1, 2, 3]`, `["a", null, 1]`, `[[0], []]`,
		`{"name": "John Doe", "age": 30}`,
		`{"a":{"b":[true]}}`,
		`{"k": 1, "k": 2}`,
		"  [ 1 ,\n\t2 ]  ",

		// Rejected by both
		``, `   `, `xyz`, `nul`, `-`, `1.`, `.5`,
		`"no close quote`, `"a\"b"`,
		`1e10`, `1.5E3`,
		`{}`, `{ }`, `{invalid}`,
		`[1, ]`, `[1 2]`, `[1, 2`, `{"a": 1`, `{"a" 1}`, `]`,
		`9223372036854775808`,
	}
	for _, input := range inputs {
		hand, herr := ast.ParseString(input)
		decl, derr := grammar.ParseString(input)
		if (herr == nil) != (derr == nil) {
			t.Errorf("Input %#q: engines disagree: ast err=%v, grammar err=%v", input, herr, derr)
			continue
		}
		if herr != nil {
			continue
		}
		if diff := cmp.Diff(hand, decl); diff != "" {
			t.Errorf("Input %#q: trees differ (-ast, +grammar)\n%s", input, diff)
		}
	}
}

func TestParseErrorKinds(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{`"no close quote`, gammar.ErrUnterminated},
		{`xyz`, gammar.ErrUnexpectedToken},
		{`1e10`, gammar.ErrUnexpectedToken},
		{`[-9223372036854775808]`, gammar.ErrInvalidNumber},
	}
	for _, test := range tests {
		got, err := grammar.ParseString(test.input)
		if err == nil {
			t.Errorf("ParseString(%#q): got %+v, want error", test.input, got)
			continue
		}
		if got != nil {
			t.Errorf("ParseString(%#q): returned a partial tree %+v with error %v", test.input, got, err)
		}
		if !errors.Is(err, test.want) {
			t.Errorf("ParseString(%#q): error %v does not wrap %v", test.input, err, test.want)
		}
	}
}

// The concrete parse tree records one node per matched capture, with
// the spans the rules covered.
func TestConcreteTree(t *testing.T) {
	root, err := grammar.Document().ParseString(`{"hello" : "world"}`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	want := &grammar.Node{
		Rule: "document",
		Span: gammar.Span{Pos: 0, End: 19},
		Text: `{"hello" : "world"}`,
		Children: []*grammar.Node{{
			Rule: "object",
			Span: gammar.Span{Pos: 0, End: 19},
			Text: `{"hello" : "world"}`,
			Children: []*grammar.Node{{
				Rule: "member",
				Span: gammar.Span{Pos: 1, End: 18},
				Text: `"hello" : "world"`,
				Children: []*grammar.Node{
					{
						Rule: "string",
						Span: gammar.Span{Pos: 1, End: 8},
						Text: `"hello"`,
						Children: []*grammar.Node{
							{Rule: "chars", Span: gammar.Span{Pos: 2, End: 7}, Text: "hello"},
						},
					},
					{
						Rule: "string",
						Span: gammar.Span{Pos: 11, End: 18},
						Text: `"world"`,
						Children: []*grammar.Node{
							{Rule: "chars", Span: gammar.Span{Pos: 12, End: 17}, Text: "world"},
						},
					},
				},
			}},
		}},
	}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("Parse tree: (-want, +got)\n%s", diff)
	}
}
