// Copyright (C) 2026 vincentzreo. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/tailscale/hujson"
	"github.com/vincentzreo/gammar/ast"
)

// On the subset of the grammar that is also standard JSON, anything we
// accept must be acceptable to an independent JSON parser too.
func TestParseConformance(t *testing.T) {
	inputs := []string{
		`null`,
		`true`,
		`false`,
		`-17`,
		`123.45`,
		`"Hello, World!"`,
		`[]`,
		`[1, 2, 3]`,
		`["a", null, 1]`,
		`{"name": "John Doe", "age": 30}`,
		`{"a": {"b": [true, 0.5]}}`,
		"\n  [ {\"x\" : 1} , {\"x\" : 2} ]  ",
	}
	for _, input := range inputs {
		if _, err := ast.ParseString(input); err != nil {
			t.Errorf("ast.ParseString(%#q): unexpected error: %v", input, err)
		}
		if _, err := hujson.Parse([]byte(input)); err != nil {
			t.Errorf("hujson.Parse(%#q): unexpected error: %v", input, err)
		}
	}
}
