// Copyright (C) 2026 vincentzreo. All Rights Reserved.

package grammar

import (
	"fmt"

	"github.com/vincentzreo/gammar"
	"github.com/vincentzreo/gammar/ast"
)

// document is the compiled rule set for the JSON-like language. The
// productions and their dispatch order mirror the ast package parser
// exactly: null, bool, number, string, array, object. An object needs
// at least one member, strings are raw text without escapes, and
// numbers have no exponent part.
var document = MustBuild(func(g *Grammar) {
	g.Start = "document"

	g.Define("document", func() {
		g.Whitespace()
		g.Call("value")
		g.Whitespace()
	})

	g.Define("value", func() {
		g.Choice(func() {
			g.Call("null")
		}, func() {
			g.Call("bool")
		}, func() {
			g.Call("number")
		}, func() {
			g.Call("string")
		}, func() {
			g.Call("array")
		}, func() {
			g.Call("object")
		})
	})

	g.Define("null", func() {
		g.Capture("null", func() {
			g.Literal("null")
		})
	})

	g.Define("bool", func() {
		g.Capture("bool", func() {
			g.Literal("true", "false")
		})
	})

	g.Define("number", func() {
		g.Capture("number", func() {
			g.Optional(func() {
				g.Literal("-")
			})
			g.Digits()
			g.Optional(func() {
				g.Literal(".")
				g.Digits()
			})
		})
	})

	g.Define("string", func() {
		g.Capture("string", func() {
			g.Literal(`"`)
			g.Capture("chars", func() {
				g.Until('"')
			})
			g.Literal(`"`)
		})
	})

	g.Define("array", func() {
		g.Capture("array", func() {
			g.Literal("[")
			g.Whitespace()
			g.Optional(func() {
				g.Call("value")
				g.Repeat(0, func() {
					g.Whitespace()
					g.Literal(",")
					g.Whitespace()
					g.Call("value")
				})
			})
			g.Whitespace()
			g.Literal("]")
		})
	})

	g.Define("member", func() {
		g.Capture("member", func() {
			g.Call("string")
			g.Whitespace()
			g.Literal(":")
			g.Whitespace()
			g.Call("value")
		})
	})

	g.Define("object", func() {
		g.Capture("object", func() {
			g.Literal("{")
			g.Whitespace()
			g.Call("member")
			g.Repeat(0, func() {
				g.Whitespace()
				g.Literal(",")
				g.Whitespace()
				g.Call("member")
			})
			g.Whitespace()
			g.Literal("}")
		})
	})
})

// Document returns the compiled rule set for the JSON-like language,
// for callers that want the concrete parse tree rather than values.
func Document() *Grammar { return document }

// Parse parses a single complete document from data via the
// declarative grammar and returns its value tree. For any input it
// yields the same tree as ast.Parse, or fails like it.
func Parse(data []byte) (ast.Value, error) {
	root, err := document.Parse(data)
	if err != nil {
		return nil, err
	}
	return convert(root.Children[0])
}

// ParseString parses a single complete document from s, as Parse.
func ParseString(s string) (ast.Value, error) {
	root, err := document.ParseString(s)
	if err != nil {
		return nil, err
	}
	return convert(root.Children[0])
}

// convert walks one node of the concrete parse tree into its value.
// The grammar has already validated the structure, so apart from
// numeric range conversion there is nothing left to reject here.
func convert(n *Node) (ast.Value, error) {
	switch n.Rule {
	case "null":
		return ast.Null{}, nil
	case "bool":
		return ast.Bool(n.Text == "true"), nil
	case "number":
		v, err := ast.ParseNumber(n.Text)
		if err != nil {
			return nil, &gammar.ParseError{Offset: n.Span.Pos, Err: err}
		}
		return v, nil
	case "string":
		return ast.String(n.Children[0].Text), nil
	case "array":
		arr := ast.Array{}
		for _, elt := range n.Children {
			v, err := convert(elt)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case "object":
		obj := make(ast.Object, len(n.Children))
		for _, m := range n.Children {
			key := m.Children[0].Children[0].Text // string -> chars
			v, err := convert(m.Children[1])
			if err != nil {
				return nil, err
			}
			obj[key] = v // a repeated key keeps its last value
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unhandled rule %q", n.Rule)
	}
}
