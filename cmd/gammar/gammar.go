// Copyright (C) 2026 vincentzreo. All Rights Reserved.

// Program gammar parses a document from a file or stdin and prints the
// resulting value tree, or the parse error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/vincentzreo/gammar/ast"
	"github.com/vincentzreo/gammar/grammar"
)

var useGrammar = flag.Bool("g", false, "Parse with the declarative grammar engine")

func main() {
	log.SetFlags(0)
	log.SetPrefix("gammar: ")
	flag.Parse()

	var input []byte
	var err error
	switch flag.NArg() {
	case 0:
		input, err = io.ReadAll(os.Stdin)
	case 1:
		input, err = os.ReadFile(flag.Arg(0))
	default:
		log.Fatal("usage: gammar [-g] [file]")
	}
	if err != nil {
		log.Fatalf("Reading input: %v", err)
	}

	parse := ast.Parse
	if *useGrammar {
		parse = grammar.Parse
	}
	v, err := parse(input)
	if err != nil {
		log.Fatalf("Parse failed: %v", err)
	}
	var sb strings.Builder
	dump(&sb, v, 0)
	fmt.Println(sb.String())
}

// dump writes a readable rendering of v at the given indent depth.
// This is a debug format, not a serialization of the document.
func dump(sb *strings.Builder, v ast.Value, depth int) {
	indent := strings.Repeat("  ", depth+1)
	switch t := v.(type) {
	case ast.Null:
		sb.WriteString("null")
	case ast.Bool:
		fmt.Fprintf(sb, "bool(%v)", bool(t))
	case ast.Int:
		fmt.Fprintf(sb, "int(%d)", t.Int64())
	case ast.Float:
		fmt.Fprintf(sb, "float(%v)", t.Float64())
	case ast.String:
		fmt.Fprintf(sb, "string(%q)", string(t))
	case ast.Array:
		sb.WriteString("[\n")
		for _, elt := range t {
			sb.WriteString(indent)
			dump(sb, elt, depth+1)
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Repeat("  ", depth) + "]")
	case ast.Object:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys) // deterministic output; document order is not retained
		sb.WriteString("{\n")
		for _, key := range keys {
			fmt.Fprintf(sb, "%s%q: ", indent, key)
			dump(sb, t[key], depth+1)
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Repeat("  ", depth) + "}")
	}
}
