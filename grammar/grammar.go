// Copyright (C) 2026 vincentzreo. All Rights Reserved.

// Package grammar implements a declarative grammar engine and a rule
// set that parses the same JSON-like language as the ast package.
//
// A grammar is described by calling builder methods inside Build. Each
// Define names a rule; within a rule, Literal, Call, Choice, Optional,
// Repeat, and Capture compose the recognition logic. Build validates
// the rule set and compiles it into a matcher. Matching an input yields
// a concrete parse tree of Node values, one node per matched Capture,
// annotated with source spans.
//
// Recognition and interpretation are separate: the compiled grammar
// does all the rejecting, and a tree walk over the Node tree converts
// the already-validated structure into values (see Parse in json.go).
package grammar

import (
	"errors"
	"fmt"

	"github.com/vincentzreo/gammar"
)

// A Node is one matched Capture of a parse, a node of the concrete
// parse tree. Its children are the captures matched within it, in
// input order.
type Node struct {
	Rule     string      // name of the capture that produced this node
	Span     gammar.Span // the input range the capture matched
	Text     string      // the matched text
	Children []*Node
}

type kind int

const (
	kLiteral kind = iota
	kCall
	kSeq
	kChoice
	kOptional
	kRepeat
	kCapture
	kWhitespace
	kDigits
	kUntil
)

type gnode struct {
	kind kind
	lits []string // kLiteral: alternatives
	name string   // kCall: target rule; kCapture: node name
	min  int      // kRepeat: minimum iterations
	stop byte     // kUntil: terminator
	args []*gnode
}

// A Grammar is a declarative rule set. Populate it inside Build; after
// Build returns, the grammar is compiled and ready to Parse.
type Grammar struct {
	// Start names the rule at which parsing begins.
	// It must be set inside Build.
	Start string

	names   []string
	nameIdx map[string]int
	defs    []*gnode
	rules   []rule
	start   int

	calls map[string]bool // rules referenced by Call
	nb    *nodeBuilder
	errs  []error
}

type nodeBuilder struct {
	rule string // rule being defined; "" at grammar level
	args []*gnode
}

func seqOf(args []*gnode) *gnode {
	if len(args) == 1 {
		return args[0]
	}
	return &gnode{kind: kSeq, args: args}
}

// Build runs build to populate a new Grammar, validates the resulting
// rule set, and compiles it. Builder mistakes (an undefined or unused
// rule, an operator used outside Define, a missing start rule) are
// reported here, never during parsing.
func Build(build func(*Grammar)) (*Grammar, error) {
	g := &Grammar{
		nameIdx: make(map[string]int),
		calls:   make(map[string]bool),
	}
	g.nb = &nodeBuilder{}
	build(g)
	g.nb = nil
	if err := g.check(); err != nil {
		return nil, err
	}
	g.compile()
	return g, nil
}

// MustBuild is Build, but panics on an invalid grammar. It is intended
// for rule sets fixed at program start.
func MustBuild(build func(*Grammar)) *Grammar {
	g, err := Build(build)
	if err != nil {
		panic("grammar: " + err.Error())
	}
	return g
}

func (g *Grammar) errorf(msg string, args ...any) {
	g.errs = append(g.errs, fmt.Errorf(msg, args...))
}

// emit appends n to the rule currently being built.
func (g *Grammar) emit(n *gnode) {
	if g.nb == nil || g.nb.rule == "" {
		g.errorf("operator used outside Define")
		return
	}
	g.nb.args = append(g.nb.args, n)
}

// buildStub evaluates stub with a fresh builder and returns the nodes
// it emitted.
func (g *Grammar) buildStub(stub func()) []*gnode {
	old := g.nb
	if old == nil {
		g.errorf("operator used outside Build")
		return nil
	}
	g.nb = &nodeBuilder{rule: old.rule}
	stub()
	args := g.nb.args
	g.nb = old
	return args
}

// Define names a rule and populates it by running stub. Rules may call
// each other recursively, and in any definition order.
func (g *Grammar) Define(name string, stub func()) {
	if g.nb == nil {
		g.errorf("Define(%q) used outside Build", name)
		return
	}
	if g.nb.rule != "" {
		g.errorf("Define(%q) used inside rule %q", name, g.nb.rule)
		return
	}
	if _, ok := g.nameIdx[name]; ok {
		g.errorf("rule %q is already defined", name)
		return
	}
	g.nameIdx[name] = len(g.names)
	g.names = append(g.names, name)

	old := g.nb
	g.nb = &nodeBuilder{rule: name}
	stub()
	g.defs = append(g.defs, seqOf(g.nb.args))
	g.nb = old
}

// Literal matches one of the given literal strings, tried in order.
func (g *Grammar) Literal(s ...string) {
	if len(s) == 0 {
		g.errorf("Literal with no operands")
		return
	}
	g.emit(&gnode{kind: kLiteral, lits: s})
}

// Call matches the named rule at the current position.
func (g *Grammar) Call(name string) {
	g.calls[name] = true
	g.emit(&gnode{kind: kCall, name: name})
}

// Choice tries each alternative in order at the same position and
// matches the first that succeeds, undoing the consumed input and
// captures of failed attempts.
func (g *Grammar) Choice(stubs ...func()) {
	args := make([]*gnode, len(stubs))
	for i, stub := range stubs {
		args[i] = seqOf(g.buildStub(stub))
	}
	g.emit(&gnode{kind: kChoice, args: args})
}

// Optional matches stub if it matches, and otherwise matches nothing.
func (g *Grammar) Optional(stub func()) {
	g.emit(&gnode{kind: kOptional, args: g.buildStub(stub)})
}

// Repeat matches stub as many times as it will match, requiring at
// least min matches.
func (g *Grammar) Repeat(min int, stub func()) {
	g.emit(&gnode{kind: kRepeat, min: min, args: g.buildStub(stub)})
}

// Capture matches stub and, on success, records a Node named name
// covering the matched input. Captures inside stub become its
// children.
func (g *Grammar) Capture(name string, stub func()) {
	g.emit(&gnode{kind: kCapture, name: name, args: g.buildStub(stub)})
}

// Whitespace matches a possibly empty run of blanks, tabs, carriage
// returns, and newlines. It always succeeds.
func (g *Grammar) Whitespace() { g.emit(&gnode{kind: kWhitespace}) }

// Digits matches one or more decimal digits.
func (g *Grammar) Digits() { g.emit(&gnode{kind: kDigits}) }

// Until matches everything up to but not including the next occurrence
// of stop, possibly nothing. It fails if stop is absent from the rest
// of the input.
func (g *Grammar) Until(stop byte) { g.emit(&gnode{kind: kUntil, stop: stop}) }

func (g *Grammar) check() error {
	for name := range g.calls {
		if _, ok := g.nameIdx[name]; !ok {
			g.errorf("missing rule %q", name)
		}
	}
	for _, name := range g.names {
		if name != g.Start && !g.calls[name] {
			g.errorf("unused rule %q", name)
		}
	}
	if g.Start == "" {
		g.errorf("starting rule undefined")
	} else if _, ok := g.nameIdx[g.Start]; !ok {
		g.errorf("starting rule %q is missing", g.Start)
	}
	return errors.Join(g.errs...)
}

// A runner holds the state of one parse: the cursor, the capture
// stack, and the furthest failure seen so far for error reporting.
type runner struct {
	g      *Grammar
	c      *gammar.Cursor
	caps   []*Node
	far    int
	farErr error
}

type rule func(*runner) bool

func (r *runner) save() (int, int) { return r.c.Pos(), len(r.caps) }

func (r *runner) restore(pos, ncaps int) {
	r.c.Seek(pos)
	r.caps = r.caps[:ncaps]
}

// fail records a failure at the current position. The furthest failure
// wins; it is what the parse error will report.
func (r *runner) fail(err error) {
	if pos := r.c.Pos(); pos >= r.far {
		r.far, r.farErr = pos, err
	}
}

func (g *Grammar) compile() {
	g.rules = make([]rule, len(g.defs))
	for i, d := range g.defs {
		g.rules[i] = g.compileNode(d)
	}
	g.start = g.nameIdx[g.Start]
}

func (g *Grammar) compileSeq(args []*gnode) rule {
	rules := make([]rule, len(args))
	for i, a := range args {
		rules[i] = g.compileNode(a)
	}
	return func(r *runner) bool {
		for _, sub := range rules {
			if !sub(r) {
				return false
			}
		}
		return true
	}
}

func (g *Grammar) compileNode(n *gnode) rule {
	if n == nil {
		return func(*runner) bool { return true }
	}
	switch n.kind {
	case kLiteral:
		lits := n.lits
		return func(r *runner) bool {
			for _, lit := range lits {
				if r.c.Eat(lit) {
					return true
				}
			}
			r.fail(gammar.ErrUnexpectedToken)
			return false
		}
	case kCall:
		idx := g.nameIdx[n.name]
		return func(r *runner) bool { return r.g.rules[idx](r) }
	case kSeq:
		return g.compileSeq(n.args)
	case kChoice:
		alts := make([]rule, len(n.args))
		for i, a := range n.args {
			alts[i] = g.compileNode(a)
		}
		return func(r *runner) bool {
			for _, alt := range alts {
				pos, ncaps := r.save()
				if alt(r) {
					return true
				}
				r.restore(pos, ncaps)
			}
			return false
		}
	case kOptional:
		sub := g.compileSeq(n.args)
		return func(r *runner) bool {
			pos, ncaps := r.save()
			if !sub(r) {
				r.restore(pos, ncaps)
			}
			return true
		}
	case kRepeat:
		sub := g.compileSeq(n.args)
		min := n.min
		return func(r *runner) bool {
			count := 0
			for {
				pos, ncaps := r.save()
				if !sub(r) {
					r.restore(pos, ncaps)
					return count >= min
				}
				count++
			}
		}
	case kCapture:
		sub := g.compileSeq(n.args)
		name := n.name
		return func(r *runner) bool {
			start := r.c.Pos()
			ncaps := len(r.caps)
			if !sub(r) {
				return false // the enclosing operator restores
			}
			var children []*Node
			if extra := r.caps[ncaps:]; len(extra) > 0 {
				children = append(children, extra...)
			}
			node := &Node{
				Rule:     name,
				Span:     r.c.Span(start),
				Text:     r.c.Text(start, r.c.Pos()),
				Children: children,
			}
			r.caps = append(r.caps[:ncaps], node)
			return true
		}
	case kWhitespace:
		return func(r *runner) bool {
			r.c.SkipSpace()
			return true
		}
	case kDigits:
		return func(r *runner) bool {
			if _, ok := r.c.Digits(); !ok {
				r.fail(gammar.ErrUnexpectedToken)
				return false
			}
			return true
		}
	case kUntil:
		stop := n.stop
		return func(r *runner) bool {
			if _, ok := r.c.Until(stop); !ok {
				r.fail(gammar.ErrUnterminated)
				return false
			}
			return true
		}
	default:
		panic(fmt.Sprintf("unhandled grammar node %d", n.kind))
	}
}

// Parse matches the start rule against the entire input and returns
// the resulting concrete parse tree: a root Node named for the start
// rule whose children are the captures it matched. An input the
// grammar does not fully match yields a *gammar.ParseError at the
// furthest position recognition reached.
func (g *Grammar) Parse(data []byte) (*Node, error) {
	return g.parse(gammar.NewCursor(data))
}

// ParseString matches the start rule against s, as Parse.
func (g *Grammar) ParseString(s string) (*Node, error) {
	return g.parse(gammar.NewCursorString(s))
}

func (g *Grammar) parse(c *gammar.Cursor) (*Node, error) {
	r := &runner{g: g, c: c, far: -1}
	if g.rules[g.start](r) {
		if c.AtEOF() {
			return &Node{
				Rule:     g.Start,
				Span:     c.Span(0),
				Text:     c.Text(0, c.Pos()),
				Children: r.caps,
			}, nil
		}
		// The start rule matched a prefix of the input.
		if r.far >= c.Pos() && r.farErr != nil {
			return nil, gammar.Errorf(r.far, r.farErr, "trailing input after %q", g.Start)
		}
		return nil, gammar.Errorf(c.Pos(), gammar.ErrUnexpectedToken,
			"trailing input after %q", g.Start)
	}
	off, err := r.far, r.farErr
	if err == nil {
		off, err = c.Pos(), gammar.ErrUnexpectedToken
	}
	return nil, gammar.Errorf(off, err, "no match for %q", g.Start)
}
