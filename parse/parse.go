// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse builds a term from a scanned token sequence.
// The grammar is
//
//	term ::= "i" | "*" term term
//
// and a program is exactly one term.
package parse

import (
	"fmt"

	"robpike.io/iota/scan"
	"robpike.io/iota/term"
)

// Error describes a parse failure. Msg is one of "empty program",
// "incomplete application", or "trailing tokens"; Line and Col locate
// the token at which the failure was detected, when there is one.
type Error struct {
	Msg  string
	Line int
	Col  int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse: %d:%d: %s", e.Line, e.Col, e.Msg)
	}
	return "parse: " + e.Msg
}

// Parser stores the state for the iota parser.
type Parser struct {
	tokens []scan.Token
	pos    int
}

// Parse parses the token sequence as a single term. It fails if the
// sequence is empty, if an application is missing a subterm, or if
// tokens remain after one complete term. On failure the returned term
// is nil; no partial tree is produced.
func Parse(tokens []scan.Token) (term.Term, error) {
	if len(tokens) == 0 {
		return nil, &Error{Msg: "empty program"}
	}
	p := &Parser{tokens: tokens}
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != scan.EOF {
		return nil, &Error{Msg: "trailing tokens", Line: tok.Line, Col: tok.Col}
	}
	return t, nil
}

// term parses one term:
//
//	term ::= "i" | "*" term term
//
// An "i" is a complete term by itself. A "*" demands two subterms,
// left parsed before right; if either is missing the application is
// incomplete.
func (p *Parser) term() (term.Term, error) {
	tok := p.next()
	switch tok.Type {
	case scan.Iota:
		return term.Iota{}, nil
	case scan.Star:
		left, err := p.term()
		if err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		return term.App{Left: left, Right: right}, nil
	case scan.EOF:
		return nil, &Error{Msg: "incomplete application", Line: tok.Line, Col: tok.Col}
	}
	return nil, &Error{Msg: fmt.Sprintf("unexpected token %s", tok), Line: tok.Line, Col: tok.Col}
}

func (p *Parser) next() scan.Token {
	tok := p.peek()
	if tok.Type != scan.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) peek() scan.Token {
	if p.pos >= len(p.tokens) {
		// Synthesize EOF at the position after the last real token.
		if n := len(p.tokens); n > 0 {
			last := p.tokens[n-1]
			return scan.Token{Type: scan.EOF, Line: last.Line, Col: last.Col + 1}
		}
		return scan.Token{Type: scan.EOF, Line: 1, Col: 1}
	}
	return p.tokens[p.pos]
}

// Tree formats a term in an unambiguous nested form for debugging.
// It generates the output for the "parse" debug flag.
func Tree(t term.Term) string {
	switch t := t.(type) {
	case term.App:
		return fmt.Sprintf("(%s %s)", Tree(t.Left), Tree(t.Right))
	case term.Iota, term.S, term.K:
		return t.ProgString()
	}
	return fmt.Sprintf("%T", t)
}
