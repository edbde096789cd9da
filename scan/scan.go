// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan tokenizes iota source text. The language has two
// tokens, "*" and "i"; whitespace separates them and anything else is
// an error.
package scan

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"robpike.io/iota/config"
)

// Token represents a token returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Line int    // The line number on which this token appears.
	Col  int    // The column (in runes) at which it appears.
	Text string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF  Type = iota // zero value so an exhausted scanner delivers EOF
	Star             // '*', the application marker
	Iota             // 'i', the primitive combinator
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Star:
		return "*"
	case Iota:
		return "i"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (i Token) String() string {
	if i.Type == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

// Error describes a scan failure: an input character that is not
// "*", "i", or whitespace. Scanning stops at the offending character;
// no tokens after it are produced.
type Error struct {
	Char rune
	Line int
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("scan: %d:%d: unrecognized character %#U", e.Line, e.Col, e.Char)
}

// Scanner holds the state of the scanner.
type Scanner struct {
	conf  *config.Config
	name  string // the name of the input; used only for debug reports
	input string
	pos   int // byte offset of the next rune
	line  int
	col   int
}

// New creates and returns a new scanner for the input text.
func New(conf *config.Config, name, input string) *Scanner {
	return &Scanner{
		conf:  conf,
		name:  name,
		input: input,
		line:  1,
		col:   1,
	}
}

// Next returns the next token, or an *Error if the input contains a
// character outside the language. At end of input it returns an EOF
// token.
func (l *Scanner) Next() (Token, error) {
	for l.pos < len(l.input) {
		r, w := utf8.DecodeRuneInString(l.input[l.pos:])
		line, col := l.line, l.col
		l.pos += w
		if r == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		switch {
		case r == '*':
			return l.emit(Star, line, col, "*"), nil
		case r == 'i':
			return l.emit(Iota, line, col, "i"), nil
		case unicode.IsSpace(r):
			// Whitespace separates tokens but is never emitted.
		default:
			return Token{}, &Error{Char: r, Line: line, Col: col}
		}
	}
	return Token{Type: EOF, Line: l.line, Col: l.col, Text: "EOF"}, nil
}

// emit passes a token back to the client.
func (l *Scanner) emit(typ Type, line, col int, text string) Token {
	tok := Token{typ, line, col, text}
	if l.conf != nil && l.conf.Debug("tokens") {
		fmt.Fprintf(l.conf.Output(), "%s:%d: emit %s\n", l.name, line, tok)
	}
	return tok
}

// Tokens scans src and returns all its tokens in source order.
// Empty input yields no tokens and no error. On an invalid character
// Tokens returns a nil slice and the *Error; it never returns a
// partial token list.
func Tokens(conf *config.Config, name, src string) ([]Token, error) {
	l := New(conf, name, src)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
