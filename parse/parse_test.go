// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"errors"
	"testing"

	"robpike.io/iota/config"
	"robpike.io/iota/scan"
	"robpike.io/iota/term"
)

var testConf config.Config

func app(l, r term.Term) term.Term {
	return term.App{Left: l, Right: r}
}

func parseString(t *testing.T, src string) (term.Term, error) {
	t.Helper()
	tokens, err := scan.Tokens(&testConf, "test", src)
	if err != nil {
		t.Fatalf("scan %q: %v", src, err)
	}
	return Parse(tokens)
}

func TestParse(t *testing.T) {
	i := term.Iota{}
	tests := []struct {
		input string
		want  term.Term
	}{
		{"i", i},
		{"*ii", app(i, i)},
		{"**iii", app(app(i, i), i)},
		{"*i*ii", app(i, app(i, i))},
		{"*i*i*ii", app(i, app(i, app(i, i)))},
		{"* * i i * i i", app(app(i, i), app(i, i))},
	}
	for _, test := range tests {
		got, err := parseString(t, test.input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("Parse(%q) = %s; want %s", test.input, Tree(got), Tree(test.want))
		}
	}
}

// TestRoundTrip checks that rendering a surface term (one containing
// only i and application) and parsing it back reproduces the term.
func TestRoundTrip(t *testing.T) {
	i := term.Iota{}
	terms := []term.Term{
		i,
		app(i, i),
		app(app(i, i), i),
		app(i, app(i, app(i, i))),
		app(app(i, app(i, i)), app(app(i, i), i)),
	}
	for _, want := range terms {
		src := want.ProgString()
		got, err := parseString(t, src)
		if err != nil {
			t.Errorf("Parse(unparse(%s)): unexpected error: %v", src, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(unparse) = %s; want %s", Tree(got), Tree(want))
		}
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{"", "empty program"},
		{"  \n ", "empty program"},
		{"*", "incomplete application"},
		{"*i", "incomplete application"},
		{"**ii", "incomplete application"},
		{"ii", "trailing tokens"},
		{"*iii", "trailing tokens"},
		{"i*ii", "trailing tokens"},
	}
	for _, test := range tests {
		got, err := parseString(t, test.input)
		if err == nil {
			t.Errorf("Parse(%q) = %s; want error %q", test.input, Tree(got), test.msg)
			continue
		}
		if got != nil {
			t.Errorf("Parse(%q) returned a partial tree alongside the error", test.input)
		}
		var parseErr *Error
		if !errors.As(err, &parseErr) {
			t.Errorf("Parse(%q) error has type %T; want *parse.Error", test.input, err)
			continue
		}
		if parseErr.Msg != test.msg {
			t.Errorf("Parse(%q) = %q; want %q", test.input, parseErr.Msg, test.msg)
		}
	}
}

func TestTree(t *testing.T) {
	i := term.Iota{}
	got := Tree(app(app(i, i), app(term.S{}, term.K{})))
	want := "((i i) (S K))"
	if got != want {
		t.Errorf("Tree = %q; want %q", got, want)
	}
}
