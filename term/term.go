// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package term defines the terms of the iota combinator calculus and
// implements their reduction to normal form.
//
// A term is an immutable binary tree. The surface language can express
// only the iota combinator and application, so terms built by the
// parser contain only Iota and App nodes; the combinators S and K
// arise during reduction and have no surface syntax.
package term

import "fmt"

// A Term is a term of the calculus. There are exactly four
// implementations: Iota, S, K, and App. All are comparable value
// types, so terms may be compared for structural equality with ==.
type Term interface {
	// ProgString returns the term in concrete syntax:
	// prefix application markers and combinator symbols,
	// space-separated. S and K render as "S" and "K" even
	// though the grammar cannot read them back.
	ProgString() string

	isTerm()
}

// Iota is the primitive combinator, written "i".
// Applied to x it yields x applied to S and then K: ix → xSK.
type Iota struct{}

// S is the substitution combinator. It is introduced by reduction
// of Iota and cannot be written in the surface syntax.
type S struct{}

// K is the constant combinator. Like S, it exists only in
// reduced terms.
type K struct{}

// App is the application of Left to Right. It owns both children;
// terms are trees, never shared graphs.
type App struct {
	Left, Right Term
}

func (Iota) ProgString() string { return "i" }
func (S) ProgString() string    { return "S" }
func (K) ProgString() string    { return "K" }

func (a App) ProgString() string {
	return fmt.Sprintf("* %s %s", a.Left.ProgString(), a.Right.ProgString())
}

func (Iota) isTerm() {}
func (S) isTerm()    {}
func (K) isTerm()    {}
func (App) isTerm()  {}
