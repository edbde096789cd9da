// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import "iter"

// Step performs one reduction step on t, returning the next term and
// true, or t unchanged and false if t is in normal form.
//
// The strategy is outermost-leftmost: the computation rules are tried
// at the root, in order,
//
//	ix  → xSK
//	Kxy → x
//	Sxyz → xz(yz)
//
// and only if none applies does reduction descend into an application,
// left child before right. One call rewrites exactly one redex, so
// repeated calls trace a single canonical reduction path. Step is pure
// and never fails; a term that cannot be reduced is simply returned
// with false.
func Step(t Term) (Term, bool) {
	app, ok := t.(App)
	if !ok {
		// Iota, S, and K alone are irreducible.
		return t, false
	}
	// Rule 1: ix → xSK.
	if _, ok := app.Left.(Iota); ok {
		return App{App{app.Right, S{}}, K{}}, true
	}
	if l, ok := app.Left.(App); ok {
		// Rule 2: Kxy → x. The second argument is discarded.
		if _, ok := l.Left.(K); ok {
			return l.Right, true
		}
		// Rule 3: Sxyz → xz(yz).
		if ll, ok := l.Left.(App); ok {
			if _, ok := ll.Left.(S); ok {
				x, y, z := ll.Right, l.Right, app.Right
				return App{App{x, z}, App{y, z}}, true
			}
		}
	}
	// Congruence: reduce the left child if possible, otherwise the right.
	if left, ok := Step(app.Left); ok {
		return App{left, app.Right}, true
	}
	if right, ok := Step(app.Right); ok {
		return App{app.Left, right}, true
	}
	return t, false
}

// Steps returns the reduction sequence of t: t itself, then each
// successive term produced by Step, ending with the normal form if
// one is reached. The sequence is computed lazily, one element per
// pull, and is infinite for a term that never normalizes; the caller
// bounds such a reduction by simply not ranging further.
func Steps(t Term) iter.Seq[Term] {
	return func(yield func(Term) bool) {
		for {
			if !yield(t) {
				return
			}
			next, ok := Step(t)
			if !ok {
				return
			}
			t = next
		}
	}
}
