// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Iota is an evaluator for the iota combinator calculus, a language with
one combinator and one operation. A program is a single term:

	term ::= "i" | "*" term term

"i" is the iota combinator and "*" applies the term that follows it to
the term after that, so "*ii" is i applied to itself. Whitespace may
separate tokens and is otherwise ignored; no other characters are legal.

Evaluation rewrites the term one step at a time, outermost-leftmost
first, and prints every intermediate term until no rule applies:

	ix   → xSK
	Kxy  → x
	Sxyz → xz(yz)

S and K cannot be written in a program; they appear only in printed
intermediate terms, where they render as "S" and "K".

Usage:

	iota [options] [file | program]

With an argument, iota runs the program in the named file, or, if no
such file can be read, treats the argument itself as the program. With
no argument it reads programs from standard input, interactively (one
per line) when standard input is a terminal.

Some terms never reach normal form; the -maxsteps flag bounds how many
steps are printed before giving up.
*/
package main
