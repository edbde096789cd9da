// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for iota.
// It is factored out of main so it can be used for tests.
package run

import (
	"fmt"
	"io"

	"robpike.io/iota/config"
	"robpike.io/iota/parse"
	"robpike.io/iota/scan"
	"robpike.io/iota/term"
)

// Parse scans and parses the program src, returning the term it
// denotes. The name is used in debug output only. A scan failure
// prevents parsing: the error is the typed *scan.Error or
// *parse.Error of the phase that failed.
func Parse(conf *config.Config, name, src string) (term.Term, error) {
	tokens, err := scan.Tokens(conf, name, src)
	if err != nil {
		return nil, err
	}
	t, err := parse.Parse(tokens)
	if err != nil {
		return nil, err
	}
	if conf.Debug("parse") {
		fmt.Fprintln(conf.Output(), parse.Tree(t))
	}
	return t, nil
}

// Trace parses the program src and writes its reduction sequence to
// the configured output, one term per line in concrete syntax,
// starting with the term itself and ending with its normal form.
// If the configured step bound stops an unfinished reduction, a
// diagnostic goes to the error output; that is the only notice a
// diverging term produces.
func Trace(conf *config.Config, name, src string) error {
	t, err := Parse(conf, name, src)
	if err != nil {
		return err
	}
	w := conf.Output()
	n := 0
	for u := range term.Steps(t) {
		fmt.Fprintln(w, u.ProgString())
		n++
		if max := conf.MaxSteps(); max > 0 && n >= max {
			if _, reduced := term.Step(u); reduced {
				fmt.Fprintf(conf.ErrOutput(), "%s: stopped after %d steps\n", name, n)
			}
			return nil
		}
	}
	return nil
}

// Iota runs the program src, writing the reduction trace to stdout
// and error reports to stderr. It rebinds the configuration's writers
// for the duration of the call. The return value reports whether the
// run completed without error.
func Iota(conf *config.Config, src string, stdout, stderr io.Writer) bool {
	savedOut, savedErr := conf.Output(), conf.ErrOutput()
	conf.SetOutput(stdout)
	conf.SetErrOutput(stderr)
	defer func() {
		conf.SetOutput(savedOut)
		conf.SetErrOutput(savedErr)
	}()
	if err := Trace(conf, "<iota>", src); err != nil {
		fmt.Fprintln(stderr, err)
		return false
	}
	return true
}
