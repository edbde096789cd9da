// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the configuration for an execution of iota.
// The zero value is ready to use.
package config

import (
	"io"
	"os"
)

// A Config holds the execution environment: where output goes, the
// interactive prompt, debugging settings, and the step bound applied
// to reductions that may not terminate.
type Config struct {
	prompt    string
	output    io.Writer
	errOutput io.Writer
	maxSteps  int
	debug     map[string]bool
}

// Output returns the writer used for program output.
// It defaults to standard output.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer to which program output is printed.
func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

// ErrOutput returns the writer used for error output.
// It defaults to standard error.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer to which error output is printed.
func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}

// Prompt returns the interactive prompt.
func (c *Config) Prompt() string {
	return c.prompt
}

// SetPrompt sets the interactive prompt.
func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// MaxSteps returns the maximum number of reduction steps to take
// before giving up on a term that has not reached normal form.
// Zero means no limit.
func (c *Config) MaxSteps() int {
	return c.maxSteps
}

// SetMaxSteps sets the reduction step bound. Zero means no limit.
func (c *Config) SetMaxSteps(n int) {
	c.maxSteps = n
}

// Debug reports whether the named debugging flag is set.
func (c *Config) Debug(flag string) bool {
	return c.debug[flag]
}

// SetDebug sets the value of the named debugging flag.
func (c *Config) SetDebug(flag string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[flag] = state
}
