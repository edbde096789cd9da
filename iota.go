// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"robpike.io/iota/config"
	"robpike.io/iota/run"
)

var (
	maxSteps = flag.Int("maxsteps", 0, "maximum number of reduction steps; 0 means no limit")
	prompt   = flag.String("prompt", "> ", "interactive prompt")
	debug    = flag.String("debug", "", "comma-separated debug flags: tokens, parse")
)

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("iota: ")

	flag.Usage = usage
	flag.Parse()

	conf.SetMaxSteps(*maxSteps)
	conf.SetPrompt(*prompt)
	for _, name := range strings.Split(*debug, ",") {
		switch name {
		case "":
		case "tokens", "parse":
			conf.SetDebug(name, true)
		default:
			log.Fatalf("unknown debug flag %q", name)
		}
	}

	switch flag.NArg() {
	case 0:
		if interactive() {
			repl(&conf)
			return
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		if !run.Iota(&conf, string(data), os.Stdout, os.Stderr) {
			os.Exit(1)
		}
	case 1:
		// The argument is a file if it can be read, otherwise the
		// program text itself.
		src := flag.Arg(0)
		if data, err := os.ReadFile(src); err == nil {
			src = string(data)
		}
		if !run.Iota(&conf, src, os.Stdout, os.Stderr) {
			os.Exit(1)
		}
	default:
		flag.Usage()
	}
}

// interactive reports whether standard input is a terminal.
func interactive() bool {
	info, err := os.Stdin.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: iota [options] [file | program]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
