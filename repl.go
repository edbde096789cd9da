// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"robpike.io/iota/config"
	"robpike.io/iota/run"
)

const historyFile = ".iota_history"

// repl reads one program per line, printing its reduction trace.
// Line editing and history come from liner. EOF (Ctrl-D) exits;
// Ctrl-C abandons the current line.
func repl(conf *config.Config) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(conf.Prompt())
		if errors.Is(err, io.EOF) {
			return
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return
		}
		if line == "" {
			continue
		}
		run.Iota(conf, line, os.Stdout, os.Stderr)
		ln.AppendHistory(line)
	}
}
