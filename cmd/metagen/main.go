// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command metagen resolves its settings from the command line, the
// environment and metagen.toml, and prints them as YAML.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/yeetrun/metagen/pkg/consoleargs"
	"github.com/yeetrun/metagen/pkg/env"
	"github.com/yeetrun/metagen/pkg/settings"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	programName      = "metagen"
	defaultHelpWidth = 80
	envLenient       = "METAGEN_LENIENT"
	envFormat        = "METAGEN_FORMAT"
)

var isTerminalFn = term.IsTerminal

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cwd, err := os.Getwd()
	if err != nil {
		printError(stderr, err)
		return 1
	}
	s, err := settings.Defaults(cwd)
	if err != nil {
		log.Printf("ignoring project file: %v", err)
	}

	opts := consoleargs.Options{IgnoreUnknown: os.Getenv(envLenient) == "1"}
	if err := consoleargs.PopulateOptions(consoleargs.JoinArgs(args), &s, opts); err != nil {
		printError(stderr, err)
		return 1
	}
	if s.Help {
		help, err := consoleargs.HelpText(&s, programName, helpWidth(stdout))
		if err != nil {
			printError(stderr, err)
			return 1
		}
		fmt.Fprint(stdout, help)
		return 0
	}
	if err := s.Validate(); err != nil {
		printError(stderr, err)
		return 1
	}

	if err := report(stdout, &s, os.Getenv(envFormat)); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

// report writes the resolved settings as YAML, or as NAME=value lines
// that a shell can source when format is "env".
func report(w io.Writer, s *settings.Settings, format string) error {
	switch format {
	case "", "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case "env":
		return env.Marshal(w, s)
	}
	return fmt.Errorf("unknown output format %q, want yaml or env", format)
}

// helpWidth is the terminal width when w is a terminal.
func helpWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultHelpWidth
	}
	fd := int(f.Fd())
	if !isTerminalFn(fd) {
		return defaultHelpWidth
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		return defaultHelpWidth
	}
	return cols
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("ERROR:"), err)
}
