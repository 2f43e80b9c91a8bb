// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package consoleargs binds a raw command-line string to the fields of a
// destination record and renders its help text.
//
// The record declares its arguments by implementing Declarer:
//
//	type Settings struct {
//	    Config     string
//	    Help       bool
//	    MetaFolder string
//	    Versions   []uint8
//	}
//
//	func (s *Settings) DeclareArgs(d *consoleargs.Declarations) {
//	    d.Usage("Generates recipes.", "[-h] [-c=<config file>] -m=<folder>")
//	    d.Arg(&s.Config, 'c', "Configuration file.", consoleargs.Long("config"))
//	    d.Arg(&s.Help, 'h', "Displays this help and then exits.", consoleargs.Long("help"))
//	    d.Arg(&s.MetaFolder, 'm', "Layer folder.", consoleargs.Required())
//	    d.Arg(&s.Versions, 's', "Major versions.", consoleargs.Long("versions"))
//	}
//
//	var s Settings
//	err := consoleargs.Populate(consoleargs.JoinArgs(os.Args[1:]), &s)
//
// # Command-line grammar
//
// A tag is one or two hyphens followed by a word starting with a letter.
// It is bound to the field whose key (a single letter, case-sensitive) or
// long key equals the word. Values follow "=", whitespace, or "=" with
// whitespace around it, and are separated by commas:
//
//	-m /tmp/meta
//	--config=/tmp/cfg.xml
//	--name="quoted value, with comma"
//	--versions=6,7,"8"
//	--help
//
// A bool field is a flag and takes no value. A slice field takes any
// number of values, including none. Every other field takes exactly one.
// A tag may appear only once.
//
// # Integer notations
//
// Integer fields accept binary ("1010b"), hexadecimal ("FFh", "0xFF") and
// decimal ("1_000") literals; see ParseUint.
//
// # Errors
//
// Problems with the declarations are reported as *DeclarationError.
// Problems with the command line are reported as *InvalidOperationError,
// which wraps one of the Err* sentinels and, when the position is known,
// carries a two-line pointer into the command line (see Context).
package consoleargs
