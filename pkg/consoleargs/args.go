// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoleargs

import (
	"strings"
	"unicode"
)

// JoinArgs rebuilds a command line from arguments the shell has already
// split, such as os.Args[1:]. Arguments containing whitespace are
// double-quoted so they stay one value; for "--tag=value" only the value is
// quoted.
func JoinArgs(args []string) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if !strings.ContainsFunc(arg, unicode.IsSpace) {
		return arg
	}
	if strings.HasPrefix(arg, "-") {
		tag, value, ok := strings.Cut(arg, "=")
		if ok && isTagWord(strings.TrimLeft(tag, "-")) {
			return tag + `="` + value + `"`
		}
	}
	return `"` + arg + `"`
}
