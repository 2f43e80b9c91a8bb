// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoleargs

import (
	"regexp"
	"unicode/utf8"
)

const (
	tagStartClass = `\p{Lu}\p{Ll}\p{Lt}\p{Lm}\p{Lo}`
	tagRestClass  = tagStartClass + `\p{Nl}\p{Mn}\p{Mc}\p{Nd}\p{Pc}\p{Cf}`

	tagWord    = `[` + tagStartClass + `][` + tagRestClass + `]*`
	separator  = `(?:\s*=\s*|\s+)`
	firstValue = `(?:"([^"]*)"|([^-,\s][^,\s]*))`
	nextValue  = `\s*,\s*(?:"([^"]*)"|([^,\s]*))`
)

var (
	tagWordPattern = regexp.MustCompile(tagWord)

	// commandLinePattern matches one tag and the extent of its value list.
	// Group 1 is the tag word, group 2 the separator and values.
	commandLinePattern = regexp.MustCompile(
		`(?:^|\s)--?(` + tagWord + `)((?:` + separator + firstValue + `)(?:` + nextValue + `)*)?`)

	firstValuePattern = regexp.MustCompile(`^` + separator + firstValue)
	nextValuePattern  = regexp.MustCompile(`^` + nextValue)
)

// Match is one tag found on the command line.
type Match struct {
	Tag    string   // tag word without hyphens
	Offset int      // rune offset of Tag in the command line
	Values []string // raw values in source order, quotes removed
}

// Tokenize scans commandLine left to right for tags of the form
//
//	-tag value
//	--tag=value
//	--tag="quoted value"
//	--tag=v1,v2,"v3 with space"
//	--flag
//
// A tag must start the text or follow whitespace. One or two leading
// hyphens are equivalent. A tag that appears twice is an error wrapping
// ErrDuplicateTag. Text without any tag yields no matches.
func Tokenize(commandLine string) ([]Match, error) {
	var matches []Match
	seen := make(map[string]bool)
	for _, loc := range commandLinePattern.FindAllStringSubmatchIndex(commandLine, -1) {
		m := Match{
			Tag:    commandLine[loc[2]:loc[3]],
			Offset: utf8.RuneCountInString(commandLine[:loc[2]]),
		}
		if loc[4] >= 0 {
			m.Values = splitValues(commandLine[loc[4]:loc[5]])
		}
		if seen[m.Tag] {
			return nil, newOpError(commandLine, m, ErrDuplicateTag,
				"tag %q appears more than once on the command line", m.Tag)
		}
		seen[m.Tag] = true
		matches = append(matches, m)
	}
	return matches, nil
}

// splitValues splits the value list captured by commandLinePattern. The
// anchored patterns make the same choices as the full pattern, so the
// whole of s is consumed.
func splitValues(s string) []string {
	loc := firstValuePattern.FindStringSubmatchIndex(s)
	if loc == nil {
		return nil
	}
	values := []string{captured(s, loc)}
	s = s[loc[1]:]
	for s != "" {
		loc = nextValuePattern.FindStringSubmatchIndex(s)
		if loc == nil {
			break
		}
		values = append(values, captured(s, loc))
		s = s[loc[1]:]
	}
	return values
}

// captured returns the quoted group if it matched, otherwise the bare one.
func captured(s string, loc []int) string {
	if loc[2] >= 0 {
		return s[loc[2]:loc[3]]
	}
	return s[loc[4]:loc[5]]
}
