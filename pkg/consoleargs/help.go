// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoleargs

import (
	"strings"
	"unicode"
)

const (
	sectionIndent = 4
	fieldIndent   = 8
	optionalMark  = "[Optional] - "
)

// HelpText scans dst and renders its help text for the program name,
// wrapped to width columns.
func HelpText(dst Declarer, name string, width int) (string, error) {
	t, err := Scan(dst)
	if err != nil {
		return "", err
	}
	return t.Help(name, width), nil
}

// Help renders the help text: NAME, SYNOPSIS and DESCRIPTION sections
// followed by one block per field. Wrapped lines are at most width runes
// long, except when a line has no room left at all; then the remaining
// text is written unwrapped.
func (t *Table) Help(name string, width int) string {
	var b strings.Builder
	section(&b, "NAME", name, width)
	section(&b, "SYNOPSIS", t.usage, width)
	section(&b, "DESCRIPTION", t.desc, width)

	if len(t.fields) == 0 {
		return b.String()
	}
	b.WriteString("OPTIONS\n")
	for _, f := range t.fields {
		b.WriteString(strings.Repeat(" ", sectionIndent))
		wrapLines(&b, keyString(f), width, sectionIndent, fieldIndent)

		text := f.Description
		if !f.Required {
			text = optionalMark + text
		}
		b.WriteString(strings.Repeat(" ", fieldIndent))
		wrapLines(&b, text, width, fieldIndent, fieldIndent)
	}
	return b.String()
}

func section(b *strings.Builder, title, text string, width int) {
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", sectionIndent))
	wrapLines(b, text, width, sectionIndent, sectionIndent)
	b.WriteString("\n")
}

// keyString renders the tags of f, e.g. "-c, --config=<config>".
func keyString(f *Field) string {
	var b strings.Builder
	b.WriteString("-")
	b.WriteRune(f.Key)
	if f.LongKey != "" {
		b.WriteString(", --")
		b.WriteString(f.LongKey)
	}
	switch f.Arity {
	case Single:
		b.WriteString("=<" + f.Name + ">")
	case Array:
		b.WriteString("=<" + f.Name + ">,...")
	}
	return b.String()
}

// wrapLines writes text starting at column pos, continuing on new lines
// indented by indent columns. Every line ends with a newline.
func wrapLines(b *strings.Builder, text string, width, pos, indent int) {
	rest := strings.TrimSpace(text)
	if rest == "" {
		b.WriteString("\n")
		return
	}
	for rest != "" {
		line, remaining := splitLine(rest, width-pos)
		if line == "" {
			if pos <= indent {
				// A new line has no more room than this one.
				b.WriteString(rest)
				b.WriteString("\n")
				return
			}
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", indent))
			pos = indent
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
		if remaining != "" {
			b.WriteString(strings.Repeat(" ", indent))
			pos = indent
		}
		rest = remaining
	}
}

// splitLine returns the longest prefix of text that fits in avail runes,
// broken at whitespace when possible and hyphenated otherwise, and the
// text left over. line is empty when nothing fits.
func splitLine(text string, avail int) (line, rest string) {
	r := []rune(strings.TrimSpace(text))
	if len(r) <= avail {
		return string(r), ""
	}
	if avail < 1 {
		return "", string(r)
	}
	// A space at index avail still leaves avail runes before it.
	for i := avail; i > 0; i-- {
		if unicode.IsSpace(r[i]) {
			return strings.TrimRightFunc(string(r[:i]), unicode.IsSpace),
				strings.TrimLeftFunc(string(r[i+1:]), unicode.IsSpace)
		}
	}
	if avail == 1 {
		// No room for a rune and a hyphen.
		return "", string(r)
	}
	return string(r[:avail-1]) + "-", string(r[avail-1:])
}
