// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoleargs

import (
	"strings"
	"unicode"
)

// contextWidth is the number of runes shown on each side of the offset.
const contextWidth = 20

// Context renders a two-line pointer into commandLine: up to twenty runes
// either side of offset, and a caret under offset. offset counts runes and
// is clamped to the text.
func Context(commandLine string, offset int) string {
	text := []rune(commandLine)
	offset = max(0, min(offset, len(text)))
	before := min(offset, contextWidth)
	after := min(len(text)-offset, contextWidth)

	shown := text[offset-before : offset+after]
	for i, r := range shown {
		// Keep the pointer on two lines.
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			shown[i] = ' '
		}
	}
	return string(shown) + "\n" + strings.Repeat(" ", before) + "^"
}
