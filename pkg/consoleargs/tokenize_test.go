// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoleargs

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Match
	}{
		{
			name: "two flags",
			in:   "-a -b",
			want: []Match{{Tag: "a", Offset: 1}, {Tag: "b", Offset: 4}},
		},
		{
			name: "double hyphen with equals",
			in:   "--config=/tmp/cfg.xml",
			want: []Match{{Tag: "config", Offset: 2, Values: []string{"/tmp/cfg.xml"}}},
		},
		{
			name: "space separator",
			in:   "-c /tmp/x",
			want: []Match{{Tag: "c", Offset: 1, Values: []string{"/tmp/x"}}},
		},
		{
			name: "several spaces",
			in:   "-c    /tmp/x",
			want: []Match{{Tag: "c", Offset: 1, Values: []string{"/tmp/x"}}},
		},
		{
			name: "equals surrounded by spaces",
			in:   "-c = x",
			want: []Match{{Tag: "c", Offset: 1, Values: []string{"x"}}},
		},
		{
			name: "quoted value keeps spaces and commas",
			in:   `--tag="quoted value, with comma"`,
			want: []Match{{Tag: "tag", Offset: 2, Values: []string{"quoted value, with comma"}}},
		},
		{
			name: "value list",
			in:   `--tag=v1,v2,"v3 with space"`,
			want: []Match{{Tag: "tag", Offset: 2, Values: []string{"v1", "v2", "v3 with space"}}},
		},
		{
			name: "spaces around commas",
			in:   "-a 1 , 2,  3",
			want: []Match{{Tag: "a", Offset: 1, Values: []string{"1", "2", "3"}}},
		},
		{
			name: "trailing comma gives empty value",
			in:   "-a 1,",
			want: []Match{{Tag: "a", Offset: 1, Values: []string{"1", ""}}},
		},
		{
			name: "empty quoted value",
			in:   `-a ""`,
			want: []Match{{Tag: "a", Offset: 1, Values: []string{""}}},
		},
		{
			name: "unterminated quote is a bare value",
			in:   `-a "abc`,
			want: []Match{{Tag: "a", Offset: 1, Values: []string{`"abc`}}},
		},
		{
			name: "text after closing quote is dropped",
			in:   `-a "x y"z -b`,
			want: []Match{{Tag: "a", Offset: 1, Values: []string{"x y"}}, {Tag: "b", Offset: 11}},
		},
		{
			name: "first value cannot start with a hyphen",
			in:   "-a -5",
			want: []Match{{Tag: "a", Offset: 1}},
		},
		{
			name: "hyphen inside a word is not a tag",
			in:   "file-name -x",
			want: []Match{{Tag: "x", Offset: 11}},
		},
		{
			name: "tags in any order",
			in:   "-m=/tmp/meta -c=/tmp/cfg.xml",
			want: []Match{
				{Tag: "m", Offset: 1, Values: []string{"/tmp/meta"}},
				{Tag: "c", Offset: 14, Values: []string{"/tmp/cfg.xml"}},
			},
		},
		{
			name: "unicode tags and rune offsets",
			in:   "-é x -ñ=ü",
			want: []Match{
				{Tag: "é", Offset: 1, Values: []string{"x"}},
				{Tag: "ñ", Offset: 6, Values: []string{"ü"}},
			},
		},
		{
			name: "tag words allow digits and underscores",
			in:   "--max_size2 10",
			want: []Match{{Tag: "max_size2", Offset: 2, Values: []string{"10"}}},
		},
		{
			name: "no tags",
			in:   "just some words",
		},
		{
			name: "empty",
			in:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.in)
			if err != nil {
				t.Fatalf("Tokenize(%q) error = %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("Tokenize(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestTokenizeDuplicateTag(t *testing.T) {
	for _, in := range []string{"-a 1 -a 2", "-a -a", "--a=x --a=x", `-a "1" -b -a`} {
		t.Run(in, func(t *testing.T) {
			_, err := Tokenize(in)
			if !errors.Is(err, ErrDuplicateTag) {
				t.Fatalf("Tokenize(%q) error = %v, want ErrDuplicateTag", in, err)
			}
			var oe *InvalidOperationError
			if !errors.As(err, &oe) {
				t.Fatalf("Tokenize(%q) error = %T, want *InvalidOperationError", in, err)
			}
			if oe.Tag != "a" {
				t.Errorf("Tag = %q, want %q", oe.Tag, "a")
			}
			if oe.Context == "" {
				t.Errorf("Context is empty")
			}
		})
	}
}

func TestTokenizeDuplicateOffset(t *testing.T) {
	_, err := Tokenize("-a 1 -a 2")
	var oe *InvalidOperationError
	if !errors.As(err, &oe) {
		t.Fatalf("error = %v, want *InvalidOperationError", err)
	}
	if oe.Offset != 6 {
		t.Fatalf("Offset = %d, want 6", oe.Offset)
	}
	if want := "-a 1 -a 2\n      ^"; oe.Context != want {
		t.Fatalf("Context = %q, want %q", oe.Context, want)
	}
}

func TestShortAndLongTagsAreDistinct(t *testing.T) {
	got, err := Tokenize("-c x --config y")
	if err != nil {
		t.Fatalf("Tokenize error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
}
