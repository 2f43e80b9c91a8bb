// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoleargs

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestParseUint(t *testing.T) {
	tests := []struct {
		raw  string
		bits int
		want uint64
	}{
		{"255", 8, 255},
		{"0xFF", 8, 255},
		{"0Xff", 16, 255},
		{"FFh", 8, 255},
		{"ffH", 16, 255},
		{"11111111b", 8, 255},
		{"1111_0000B", 8, 240},
		{"1_000", 16, 1000},
		{"1,000", 16, 1000},
		{"100b", 8, 4},
		{"100", 8, 100},
		{"0x1b", 8, 27},
		{"1bh", 8, 27},
		{"0xFF_FF", 16, 65535},
		{"+42", 8, 42},
		{"-0", 8, 0},
		{" 7 ", 8, 7},
		{"FFFF_FFFFh", 32, math.MaxUint32},
		{"18446744073709551615", 64, math.MaxUint64},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseUint(tt.raw, tt.bits)
			if err != nil {
				t.Fatalf("ParseUint(%q, %d) error = %v", tt.raw, tt.bits, err)
			}
			if got != tt.want {
				t.Fatalf("ParseUint(%q, %d) = %d, want %d", tt.raw, tt.bits, got, tt.want)
			}
		})
	}
}

func TestParseUintErrors(t *testing.T) {
	tests := []struct {
		raw  string
		bits int
		want any // pointer to the expected error type
	}{
		{"100000000b", 8, new(*OverflowError)},
		{"1_0000_0000_0000_0000b", 16, new(*OverflowError)},
		{"256", 8, new(*RangeError)},
		{"-1", 8, new(*RangeError)},
		{"0x100", 8, new(*RangeError)},
		{"1_0000h", 16, new(*RangeError)},
		{"12ab", 8, new(*SyntaxError)},
		{"FFb", 8, new(*SyntaxError)},
		{"", 8, new(*SyntaxError)},
		{"b", 8, new(*SyntaxError)},
		{"-x", 8, new(*SyntaxError)},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := ParseUint(tt.raw, tt.bits)
			if err == nil {
				t.Fatalf("ParseUint(%q, %d) succeeded, want error", tt.raw, tt.bits)
			}
			if !errors.As(err, tt.want) {
				t.Fatalf("ParseUint(%q, %d) error = %T (%v), want %s", tt.raw, tt.bits, err, err, reflect.TypeOf(tt.want).Elem())
			}
		})
	}
}

func TestParseUintErrorMessages(t *testing.T) {
	_, err := ParseUint("100000000b", 8)
	var oe *OverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("error = %v, want *OverflowError", err)
	}
	if oe.Literal != "100000000b" || oe.Bits != 8 {
		t.Fatalf("OverflowError = %+v, want literal 100000000b and 8 bits", oe)
	}

	_, err = ParseUint("70000", 16)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want *RangeError", err)
	}
	if re.Min != "0" || re.Max != "65535" {
		t.Fatalf("RangeError = %+v, want 0..65535", re)
	}
}

func TestParseUintInvalidBits(t *testing.T) {
	for _, bits := range []int{0, 65, -8} {
		if _, err := ParseUint("1", bits); err == nil {
			t.Errorf("ParseUint(1, %d) succeeded, want error", bits)
		}
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		raw  string
		bits int
		want int64
	}{
		{"-128", 8, -128},
		{"127", 8, 127},
		{"FFh", 8, -1},
		{"0x7F", 8, 127},
		{"10000000b", 8, -128},
		{"0111_1111b", 8, 127},
		{"1_000", 16, 1000},
		{"-1,000", 16, -1000},
		{"+5", 32, 5},
		{"0xFFFF_FFFF_FFFF_FFFF", 64, -1},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseInt(tt.raw, tt.bits)
			if err != nil {
				t.Fatalf("ParseInt(%q, %d) error = %v", tt.raw, tt.bits, err)
			}
			if got != tt.want {
				t.Fatalf("ParseInt(%q, %d) = %d, want %d", tt.raw, tt.bits, got, tt.want)
			}
		})
	}
}

func TestParseIntRange(t *testing.T) {
	_, err := ParseInt("128", 8)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("ParseInt(128, 8) error = %v, want *RangeError", err)
	}
	if re.Min != "-128" || re.Max != "127" {
		t.Fatalf("RangeError = %+v, want -128..127", re)
	}

	var oe *OverflowError
	if _, err := ParseInt("1_0000_0000b", 8); !errors.As(err, &oe) {
		t.Fatalf("ParseInt(1_0000_0000b, 8) error = %v, want *OverflowError", err)
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		raw  string
		kind Kind
		want any
	}{
		{"FFh", Uint8, uint8(255)},
		{"0xFFFF", Uint16, uint16(65535)},
		{"1_000_000", Uint32, uint32(1000000)},
		{"1b", Uint64, uint64(1)},
		{"42", Uint, uint(42)},
		{"-42", Int8, int8(-42)},
		{"0x7FFF", Int16, int16(32767)},
		{"-5", Int32, int32(-5)},
		{"5", Int64, int64(5)},
		{"-7", Int, -7},
		{"1.5", Float64, 1.5},
		{"0.25", Float32, float32(0.25)},
		{"true", Bool, true},
		{" spaced, value ", String, " spaced, value "},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.raw, func(t *testing.T) {
			got, err := Convert(tt.raw, tt.kind)
			if err != nil {
				t.Fatalf("Convert(%q, %s) error = %v", tt.raw, tt.kind, err)
			}
			if got != tt.want {
				t.Fatalf("Convert(%q, %s) = %#v, want %#v", tt.raw, tt.kind, got, tt.want)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		raw  string
		kind Kind
	}{
		{"x", Float32},
		{"1e400", Float64},
		{"maybe", Bool},
		{"300", Uint8},
		{"abc", Int},
		{"x", Text},
		{"x", Invalid},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.raw, func(t *testing.T) {
			if got, err := Convert(tt.raw, tt.kind); err == nil {
				t.Fatalf("Convert(%q, %s) = %#v, want error", tt.raw, tt.kind, got)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		Uint16:   "uint16",
		Text:     "text",
		Invalid:  "invalid",
		Kind(99): "Kind(99)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
