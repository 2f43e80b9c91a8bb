// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoleargs

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Kind is the element type of a bindable field.
type Kind int

const (
	Invalid Kind = iota
	Bool
	String
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	// Text is any type whose pointer implements encoding.TextUnmarshaler.
	// Enumerated symbol types are declared this way.
	Text
)

var kindNames = [...]string{
	Invalid: "invalid",
	Bool:    "bool",
	String:  "string",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint:    "uint",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	Text:    "text",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Bits returns the width of an integer or float kind, 0 otherwise.
func (k Kind) Bits() int {
	switch k {
	case Int, Uint:
		return strconv.IntSize
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	}
	return 0
}

func (k Kind) signed() bool {
	return k >= Int && k <= Int64
}

func (k Kind) unsigned() bool {
	return k >= Uint && k <= Uint64
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// kindOf maps a Go type to its element Kind.
func kindOf(t reflect.Type) Kind {
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return Text
	}
	switch t.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.String:
		return String
	case reflect.Int:
		return Int
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Uint:
		return Uint
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	}
	return Invalid
}

// Convert converts a raw command-line value into a value of the given kind.
// The returned value has the matching Go type (uint8 for Uint8 and so on).
// Text values need a destination and are handled by the binder.
func Convert(raw string, kind Kind) (any, error) {
	switch {
	case kind.unsigned():
		v, err := ParseUint(raw, kind.Bits())
		if err != nil {
			return nil, err
		}
		switch kind {
		case Uint8:
			return uint8(v), nil
		case Uint16:
			return uint16(v), nil
		case Uint32:
			return uint32(v), nil
		case Uint64:
			return v, nil
		}
		return uint(v), nil
	case kind.signed():
		v, err := ParseInt(raw, kind.Bits())
		if err != nil {
			return nil, err
		}
		switch kind {
		case Int8:
			return int8(v), nil
		case Int16:
			return int16(v), nil
		case Int32:
			return int32(v), nil
		case Int64:
			return v, nil
		}
		return int(v), nil
	}

	switch kind {
	case String:
		return raw, nil
	case Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, &SyntaxError{Literal: raw, Kind: kind}
		}
		return b, nil
	case Float32, Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), kind.Bits())
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, &RangeError{Literal: raw, Min: floatMin(kind), Max: floatMax(kind)}
			}
			return nil, &SyntaxError{Literal: raw, Kind: kind}
		}
		if kind == Float32 {
			return float32(f), nil
		}
		return f, nil
	}
	return nil, fmt.Errorf("cannot convert %q to %s", raw, kind)
}

// ParseUint reads raw as an unsigned integer of the given bit size. The
// notations are tried in order: binary with a trailing b ("1010b"),
// hexadecimal with a trailing h ("FFh"), hexadecimal with a 0x prefix
// ("0xFF"), and finally decimal. Underscores may separate digits in every
// notation; decimal values may also use commas.
//
// A radix notation is only taken when the remaining characters are valid
// digits for that radix, so "100b" is four while "0x1b" is twenty-seven.
func ParseUint(raw string, bits int) (uint64, error) {
	if bits < 1 || bits > 64 {
		return 0, fmt.Errorf("invalid bit size %d", bits)
	}
	if v, ok, err := parseRadix(raw, bits); ok {
		return v, err
	}

	s := strings.TrimSpace(stripSeparators(raw, "_,"))
	s = strings.TrimPrefix(s, "+")
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		if !isDigits(rest, 10) {
			return 0, &SyntaxError{Literal: raw, Kind: uintKind(bits)}
		}
		if strings.Trim(rest, "0") == "" {
			return 0, nil
		}
		return 0, &RangeError{Literal: raw, Min: "0", Max: strconv.FormatUint(maxUint(bits), 10)}
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &RangeError{Literal: raw, Min: "0", Max: strconv.FormatUint(maxUint(bits), 10)}
		}
		return 0, &SyntaxError{Literal: raw, Kind: uintKind(bits)}
	}
	return v, nil
}

// ParseInt reads raw as a signed integer of the given bit size. It accepts
// the notations of ParseUint. Binary and hexadecimal literals give the raw
// two's complement bit pattern, so "FFh" is -1 for an 8-bit target. Sign
// handling of decimal values is left to strconv.
func ParseInt(raw string, bits int) (int64, error) {
	if bits < 1 || bits > 64 {
		return 0, fmt.Errorf("invalid bit size %d", bits)
	}
	if u, ok, err := parseRadix(raw, bits); ok {
		if err != nil {
			return 0, err
		}
		shift := 64 - bits
		return int64(u<<shift) >> shift, nil
	}

	s := strings.TrimSpace(stripSeparators(raw, "_,"))
	v, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			lo := int64(-1) << (bits - 1)
			hi := -(lo + 1)
			return 0, &RangeError{Literal: raw, Min: strconv.FormatInt(lo, 10), Max: strconv.FormatInt(hi, 10)}
		}
		return 0, &SyntaxError{Literal: raw, Kind: intKind(bits)}
	}
	return v, nil
}

// parseRadix decodes the binary and hexadecimal notations. ok reports
// whether raw used one of them.
func parseRadix(raw string, bits int) (v uint64, ok bool, err error) {
	s := strings.TrimSpace(raw)
	n := len(s)
	if n > 1 {
		switch s[n-1] {
		case 'b', 'B':
			digits := stripSeparators(s[:n-1], "_")
			if isDigits(digits, 2) {
				v, err := binaryValue(raw, digits, bits)
				return v, true, err
			}
		case 'h', 'H':
			digits := stripSeparators(s[:n-1], "_")
			if isDigits(digits, 16) {
				v, err := hexValue(raw, digits, bits)
				return v, true, err
			}
		}
	}
	if n > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		digits := stripSeparators(s[2:], "_")
		if isDigits(digits, 16) {
			v, err := hexValue(raw, digits, bits)
			return v, true, err
		}
	}
	return 0, false, nil
}

// binaryValue assembles digits most significant bit first.
func binaryValue(raw, digits string, bits int) (uint64, error) {
	if len(digits) > bits {
		return 0, &OverflowError{Literal: raw, Bits: bits}
	}
	var v uint64
	for i := 0; i < len(digits); i++ {
		v <<= 1
		if digits[i] == '1' {
			v |= 1
		}
	}
	return v, nil
}

func hexValue(raw, digits string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(digits, 16, bits)
	if err != nil {
		return 0, &RangeError{Literal: raw, Min: "0", Max: "0x" + strings.ToUpper(strconv.FormatUint(maxUint(bits), 16))}
	}
	return v, nil
}

func stripSeparators(s, seps string) string {
	if !strings.ContainsAny(s, seps) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(seps, r) {
			return -1
		}
		return r
	}, s)
}

// isDigits reports whether s is non-empty and made only of digits valid in
// the given base (2, 10 or 16).
func isDigits(s string, base int) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '0' || c == '1':
		case c >= '2' && c <= '9':
			if base < 10 {
				return false
			}
		case (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F'):
			if base < 16 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func maxUint(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return 1<<bits - 1
}

func uintKind(bits int) Kind {
	switch bits {
	case 8:
		return Uint8
	case 16:
		return Uint16
	case 32:
		return Uint32
	}
	return Uint64
}

func intKind(bits int) Kind {
	switch bits {
	case 8:
		return Int8
	case 16:
		return Int16
	case 32:
		return Int32
	}
	return Int64
}

func floatMax(k Kind) string {
	if k == Float32 {
		return strconv.FormatFloat(math.MaxFloat32, 'g', -1, 32)
	}
	return strconv.FormatFloat(math.MaxFloat64, 'g', -1, 64)
}

func floatMin(k Kind) string {
	return "-" + floatMax(k)
}
