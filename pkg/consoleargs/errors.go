// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoleargs

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by InvalidOperationError. Use errors.Is to test
// for them.
var (
	ErrDuplicateTag  = errors.New("duplicate tag")
	ErrUnknownTag    = errors.New("unknown tag")
	ErrFlagValue     = errors.New("flag given a value")
	ErrMissingValue  = errors.New("missing value")
	ErrTooManyValues = errors.New("too many values")
	ErrConversion    = errors.New("value conversion failed")
)

// DeclarationError reports a structural problem with a destination type's
// declarations. It is a programming error, never caused by user input.
type DeclarationError struct {
	Type   string // Go type of the destination record
	Field  string // offending field, empty for type-level problems
	Reason string
}

func (e *DeclarationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid argument declarations on %s: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("invalid argument declaration %s on %s: %s", e.Field, e.Type, e.Reason)
}

// InvalidOperationError is returned when the command line cannot be
// tokenized or bound to the destination record.
type InvalidOperationError struct {
	Tag    string // tag text without leading hyphens
	Offset int    // rune offset of the tag in the command line, -1 if unknown
	Msg    string
	// Context is the two-line pointer into the command line produced by
	// Context. Empty when Offset is unknown.
	Context string
	Err     error // one of the Err* sentinels
}

func (e *InvalidOperationError) Error() string {
	if e.Context == "" {
		return e.Msg
	}
	return e.Msg + "\n" + e.Context
}

func (e *InvalidOperationError) Unwrap() error {
	return e.Err
}

func newOpError(commandLine string, m Match, sentinel error, format string, args ...any) *InvalidOperationError {
	return &InvalidOperationError{
		Tag:     m.Tag,
		Offset:  m.Offset,
		Msg:     fmt.Sprintf(format, args...),
		Context: Context(commandLine, m.Offset),
		Err:     sentinel,
	}
}

// OverflowError is returned when a binary literal has more digits than the
// target integer width.
type OverflowError struct {
	Literal string
	Bits    int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("binary value %q is larger than the %d bits allowed for this type", e.Literal, e.Bits)
}

// RangeError is returned when a literal is outside the range of the target
// integer type.
type RangeError struct {
	Literal string
	Min     string
	Max     string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value %q is out of range, must be between %s and %s", e.Literal, e.Min, e.Max)
}

// SyntaxError is returned when a literal cannot be read as the target kind.
type SyntaxError struct {
	Literal string
	Kind    Kind
	Err     error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s value %q: %v", e.Kind, e.Literal, e.Err)
	}
	return fmt.Sprintf("invalid %s value %q", e.Kind, e.Literal)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
