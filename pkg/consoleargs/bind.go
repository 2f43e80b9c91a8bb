// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoleargs

import (
	"encoding"
	"reflect"
)

// Options controls binding.
type Options struct {
	// IgnoreUnknown drops tags that match no declared field instead of
	// failing with ErrUnknownTag.
	IgnoreUnknown bool
}

// Populate binds commandLine to dst. Tags that match no declared field are
// an error; use PopulateOptions to ignore them.
func Populate(commandLine string, dst Declarer) error {
	return PopulateOptions(commandLine, dst, Options{})
}

// PopulateOptions scans dst, tokenizes commandLine and binds the matches.
// Fields whose tag does not appear keep their current value.
//
// The returned error is a *DeclarationError when dst's declarations are
// invalid and an *InvalidOperationError when the command line is.
func PopulateOptions(commandLine string, dst Declarer, opts Options) error {
	t, err := Scan(dst)
	if err != nil {
		return err
	}
	matches, err := Tokenize(commandLine)
	if err != nil {
		return err
	}
	return t.Bind(commandLine, matches, opts)
}

// Bind writes matches into the fields of the record t was scanned from.
// Every match is checked before any field is written; conversion errors
// can still leave earlier fields set.
func (t *Table) Bind(commandLine string, matches []Match, opts Options) error {
	type binding struct {
		f *Field
		m Match
	}
	var bindings []binding
	bound := make(map[*Field]Match, len(matches))
	for _, m := range matches {
		f, ok := t.Lookup(m.Tag)
		if !ok {
			if opts.IgnoreUnknown {
				continue
			}
			return newOpError(commandLine, m, ErrUnknownTag,
				"tag %q does not appear to be a valid command line argument", m.Tag)
		}
		if prev, ok := bound[f]; ok {
			return newOpError(commandLine, m, ErrDuplicateTag,
				"tag %q sets the same argument as tag %q", m.Tag, prev.Tag)
		}
		if err := checkArity(commandLine, f, m); err != nil {
			return err
		}
		bound[f] = m
		bindings = append(bindings, binding{f: f, m: m})
	}

	for _, b := range bindings {
		if err := b.f.set(b.m.Values); err != nil {
			return newOpError(commandLine, b.m, ErrConversion,
				"unable to set the argument for tag %q: %v", b.m.Tag, err)
		}
	}
	return nil
}

func checkArity(commandLine string, f *Field, m Match) error {
	n := len(m.Values)
	switch f.Arity {
	case Flag:
		if n > 0 {
			return newOpError(commandLine, m, ErrFlagValue,
				"tag %q is a flag, but a value was found after it", m.Tag)
		}
	case Single:
		if n == 0 {
			return newOpError(commandLine, m, ErrMissingValue,
				"tag %q takes a value, but no value was found after it (e.g. --tag <value> or --tag=<value>)", m.Tag)
		}
		if n > 1 {
			return newOpError(commandLine, m, ErrTooManyValues,
				"tag %q takes a single value, but %d values were found after it; only one value is permitted", m.Tag, n)
		}
	}
	return nil
}

func (f *Field) set(values []string) error {
	switch f.Arity {
	case Flag:
		f.value.SetBool(true)
	case Single:
		v, err := f.convert(values[0])
		if err != nil {
			return err
		}
		f.value.Set(v)
	case Array:
		s := reflect.MakeSlice(f.value.Type(), len(values), len(values))
		for i, raw := range values {
			v, err := f.convert(raw)
			if err != nil {
				return err
			}
			s.Index(i).Set(v)
		}
		f.value.Set(s)
	}
	return nil
}

// convert turns raw into a value assignable to the field's element type.
func (f *Field) convert(raw string) (reflect.Value, error) {
	if f.Kind == Text {
		p := reflect.New(f.elem)
		if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw)); err != nil {
			return reflect.Value{}, err
		}
		return p.Elem(), nil
	}
	v, err := Convert(raw, f.Kind)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(v).Convert(f.elem), nil
}
