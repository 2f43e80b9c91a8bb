// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consoleargs

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Declarer is implemented by destination records. DeclareArgs registers the
// record's usage text and bindable fields; it is called once per Scan.
//
//	type Settings struct {
//	    Config string
//	    Help   bool
//	}
//
//	func (s *Settings) DeclareArgs(d *consoleargs.Declarations) {
//	    d.Usage("Does a thing.", "[-h] [-c=<config file>]")
//	    d.Arg(&s.Config, 'c', "Configuration file.", consoleargs.Long("config"))
//	    d.Arg(&s.Help, 'h', "Displays this help and then exits.", consoleargs.Long("help"))
//	}
type Declarer interface {
	DeclareArgs(d *Declarations)
}

// Arity is the number of values a field accepts.
type Arity int

const (
	Flag   Arity = iota // no value, sets a bool to true
	Single              // exactly one value
	Array               // any number of comma-separated values
)

func (a Arity) String() string {
	switch a {
	case Flag:
		return "flag"
	case Single:
		return "single"
	case Array:
		return "array"
	}
	return fmt.Sprintf("Arity(%d)", int(a))
}

// ArgOption customizes a field declaration.
type ArgOption func(*Field)

// Long sets the word alias of a field, bound by --word.
func Long(word string) ArgOption {
	return func(f *Field) { f.LongKey = word }
}

// Required marks a field as required in the help text.
func Required() ArgOption {
	return func(f *Field) { f.Required = true }
}

// Name sets the value placeholder shown in the help text.
func Name(name string) ArgOption {
	return func(f *Field) { f.Name = name }
}

// Field describes one bindable field of a destination record.
type Field struct {
	Key         rune
	LongKey     string
	Arity       Arity
	Required    bool
	Description string
	Name        string // placeholder for the value in help text
	Kind        Kind   // element kind; Bool for flags

	value reflect.Value // settable destination field
	elem  reflect.Type  // element type, differs from value.Type() for arrays
}

// Keys returns the tags that bind the field: the key and, if set, the long
// key.
func (f *Field) Keys() []string {
	keys := []string{string(f.Key)}
	if f.LongKey != "" {
		keys = append(keys, f.LongKey)
	}
	return keys
}

// Declarations collects the declarations made by a Declarer.
type Declarations struct {
	typeName string
	usages   int
	usage    string
	desc     string
	fields   []*Field
	errs     []error
}

// Usage sets the description and usage statement (synopsis) of the record.
func (d *Declarations) Usage(description, usage string) {
	d.usages++
	d.desc = description
	d.usage = usage
}

// Arg declares ptr, a pointer to a field of the destination record, as
// bindable by the single-letter key. The arity follows the field type: a
// bool is a flag, a slice is an array, anything else takes a single value.
func (d *Declarations) Arg(ptr any, key rune, description string, opts ...ArgOption) {
	label := fmt.Sprintf("%q", string(key))
	v := reflect.ValueOf(ptr)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() {
		d.fail(label, "argument must be a non-nil pointer to a field, got %T", ptr)
		return
	}

	f := &Field{
		Key:         key,
		Description: description,
		value:       v.Elem(),
		elem:        v.Elem().Type(),
		Arity:       Single,
	}
	for _, opt := range opts {
		opt(f)
	}

	switch {
	case f.elem.Kind() == reflect.Bool:
		f.Arity = Flag
	case f.elem.Kind() == reflect.Slice && kindOf(f.elem) != Text:
		f.Arity = Array
		f.elem = f.elem.Elem()
	}
	f.Kind = kindOf(f.elem)
	if f.Kind == Invalid {
		d.fail(label, "unsupported field type %s", v.Elem().Type())
		return
	}
	if f.Name == "" {
		f.Name = defaultName(f)
	}
	d.fields = append(d.fields, f)
}

func (d *Declarations) fail(field, format string, args ...any) {
	d.errs = append(d.errs, &DeclarationError{
		Type:   d.typeName,
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	})
}

func defaultName(f *Field) string {
	if f.LongKey == "" {
		return "value"
	}
	return f.LongKey
}

// Table is the validated declaration table of a destination record. It is
// immutable once returned by Scan.
type Table struct {
	usage  string
	desc   string
	fields []*Field
	byKey  map[string]*Field
}

// Usage returns the usage statement.
func (t *Table) Usage() string { return t.usage }

// Description returns the record description.
func (t *Table) Description() string { return t.desc }

// Fields returns the fields in declaration order.
func (t *Table) Fields() []*Field {
	return append([]*Field(nil), t.fields...)
}

// Lookup finds the field bound by tag, trying it as a key and a long key.
func (t *Table) Lookup(tag string) (*Field, bool) {
	f, ok := t.byKey[tag]
	return f, ok
}

// Scan collects the declarations of dst and validates them. The result
// binds to dst's fields, so a Table is only good for the record it was
// scanned from.
func Scan(dst Declarer) (*Table, error) {
	if dst == nil {
		return nil, &DeclarationError{Type: "<nil>", Reason: "destination record is nil"}
	}
	d := &Declarations{typeName: fmt.Sprintf("%T", dst)}
	dst.DeclareArgs(d)
	if len(d.errs) > 0 {
		return nil, d.errs[0]
	}

	switch {
	case d.usages == 0:
		return nil, &DeclarationError{Type: d.typeName, Reason: "no usage declaration"}
	case d.usages > 1:
		return nil, &DeclarationError{Type: d.typeName, Reason: fmt.Sprintf("%d usage declarations, want exactly one", d.usages)}
	case strings.TrimSpace(d.usage) == "":
		return nil, &DeclarationError{Type: d.typeName, Reason: "empty usage statement"}
	case strings.TrimSpace(d.desc) == "":
		return nil, &DeclarationError{Type: d.typeName, Reason: "empty description"}
	}

	t := &Table{
		usage:  d.usage,
		desc:   d.desc,
		fields: d.fields,
		byKey:  make(map[string]*Field, 2*len(d.fields)),
	}
	seen := make(map[uintptr]*Field, len(d.fields))
	for _, f := range d.fields {
		label := fmt.Sprintf("%q", string(f.Key))
		if !unicode.IsLetter(f.Key) {
			return nil, &DeclarationError{Type: d.typeName, Field: label, Reason: "key is not a letter"}
		}
		if f.LongKey != "" && !isTagWord(f.LongKey) {
			return nil, &DeclarationError{Type: d.typeName, Field: label, Reason: fmt.Sprintf("long key %q is not a word starting with a letter", f.LongKey)}
		}
		addr := f.value.Addr().Pointer()
		if prev, ok := seen[addr]; ok && prev.value.Type() == f.value.Type() {
			return nil, &DeclarationError{Type: d.typeName, Field: label, Reason: fmt.Sprintf("field already declared with key %q", string(prev.Key))}
		}
		seen[addr] = f
		for _, k := range f.Keys() {
			if prev, ok := t.byKey[k]; ok {
				return nil, &DeclarationError{Type: d.typeName, Field: label, Reason: fmt.Sprintf("key %q already used by %q", k, string(prev.Key))}
			}
			t.byKey[k] = f
		}
	}
	return t, nil
}

// isTagWord reports whether s can be written as a tag on the command line.
func isTagWord(s string) bool {
	loc := tagWordPattern.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}
