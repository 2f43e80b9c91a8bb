// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env maps struct fields tagged `env:"NAME"` to environment
// variables.
package env

import (
	"fmt"
	"io"
	"reflect"
)

// Apply sets the string fields of the struct pointed to by dst from the
// variables named by their env tags. Unset or empty variables leave the
// field alone.
func Apply(dst any, getenv func(string) string) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("env: Apply needs a non-nil struct pointer, got %T", dst)
	}
	rv = rv.Elem()
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		name := rt.Field(i).Tag.Get("env")
		if name == "" {
			continue
		}
		field := rv.Field(i)
		if field.Kind() != reflect.String {
			return fmt.Errorf("env: field %s tagged %s is not a string", rt.Field(i).Name, name)
		}
		if v := getenv(name); v != "" {
			field.SetString(v)
		}
	}
	return nil
}

// Marshal writes NAME=value lines for the non-zero tagged fields of e.
func Marshal(o io.Writer, e any) error {
	re := reflect.ValueOf(e)
	if re.Kind() == reflect.Ptr {
		re = re.Elem()
	}
	if re.Kind() != reflect.Struct {
		return fmt.Errorf("env: Marshal needs a struct, got %T", e)
	}
	ret := re.Type()
	for i := 0; i < re.NumField(); i++ {
		field := re.Field(i)
		tag := ret.Field(i).Tag.Get("env")
		if tag == "" {
			continue
		}
		if field.IsZero() {
			continue
		}
		if _, err := fmt.Fprintf(o, "%s=%v\n", tag, field.Interface()); err != nil {
			return err
		}
	}
	return nil
}
