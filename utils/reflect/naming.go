/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reflect

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"dirpx.dev/conv/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping pointers)
	// is not a named type (e.g., anonymous struct, func, interface{}).
	ErrReflectTypeNotNamed = errors.New("reflect: type is not named")
)

// Canonical renders t with every named type qualified by its full package
// path, so two distinct types never share a rendering. reflect.Type.String
// only uses the package name and is ambiguous across packages.
//
// Examples:
//
//	int                    -> "int"
//	geo.Pair[int,int]      -> "example.com/geo.Pair[int,int]"
//	[]*geo.Point           -> "[]*example.com/geo.Point"
//	map[string]geo.Point   -> "map[string]example.com/geo.Point"
func Canonical(t reflect.Type) string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	writeCanonical(&b, t)
	return b.String()
}

// writeCanonical appends the canonical form of t to b. Recursion stops at
// named types, so self-referential types terminate.
func writeCanonical(b *strings.Builder, t reflect.Type) {
	if t.Name() != "" {
		if p := t.PkgPath(); p != "" {
			b.WriteString(p)
			b.WriteByte('.')
		}
		b.WriteString(t.Name())
		return
	}

	switch t.Kind() {
	case reflect.Ptr:
		b.WriteByte('*')
		writeCanonical(b, t.Elem())
	case reflect.Slice:
		b.WriteString("[]")
		writeCanonical(b, t.Elem())
	case reflect.Array:
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(t.Len()))
		b.WriteByte(']')
		writeCanonical(b, t.Elem())
	case reflect.Map:
		b.WriteString("map[")
		writeCanonical(b, t.Key())
		b.WriteByte(']')
		writeCanonical(b, t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			b.WriteString("<-chan ")
		case reflect.SendDir:
			b.WriteString("chan<- ")
		default:
			b.WriteString("chan ")
		}
		writeCanonical(b, t.Elem())
	case reflect.Func:
		b.WriteString("func(")
		for i := 0; i < t.NumIn(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			if t.IsVariadic() && i == t.NumIn()-1 {
				b.WriteString("...")
				writeCanonical(b, t.In(i).Elem())
				continue
			}
			writeCanonical(b, t.In(i))
		}
		b.WriteByte(')')
		if n := t.NumOut(); n > 0 {
			b.WriteString(" (")
			for i := 0; i < n; i++ {
				if i > 0 {
					b.WriteByte(',')
				}
				writeCanonical(b, t.Out(i))
			}
			b.WriteByte(')')
		}
	case reflect.Struct:
		b.WriteString("struct{")
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if i > 0 {
				b.WriteByte(';')
			}
			// Unexported field names are package scoped.
			if f.PkgPath != "" {
				b.WriteString(f.PkgPath)
				b.WriteByte('.')
			}
			if f.Anonymous {
				b.WriteString("embedded ")
			}
			b.WriteString(f.Name)
			b.WriteByte(' ')
			writeCanonical(b, f.Type)
			if f.Tag != "" {
				b.WriteByte(' ')
				b.WriteString(strconv.Quote(string(f.Tag)))
			}
		}
		b.WriteByte('}')
	case reflect.Interface:
		b.WriteString("interface{")
		for i := 0; i < t.NumMethod(); i++ {
			m := t.Method(i)
			if i > 0 {
				b.WriteByte(';')
			}
			if m.PkgPath != "" {
				b.WriteString(m.PkgPath)
				b.WriteByte('.')
			}
			b.WriteString(m.Name)
			b.WriteByte(' ')
			writeCanonical(b, m.Type)
		}
		b.WriteByte('}')
	default:
		b.WriteString(t.String())
	}
}

// Origin returns the package-qualified name of the generic type t was
// instantiated from: "example.com/geo.Pair" for geo.Pair[int,int].
// Pointers are unwrapped up to config.DefaultMaxUnwrap levels. Non-generic
// named types yield their own qualified name.
func Origin(t reflect.Type) (string, error) {
	if t == nil {
		return "", ErrReflectNilType
	}
	for i := 0; t.Kind() == reflect.Ptr && t.Name() == "" && i < config.DefaultMaxUnwrap; i++ {
		t = t.Elem()
	}
	if t.Name() == "" {
		return "", ErrReflectTypeNotNamed
	}
	name := StripTypeParams(t.Name())
	if p := t.PkgPath(); p != "" {
		return p + "." + name, nil
	}
	return name, nil
}

// StripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func StripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
