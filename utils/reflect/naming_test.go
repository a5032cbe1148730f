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

package reflect_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	uref "dirpx.dev/conv/utils/reflect"
)

// Local test types.
type A struct{}
type G[T any] struct{}
type W[T, U any] struct{ V T }

var pkg = reflect.TypeFor[A]().PkgPath()

func TestCanonical(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"builtin", reflect.TypeFor[int](), "int"},
		{"named", reflect.TypeFor[A](), pkg + ".A"},
		{"ptr", reflect.TypeFor[*A](), "*" + pkg + ".A"},
		{"slice", reflect.TypeFor[[]A](), "[]" + pkg + ".A"},
		{"array", reflect.TypeFor[[3]int](), "[3]int"},
		{"map", reflect.TypeFor[map[string]A](), "map[string]" + pkg + ".A"},
		{"chan", reflect.TypeFor[chan int](), "chan int"},
		{"recv chan", reflect.TypeFor[<-chan int](), "<-chan int"},
		{"send chan", reflect.TypeFor[chan<- int](), "chan<- int"},
		{"func", reflect.TypeFor[func(int, ...string) (A, error)](), "func(int,...string) (" + pkg + ".A,error)"},
		{"struct", reflect.TypeFor[struct {
			X int `json:"x"`
		}](), `struct{X int "json:\"x\""}`},
		{"empty interface", reflect.TypeFor[any](), "interface{}"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := uref.Canonical(tc.typ); got != tc.want {
				t.Fatalf("Canonical(%v) = %q, want %q", tc.typ, got, tc.want)
			}
		})
	}
}

func TestCanonical_GenericCarriesPackage(t *testing.T) {
	got := uref.Canonical(reflect.TypeFor[G[A]]())
	if !strings.HasPrefix(got, pkg+".G[") {
		t.Fatalf("Canonical(G[A]) = %q, want prefix %q", got, pkg+".G[")
	}
	if uref.Canonical(reflect.TypeFor[G[int]]()) == uref.Canonical(reflect.TypeFor[G[string]]()) {
		t.Fatal("distinct instantiations share a canonical name")
	}
}

func TestCanonical_UnexportedFieldsArePackageScoped(t *testing.T) {
	got := uref.Canonical(reflect.TypeFor[struct{ x int }]())
	if !strings.Contains(got, pkg+".x int") {
		t.Fatalf("Canonical(struct{x int}) = %q, want package-qualified field", got)
	}
}

func TestCanonical_Nil(t *testing.T) {
	if got := uref.Canonical(nil); got != "" {
		t.Fatalf("Canonical(nil) = %q, want empty", got)
	}
}

func TestOrigin(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"plain", reflect.TypeFor[A](), pkg + ".A"},
		{"generic", reflect.TypeFor[G[int]](), pkg + ".G"},
		{"generic two params", reflect.TypeFor[W[int, string]](), pkg + ".W"},
		{"ptr to generic", reflect.TypeFor[*W[A, A]](), pkg + ".W"},
		{"double ptr", reflect.TypeFor[**G[int]](), pkg + ".G"},
		{"builtin", reflect.TypeFor[int](), "int"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Origin(tc.typ)
			if err != nil {
				t.Fatalf("Origin(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Origin(%v) = %q, want %q", tc.typ, got, tc.want)
			}
		})
	}
}

func TestOrigin_Errors(t *testing.T) {
	if _, err := uref.Origin(nil); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("Origin(nil): want ErrReflectNilType, got %v", err)
	}
	if _, err := uref.Origin(reflect.TypeFor[[]A]()); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("Origin([]A): want ErrReflectTypeNotNamed, got %v", err)
	}
	if _, err := uref.Origin(reflect.TypeFor[struct{}]()); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("Origin(struct{}): want ErrReflectTypeNotNamed, got %v", err)
	}
}

func TestStripTypeParams(t *testing.T) {
	cases := map[string]string{
		"T[int,string]": "T",
		"T":             "T",
		"":              "",
		"Pair[G[int]]":  "Pair",
	}
	for in, want := range cases {
		if got := uref.StripTypeParams(in); got != want {
			t.Errorf("StripTypeParams(%q) = %q, want %q", in, got, want)
		}
	}
}
