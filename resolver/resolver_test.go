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

package resolver_test

import (
	"reflect"
	"testing"

	"dirpx.dev/conv/apis"
	"dirpx.dev/conv/resolver"
)

type Pair[A, B any] struct{}

type branded[T any] struct{}

func (branded[T]) ShapeFamily() string { return "brand" }

type fixed struct {
	family string
	ok     bool
}

func (f fixed) TryFamily(reflect.Type) (string, bool) { return f.family, f.ok }

func TestChain_FirstHandledWins(t *testing.T) {
	res := resolver.New(nil, fixed{"", false}, fixed{"second", true}, fixed{"third", true})
	if got := res.ResolveFamily(reflect.TypeFor[int]()); got != "second" {
		t.Fatalf("ResolveFamily = %q, want second", got)
	}
}

func TestChain_Empty(t *testing.T) {
	res := resolver.New()
	if got := res.ResolveFamily(reflect.TypeFor[int]()); got != "" {
		t.Fatalf("ResolveFamily = %q, want empty", got)
	}
}

func TestDefault_DeclaredBeatsReflect(t *testing.T) {
	res := resolver.Default()

	if got := res.ResolveFamily(reflect.TypeFor[branded[int]]()); got != "brand" {
		t.Fatalf("ResolveFamily(branded) = %q, want brand", got)
	}

	want := reflect.TypeFor[Pair[int, int]]().PkgPath() + ".Pair"
	if got := res.ResolveFamily(reflect.TypeFor[Pair[int, int]]()); got != want {
		t.Fatalf("ResolveFamily(Pair) = %q, want %q", got, want)
	}
}

var _ apis.Strategy = fixed{}
