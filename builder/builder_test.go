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
package builder_test

import (
	"bytes"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"dirpx.dev/conv/apis"
	"dirpx.dev/conv/builder"
	"dirpx.dev/conv/config"
	"dirpx.dev/conv/identity"
	"dirpx.dev/conv/registry"
	"dirpx.dev/conv/token"
)

// vec is a two-parameter shape used across the builder tests.
type vec[A, B any] struct {
	X A
	Y B
}

func (vec[A, B]) TypeParams() apis.TypeList { return identity.Of2[A, B]() }

type (
	vii = vec[int, int]
	vff = vec[float64, float64]
)

func widen(v vii) vff { return vff{X: float64(v.X), Y: float64(v.Y)} }
func narrow(v vff) vii { return vii{X: int(v.X), Y: int(v.Y)} }

// TestBuildRegistry_Basic asserts that BuildRegistry returns a non-nil,
// open and empty registry when there is nothing to migrate.
func TestBuildRegistry_Basic(t *testing.T) {
	reg := builder.New().BuildRegistry(config.DefaultConfig(), nil)
	if reg == nil {
		t.Fatal("BuildRegistry returned nil")
	}
	if reg.Sealed() {
		t.Fatal("fresh registry must be open")
	}
	if c := reg.Count(); c != 0 {
		t.Fatalf("Count = %d, want 0", c)
	}

	if err := registry.Register(reg, widen); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	got, err := registry.Convert[vii, vff](reg, vii{X: 1, Y: 2})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got != (vff{X: 1, Y: 2}) {
		t.Fatalf("Convert = %+v", got)
	}
}

// TestBuildRegistry_MigratesAcrossTokenSources rebuilds an interned
// registry under the hash token source and expects every entry to survive.
func TestBuildRegistry_MigratesAcrossTokenSources(t *testing.T) {
	b := builder.New()
	prev := b.BuildRegistry(config.NewConfig(config.WithTokenSource(config.TokenSourceIntern)), nil)
	registry.MustRegister(prev, widen)
	registry.MustRegister(prev, narrow)

	next := b.BuildRegistry(config.NewConfig(config.WithTokenSource(config.TokenSourceHash)), prev)
	if next.Count() != 2 {
		t.Fatalf("Count = %d, want 2", next.Count())
	}

	pk, _ := registry.KeyOf[vii, vff](prev)
	nk, _ := registry.KeyOf[vii, vff](next)
	if pk == nk {
		t.Fatalf("keys should differ across token sources: %v", pk)
	}

	got, err := registry.Convert[vff, vii](next, vff{X: 3.7, Y: -1})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got != (vii{X: 3, Y: -1}) {
		t.Fatalf("Convert = %+v", got)
	}
	if prev.Sealed() {
		t.Fatal("rebuild must not seal the previous registry")
	}
}

// TestBuildRegistry_KeepsSealedState verifies that a sealed registry
// rebuilds into a sealed registry.
func TestBuildRegistry_KeepsSealedState(t *testing.T) {
	b := builder.New()
	prev := b.BuildRegistry(config.DefaultConfig(), nil)
	registry.MustRegister(prev, widen)
	prev.Seal()

	next := b.BuildRegistry(config.DefaultConfig(), prev)
	if !next.Sealed() {
		t.Fatal("rebuilt registry should be sealed")
	}
	if !registry.Has[vii, vff](next) {
		t.Fatal("entry lost during rebuild")
	}
}

// TestBuildRegistry_DropsEntriesOutsideFamily rebuilds under a family the
// existing entries do not belong to.
func TestBuildRegistry_DropsEntriesOutsideFamily(t *testing.T) {
	var buf bytes.Buffer
	b := builder.New(builder.WithLogger(zerolog.New(&buf)))

	prev := b.BuildRegistry(config.DefaultConfig(), nil)
	registry.MustRegister(prev, widen)

	next := b.BuildRegistry(config.NewConfig(config.WithFamily("elsewhere.vec")), prev)
	if next.Count() != 0 {
		t.Fatalf("Count = %d, want 0", next.Count())
	}
	if next.Family() != "elsewhere.vec" {
		t.Fatalf("Family = %q", next.Family())
	}
	if !strings.Contains(buf.String(), "entries dropped during rebuild") {
		t.Fatalf("expected a rebuild warning, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), `"component":"registry"`) {
		t.Fatalf("expected component field, got %q", buf.String())
	}
}

// TestTokens checks the token source selection by name.
func TestTokens(t *testing.T) {
	if builder.Tokens(config.TokenSourceIntern) != token.Shared() {
		t.Fatal("intern should select the shared interner")
	}
	if builder.Tokens("bogus") != token.Shared() {
		t.Fatal("unknown names should fall back to the shared interner")
	}
	if _, ok := builder.Tokens(config.TokenSourceHash).(*token.Hasher); !ok {
		t.Fatal("hash should select a *token.Hasher")
	}
}

// TestBuildRegistry_Concurrency_Smoke hammers a built and sealed registry
// from many goroutines.
func TestBuildRegistry_Concurrency_Smoke(t *testing.T) {
	reg := builder.New().BuildRegistry(config.DefaultConfig(), nil)
	registry.MustRegister(reg, widen)
	registry.MustRegister(reg, narrow)
	reg.Seal()

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				in := vii{X: id, Y: i}
				out, err := registry.Convert[vff, vii](reg, registry.MustConvert[vii, vff](reg, in))
				if err != nil || out != in {
					t.Errorf("round trip %+v: got %+v, err %v", in, out, err)
					return
				}
			}
		}(w)
	}

	wg.Wait()
}

// Compile-time check: builder.New() must satisfy apis.Builder.
var _ apis.Builder = builder.New()
