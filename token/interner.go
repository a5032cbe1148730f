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

// Package token provides apis.TokenSource implementations: the per-type
// identity that fingerprints are folded from.
package token

import (
	"reflect"
	"sync"

	"dirpx.dev/conv/apis"
)

// shared is the process-wide interner.
var shared = NewInterner()

// Shared returns the process-wide Interner. Registries that must agree on
// fingerprints should use the same source.
func Shared() *Interner {
	return shared
}

// NewInterner constructs an empty Interner.
func NewInterner() *Interner {
	return &Interner{}
}

// Interner assigns sequential tokens (1, 2, 3, ...) to types in first-seen
// order. Tokens are stable for the lifetime of the Interner and never
// reused, but depend on the order types are first seen, so they differ
// between runs.
type Interner struct {
	// mu guards token assignment.
	mu sync.Mutex
	// m maps reflect.Type to its token.
	m sync.Map // map[reflect.Type]uint64
	// next is the last assigned token.
	next uint64
}

// Ensure Interner implements apis.TokenSource.
var _ apis.TokenSource = (*Interner)(nil)

// Token returns the token for t, assigning one on first sight.
// A nil type maps to 0.
func (i *Interner) Token(t reflect.Type) uint64 {
	if t == nil {
		return 0
	}

	// Fast read path without locking.
	if v, ok := i.m.Load(t); ok {
		return v.(uint64)
	}

	// Write path: guard with a mutex to keep the counter consistent.
	i.mu.Lock()
	defer i.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if v, ok := i.m.Load(t); ok {
		return v.(uint64)
	}

	i.next++
	i.m.Store(t, i.next)
	return i.next
}

// Count returns the number of interned types.
func (i *Interner) Count() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return int(i.next)
}
