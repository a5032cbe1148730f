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

package token

import (
	"reflect"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"

	"dirpx.dev/conv/apis"
	uref "dirpx.dev/conv/utils/reflect"
)

// NewHasher constructs a Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hasher derives tokens by hashing the canonical, package-qualified name of
// a type with xxhash. Tokens depend only on type names, so they are the
// same in every process built from the same sources.
//
// Distinct types can share a canonical name (types declared inside
// functions) or, rarely, a hash. The first type seen keeps the plain hash;
// later ones are rehashed with a "#n" suffix until the token is free, so
// their tokens depend on first-seen order.
type Hasher struct {
	// mu guards owners and token assignment.
	mu sync.Mutex
	// cache memoizes tokens by type.
	cache sync.Map // map[reflect.Type]uint64
	// owners maps every assigned token to its type.
	owners map[uint64]reflect.Type
}

// Ensure Hasher implements apis.TokenSource.
var _ apis.TokenSource = (*Hasher)(nil)

// Token returns xxhash64 of uref.Canonical(t), rehashed on collision.
// A nil type maps to 0, which is never assigned to a type.
func (h *Hasher) Token(t reflect.Type) uint64 {
	if t == nil {
		return 0
	}
	if v, ok := h.cache.Load(t); ok {
		return v.(uint64)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if v, ok := h.cache.Load(t); ok {
		return v.(uint64)
	}

	name := uref.Canonical(t)
	sum := xxhash.Sum64String(name)
	for n := 1; ; n++ {
		if _, taken := h.owners[sum]; !taken && sum != 0 {
			break
		}
		sum = xxhash.Sum64String(name + "#" + strconv.Itoa(n))
	}
	if h.owners == nil {
		h.owners = make(map[uint64]reflect.Type)
	}
	h.owners[sum] = t
	h.cache.Store(t, sum)
	return sum
}
