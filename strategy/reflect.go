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

package strategy

import (
	"reflect"
	"sync"

	"dirpx.dev/conv/apis"
	uref "dirpx.dev/conv/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that resolves families via
// reflection using utils/reflect.Origin and memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback: the family of a shape is the
// package-qualified generic type it was instantiated from, so Pair[int,int]
// and Pair[float64,float64] share "pkg/path.Pair".
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// familyCache caches resolved families by type. Unresolvable types are
// cached as "".
var familyCache sync.Map // key: reflect.Type, val: string

// TryFamily computes the generic origin of t.
func (reflectStrategy) TryFamily(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	if v, ok := familyCache.Load(t); ok {
		s := v.(string)
		return s, s != ""
	}

	family, err := uref.Origin(t)
	if err != nil {
		family = ""
	}
	familyCache.Store(t, family)
	return family, family != ""
}
