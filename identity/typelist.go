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

package identity

import (
	"reflect"

	"dirpx.dev/conv/apis"
)

// Of0 returns the empty type list.
func Of0() apis.TypeList {
	return apis.TypeList{}
}

// Of1 returns the type list [A].
func Of1[A any]() apis.TypeList {
	return apis.TypeList{reflect.TypeFor[A]()}
}

// Of2 returns the type list [A, B].
func Of2[A, B any]() apis.TypeList {
	return apis.TypeList{reflect.TypeFor[A](), reflect.TypeFor[B]()}
}

// Of3 returns the type list [A, B, C].
func Of3[A, B, C any]() apis.TypeList {
	return apis.TypeList{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}
}

// Of4 returns the type list [A, B, C, D].
func Of4[A, B, C, D any]() apis.TypeList {
	return apis.TypeList{
		reflect.TypeFor[A](), reflect.TypeFor[B](),
		reflect.TypeFor[C](), reflect.TypeFor[D](),
	}
}

// Of5 returns the type list [A, B, C, D, E].
func Of5[A, B, C, D, E any]() apis.TypeList {
	return apis.TypeList{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](),
		reflect.TypeFor[D](), reflect.TypeFor[E](),
	}
}

// Of6 returns the type list [A, B, C, D, E, F].
func Of6[A, B, C, D, E, F any]() apis.TypeList {
	return apis.TypeList{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](),
		reflect.TypeFor[D](), reflect.TypeFor[E](), reflect.TypeFor[F](),
	}
}

// Append returns a copy of l extended with ts. Use it for shapes with
// more than six parameters.
func Append(l apis.TypeList, ts ...reflect.Type) apis.TypeList {
	out := make(apis.TypeList, 0, len(l)+len(ts))
	out = append(out, l...)
	return append(out, ts...)
}
