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

package apis

import (
	"fmt"
	"reflect"
	"strings"
)

// TypeList is the ordered list of type parameters bound to a shape
// instantiation. Pair[int, string] has TypeList{int, string}.
type TypeList []reflect.Type

// String renders the list as "[int,string]".
func (l TypeList) String() string {
	names := make([]string, len(l))
	for i, t := range l {
		if t == nil {
			names[i] = "<nil>"
			continue
		}
		names[i] = t.String()
	}
	return "[" + strings.Join(names, ",") + "]"
}

// Fingerprint is the numeric identity of a TypeList. It is only meaningful
// within one process and one TokenSource; never persist or transmit it.
type Fingerprint uint64

// String renders f as 16 hex digits.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", uint64(f))
}

// TokenSource yields a per-type identity token. Tokens must be stable for
// the lifetime of the source and distinct for distinct types.
// Implementations must be safe for concurrent use.
type TokenSource interface {
	Token(t reflect.Type) uint64
}

// Shape is implemented by every instantiation of a convertible generic
// shape. TypeParams must not depend on receiver state: it is called on
// zero values.
//
//	func (Pair[A, B]) TypeParams() apis.TypeList { return identity.Of2[A, B]() }
type Shape interface {
	TypeParams() TypeList
}

// Familier lets a shape declare its family name explicitly instead of
// relying on reflection.
type Familier interface {
	ShapeFamily() string
}
