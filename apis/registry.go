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
	"cmp"
	"reflect"
)

// Key identifies one conversion slot: the fingerprints of the source and
// destination type lists. Keys are ordered lexicographically by (From, To).
type Key struct {
	From Fingerprint
	To   Fingerprint
}

// Compare returns -1, 0 or +1 ordering k before, equal to, or after o.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.From, o.From); c != 0 {
		return c
	}
	return cmp.Compare(k.To, o.To)
}

// String renders the key as "from->to".
func (k Key) String() string {
	return k.From.String() + "->" + k.To.String()
}

// Erased is a conversion function with its static types removed. The input
// must be a value of the source type the entry was registered with; the
// output is a freshly built destination value.
type Erased func(from any) any

// Entry is a single registered conversion.
type Entry struct {
	// Key is the slot the entry occupies in its registry.
	Key Key
	// From is the registered source type.
	From reflect.Type
	// To is the registered destination type.
	To reflect.Type
	// Convert is the erased conversion function.
	Convert Erased
}

// Registry stores erased conversions keyed by (source, destination) identity.
//
// Add is single-writer and must not run concurrently with any other method.
// Once setup is done, the read methods are safe for concurrent use.
type Registry interface {
	// Add inserts e under the key derived from e.From and e.To and returns
	// that key. e.Key is ignored. Duplicate keys are rejected.
	Add(e Entry) (Key, error)
	// Dispatch returns the entry registered for (from, to), or a
	// missing-conversion error. It is the read path of Convert.
	Dispatch(from, to reflect.Type) (Entry, error)
	// KeyOf derives the key for (from, to) without consulting the table.
	KeyOf(from, to reflect.Type) (Key, error)
	// Lookup returns the entry stored under k, if any.
	Lookup(k Key) (Entry, bool)
	// Seal closes the registry for further registrations.
	Seal()
	// Sealed reports whether the registry is sealed.
	Sealed() bool
	// Family returns the bound shape family, or "" if none is bound.
	Family() string
	// Entries returns a snapshot ordered by Key.
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
}
