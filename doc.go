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
// Package conv is a registry of typed conversions between instantiations
// of one generic "shape", such as Pair[int, int] and Pair[float64, float64].
//
// A shape is a generic struct whose instantiations implement apis.Shape by
// listing their type arguments:
//
//	type Pair[A, B any] struct{ First A; Second B }
//
//	func (Pair[A, B]) TypeParams() apis.TypeList { return identity.Of2[A, B]() }
//
// Each conversion is stored under a key made of two fingerprints, one per
// side. A fingerprint folds per-type tokens over the type list, so it
// depends on the type arguments and their order but not on the shape
// itself. Tokens come from an apis.TokenSource: the process-wide interner
// (the default) or a name hasher.
//
// # Lifecycle
//
// A registry starts open. Registrations happen during program setup,
// typically from init blocks:
//
//	func init() {
//		conv.MustRegister(func(p Pair[int, int]) Pair[float64, float64] {
//			return Pair[float64, float64]{float64(p.First), float64(p.Second)}
//		})
//	}
//
// The registry is sealed by Seal or, with the default configuration, by
// the first Convert. A sealed registry rejects registrations with
// registry.ErrSealed and is safe for concurrent conversions. Registering
// concurrently with anything else is not supported.
//
// # Families
//
// With StrictFamily set (the default) both sides of a registration must
// belong to the same shape family, and every registration must belong to
// the registry's family. The family is taken from Config.Family or bound
// by the first registration. Shapes may name their family by implementing
// apis.Familier; otherwise it is the package-qualified generic type name.
//
// # Global state
//
// Package-level functions operate on a process-wide snapshot holding the
// configuration, the registry and the apis.Builder that builds it. Reads
// load the snapshot atomically and never lock. SetConfig and SetBuilder
// rebuild the registry, re-keying existing entries, unless it was pinned
// with SetRegistry or PinRegistry. Setup loads the configuration from a
// file and CONV_* environment variables.
//
// Callers who prefer explicit dependencies use package registry directly.
package conv
