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

// Package identity derives fingerprints for ordered lists of type
// parameters.
//
// A fingerprint folds one token per type, left to right, starting from a
// zero seed:
//
//	seed ^= token + Magic + (seed << 6) + (seed >> 2)
//
// The fold is order sensitive, so Of2[A, B] and Of2[B, A] fingerprint
// differently, and the golden-ratio constant spreads small sequential
// tokens across the whole word. Tokens come from an injected
// apis.TokenSource; fingerprints are only comparable under the same source.
package identity

import (
	"errors"
	"reflect"

	"dirpx.dev/conv/apis"
)

// Magic is the odd golden-ratio constant mixed into every fold step.
const Magic uint64 = 0x9e3779b9

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("conv(identity): nil reflect.Type provided")
	// ErrNotShape indicates the type does not implement apis.Shape.
	ErrNotShape = errors.New("conv(identity): type does not implement apis.Shape")
)

var shapeType = reflect.TypeFor[apis.Shape]()

// Combine mixes token into seed. It is the single fold step of Fingerprint.
func Combine(seed, token uint64) uint64 {
	return seed ^ (token + Magic + (seed << 6) + (seed >> 2))
}

// Fingerprint folds the tokens of list in order. The empty list yields 0.
func Fingerprint(list apis.TypeList, tokens apis.TokenSource) apis.Fingerprint {
	var seed uint64
	for _, t := range list {
		seed = Combine(seed, tokens.Token(t))
	}
	return apis.Fingerprint(seed)
}

// FingerprintFor fingerprints the type parameters of shape S.
func FingerprintFor[S apis.Shape](tokens apis.TokenSource) apis.Fingerprint {
	return Fingerprint(ParamsFor[S](), tokens)
}

// ParamsFor returns the type parameters of shape S. S must be a concrete
// type; use ParamsOf when that is not known statically.
func ParamsFor[S apis.Shape]() apis.TypeList {
	return zeroShape(reflect.TypeFor[S]()).TypeParams()
}

// ParamsOf returns the type parameters of the shape type t.
func ParamsOf(t reflect.Type) (apis.TypeList, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if t.Kind() == reflect.Interface || !t.Implements(shapeType) {
		return nil, ErrNotShape
	}
	return zeroShape(t).TypeParams(), nil
}

// zeroShape returns a usable zero value of t. Pointer shapes get a fresh
// element so value-receiver TypeParams methods do not dereference nil.
func zeroShape(t reflect.Type) apis.Shape {
	if t.Kind() == reflect.Ptr {
		return reflect.New(t.Elem()).Interface().(apis.Shape)
	}
	return reflect.Zero(t).Interface().(apis.Shape)
}
