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

package registry

import (
	"reflect"

	"dirpx.dev/conv/apis"
)

// Register stores fn as the conversion from From to To in r. fn must build
// a new To and must not retain or mutate its argument.
//
// It fails with ErrDuplicateRegistration if the pair is already registered,
// ErrSealed after the registry was sealed, ErrFamilyMismatch when family
// checks are enabled and the shapes do not belong together, and
// ErrNilConverter for a nil fn.
func Register[From, To apis.Shape](r apis.Registry, fn func(From) To) error {
	if r == nil {
		return ErrNilRegistry
	}
	_, err := r.Add(apis.Entry{
		From:    reflect.TypeFor[From](),
		To:      reflect.TypeFor[To](),
		Convert: erase(fn),
	})
	return err
}

// MustRegister is like Register but panics on error.
func MustRegister[From, To apis.Shape](r apis.Registry, fn func(From) To) {
	if err := Register(r, fn); err != nil {
		panic(err)
	}
}

// Convert looks up the conversion from From to To and applies it to from.
// It fails with ErrMissingConversion if the pair was never registered.
func Convert[From, To apis.Shape](r apis.Registry, from From) (To, error) {
	var zero To
	if r == nil {
		return zero, ErrNilRegistry
	}
	e, err := r.Dispatch(reflect.TypeFor[From](), reflect.TypeFor[To]())
	if err != nil {
		return zero, err
	}
	return apply[From, To](e, from)
}

// MustConvert is like Convert but panics on error.
func MustConvert[From, To apis.Shape](r apis.Registry, from From) To {
	out, err := Convert[From, To](r, from)
	if err != nil {
		panic(err)
	}
	return out
}

// Bind resolves the conversion from From to To once and returns it as a
// typed function, for callers converting many values.
func Bind[From, To apis.Shape](r apis.Registry) (func(From) (To, error), error) {
	if r == nil {
		return nil, ErrNilRegistry
	}
	e, err := r.Dispatch(reflect.TypeFor[From](), reflect.TypeFor[To]())
	if err != nil {
		return nil, err
	}
	return func(from From) (To, error) {
		return apply[From, To](e, from)
	}, nil
}

// Has reports whether a conversion from From to To is registered. Unlike
// Convert it never seals the registry.
func Has[From, To apis.Shape](r apis.Registry) bool {
	if r == nil {
		return false
	}
	from, to := reflect.TypeFor[From](), reflect.TypeFor[To]()
	k, err := r.KeyOf(from, to)
	if err != nil {
		return false
	}
	e, ok := r.Lookup(k)
	return ok && e.From == from && e.To == to
}

// KeyOf returns the key r uses for the pair (From, To).
func KeyOf[From, To apis.Shape](r apis.Registry) (apis.Key, error) {
	if r == nil {
		return apis.Key{}, ErrNilRegistry
	}
	return r.KeyOf(reflect.TypeFor[From](), reflect.TypeFor[To]())
}

// erase hides the static types of fn. The returned function yields nil for
// an input that is not a From.
func erase[From, To apis.Shape](fn func(From) To) apis.Erased {
	if fn == nil {
		return nil
	}
	return func(from any) any {
		f, ok := from.(From)
		if !ok {
			return nil
		}
		return fn(f)
	}
}

// apply invokes e on from and recovers the static destination type.
func apply[From, To apis.Shape](e apis.Entry, from From) (To, error) {
	out, ok := e.Convert(from).(To)
	if !ok {
		var zero To
		return zero, &Error{Op: OpConvert, From: e.From, To: e.To, Key: e.Key, Err: ErrTypeMismatch}
	}
	return out, nil
}
