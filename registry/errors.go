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
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/conv/apis"
)

// Operation names carried by *Error.
const (
	OpRegister = "register"
	OpConvert  = "convert"
)

var (
	// ErrNilRegistry is returned when a nil apis.Registry is provided.
	ErrNilRegistry = errors.New("conv(registry): nil registry provided")
	// ErrNilConverter is returned when a nil converter is registered.
	ErrNilConverter = errors.New("conv(registry): nil converter provided")
	// ErrDuplicateRegistration indicates a second registration for an
	// existing (source, destination) key.
	ErrDuplicateRegistration = errors.New("conv(registry): duplicate conversion registration")
	// ErrMissingConversion indicates that no converter is registered for
	// the requested (source, destination) key.
	ErrMissingConversion = errors.New("conv(registry): no conversion registered")
	// ErrSealed indicates a registration after the registry was sealed.
	ErrSealed = errors.New("conv(registry): registry is sealed")
	// ErrFamilyMismatch indicates that a registration mixes shape families,
	// or does not belong to the registry's family.
	ErrFamilyMismatch = errors.New("conv(registry): shape family mismatch")
	// ErrTypeMismatch indicates that a stored converter did not produce its
	// registered destination type. Only entries added through Add with a
	// hand-written Erased can cause it.
	ErrTypeMismatch = errors.New("conv(registry): converter produced unexpected type")
)

// Error describes a failed registry operation. Err is one of the package
// sentinels (or an identity error) and is matched with errors.Is.
type Error struct {
	// Op is OpRegister or OpConvert.
	Op string
	// From is the source type.
	From reflect.Type
	// To is the destination type.
	To reflect.Type
	// Key is the derived key, zero if derivation failed.
	Key apis.Key
	// Err is the underlying cause.
	Err error
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s %v -> %v: %v", e.Op, e.From, e.To, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}
