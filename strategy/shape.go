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

	"dirpx.dev/conv/apis"
)

var familierType = reflect.TypeFor[apis.Familier]()

// NewShapeStrategy creates an apis.Strategy that uses apis.Familier.
func NewShapeStrategy() apis.Strategy {
	return &shapeStrategy{}
}

// shapeStrategy is a fast path: if t implements apis.Familier, return its
// ShapeFamily() and stop the chain.
type shapeStrategy struct{}

// Ensure shapeStrategy implements apis.Strategy.
var _ apis.Strategy = (*shapeStrategy)(nil)

// TryFamily calls ShapeFamily on a zero value of t. Pointer types get a
// fresh element so value-receiver methods do not dereference nil.
func (*shapeStrategy) TryFamily(t reflect.Type) (string, bool) {
	if t == nil || t.Kind() == reflect.Interface || !t.Implements(familierType) {
		return "", false
	}
	var v reflect.Value
	if t.Kind() == reflect.Ptr {
		v = reflect.New(t.Elem())
	} else {
		v = reflect.Zero(t)
	}
	family := v.Interface().(apis.Familier).ShapeFamily()
	if family == "" {
		return "", false
	}
	return family, true
}
