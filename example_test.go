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
package conv_test

import (
	"fmt"

	"dirpx.dev/conv"
	"dirpx.dev/conv/apis"
	"dirpx.dev/conv/identity"
	"dirpx.dev/conv/registry"
)

// Pair is a two-parameter shape.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (Pair[A, B]) TypeParams() apis.TypeList { return identity.Of2[A, B]() }

func Example() {
	conv.SetRegistry(registry.New())

	conv.MustRegister(func(p Pair[int, int]) Pair[float64, float64] {
		return Pair[float64, float64]{First: float64(p.First), Second: float64(p.Second)}
	})

	out, err := conv.Convert[Pair[int, int], Pair[float64, float64]](Pair[int, int]{First: 3, Second: 4})
	fmt.Println(out, err)

	_, err = conv.Convert[Pair[int, int], Pair[int, float64]](Pair[int, int]{First: 3, Second: 4})
	fmt.Println(err)
	// Output:
	// {3 4} <nil>
	// convert conv_test.Pair[int,int] -> conv_test.Pair[int,float64]: conv(registry): no conversion registered
}

func ExampleBind() {
	reg := registry.New()
	registry.MustRegister(reg, func(p Pair[string, int]) Pair[int, string] {
		return Pair[int, string]{First: p.Second, Second: p.First}
	})

	swap, err := registry.Bind[Pair[string, int], Pair[int, string]](reg)
	if err != nil {
		panic(err)
	}
	for _, in := range []Pair[string, int]{{"a", 1}, {"b", 2}} {
		out, _ := swap(in)
		fmt.Println(out.First, out.Second)
	}
	// Output:
	// 1 a
	// 2 b
}
