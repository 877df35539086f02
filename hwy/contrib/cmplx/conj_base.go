// Copyright 2025 go-pulpdsp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmplx

import "github.com/pulp-platform/go-pulpdsp/hwy"

// BaseCmplxConj writes the complex conjugate of the first numSamples values
// of src to dst. src and dst may alias.
func BaseCmplxConj[T hwy.Lanes](src, dst []T, numSamples int) {
	for n := 0; n < numSamples; n++ {
		dst[2*n] = src[2*n]
		dst[2*n+1] = -src[2*n+1]
	}
}

// pairedCmplxConj conjugates two samples per step with the two's complement
// identity -x == (x ^ -1) + 1 applied to the imaginary lanes only.
func pairedCmplxConj[T hwy.Integers](src, dst []T, numSamples int) {
	inverter := hwy.Quad[T]{0, ^T(0), 0, ^T(0)}
	adder := hwy.Quad[T]{0, 1, 0, 1}

	steps, cleanup := hwy.LoopBounds(numSamples, 2)
	for i := range steps {
		q := hwy.LoadQuad(src[4*i:])
		q = hwy.Add4(hwy.Xor4(q, inverter), adder)
		hwy.StoreQuad(q, dst[4*i:])
	}
	if cleanup != 0 {
		k := 4 * steps
		dst[k] = src[k]
		dst[k+1] = -src[k+1]
	}
}

func pairedCmplxConjFloat[T hwy.Floats](src, dst []T, numSamples int) {
	hwy.ProcessWithTail(numSamples, 2,
		func(n int) {
			hwy.StoreQuad(hwy.NegOdd4(hwy.LoadQuad(src[2*n:])), dst[2*n:])
		},
		func(n, _ int) {
			dst[2*n] = src[2*n]
			dst[2*n+1] = -src[2*n+1]
		},
	)
}
