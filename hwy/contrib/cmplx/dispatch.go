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

// Kernel variants, selected per call by the identity of the calling
// processing element.
var (
	cmplxDotProdI8 = hwy.Variant[func(a, b []int8, numSamples int) (int8, int8)]{
		Scalar: BaseCmplxDotProd[int8, int32],
		Paired: pairedCmplxDotProd[int8, int32],
	}
	cmplxDotProdI16 = hwy.Variant[func(a, b []int16, numSamples int) (int16, int16)]{
		Scalar: BaseCmplxDotProd[int16, int64],
		Paired: pairedCmplxDotProd[int16, int64],
	}
	cmplxDotProdI32 = hwy.Variant[func(a, b []int32, numSamples int) (int32, int32)]{
		Scalar: BaseCmplxDotProd[int32, int64],
		Paired: pairedCmplxDotProd[int32, int64],
	}
	cmplxDotProdF32 = hwy.Variant[func(a, b []float32, numSamples int) (float32, float32)]{
		Scalar: BaseCmplxDotProd[float32, float32],
		Paired: pairedCmplxDotProdFloat[float32],
	}

	cmplxConjI8 = hwy.Variant[func(src, dst []int8, numSamples int)]{
		Scalar: BaseCmplxConj[int8],
		Paired: pairedCmplxConj[int8],
	}
	cmplxConjI16 = hwy.Variant[func(src, dst []int16, numSamples int)]{
		Scalar: BaseCmplxConj[int16],
		Paired: pairedCmplxConj[int16],
	}
	cmplxConjI32 = hwy.Variant[func(src, dst []int32, numSamples int)]{
		Scalar: BaseCmplxConj[int32],
		Paired: pairedCmplxConj[int32],
	}
	cmplxConjF32 = hwy.Variant[func(src, dst []float32, numSamples int)]{
		Scalar: BaseCmplxConj[float32],
		Paired: pairedCmplxConjFloat[float32],
	}
)

// CmplxDotProdI8 computes the complex dot product of two 8-bit integer
// vectors. The sum is accumulated in 32 bits and narrowed to 8 bits.
func CmplxDotProdI8(a, b []int8, numSamples int) (realResult, imagResult int8) {
	return cmplxDotProdI8.Current()(a, b, numSamples)
}

// CmplxDotProdI16 computes the complex dot product of two 16-bit integer
// vectors. The sum is accumulated in 64 bits and narrowed to 16 bits.
func CmplxDotProdI16(a, b []int16, numSamples int) (realResult, imagResult int16) {
	return cmplxDotProdI16.Current()(a, b, numSamples)
}

// CmplxDotProdI32 computes the complex dot product of two 32-bit integer
// vectors. The sum is accumulated in 64 bits and narrowed to 32 bits.
func CmplxDotProdI32(a, b []int32, numSamples int) (realResult, imagResult int32) {
	return cmplxDotProdI32.Current()(a, b, numSamples)
}

// CmplxDotProdF32 computes the complex dot product of two float32 vectors.
func CmplxDotProdF32(a, b []float32, numSamples int) (realResult, imagResult float32) {
	return cmplxDotProdF32.Current()(a, b, numSamples)
}

// CmplxConjI8 conjugates an 8-bit integer complex vector. src and dst may
// alias.
func CmplxConjI8(src, dst []int8, numSamples int) {
	cmplxConjI8.Current()(src, dst, numSamples)
}

// CmplxConjI16 conjugates a 16-bit integer complex vector. src and dst may
// alias.
func CmplxConjI16(src, dst []int16, numSamples int) {
	cmplxConjI16.Current()(src, dst, numSamples)
}

// CmplxConjI32 conjugates a 32-bit integer complex vector. src and dst may
// alias.
func CmplxConjI32(src, dst []int32, numSamples int) {
	cmplxConjI32.Current()(src, dst, numSamples)
}

// CmplxConjF32 conjugates a float32 complex vector. src and dst may alias.
func CmplxConjF32(src, dst []float32, numSamples int) {
	cmplxConjF32.Current()(src, dst, numSamples)
}
