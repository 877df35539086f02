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

// Package cmplx provides complex dot product and complex conjugate kernels
// over interleaved complex vectors.
//
// A vector of numSamples complex values is stored as 2*numSamples scalars,
// (re, im, re, im, ...). Inputs are owned by the caller and never retained.
//
// # Complex Dot Product
//
//	realResult = 0
//	imagResult = 0
//	for n := range numSamples {
//	    realResult += a[2n]*b[2n] - a[2n+1]*b[2n+1]
//	    imagResult += a[2n]*b[2n+1] + a[2n+1]*b[2n]
//	}
//
// The paired variant consumes two samples per step. For integers it regroups
// the lanes so every paired multiply-accumulate sums two real or two
// imaginary terms; for floats it keeps the per-sample order above so the
// result is bit-exact with the scalar variant.
//
// Sums are kept in an accumulator wider than the input and narrowed to the
// input type once, at the end:
//
//	int8    int32   exact for up to 65536 samples
//	int16   int64   exact for up to 2^32 samples
//	int32   int64   wraps like native 64-bit arithmetic
//	float32 float32
//
// # Complex Conjugate
//
//	for n := range numSamples {
//	    dst[2n]   =  src[2n]
//	    dst[2n+1] = -src[2n+1]
//	}
//
// Integer negation wraps, so the conjugate of math.MinInt8 is math.MinInt8.
// src and dst may be the same slice.
//
// # Dispatch
//
// Every exported kernel queries hwy.CurrentPE on each call and runs the
// scalar variant on the fabric controller and the paired variant on cluster
// cores. Both variants return identical results.
//
// # Example Usage
//
//	a := []int16{1, 2}
//	b := []int16{3, 4}
//	re, im := cmplx.CmplxDotProdI16(a, b, 1) // (-5, 10)
package cmplx
