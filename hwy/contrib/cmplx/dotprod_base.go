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

// BaseCmplxDotProd is the scalar complex dot product of the first numSamples
// complex values of a and b, accumulated in A and narrowed to T.
// numSamples <= 0 returns (0, 0).
func BaseCmplxDotProd[T hwy.Lanes, A hwy.Lanes](a, b []T, numSamples int) (realResult, imagResult T) {
	var re, im A
	for n := 0; n < numSamples; n++ {
		ar, ai := A(a[2*n]), A(a[2*n+1])
		br, bi := A(b[2*n]), A(b[2*n+1])
		re += A(ar*br) - A(ai*bi)
		im += A(ar*bi) + A(ai*br)
	}
	return T(re), T(im)
}

// AccumulateSample adds the product of the complex samples a[0:2] and b[0:2]
// to (re, im).
func AccumulateSample[T hwy.Lanes, A hwy.Lanes](a, b []T, re, im A) (A, A) {
	ab := hwy.LoadPair(a)
	cd := hwy.LoadPair(b)
	re += hwy.DiffP2[T, A](ab, cd)
	im += hwy.DotP2[T, A](ab, hwy.Swap2(cd))
	return re, im
}

// AccumulatePairs adds the products of two integer complex samples to
// (re, im): ab and ef are consecutive samples of one operand, cd and gh the
// matching samples of the other.
//
// The lanes are regrouped so each paired multiply-accumulate consumes two real
// or two imaginary terms:
//
//	re += (a1*c1 + a2*c2) - (b1*d1 + b2*d2)
//	im += (a1*d1 + b1*c1) + (a2*d2 + b2*c2)
//
// Integer addition wraps, so the regrouping is exact.
func AccumulatePairs[T hwy.Integers, A hwy.Integers](ab, ef, cd, gh hwy.Pair[T], re, im A) (A, A) {
	ae := hwy.Shuffle2(ab, ef, 0, 2)
	cg := hwy.Shuffle2(cd, gh, 0, 2)
	bf := hwy.Shuffle2(ab, ef, 1, 3)
	dh := hwy.Shuffle2(cd, gh, 1, 3)
	re = hwy.SumDotP2[T, A](ae, cg, re)
	re -= hwy.DotP2[T, A](bf, dh)

	dc := hwy.Swap2(cd)
	hg := hwy.Swap2(gh)
	im = hwy.SumDotP2[T, A](ab, dc, im)
	im = hwy.SumDotP2[T, A](ef, hg, im)
	return re, im
}

// AccumulatePairsFloat is AccumulatePairs for floating-point samples. Floating
// point addition does not associate, so the two samples are added one after
// the other in the same order as BaseCmplxDotProd.
func AccumulatePairsFloat[T hwy.Floats](ab, ef, cd, gh hwy.Pair[T], re, im T) (T, T) {
	re += hwy.DiffP2[T, T](ab, cd)
	im += hwy.DotP2[T, T](ab, hwy.Swap2(cd))
	re += hwy.DiffP2[T, T](ef, gh)
	im += hwy.DotP2[T, T](ef, hwy.Swap2(gh))
	return re, im
}

// pairedCmplxDotProd processes two complex samples (four scalars of each
// input) per step, then one trailing sample when numSamples is odd.
func pairedCmplxDotProd[T hwy.Integers, A hwy.Integers](a, b []T, numSamples int) (realResult, imagResult T) {
	var re, im A
	steps, cleanup := hwy.LoopBounds(numSamples, 2)
	for i := range steps {
		ab := hwy.LoadPair(a[4*i:])
		ef := hwy.LoadPair(a[4*i+2:])
		cd := hwy.LoadPair(b[4*i:])
		gh := hwy.LoadPair(b[4*i+2:])
		re, im = AccumulatePairs(ab, ef, cd, gh, re, im)
	}
	if cleanup != 0 {
		re, im = AccumulateSample[T, A](a[4*steps:], b[4*steps:], re, im)
	}
	return T(re), T(im)
}

func pairedCmplxDotProdFloat[T hwy.Floats](a, b []T, numSamples int) (realResult, imagResult T) {
	var re, im T
	steps, cleanup := hwy.LoopBounds(numSamples, 2)
	for i := range steps {
		ab := hwy.LoadPair(a[4*i:])
		ef := hwy.LoadPair(a[4*i+2:])
		cd := hwy.LoadPair(b[4*i:])
		gh := hwy.LoadPair(b[4*i+2:])
		re, im = AccumulatePairsFloat(ab, ef, cd, gh, re, im)
	}
	if cleanup != 0 {
		re, im = AccumulateSample[T, T](a[4*steps:], b[4*steps:], re, im)
	}
	return re, im
}
