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

package matmul

import (
	"github.com/pulp-platform/go-pulpdsp/hwy"
	"github.com/pulp-platform/go-pulpdsp/hwy/contrib/cmplx"
)

// rowsKernel computes the output rows of C listed in rows.
type rowsKernel[T hwy.Lanes] func(a, b []T, m, n, o, strideA, strideB, strideC int, c []T, rows hwy.RowRange)

// BaseMatMulCmplxStride computes C = A * B with the scalar triple loop,
// accumulating each cell in A and narrowing it to T.
//
//   - a is M x N with row stride strideA
//   - b is N x O with row stride strideB
//   - c is M x O with row stride strideC
func BaseMatMulCmplxStride[T hwy.Lanes, A hwy.Lanes](a, b []T, m, n, o, strideA, strideB, strideC int, c []T) {
	baseMatMulCmplxStrideRows[T, A](a, b, m, n, o, strideA, strideB, strideC, c, hwy.AllRows(m))
}

func baseMatMulCmplxStrideRows[T hwy.Lanes, A hwy.Lanes](a, b []T, m, n, o, strideA, strideB, strideC int, c []T, rows hwy.RowRange) {
	for i := range rows.All() {
		for j := 0; j < o; j++ {
			var sumRe, sumIm A
			for k := 0; k < n; k++ {
				aRe := A(a[(i*strideA+k)*2])
				aIm := A(a[(i*strideA+k)*2+1])
				bRe := A(b[(k*strideB+j)*2])
				bIm := A(b[(k*strideB+j)*2+1])
				sumRe += A(aRe*bRe) - A(aIm*bIm)
				sumIm += A(aRe*bIm) + A(aIm*bRe)
			}
			c[(i*strideC+j)*2] = T(sumRe)
			c[(i*strideC+j)*2+1] = T(sumIm)
		}
	}
}

// pairedMatMulCmplxStrideRows reduces each row/column pair two complex
// samples at a time with the cmplx pair step, then one trailing sample when
// n is odd. Consecutive samples of a column of B are strideB apart, so the
// two B pairs are loaded separately.
func pairedMatMulCmplxStrideRows[T hwy.Integers, A hwy.Integers](a, b []T, m, n, o, strideA, strideB, strideC int, c []T, rows hwy.RowRange) {
	steps, cleanup := hwy.LoopBounds(n, 2)
	for i := range rows.All() {
		for j := 0; j < o; j++ {
			var sumRe, sumIm A
			for s := range steps {
				k := 2 * s
				ab := hwy.LoadPair(a[(i*strideA+k)*2:])
				ef := hwy.LoadPair(a[(i*strideA+k+1)*2:])
				cd := hwy.LoadPair(b[(k*strideB+j)*2:])
				gh := hwy.LoadPair(b[((k+1)*strideB+j)*2:])
				sumRe, sumIm = cmplx.AccumulatePairs(ab, ef, cd, gh, sumRe, sumIm)
			}
			if cleanup != 0 {
				k := n - 1
				sumRe, sumIm = cmplx.AccumulateSample[T, A](a[(i*strideA+k)*2:], b[(k*strideB+j)*2:], sumRe, sumIm)
			}
			c[(i*strideC+j)*2] = T(sumRe)
			c[(i*strideC+j)*2+1] = T(sumIm)
		}
	}
}

func pairedMatMulCmplxStrideRowsFloat[T hwy.Floats](a, b []T, m, n, o, strideA, strideB, strideC int, c []T, rows hwy.RowRange) {
	steps, cleanup := hwy.LoopBounds(n, 2)
	for i := range rows.All() {
		for j := 0; j < o; j++ {
			var sumRe, sumIm T
			for s := range steps {
				k := 2 * s
				ab := hwy.LoadPair(a[(i*strideA+k)*2:])
				ef := hwy.LoadPair(a[(i*strideA+k+1)*2:])
				cd := hwy.LoadPair(b[(k*strideB+j)*2:])
				gh := hwy.LoadPair(b[((k+1)*strideB+j)*2:])
				sumRe, sumIm = cmplx.AccumulatePairsFloat(ab, ef, cd, gh, sumRe, sumIm)
			}
			if cleanup != 0 {
				k := n - 1
				sumRe, sumIm = cmplx.AccumulateSample[T, T](a[(i*strideA+k)*2:], b[(k*strideB+j)*2:], sumRe, sumIm)
			}
			c[(i*strideC+j)*2] = sumRe
			c[(i*strideC+j)*2+1] = sumIm
		}
	}
}
