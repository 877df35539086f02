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

// Package matmul provides strided complex matrix multiplication.
//
// Matrices hold interleaved complex values and are addressed through a row
// stride, the number of complex elements between the starts of consecutive
// rows, so any of them can be a sub-view of a larger buffer:
//
//	// C = A * B where A is MxN, B is NxO, C is MxO
//	a := make([]int16, 2*M*strideA)
//	b := make([]int16, 2*N*strideB)
//	c := make([]int16, 2*M*strideC)
//
//	matmul.MatMulCmplxStrideI16(a, b, M, N, O, strideA, strideB, strideC, c)
//
// Element (i, j) of a matrix with stride s occupies indices 2*(i*s+j) (real)
// and 2*(i*s+j)+1 (imaginary). Strides smaller than the logical width are a
// caller error and are not checked.
//
// Each output cell is the complex dot product of a row of A and a column of
// B, accumulated in the same wide type as the cmplx package and narrowed on
// store. The implementation automatically selects the path for the calling
// processing element:
//   - scalar triple loop on the fabric controller
//   - paired two-samples-per-step reduction on cluster cores
//
// The Parallel entry points deal the output rows round-robin across a
// cluster of cores forked from a workerpool.Pool.
package matmul
