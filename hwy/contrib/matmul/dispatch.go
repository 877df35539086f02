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

import "github.com/pulp-platform/go-pulpdsp/hwy"

var (
	matMulCmplxStrideI8 = hwy.Variant[rowsKernel[int8]]{
		Scalar: baseMatMulCmplxStrideRows[int8, int32],
		Paired: pairedMatMulCmplxStrideRows[int8, int32],
	}
	matMulCmplxStrideI16 = hwy.Variant[rowsKernel[int16]]{
		Scalar: baseMatMulCmplxStrideRows[int16, int64],
		Paired: pairedMatMulCmplxStrideRows[int16, int64],
	}
	matMulCmplxStrideI32 = hwy.Variant[rowsKernel[int32]]{
		Scalar: baseMatMulCmplxStrideRows[int32, int64],
		Paired: pairedMatMulCmplxStrideRows[int32, int64],
	}
	matMulCmplxStrideF32 = hwy.Variant[rowsKernel[float32]]{
		Scalar: baseMatMulCmplxStrideRows[float32, float32],
		Paired: pairedMatMulCmplxStrideRowsFloat[float32],
	}
)

// MatMulCmplxStrideI8 computes C = A * B for strided 8-bit integer complex
// matrices. Cells are accumulated in 32 bits and narrowed to 8 bits.
func MatMulCmplxStrideI8(a, b []int8, m, n, o, strideA, strideB, strideC int, c []int8) {
	matMulCmplxStrideI8.Current()(a, b, m, n, o, strideA, strideB, strideC, c, hwy.AllRows(m))
}

// MatMulCmplxStrideI16 computes C = A * B for strided 16-bit integer complex
// matrices. Cells are accumulated in 64 bits and narrowed to 16 bits.
func MatMulCmplxStrideI16(a, b []int16, m, n, o, strideA, strideB, strideC int, c []int16) {
	matMulCmplxStrideI16.Current()(a, b, m, n, o, strideA, strideB, strideC, c, hwy.AllRows(m))
}

// MatMulCmplxStrideI32 computes C = A * B for strided 32-bit integer complex
// matrices. Cells are accumulated in 64 bits and narrowed to 32 bits.
func MatMulCmplxStrideI32(a, b []int32, m, n, o, strideA, strideB, strideC int, c []int32) {
	matMulCmplxStrideI32.Current()(a, b, m, n, o, strideA, strideB, strideC, c, hwy.AllRows(m))
}

// MatMulCmplxStrideF32 computes C = A * B for strided float32 complex
// matrices.
func MatMulCmplxStrideF32(a, b []float32, m, n, o, strideA, strideB, strideC int, c []float32) {
	matMulCmplxStrideF32.Current()(a, b, m, n, o, strideA, strideB, strideC, c, hwy.AllRows(m))
}
