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
	"github.com/pulp-platform/go-pulpdsp/hwy/contrib/workerpool"
)

// forkMatMul runs kernel once per cluster core; core c computes the output
// rows c, c+nPE, c+2*nPE, ... so no two cores write the same row of C.
// nPE <= 0 uses hwy.ClusterSize. Returns after every core has finished.
func forkMatMul[T hwy.Lanes](pool *workerpool.Pool, nPE int, kernel rowsKernel[T], a, b []T, m, n, o, strideA, strideB, strideC int, c []T) {
	if nPE <= 0 {
		nPE = hwy.ClusterSize()
	}
	pool.ForkRows(m, nPE, func(_ int, rows hwy.RowRange) {
		kernel(a, b, m, n, o, strideA, strideB, strideC, c, rows)
	})
}

// MatMulCmplxStrideParallelI8 is MatMulCmplxStrideI8 computed by nPE cluster
// cores forked from pool.
func MatMulCmplxStrideParallelI8(pool *workerpool.Pool, nPE int, a, b []int8, m, n, o, strideA, strideB, strideC int, c []int8) {
	forkMatMul(pool, nPE, matMulCmplxStrideI8.Paired, a, b, m, n, o, strideA, strideB, strideC, c)
}

// MatMulCmplxStrideParallelI16 is MatMulCmplxStrideI16 computed by nPE
// cluster cores forked from pool.
func MatMulCmplxStrideParallelI16(pool *workerpool.Pool, nPE int, a, b []int16, m, n, o, strideA, strideB, strideC int, c []int16) {
	forkMatMul(pool, nPE, matMulCmplxStrideI16.Paired, a, b, m, n, o, strideA, strideB, strideC, c)
}

// MatMulCmplxStrideParallelI32 is MatMulCmplxStrideI32 computed by nPE
// cluster cores forked from pool.
func MatMulCmplxStrideParallelI32(pool *workerpool.Pool, nPE int, a, b []int32, m, n, o, strideA, strideB, strideC int, c []int32) {
	forkMatMul(pool, nPE, matMulCmplxStrideI32.Paired, a, b, m, n, o, strideA, strideB, strideC, c)
}

// MatMulCmplxStrideParallelF32 is MatMulCmplxStrideF32 computed by nPE
// cluster cores forked from pool.
func MatMulCmplxStrideParallelF32(pool *workerpool.Pool, nPE int, a, b []float32, m, n, o, strideA, strideB, strideC int, c []float32) {
	forkMatMul(pool, nPE, matMulCmplxStrideF32.Paired, a, b, m, n, o, strideA, strideB, strideC, c)
}
