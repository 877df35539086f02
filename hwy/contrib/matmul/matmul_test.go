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
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pulp-platform/go-pulpdsp/hwy"
	"github.com/pulp-platform/go-pulpdsp/hwy/contrib/workerpool"
)

var (
	fabricController = hwy.PE{CoreID: 0, ClusterID: hwy.FabricControllerCID}
	clusterCore      = hwy.PE{CoreID: 3, ClusterID: 0}
)

func forEachPE(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	for _, pe := range []hwy.PE{fabricController, clusterCore} {
		t.Run(pe.Role().String(), func(t *testing.T) {
			restore := hwy.SetIdentity(func() hwy.PE { return pe })
			defer restore()
			fn(t)
		})
	}
}

// matmulCmplxReference computes C = A * B for contiguous matrices using a
// naive triple loop over int64.
func matmulCmplxReference[T int8 | int16 | int32](a, b []T, m, n, o int) []T {
	c := make([]T, 2*m*o)
	for i := range m {
		for j := range o {
			var re, im int64
			for k := range n {
				ar, ai := int64(a[2*(i*n+k)]), int64(a[2*(i*n+k)+1])
				br, bi := int64(b[2*(k*o+j)]), int64(b[2*(k*o+j)+1])
				re += ar*br - ai*bi
				im += ar*bi + ai*br
			}
			c[2*(i*o+j)] = T(re)
			c[2*(i*o+j)+1] = T(im)
		}
	}
	return c
}

func matmulCmplxReferenceF32(a, b []float32, m, n, o int) []float32 {
	c := make([]float32, 2*m*o)
	for i := range m {
		for j := range o {
			var re, im float32
			for k := range n {
				ar, ai := a[2*(i*n+k)], a[2*(i*n+k)+1]
				br, bi := b[2*(k*o+j)], b[2*(k*o+j)+1]
				re += float32(ar*br) - float32(ai*bi)
				im += float32(ar*bi) + float32(ai*br)
			}
			c[2*(i*o+j)] = re
			c[2*(i*o+j)+1] = im
		}
	}
	return c
}

func randInts[T int8 | int16 | int32](rng *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(rng.Uint32())
	}
	return out
}

func randFloats(rng *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()*20 - 10
	}
	return out
}

// embed copies a contiguous rows x cols complex matrix into a buffer with
// row stride stride, filling the padding with fill.
func embed[T hwy.Lanes](src []T, rows, cols, stride int, fill T) []T {
	dst := make([]T, 2*rows*stride)
	for i := range dst {
		dst[i] = fill
	}
	for i := range rows {
		copy(dst[2*i*stride:], src[2*i*cols:2*(i+1)*cols])
	}
	return dst
}

// extract is the inverse of embed.
func extract[T hwy.Lanes](src []T, rows, cols, stride int) []T {
	dst := make([]T, 2*rows*cols)
	for i := range rows {
		copy(dst[2*i*cols:2*(i+1)*cols], src[2*i*stride:])
	}
	return dst
}

func TestMatMulCmplxStrideIdentity(t *testing.T) {
	// 2x2 complex identity times B returns B.
	identity16 := []int16{1, 0, 0, 0, 0, 0, 1, 0}
	b16 := []int16{1, 2, 3, 4, 5, 6, 7, 8}
	identityF := []float32{1, 0, 0, 0, 0, 0, 1, 0}
	bF := []float32{1.5, -2, 3, 4.25, -5, 6, 7, -8.5}

	forEachPE(t, func(t *testing.T) {
		c16 := make([]int16, 8)
		MatMulCmplxStrideI16(identity16, b16, 2, 2, 2, 2, 2, 2, c16)
		if !slices.Equal(c16, b16) {
			t.Errorf("I * B = %v, want %v", c16, b16)
		}

		cF := make([]float32, 8)
		MatMulCmplxStrideF32(identityF, bF, 2, 2, 2, 2, 2, 2, cF)
		if !slices.Equal(cF, bF) {
			t.Errorf("I * B = %v, want %v", cF, bF)
		}
	})
}

func TestMatMulCmplxStrideSmall(t *testing.T) {
	// A = [(1,1) (2,0)], B = [(0,1); (3,-1)] -> C = (1,1)(0,1) + (2,0)(3,-1)
	//                                            = (-1,1) + (6,-2) = (5,-1)
	a := []int32{1, 1, 2, 0}
	b := []int32{0, 1, 3, -1}
	want := []int32{5, -1}

	forEachPE(t, func(t *testing.T) {
		c := make([]int32, 2)
		MatMulCmplxStrideI32(a, b, 1, 2, 1, 2, 1, 1, c)
		if !slices.Equal(c, want) {
			t.Errorf("MatMulCmplxStrideI32() = %v, want %v", c, want)
		}
	})
}

func TestMatMulCmplxStrideMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	shapes := []struct{ m, n, o int }{
		{1, 1, 1}, {2, 2, 2}, {3, 5, 2}, {4, 4, 4}, {5, 3, 7}, {8, 9, 6}, {1, 16, 1},
	}

	forEachPE(t, func(t *testing.T) {
		for _, s := range shapes {
			name := fmt.Sprintf("%dx%dx%d", s.m, s.n, s.o)

			a8, b8 := randInts[int8](rng, 2*s.m*s.n), randInts[int8](rng, 2*s.n*s.o)
			c8 := make([]int8, 2*s.m*s.o)
			MatMulCmplxStrideI8(a8, b8, s.m, s.n, s.o, s.n, s.o, s.o, c8)
			require.Equal(t, matmulCmplxReference(a8, b8, s.m, s.n, s.o), c8, "int8 %s", name)

			a16, b16 := randInts[int16](rng, 2*s.m*s.n), randInts[int16](rng, 2*s.n*s.o)
			c16 := make([]int16, 2*s.m*s.o)
			MatMulCmplxStrideI16(a16, b16, s.m, s.n, s.o, s.n, s.o, s.o, c16)
			require.Equal(t, matmulCmplxReference(a16, b16, s.m, s.n, s.o), c16, "int16 %s", name)

			a32, b32 := randInts[int32](rng, 2*s.m*s.n), randInts[int32](rng, 2*s.n*s.o)
			c32 := make([]int32, 2*s.m*s.o)
			MatMulCmplxStrideI32(a32, b32, s.m, s.n, s.o, s.n, s.o, s.o, c32)
			require.Equal(t, matmulCmplxReference(a32, b32, s.m, s.n, s.o), c32, "int32 %s", name)

			aF, bF := randFloats(rng, 2*s.m*s.n), randFloats(rng, 2*s.n*s.o)
			cF := make([]float32, 2*s.m*s.o)
			MatMulCmplxStrideF32(aF, bF, s.m, s.n, s.o, s.n, s.o, s.o, cF)
			require.Equal(t, matmulCmplxReferenceF32(aF, bF, s.m, s.n, s.o), cF, "float32 %s", name)
		}
	})
}

func TestMatMulCmplxStrideSubView(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	m, n, o := 3, 5, 4
	strideA, strideB, strideC := 7, 6, 9
	const sentinel = int16(0x5a5a)

	a := randInts[int16](rng, 2*m*n)
	b := randInts[int16](rng, 2*n*o)
	want := matmulCmplxReference(a, b, m, n, o)

	forEachPE(t, func(t *testing.T) {
		aView := embed(a, m, n, strideA, 0)
		bView := embed(b, n, o, strideB, 0)
		cView := embed(make([]int16, 2*m*o), m, o, strideC, sentinel)

		MatMulCmplxStrideI16(aView, bView, m, n, o, strideA, strideB, strideC, cView)

		require.Equal(t, want, extract(cView, m, o, strideC))
		for i := range m {
			for k := 2 * o; k < 2*strideC; k++ {
				if got := cView[2*i*strideC+k]; got != sentinel {
					t.Fatalf("padding of row %d at %d = %#x, want untouched %#x", i, k, got, sentinel)
				}
			}
		}
	})
}

func TestMatMulCmplxStrideZeroDims(t *testing.T) {
	forEachPE(t, func(t *testing.T) {
		c := []int16{9, 9, 9, 9}
		MatMulCmplxStrideI16(nil, nil, 0, 2, 2, 2, 2, 2, c)
		MatMulCmplxStrideI16(nil, nil, 2, 2, 0, 2, 0, 0, c)
		if !slices.Equal(c, []int16{9, 9, 9, 9}) {
			t.Errorf("zero M or O wrote output: %v", c)
		}

		// N = 0 is an empty sum.
		MatMulCmplxStrideI16(nil, nil, 1, 0, 2, 0, 2, 2, c)
		if !slices.Equal(c, []int16{0, 0, 0, 0}) {
			t.Errorf("zero N = %v, want zeros", c)
		}
	})
}

func TestMatMulCmplxStrideVariantsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m, n, o := 6, 11, 5
	a, b := randFloats(rng, 2*m*n), randFloats(rng, 2*n*o)
	scalar := make([]float32, 2*m*o)
	paired := make([]float32, 2*m*o)

	matMulCmplxStrideF32.Scalar(a, b, m, n, o, n, o, o, scalar, hwy.AllRows(m))
	matMulCmplxStrideF32.Paired(a, b, m, n, o, n, o, o, paired, hwy.AllRows(m))

	require.Equal(t, scalar, paired)
}

func TestMatMulCmplxStrideParallel(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	pool := workerpool.New(4)
	defer pool.Close()

	m, n, o := 13, 7, 5
	strideA, strideB, strideC := 8, 5, 6
	a := randInts[int32](rng, 2*m*strideA)
	b := randInts[int32](rng, 2*n*strideB)
	want := make([]int32, 2*m*strideC)
	BaseMatMulCmplxStride[int32, int64](a, b, m, n, o, strideA, strideB, strideC, want)

	for _, nPE := range []int{0, 1, 2, 3, 8, 16} {
		got := make([]int32, 2*m*strideC)
		MatMulCmplxStrideParallelI32(pool, nPE, a, b, m, n, o, strideA, strideB, strideC, got)
		require.Equal(t, want, got, "nPE=%d", nPE)
	}

	aF, bF := randFloats(rng, 2*m*strideA), randFloats(rng, 2*n*strideB)
	wantF := make([]float32, 2*m*strideC)
	BaseMatMulCmplxStride[float32, float32](aF, bF, m, n, o, strideA, strideB, strideC, wantF)
	gotF := make([]float32, 2*m*strideC)
	MatMulCmplxStrideParallelF32(pool, 4, aF, bF, m, n, o, strideA, strideB, strideC, gotF)
	require.Equal(t, wantF, gotF)
}

func TestMatMulCmplxStrideParallelNilPool(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	m, n, o := 4, 3, 2
	a, b := randInts[int8](rng, 2*m*n), randInts[int8](rng, 2*n*o)
	c := make([]int8, 2*m*o)

	MatMulCmplxStrideParallelI8(nil, 3, a, b, m, n, o, n, o, o, c)
	require.Equal(t, matmulCmplxReference(a, b, m, n, o), c)

	c16 := make([]int16, 2*m*o)
	a16, b16 := randInts[int16](rng, 2*m*n), randInts[int16](rng, 2*n*o)
	MatMulCmplxStrideParallelI16(nil, 2, a16, b16, m, n, o, n, o, o, c16)
	require.Equal(t, matmulCmplxReference(a16, b16, m, n, o), c16)
}

func BenchmarkMatMulCmplxStrideF32(b *testing.B) {
	rng := rand.New(rand.NewSource(6))
	for _, size := range []int{16, 64} {
		x, y := randFloats(rng, 2*size*size), randFloats(rng, 2*size*size)
		c := make([]float32, 2*size*size)
		for _, pe := range []hwy.PE{fabricController, clusterCore} {
			b.Run(fmt.Sprintf("%d/%s", size, pe.Role()), func(b *testing.B) {
				fn := matMulCmplxStrideF32.For(pe)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					fn(x, y, size, size, size, size, size, size, c, hwy.AllRows(size))
				}
			})
		}
	}
}

func BenchmarkMatMulCmplxStrideParallelF32(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	pool := workerpool.New(0)
	defer pool.Close()

	size := 64
	x, y := randFloats(rng, 2*size*size), randFloats(rng, 2*size*size)
	c := make([]float32, 2*size*size)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MatMulCmplxStrideParallelF32(pool, 0, x, y, size, size, size, size, size, size, c)
	}
}
