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

package hwy

// This file provides the lane-pair and lane-quad primitives. Integer lanes use
// native wraparound. Every floating-point product is converted back to its
// type before it is summed, which keeps the compiler from fusing it into a
// multiply-add and makes the result match the same expression written with
// scalars.

// LoadPair loads two adjacent scalars.
func LoadPair[T Lanes](src []T) Pair[T] {
	_ = src[1]
	return Pair[T]{src[0], src[1]}
}

// StorePair writes both lanes of p to dst[0:2].
func StorePair[T Lanes](p Pair[T], dst []T) {
	_ = dst[1]
	dst[0] = p[0]
	dst[1] = p[1]
}

// LoadQuad loads four adjacent scalars.
func LoadQuad[T Lanes](src []T) Quad[T] {
	_ = src[3]
	return Quad[T]{src[0], src[1], src[2], src[3]}
}

// StoreQuad writes all four lanes of q to dst[0:4].
func StoreQuad[T Lanes](q Quad[T], dst []T) {
	_ = dst[3]
	dst[0] = q[0]
	dst[1] = q[1]
	dst[2] = q[2]
	dst[3] = q[3]
}

// Add2 performs lanewise addition.
func Add2[T Lanes](a, b Pair[T]) Pair[T] {
	return Pair[T]{a[0] + b[0], a[1] + b[1]}
}

// Sub2 performs lanewise subtraction.
func Sub2[T Lanes](a, b Pair[T]) Pair[T] {
	return Pair[T]{a[0] - b[0], a[1] - b[1]}
}

// Mul2 performs lanewise multiplication.
func Mul2[T Lanes](a, b Pair[T]) Pair[T] {
	return Pair[T]{T(a[0] * b[0]), T(a[1] * b[1])}
}

// Shuffle2 selects two lanes from the concatenation of a and b.
// Indices 0 and 1 address a, 2 and 3 address b. Only the low two bits of
// each index are used.
//
//	Shuffle2({a0,a1}, {b0,b1}, 1, 3) = {a1, b1}
//	Shuffle2({a0,a1}, {b0,b1}, 0, 2) = {a0, b0}
func Shuffle2[T Lanes](a, b Pair[T], i0, i1 int) Pair[T] {
	return Pair[T]{pick(a, b, i0), pick(a, b, i1)}
}

func pick[T Lanes](a, b Pair[T], i int) T {
	i &= 3
	if i < 2 {
		return a[i]
	}
	return b[i-2]
}

// Swap2 exchanges the two lanes of a.
func Swap2[T Lanes](a Pair[T]) Pair[T] {
	return Pair[T]{a[1], a[0]}
}

// DotP2 returns a[0]*b[0] + a[1]*b[1] computed in the accumulator type A.
func DotP2[T Lanes, A Lanes](a, b Pair[T]) A {
	p0 := A(A(a[0]) * A(b[0]))
	p1 := A(A(a[1]) * A(b[1]))
	return p0 + p1
}

// SumDotP2 returns acc + a[0]*b[0] + a[1]*b[1] computed in the accumulator
// type A.
func SumDotP2[T Lanes, A Lanes](a, b Pair[T], acc A) A {
	return acc + DotP2[T, A](a, b)
}

// DiffP2 returns a[0]*b[0] - a[1]*b[1] computed in the accumulator type A.
// With a = (re, im) of one sample and b = (re, im) of another, this is the
// real part of their complex product.
func DiffP2[T Lanes, A Lanes](a, b Pair[T]) A {
	p0 := A(A(a[0]) * A(b[0]))
	p1 := A(A(a[1]) * A(b[1]))
	return p0 - p1
}

// Add4 performs lanewise addition on quads.
func Add4[T Lanes](a, b Quad[T]) Quad[T] {
	return Quad[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Xor4 performs lanewise bitwise XOR on quads.
func Xor4[T Integers](a, b Quad[T]) Quad[T] {
	return Quad[T]{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// NegOdd4 negates lanes 1 and 3.
func NegOdd4[T Lanes](q Quad[T]) Quad[T] {
	return Quad[T]{q[0], -q[1], q[2], -q[3]}
}
