// Package hwy provides the paired-lane arithmetic and processing-element
// dispatch that the go-pulpdsp kernels are built on.
//
// Kernels operate on lane pairs (two adjacent scalars) and lane quads (two
// interleaved complex samples). The primitives here are plain Go and are
// bit-exact with the equivalent scalar formula, so a kernel written with them
// produces the same result whether it runs the scalar or the paired variant.
//
// Basic usage:
//
//	import "github.com/pulp-platform/go-pulpdsp/hwy"
//
//	ab := hwy.LoadPair(src[0:])
//	cd := hwy.LoadPair(src[2:])
//	acc := hwy.SumDotP2[int16, int32](ab, cd, 0)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in a lane.
type Lanes interface {
	Floats | Integers
}

// Pair is a lane pair: two scalars treated as a single operand.
type Pair[T Lanes] [2]T

// Quad holds four lanes, i.e. two interleaved complex samples
// (re0, im0, re1, im1).
type Quad[T Lanes] [4]T
