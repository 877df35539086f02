package matscale

import "github.com/pulp-platform/go-pulpdsp/hwy"

// ScaleArgs describes one strided scale operation. It is shared read-only by
// every shard of a fork and must not be retained after the call.
type ScaleArgs[T hwy.Lanes] struct {
	Src         []T
	M           int // rows
	N           int // columns
	StrideSrc   int
	StrideDst   int
	ScaleFactor T
	NPE         int // cores the rows are dealt across
	Dst         []T
}

// BaseMatScaleStride scales an M x N strided matrix on a single core with
// the scalar loop.
func BaseMatScaleStride[T hwy.Lanes](src []T, m, n, strideSrc, strideDst int, scaleFactor T, dst []T) {
	baseMatScaleStrideRows(&ScaleArgs[T]{
		Src: src, M: m, N: n, StrideSrc: strideSrc, StrideDst: strideDst,
		ScaleFactor: scaleFactor, NPE: 1, Dst: dst,
	}, hwy.AllRows(m))
}

func baseMatScaleStrideRows[T hwy.Lanes](args *ScaleArgs[T], rows hwy.RowRange) {
	src, dst := args.Src, args.Dst
	for i := range rows.All() {
		for j := 0; j < args.N; j++ {
			dst[i*args.StrideDst+j] = T(src[i*args.StrideSrc+j] * args.ScaleFactor)
		}
	}
}

// MatScaleStrideRows scales exactly the rows in rows, two columns per step
// with a scalar cleanup for an odd column count. Rows of args.Src outside
// the range are neither read nor written.
func MatScaleStrideRows[T hwy.Lanes](args *ScaleArgs[T], rows hwy.RowRange) {
	src, dst := args.Src, args.Dst
	scale := hwy.Pair[T]{args.ScaleFactor, args.ScaleFactor}
	steps, cleanup := hwy.LoopBounds(args.N, 2)
	for i := range rows.All() {
		srcRow := i * args.StrideSrc
		dstRow := i * args.StrideDst
		for s := range steps {
			j := 2 * s
			hwy.StorePair(hwy.Mul2(hwy.LoadPair(src[srcRow+j:]), scale), dst[dstRow+j:])
		}
		if cleanup != 0 {
			j := args.N - 1
			dst[dstRow+j] = T(src[srcRow+j] * args.ScaleFactor)
		}
	}
}

// MatScaleStrideShard runs the share of core coreID: rows coreID,
// coreID+args.NPE, coreID+2*args.NPE, ...
func MatScaleStrideShard[T hwy.Lanes](args *ScaleArgs[T], coreID int) {
	MatScaleStrideRows(args, hwy.CyclicRows(coreID, args.NPE, args.M))
}
