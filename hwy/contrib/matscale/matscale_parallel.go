package matscale

import (
	"github.com/pulp-platform/go-pulpdsp/hwy"
	"github.com/pulp-platform/go-pulpdsp/hwy/contrib/workerpool"
)

// MatScaleStrideParallel forks args.NPE shards from pool, one per core id,
// and returns once all of them have finished. args.NPE <= 0 is replaced by
// hwy.ClusterSize. A nil pool runs the shards one after the other.
func MatScaleStrideParallel[T hwy.Lanes](pool *workerpool.Pool, args *ScaleArgs[T]) {
	shared := *args
	if shared.NPE <= 0 {
		shared.NPE = hwy.ClusterSize()
	}
	pool.Fork(shared.NPE, func(coreID int) {
		MatScaleStrideShard(&shared, coreID)
	})
}

// MatScaleStrideParallelF32 scales a strided float32 matrix with nPE cores.
func MatScaleStrideParallelF32(pool *workerpool.Pool, nPE int, src []float32, m, n, strideSrc, strideDst int, scaleFactor float32, dst []float32) {
	MatScaleStrideParallel(pool, &ScaleArgs[float32]{
		Src: src, M: m, N: n, StrideSrc: strideSrc, StrideDst: strideDst,
		ScaleFactor: scaleFactor, NPE: nPE, Dst: dst,
	})
}

// MatScaleStrideParallelI8 scales a strided 8-bit integer matrix with nPE
// cores.
func MatScaleStrideParallelI8(pool *workerpool.Pool, nPE int, src []int8, m, n, strideSrc, strideDst int, scaleFactor int8, dst []int8) {
	MatScaleStrideParallel(pool, &ScaleArgs[int8]{
		Src: src, M: m, N: n, StrideSrc: strideSrc, StrideDst: strideDst,
		ScaleFactor: scaleFactor, NPE: nPE, Dst: dst,
	})
}

// MatScaleStrideParallelI16 scales a strided 16-bit integer matrix with nPE
// cores.
func MatScaleStrideParallelI16(pool *workerpool.Pool, nPE int, src []int16, m, n, strideSrc, strideDst int, scaleFactor int16, dst []int16) {
	MatScaleStrideParallel(pool, &ScaleArgs[int16]{
		Src: src, M: m, N: n, StrideSrc: strideSrc, StrideDst: strideDst,
		ScaleFactor: scaleFactor, NPE: nPE, Dst: dst,
	})
}

// MatScaleStrideParallelI32 scales a strided 32-bit integer matrix with nPE
// cores.
func MatScaleStrideParallelI32(pool *workerpool.Pool, nPE int, src []int32, m, n, strideSrc, strideDst int, scaleFactor int32, dst []int32) {
	MatScaleStrideParallel(pool, &ScaleArgs[int32]{
		Src: src, M: m, N: n, StrideSrc: strideSrc, StrideDst: strideDst,
		ScaleFactor: scaleFactor, NPE: nPE, Dst: dst,
	})
}
