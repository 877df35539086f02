package matscale

import "github.com/pulp-platform/go-pulpdsp/hwy"

type rowsKernel[T hwy.Lanes] func(args *ScaleArgs[T], rows hwy.RowRange)

var (
	matScaleStrideF32 = hwy.Variant[rowsKernel[float32]]{
		Scalar: baseMatScaleStrideRows[float32],
		Paired: MatScaleStrideRows[float32],
	}
	matScaleStrideI8 = hwy.Variant[rowsKernel[int8]]{
		Scalar: baseMatScaleStrideRows[int8],
		Paired: MatScaleStrideRows[int8],
	}
	matScaleStrideI16 = hwy.Variant[rowsKernel[int16]]{
		Scalar: baseMatScaleStrideRows[int16],
		Paired: MatScaleStrideRows[int16],
	}
	matScaleStrideI32 = hwy.Variant[rowsKernel[int32]]{
		Scalar: baseMatScaleStrideRows[int32],
		Paired: MatScaleStrideRows[int32],
	}
)

func scaleAll[T hwy.Lanes](kernel rowsKernel[T], src []T, m, n, strideSrc, strideDst int, scaleFactor T, dst []T) {
	kernel(&ScaleArgs[T]{
		Src: src, M: m, N: n, StrideSrc: strideSrc, StrideDst: strideDst,
		ScaleFactor: scaleFactor, NPE: 1, Dst: dst,
	}, hwy.AllRows(m))
}

// MatScaleStrideF32 scales a strided float32 matrix on the calling core.
func MatScaleStrideF32(src []float32, m, n, strideSrc, strideDst int, scaleFactor float32, dst []float32) {
	scaleAll(matScaleStrideF32.Current(), src, m, n, strideSrc, strideDst, scaleFactor, dst)
}

// MatScaleStrideI8 scales a strided 8-bit integer matrix on the calling
// core. Products wrap to 8 bits.
func MatScaleStrideI8(src []int8, m, n, strideSrc, strideDst int, scaleFactor int8, dst []int8) {
	scaleAll(matScaleStrideI8.Current(), src, m, n, strideSrc, strideDst, scaleFactor, dst)
}

// MatScaleStrideI16 scales a strided 16-bit integer matrix on the calling
// core. Products wrap to 16 bits.
func MatScaleStrideI16(src []int16, m, n, strideSrc, strideDst int, scaleFactor int16, dst []int16) {
	scaleAll(matScaleStrideI16.Current(), src, m, n, strideSrc, strideDst, scaleFactor, dst)
}

// MatScaleStrideI32 scales a strided 32-bit integer matrix on the calling
// core. Products wrap to 32 bits.
func MatScaleStrideI32(src []int32, m, n, strideSrc, strideDst int, scaleFactor int32, dst []int32) {
	scaleAll(matScaleStrideI32.Current(), src, m, n, strideSrc, strideDst, scaleFactor, dst)
}
