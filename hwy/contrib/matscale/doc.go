// Package matscale provides strided matrix scaling, the one kernel family
// with built-in multi-core fan-out.
//
// The kernel computes dst[i, j] = src[i, j] * scaleFactor. A shard owns the
// rows of an explicit hwy.RowRange; when it is forked once per core, core c
// owns rows c, c+nPE, c+2*nPE, ... so the shards cover every row exactly once
// and never write the same row of dst. The kernel itself does no
// synchronization: the fork returns only after every shard has finished.
//
// Example usage:
//
//	pool := workerpool.New(hwy.ClusterSize())
//	defer pool.Close()
//
//	matscale.MatScaleStrideParallelF32(pool, 8, src, M, N, strideSrc, strideDst, 0.5, dst)
//
// Integer scaling wraps; there is no fixed-point shift.
package matscale
