//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ASIMD is mandatory on ARMv8-A; a false report means the kernel hid the
	// hwcaps, and the scalar kernels are the safe choice.
	if !cpu.ARM64.HasASIMD {
		setScalarMode()
		return
	}
	currentLevel = DispatchPaired
	currentName = "neon"
}
