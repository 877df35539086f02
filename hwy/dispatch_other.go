//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures (wasm, riscv64, ...) run the scalar kernels only,
	// so every call resolves to the fabric controller.
	setScalarMode()
}
