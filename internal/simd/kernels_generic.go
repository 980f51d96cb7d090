//go:build !amd64 || noasm

package simd

func initKernels() {
	// No accelerated kernels are compiled in.
	activeISA = Generic
	setGenericKernels()
}
