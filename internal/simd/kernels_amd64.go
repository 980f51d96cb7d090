//go:build amd64 && !noasm

package simd

// initKernels sets the kernel pointers based on the active ISA.
// Called from initCapabilities once CPU features are known.
func initKernels() {
	switch activeISA {
	case BMI2:
		setBMI2Kernels()
	default:
		setGenericKernels()
	}
}

// ============================================================================
// BMI2 Kernels
// ============================================================================

func setBMI2Kernels() {
	kernelPdep64 = pdep64BMI2
	kernelPext64 = pext64BMI2
}
