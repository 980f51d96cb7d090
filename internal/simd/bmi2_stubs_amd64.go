//go:build amd64 && !noasm

package simd

//go:noescape
func pdep64BMI2(src, mask uint64) uint64

//go:noescape
func pext64BMI2(src, mask uint64) uint64
