package simd

import "math/bits"

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; platform-specific init()
// functions override with accelerated versions when available.
var (
	kernelPdep64        = pdep64Generic
	kernelPext64        = pext64Generic
	kernelPopcountWords = popcountWordsGeneric
)

// ============================================================================
// Public API - Zero-overhead dispatch through function pointers
// ============================================================================

// Pdep64 deposits the low bits of src into the positions where mask is set,
// in ascending bit order of the mask. All other result bits are zero.
func Pdep64(src, mask uint64) uint64 {
	return kernelPdep64(src, mask)
}

// Pext64 gathers the bits of src selected by mask into the low bits of the
// result, in ascending bit order of the mask.
func Pext64(src, mask uint64) uint64 {
	return kernelPext64(src, mask)
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

// ============================================================================
// Generic implementations
// ============================================================================

// pdep64Generic walks the mask from its lowest set bit upwards. It is the
// reference definition the hardware kernels are tested against.
func pdep64Generic(src, mask uint64) uint64 {
	var dest uint64
	for ; mask != 0; mask &= mask - 1 {
		if src&1 != 0 {
			dest |= mask & -mask
		}
		src >>= 1
	}
	return dest
}

func pext64Generic(src, mask uint64) uint64 {
	var dest uint64
	for bit := uint64(1); mask != 0; bit <<= 1 {
		if src&(mask&-mask) != 0 {
			dest |= bit
		}
		mask &= mask - 1
	}
	return dest
}

func popcountWordsGeneric(words []uint64) int {
	count := 0
	// Process 4 words at a time
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

// setGenericKernels restores the portable kernels.
func setGenericKernels() {
	kernelPdep64 = pdep64Generic
	kernelPext64 = pext64Generic
	kernelPopcountWords = popcountWordsGeneric
}
