package word

import (
	"math/bits"
	"unsafe"

	"github.com/hupe1980/bitkit/internal/simd"
)

// Popcount returns the number of set bits in w.
func Popcount[W Word](w W) int {
	switch Digits[W]() {
	case 8:
		return bits.OnesCount8(uint8(w))
	case 16:
		return bits.OnesCount16(uint16(w))
	case 32:
		return bits.OnesCount32(uint32(w))
	case 64:
		return bits.OnesCount64(uint64(w))
	default:
		return popcountLoop(w)
	}
}

// PopcountSlice returns the number of set bits across words. 64-bit words
// share the layout of uint64 and go to the word kernels directly.
func PopcountSlice[W Word](words []W) int {
	if Digits[W]() == 64 && len(words) > 0 {
		w64 := unsafe.Slice((*uint64)(unsafe.Pointer(unsafe.SliceData(words))), len(words))
		return simd.PopcountWords(w64)
	}
	n := 0
	for _, w := range words {
		n += Popcount(w)
	}
	return n
}

// LeadingZeros returns the number of zero bits above the most significant
// set bit of w, or Digits when w is zero.
func LeadingZeros[W Word](w W) uint {
	switch Digits[W]() {
	case 8:
		return uint(bits.LeadingZeros8(uint8(w)))
	case 16:
		return uint(bits.LeadingZeros16(uint16(w)))
	case 32:
		return uint(bits.LeadingZeros32(uint32(w)))
	case 64:
		return uint(bits.LeadingZeros64(uint64(w)))
	default:
		return leadingZerosLoop(w)
	}
}

// TrailingZeros returns the number of zero bits below the least significant
// set bit of w, or Digits when w is zero.
func TrailingZeros[W Word](w W) uint {
	switch Digits[W]() {
	case 8:
		return uint(bits.TrailingZeros8(uint8(w)))
	case 16:
		return uint(bits.TrailingZeros16(uint16(w)))
	case 32:
		return uint(bits.TrailingZeros32(uint32(w)))
	case 64:
		return uint(bits.TrailingZeros64(uint64(w)))
	default:
		return trailingZerosLoop(w)
	}
}

func popcountLoop[W Word](w W) int {
	n := 0
	for ; w != 0; w >>= 1 {
		n += int(w & 1)
	}
	return n
}

func leadingZerosLoop[W Word](w W) uint {
	var n uint
	for ; w != 0; w >>= 1 {
		n++
	}
	return Digits[W]() - n
}

func trailingZerosLoop[W Word](w W) uint {
	if w == 0 {
		return Digits[W]()
	}
	var n uint
	for ; w&1 == 0; w >>= 1 {
		n++
	}
	return n
}
