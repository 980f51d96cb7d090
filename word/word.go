package word

import "math/bits"

// Word is the set of unsigned integer types bits can be packed into.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Digits returns the bit width of W.
func Digits[W Word]() uint {
	return uint(bits.OnesCount64(uint64(^W(0))))
}

// Ones returns a word with every bit set.
func Ones[W Word]() W {
	return ^W(0)
}

// lowMask returns a word with the n lowest bits set. n >= digits yields all ones.
func lowMask[W Word](n uint) W {
	if n >= Digits[W]() {
		return ^W(0)
	}
	return W(1)<<n - 1
}
