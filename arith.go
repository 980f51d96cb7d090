package bitkit

import (
	"unsafe"

	"github.com/hupe1980/bitkit/word"
)

// split normalizes the bit offset pos+n into a word offset and a position
// inside that word. The word offset is rounded toward negative infinity, so
// the position is always in [0, digits).
func split(pos uint, n int, digits uint) (int, uint) {
	d := int(digits)
	sum := int(pos) + n
	q := sum / d
	if sum%d < 0 {
		q--
	}
	return q, uint(sum - q*d)
}

// wordAdd offsets p by n words.
func wordAdd[W word.Word](p *W, n int) *W {
	var w W
	return (*W)(unsafe.Add(unsafe.Pointer(p), n*int(unsafe.Sizeof(w))))
}

// wordDiff returns the number of words from b to a.
func wordDiff[W word.Word](a, b *W) int {
	var w W
	return int(uintptr(unsafe.Pointer(a))-uintptr(unsafe.Pointer(b))) / int(unsafe.Sizeof(w))
}
