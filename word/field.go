package word

import "github.com/hupe1980/bitkit/internal/simd"

// FieldExtract returns bits [start, start+length) of w right-aligned and
// zero-filled above. It returns 0 when start >= Digits; a length reaching
// past the top of the word extracts up to the end.
func FieldExtract[W Word](w W, start, length uint) W {
	if start >= Digits[W]() {
		return 0
	}
	return (w >> start) & lowMask[W](length)
}

// FieldMask returns a word with bits [start, start+length) set, truncated at
// the top of the word.
func FieldMask[W Word](start, length uint) W {
	if start >= Digits[W]() {
		return 0
	}
	return lowMask[W](length) << start
}

// Deposit scatters the low bits of src into the positions where mask is set,
// in ascending bit order of the mask (pdep).
func Deposit[W Word](src, mask W) W {
	return W(simd.Pdep64(uint64(src), uint64(mask)))
}

// Extract gathers the bits of src at the positions where mask is set into
// the low bits of the result (pext).
func Extract[W Word](src, mask W) W {
	return W(simd.Pext64(uint64(src), uint64(mask)))
}

// Blend returns b's bit wherever mask is set and a's bit elsewhere.
func Blend[W Word](a, b, mask W) W {
	return a ^ ((a ^ b) & mask)
}

// BlendRange returns a with bits [start, start+length) replaced by the same
// bits of b.
func BlendRange[W Word](a, b W, start, length uint) W {
	return Blend(a, b, FieldMask[W](start, length))
}

// Compare reports whether the length-bit field of a at startA equals the
// field of b at startB.
func Compare[W Word](a, b W, startA, startB, length uint) bool {
	return FieldExtract(a, startA, length) == FieldExtract(b, startB, length)
}
