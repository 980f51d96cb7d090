package word

// DoubleShiftLeft treats dest:src as one register of 2*Digits bits with dest
// in the high half, shifts it left by count and returns the high half (shld).
// Bits shifted in from below src are zero.
func DoubleShiftLeft[W Word](dest, src W, count uint) W {
	d := Digits[W]()
	switch {
	case count == 0:
		return dest
	case count < d:
		return dest<<count | src>>(d-count)
	case count < 2*d:
		return src << (count - d)
	default:
		return 0
	}
}

// DoubleShiftRight treats src:dest as one register of 2*Digits bits with dest
// in the low half, shifts it right by count and returns the low half (shrd).
// Bits shifted in from above src are zero.
func DoubleShiftRight[W Word](dest, src W, count uint) W {
	d := Digits[W]()
	switch {
	case count == 0:
		return dest
	case count < d:
		return dest>>count | src<<(d-count)
	case count < 2*d:
		return src >> (count - d)
	default:
		return 0
	}
}
