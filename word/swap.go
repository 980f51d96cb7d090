package word

import "math/bits"

// interleave holds the divide-and-conquer masks for a 64-bit swap, from the
// widest block (32 bits) down to single bits. Narrower power-of-two widths
// use the truncated tail of the table.
var interleave = [...]uint64{
	0x00000000FFFFFFFF,
	0x0000FFFF0000FFFF,
	0x00FF00FF00FF00FF,
	0x0F0F0F0F0F0F0F0F,
	0x3333333333333333,
	0x5555555555555555,
}

// ByteSwap reverses the byte order of w.
func ByteSwap[W Word](w W) W {
	switch Digits[W]() {
	case 8:
		return w
	case 16:
		return W(bits.ReverseBytes16(uint16(w)))
	case 32:
		return W(bits.ReverseBytes32(uint32(w)))
	case 64:
		return W(bits.ReverseBytes64(uint64(w)))
	default:
		return byteSwapLoop(w)
	}
}

// BitSwap reverses the bit order of w: bit i moves to bit Digits-1-i.
func BitSwap[W Word](w W) W {
	d := Digits[W]()
	switch {
	case d == 8:
		return W(swapByte(uint8(w)))
	case d&(d-1) == 0:
		return bitSwapPow2(w)
	default:
		return ReverseField(w, d)
	}
}

// ReverseField reverses the order of the n lowest bits of w and clears the
// bits above them. n greater than Digits is treated as Digits. It handles
// any field width one bit at a time.
func ReverseField[W Word](w W, n uint) W {
	if d := Digits[W](); n > d {
		n = d
	}
	var dest W
	for i := uint(0); i < n; i++ {
		dest = dest<<1 | w&1
		w >>= 1
	}
	return dest
}

// swapByte reverses a byte with three 64-bit multiplies.
func swapByte(b uint8) uint8 {
	return uint8(((uint64(b) * 0x80200802) & 0x0884422110) * 0x0101010101 >> 32)
}

// bitSwapPow2 swaps adjacent blocks, halving the block size each round.
func bitSwapPow2[W Word](w W) W {
	d := Digits[W]()
	i := len(interleave) - bits.TrailingZeros(d)
	for s := d >> 1; s > 0; s >>= 1 {
		m := W(interleave[i])
		w = (w>>s)&m | (w&m)<<s
		i++
	}
	return w
}

// byteSwapLoop reverses bytes one at a time. The shift is a variable so the
// body is also valid for 8-bit words.
func byteSwapLoop[W Word](w W) W {
	var dest W
	s := uint(8)
	for i := uint(0); i < Digits[W]()/s; i++ {
		dest = dest<<s | w&0xFF
		w >>= s
	}
	return dest
}
