package bitkit

import (
	"slices"

	"github.com/hupe1980/bitkit/word"
)

// Count returns the number of bits in [first, last) equal to value.
//
// The range is decomposed into an optional partial first word, a run of
// full interior words and an optional partial last word; each part is
// counted with a single population count. Zero bits are derived from the
// range length instead of complementing words. Interior runs over
// contiguous memory go to the word kernels in one call.
func Count[W word.Word, C Cursor[W, C]](first, last Iterator[W, C], value Value) int {
	assertRange(first, last)

	d := word.Digits[W]()
	ones, total := 0, 0

	if first.cur.Equal(last.cur) {
		// Both ends in the same word
		if last.pos <= first.pos {
			return 0
		}
		total = int(last.pos - first.pos)
		ones = word.Popcount(word.FieldExtract(*first.cur.Word(), first.pos, last.pos-first.pos))
	} else {
		it := first.cur
		if first.pos != 0 {
			ones = word.Popcount(*it.Word() >> first.pos)
			total = int(d - first.pos)
			it = it.Next()
		}
		if span, ok := sliceSpan[W](it, last.cur); ok {
			ones += word.PopcountSlice(span)
			total += len(span) * int(d)
		} else {
			for ; !it.Equal(last.cur); it = it.Next() {
				ones += word.Popcount(*it.Word())
				total += int(d)
			}
		}
		if last.pos != 0 {
			ones += word.Popcount(*last.cur.Word() << (d - last.pos))
			total += int(last.pos)
		}
	}

	if !value {
		return total - ones
	}
	return ones
}

// Reverse reverses the order of the bits in [first, last) in place. Bits
// outside the range are left untouched.
//
// Aligned ranges reverse the word order and bit-swap every word. Misaligned
// ranges additionally shift the reversed words by the difference between
// the first position and the gap left at the end of the last word, stitching
// neighbors together with double shifts, and finally blend the saved bits
// outside the range back into the boundary words.
func Reverse[W word.Word, C BidirectionalCursor[W, C]](first, last Iterator[W, C]) {
	assertRange(first, last)

	d := word.Digits[W]()
	firstAligned := first.pos == 0
	lastAligned := last.pos == 0
	var gap uint
	if !lastAligned {
		gap = d - last.pos
	}

	switch {
	case firstAligned && lastAligned:
		reverseWords(first.cur, last.cur)
		for it := first.cur; !it.Equal(last.cur); it = it.Next() {
			*it.Word() = word.BitSwap(*it.Word())
		}

	case !first.cur.Equal(last.cur):
		// end is one past the last word holding range bits, back is that word
		end := last.cur
		if !lastAligned {
			end = end.Next()
		}
		back := end.Prev()

		firstValue := *first.cur.Word()
		lastValue := *back.Word()

		reverseWords(first.cur, end)

		switch {
		case first.pos < gap:
			// Move the reversed bits towards the start of the range.
			shift := gap - first.pos
			it := first.cur
			for ; !it.Equal(back); it = it.Next() {
				next := it.Next()
				*it.Word() = word.DoubleShiftLeft(*it.Word(), *next.Word(), shift)
			}
			*it.Word() <<= shift
		case first.pos > gap:
			// Move the reversed bits towards the end of the range.
			shift := first.pos - gap
			it := back
			for ; !it.Equal(first.cur); it = it.Prev() {
				prev := it.Prev()
				*it.Word() = word.DoubleShiftRight(*it.Word(), *prev.Word(), shift)
			}
			*it.Word() >>= shift
		}

		for it := first.cur; !it.Equal(end); it = it.Next() {
			*it.Word() = word.BitSwap(*it.Word())
		}

		if !firstAligned {
			*first.cur.Word() = word.BlendRange(firstValue, *first.cur.Word(), first.pos, d-first.pos)
		}
		if !lastAligned {
			*back.Word() = word.BlendRange(*back.Word(), lastValue, last.pos, d-last.pos)
		}

	default:
		// Both ends in the same word
		if last.pos <= first.pos {
			return
		}
		w := first.cur.Word()
		*w = word.BlendRange(*w, word.BitSwap(*w>>first.pos)>>gap, first.pos, last.pos-first.pos)
	}
}

// reverseWords reverses the order of the words in [first, end).
func reverseWords[W word.Word, C BidirectionalCursor[W, C]](first, end C) {
	if span, ok := sliceSpan[W](first, end); ok {
		slices.Reverse(span)
		return
	}
	for !first.Equal(end) {
		end = end.Prev()
		if first.Equal(end) {
			break
		}
		a, b := first.Word(), end.Word()
		*a, *b = *b, *a
		first = first.Next()
	}
}
