package bitmap

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/cockroachdb/errors"

	"github.com/hupe1980/bitkit"
	"github.com/hupe1980/bitkit/word"
)

var (
	// ErrRangeTooLarge is returned when a set bit lies at an offset that does
	// not fit a 32-bit roaring bitmap.
	ErrRangeTooLarge = errors.New("bit range exceeds 32-bit bitmap offsets")

	// ErrOutOfRange is returned when a bitmap holds offsets past the end of
	// the range it is applied to.
	ErrOutOfRange = errors.New("bitmap offset out of range")
)

// FromRange returns a bitmap holding the offsets, relative to first, of the
// set bits in [first, last).
func FromRange[W word.Word, C bitkit.Cursor[W, C]](first, last bitkit.Iterator[W, C]) (*roaring.Bitmap, error) {
	bm := roaring.New()
	var err error
	walk(first, last, func(w *W, pos, length uint, offset uint64) bool {
		field := word.FieldExtract(*w, pos, length)
		for field != 0 {
			bit := offset + uint64(word.TrailingZeros(field))
			if bit > math.MaxUint32 {
				err = errors.Wrapf(ErrRangeTooLarge, "offset %d", bit)
				return false
			}
			bm.Add(uint32(bit))
			field &= field - 1
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return bm, nil
}

// Cardinality returns the number of set bits in [first, last) as seen by
// the exported bitmap. It always agrees with bitkit.Count for value One.
func Cardinality[W word.Word, C bitkit.Cursor[W, C]](first, last bitkit.Iterator[W, C]) (uint64, error) {
	bm, err := FromRange(first, last)
	if err != nil {
		return 0, err
	}
	return bm.GetCardinality(), nil
}

// Apply overwrites [first, last) with bm: bits at offsets in bm are set and
// every other bit of the range is cleared. Bits outside the range keep their
// values. Nothing is written when bm holds an offset past the range.
func Apply[W word.Word, C bitkit.RandomAccessCursor[W, C]](first, last bitkit.Iterator[W, C], bm *roaring.Bitmap) error {
	n := bitkit.Distance(first, last)
	if !bm.IsEmpty() && uint64(bm.Maximum()) >= uint64(max(n, 0)) {
		return errors.Wrapf(ErrOutOfRange, "offset %d in range of %d bits", bm.Maximum(), n)
	}

	walk(first, last, func(w *W, pos, length uint, _ uint64) bool {
		*w &^= word.FieldMask[W](pos, length)
		return true
	})

	it := bm.Iterator()
	for it.HasNext() {
		bitkit.Index(first, int(it.Next())).Set()
	}
	return nil
}

// walk calls fn for the part of every word that lies inside [first, last),
// passing the field start, its length and the range offset of its first bit.
// It stops early when fn returns false.
func walk[W word.Word, C bitkit.Cursor[W, C]](first, last bitkit.Iterator[W, C], fn func(w *W, pos, length uint, offset uint64) bool) {
	d := word.Digits[W]()
	cur, pos := first.Base(), first.Position()
	end := last.Base()
	var offset uint64

	for {
		atLast := cur.Equal(end)
		stop := d
		if atLast {
			stop = last.Position()
		}
		if pos < stop {
			if !fn(cur.Word(), pos, stop-pos, offset) {
				return
			}
			offset += uint64(stop - pos)
		}
		if atLast {
			return
		}
		cur = cur.Next()
		pos = 0
	}
}
