package bitkit

import (
	"container/list"

	"github.com/hupe1980/bitkit/word"
)

// Iterator walks a flattened sequence of bits stored in a sequence of words.
// It pairs a word cursor with a bit position in [0, digits) and inherits the
// capabilities of the cursor: Prev needs a BidirectionalCursor, and Add,
// Sub, Index, Distance, Less and Compare need a RandomAccessCursor. All
// operations are O(1) and allocation-free.
//
// The zero Iterator is only useful as a placeholder.
type Iterator[W word.Word, C Cursor[W, C]] struct {
	cur C
	pos uint
}

// NewIterator returns an iterator at bit pos of the word at cur. pos must be
// less than the width of W. The word type has to be given explicitly:
//
//	it := bitkit.NewIterator[uint64](cursor, 3)
func NewIterator[W word.Word, C Cursor[W, C]](cur C, pos uint) Iterator[W, C] {
	assertPosition[W](pos)
	return Iterator[W, C]{cur: cur, pos: pos}
}

// Begin returns an iterator at the first bit of words.
func Begin[W word.Word](words []W) Iterator[W, SliceCursor[W]] {
	return Iterator[W, SliceCursor[W]]{cur: SliceCursor[W]{words: words}}
}

// End returns an iterator one past the last bit of words.
func End[W word.Word](words []W) Iterator[W, SliceCursor[W]] {
	return Iterator[W, SliceCursor[W]]{cur: SliceCursor[W]{words: words, index: len(words)}}
}

// IteratorAt returns an iterator at flat bit index bit of words.
func IteratorAt[W word.Word](words []W, bit int) Iterator[W, SliceCursor[W]] {
	return Add(Begin(words), bit)
}

// ListBegin returns an iterator at the first bit of the words held by l.
func ListBegin[W word.Word](l *list.List) Iterator[W, ListCursor[W]] {
	return Iterator[W, ListCursor[W]]{cur: ListCursor[W]{list: l, elem: l.Front()}}
}

// ListEnd returns an iterator one past the last bit of the words held by l.
func ListEnd[W word.Word](l *list.List) Iterator[W, ListCursor[W]] {
	return Iterator[W, ListCursor[W]]{cur: ListCursor[W]{list: l}}
}

// Ref returns a Reference to the bit at it.
func (it Iterator[W, C]) Ref() Reference[W] {
	return Reference[W]{addr: it.cur.Word(), mask: W(1) << it.pos}
}

// Pointer returns a Pointer to the bit at it.
func (it Iterator[W, C]) Pointer() Pointer[W] {
	return Pointer[W]{ref: it.Ref()}
}

// Value reads the bit at it.
func (it Iterator[W, C]) Value() Value {
	return it.Ref().Value()
}

// Base returns the word cursor of it.
func (it Iterator[W, C]) Base() C {
	return it.cur
}

// Position returns the bit index of it inside the current word.
func (it Iterator[W, C]) Position() uint {
	return it.pos
}

// Next returns the iterator one bit further.
func (it Iterator[W, C]) Next() Iterator[W, C] {
	if it.pos+1 < word.Digits[W]() {
		it.pos++
		return it
	}
	return Iterator[W, C]{cur: it.cur.Next()}
}

// Equal reports whether it and o denote the same bit.
func (it Iterator[W, C]) Equal(o Iterator[W, C]) bool {
	return it.pos == o.pos && it.cur.Equal(o.cur)
}

// Prev returns the iterator one bit back.
func Prev[W word.Word, C BidirectionalCursor[W, C]](it Iterator[W, C]) Iterator[W, C] {
	if it.pos > 0 {
		it.pos--
		return it
	}
	return Iterator[W, C]{cur: it.cur.Prev(), pos: word.Digits[W]() - 1}
}

// Add returns it moved by n bits in one step. Negative n moves backwards.
func Add[W word.Word, C RandomAccessCursor[W, C]](it Iterator[W, C], n int) Iterator[W, C] {
	words, pos := split(it.pos, n, word.Digits[W]())
	return Iterator[W, C]{cur: it.cur.Add(words), pos: pos}
}

// Sub returns it moved back by n bits.
func Sub[W word.Word, C RandomAccessCursor[W, C]](it Iterator[W, C], n int) Iterator[W, C] {
	return Add(it, -n)
}

// Index returns a Reference to the bit n bits away from it.
func Index[W word.Word, C RandomAccessCursor[W, C]](it Iterator[W, C], n int) Reference[W] {
	return Add(it, n).Ref()
}

// Distance returns the signed number of bits from first to last.
func Distance[W word.Word, C RandomAccessCursor[W, C]](first, last Iterator[W, C]) int {
	return last.cur.Diff(first.cur)*int(word.Digits[W]()) + int(last.pos) - int(first.pos)
}

// Less reports whether a is before b: cursor first, then bit position.
func Less[W word.Word, C RandomAccessCursor[W, C]](a, b Iterator[W, C]) bool {
	return Compare(a, b) < 0
}

// Compare returns -1, 0 or +1 depending on whether a is before, at or
// after b.
func Compare[W word.Word, C RandomAccessCursor[W, C]](a, b Iterator[W, C]) int {
	switch {
	case a.cur.Less(b.cur):
		return -1
	case b.cur.Less(a.cur):
		return 1
	case a.pos < b.pos:
		return -1
	case a.pos > b.pos:
		return 1
	default:
		return 0
	}
}
