package bitkit

import (
	"container/list"
	"unsafe"

	"github.com/hupe1980/bitkit/word"
)

// Cursor is a forward position in a sequence of words. C is the concrete
// cursor type, so cursors are plain values with no interface boxing in the
// algorithms.
type Cursor[W word.Word, C any] interface {
	// Word returns the word at the cursor. Calling Word on an end cursor is
	// invalid.
	Word() *W
	// Next returns the cursor one word further.
	Next() C
	// Equal reports whether both cursors denote the same position.
	Equal(C) bool
}

// BidirectionalCursor is a Cursor that can also step backwards.
type BidirectionalCursor[W word.Word, C any] interface {
	Cursor[W, C]
	// Prev returns the cursor one word back.
	Prev() C
}

// RandomAccessCursor is a BidirectionalCursor with constant-time jumps and
// distances.
type RandomAccessCursor[W word.Word, C any] interface {
	BidirectionalCursor[W, C]
	// Add returns the cursor n words away.
	Add(n int) C
	// Diff returns the number of words from o to the cursor.
	Diff(o C) int
	// Less reports whether the cursor is before o.
	Less(o C) bool
}

// sliceSpan returns the words in [first, end) when the cursors are
// SliceCursors over W, so that the algorithms can hand whole runs of words
// to the word kernels. The cursors are asserted to a concrete type and never
// stored, which keeps the conversion on the stack.
func sliceSpan[W word.Word, C any](first, end C) ([]W, bool) {
	f, ok := any(first).(SliceCursor[W])
	if !ok {
		return nil, false
	}
	e := any(end).(SliceCursor[W])
	return f.words[f.index:e.index], true
}

// SliceCursor is a random-access cursor over a slice of words. Comparing
// cursors over different slices is meaningless, as with native pointers.
type SliceCursor[W word.Word] struct {
	words []W
	index int
}

// NewSliceCursor returns a cursor at words[index]. index == len(words) is
// the end cursor.
func NewSliceCursor[W word.Word](words []W, index int) SliceCursor[W] {
	return SliceCursor[W]{words: words, index: index}
}

// Word returns the word at the cursor.
func (c SliceCursor[W]) Word() *W { return &c.words[c.index] }

// Next returns the cursor one word further.
func (c SliceCursor[W]) Next() SliceCursor[W] { return SliceCursor[W]{words: c.words, index: c.index + 1} }

// Prev returns the cursor one word back.
func (c SliceCursor[W]) Prev() SliceCursor[W] { return SliceCursor[W]{words: c.words, index: c.index - 1} }

// Add returns the cursor n words away. Negative n moves backwards.
func (c SliceCursor[W]) Add(n int) SliceCursor[W] {
	return SliceCursor[W]{words: c.words, index: c.index + n}
}

// Diff returns the number of words from o to c.
func (c SliceCursor[W]) Diff(o SliceCursor[W]) int { return c.index - o.index }

// Less reports whether c is before o.
func (c SliceCursor[W]) Less(o SliceCursor[W]) bool { return c.index < o.index }

// Equal reports whether c and o are at the same index of the same slice.
func (c SliceCursor[W]) Equal(o SliceCursor[W]) bool {
	return c.index == o.index && unsafe.SliceData(c.words) == unsafe.SliceData(o.words)
}

// Index returns the word index of the cursor.
func (c SliceCursor[W]) Index() int { return c.index }

// Span returns the words from c up to, but not including, end.
func (c SliceCursor[W]) Span(end SliceCursor[W]) []W { return c.words[c.index:end.index] }

// ListCursor is a bidirectional cursor over a container/list whose elements
// hold *W values. The end cursor has no element.
type ListCursor[W word.Word] struct {
	list *list.List
	elem *list.Element
}

// NewListCursor returns a cursor at e, which must belong to l. A nil e is
// the end cursor.
func NewListCursor[W word.Word](l *list.List, e *list.Element) ListCursor[W] {
	return ListCursor[W]{list: l, elem: e}
}

// Word returns the word held by the current element.
func (c ListCursor[W]) Word() *W { return c.elem.Value.(*W) }

// Next returns the cursor at the following element.
func (c ListCursor[W]) Next() ListCursor[W] { return ListCursor[W]{list: c.list, elem: c.elem.Next()} }

// Prev returns the cursor at the preceding element. Prev of the end cursor
// is the last element.
func (c ListCursor[W]) Prev() ListCursor[W] {
	if c.elem == nil {
		return ListCursor[W]{list: c.list, elem: c.list.Back()}
	}
	return ListCursor[W]{list: c.list, elem: c.elem.Prev()}
}

// Equal reports whether c and o are at the same element.
func (c ListCursor[W]) Equal(o ListCursor[W]) bool { return c.elem == o.elem }

// Element returns the list element of the cursor, nil at the end.
func (c ListCursor[W]) Element() *list.Element { return c.elem }
