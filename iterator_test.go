package bitkit

import (
	"container/list"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWordList[W any](words ...W) *list.List {
	l := list.New()
	for i := range words {
		l.PushBack(&words[i])
	}
	return l
}

func TestIteratorNextPrev(t *testing.T) {
	words := []uint8{0x80, 0x01}
	it := IteratorAt(words, 7)

	assert.Equal(t, One, it.Value())
	it = it.Next()
	assert.Equal(t, 1, it.Base().Index())
	assert.Equal(t, uint(0), it.Position())
	assert.Equal(t, One, it.Value())

	it = Prev(it)
	assert.Equal(t, 0, it.Base().Index())
	assert.Equal(t, uint(7), it.Position())
}

func TestIteratorWalk(t *testing.T) {
	words := []uint16{0xBEEF, 0x1234, 0x8001}
	n := 0
	for it := Begin(words); !it.Equal(End(words)); it = it.Next() {
		want := (words[n/16]>>(n%16))&1 == 1
		require.Equal(t, want, it.Ref().Get(), "bit %d", n)
		n++
	}
	assert.Equal(t, 48, n)
}

func TestIteratorArithmetic(t *testing.T) {
	words := make([]uint32, 6)
	base := IteratorAt(words, 70)

	for _, n := range []int{0, 1, -1, 25, 26, -6, -7, 96, -70, 100, 31 * 3} {
		it := Add(base, n)
		bit := 70 + n
		assert.Equal(t, bit/32, it.Base().Index(), "n=%d", n)
		assert.Equal(t, uint(bit%32), it.Position(), "n=%d", n)
		assert.Equal(t, n, Distance(base, it), "n=%d", n)
		assert.Equal(t, -n, Distance(it, base), "n=%d", n)
		assert.True(t, Sub(it, n).Equal(base), "n=%d", n)

		switch {
		case n > 0:
			assert.True(t, Less(base, it))
			assert.Equal(t, 1, Compare(it, base))
		case n < 0:
			assert.True(t, Less(it, base))
			assert.Equal(t, -1, Compare(it, base))
		default:
			assert.False(t, Less(it, base))
			assert.Equal(t, 0, Compare(it, base))
		}
	}
}

func TestIteratorIndex(t *testing.T) {
	words := make([]uint64, 3)
	it := IteratorAt(words, 10)

	Index(it, 100).Set()
	assert.Equal(t, uint64(1)<<46, words[1])

	Index(it, -10).Set()
	assert.Equal(t, uint64(1), words[0])
}

func TestIteratorEnd(t *testing.T) {
	words := make([]uint8, 4)

	assert.Equal(t, 32, Distance(Begin(words), End(words)))
	assert.True(t, IteratorAt(words, 32).Equal(End(words)))
	assert.True(t, Prev(End(words)).Equal(IteratorAt(words, 31)))
}

func TestIteratorPointer(t *testing.T) {
	words := []uint16{0, 0}
	it := IteratorAt(words, 17)

	p := it.Pointer()
	assert.Same(t, &words[1], p.Address())
	assert.Equal(t, uint(1), p.Position())

	p.Deref().Set()
	assert.Equal(t, uint16(2), words[1])
}

func TestNewIterator(t *testing.T) {
	words := []uint32{0, 1 << 9}
	it := NewIterator[uint32](NewSliceCursor(words, 1), 9)

	assert.Equal(t, One, it.Value())
	assert.True(t, it.Equal(IteratorAt(words, 41)))
}

func TestSliceCursorEqual(t *testing.T) {
	a := make([]uint8, 2)
	b := make([]uint8, 2)

	assert.True(t, NewSliceCursor(a, 1).Equal(NewSliceCursor(a, 1)))
	assert.False(t, NewSliceCursor(a, 1).Equal(NewSliceCursor(b, 1)))
	assert.Equal(t, []uint8{0, 0}, NewSliceCursor(a, 0).Span(NewSliceCursor(a, 2)))
}

func TestListIterator(t *testing.T) {
	l := newWordList[uint8](0x01, 0x80)
	first, last := ListBegin[uint8](l), ListEnd[uint8](l)

	var got []Value
	for it := first; !it.Equal(last); it = it.Next() {
		got = append(got, it.Value())
	}
	require.Len(t, got, 16)
	assert.Equal(t, One, got[0])
	assert.Equal(t, One, got[15])

	it := Prev(last)
	assert.Equal(t, uint(7), it.Position())
	assert.Same(t, l.Back(), it.Base().Element())
	assert.Equal(t, One, it.Value())
}

func TestIteratorAddAssociative(t *testing.T) {
	words := make([]uint16, 96)
	base := IteratorAt(words, 768)
	offsets := []int{-300, -129, -64, -17, -16, -1, 0, 1, 15, 16, 33, 100, 300}

	for _, n := range offsets {
		for _, m := range offsets {
			got := Add(Add(base, n), m)
			want := Add(base, n+m)
			require.True(t, got.Equal(want), "(it%+d)%+d", n, m)
			require.Equal(t, n+m, Distance(base, got), "(it%+d)%+d", n, m)
		}
	}
}
