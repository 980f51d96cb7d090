package bitkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerNil(t *testing.T) {
	var p Pointer[uint64]
	assert.True(t, p.IsNil())
	assert.True(t, NewPointer[uint64](nil, 0).IsNil())
	assert.Nil(t, p.Address())
}

func TestPointerIncDec(t *testing.T) {
	words := make([]uint8, 3)
	p := NewPointer(&words[0], 6)

	p.Inc()
	assert.Equal(t, uint(7), p.Position())
	assert.Same(t, &words[0], p.Address())

	p.Inc()
	assert.Equal(t, uint(0), p.Position())
	assert.Same(t, &words[1], p.Address())

	p.Dec()
	assert.Equal(t, uint(7), p.Position())
	assert.Same(t, &words[0], p.Address())
}

func TestPointerArithmetic(t *testing.T) {
	words := make([]uint16, 8)
	base := NewPointer(&words[3], 5)

	tests := []struct {
		n    int
		word int
		pos  uint
	}{
		{0, 3, 5},
		{10, 3, 15},
		{11, 4, 0},
		{16 * 3, 6, 5},
		{-5, 3, 0},
		{-6, 2, 15},
		{-16*3 - 5, 0, 0},
	}

	for _, tt := range tests {
		p := base.Add(tt.n)
		assert.Same(t, &words[tt.word], p.Address(), "n=%d", tt.n)
		assert.Equal(t, tt.pos, p.Position(), "n=%d", tt.n)
		assert.Equal(t, tt.n, p.Distance(base), "n=%d", tt.n)
		assert.True(t, p.Sub(tt.n).Equal(base), "n=%d", tt.n)

		switch {
		case tt.n < 0:
			assert.True(t, p.Less(base))
			assert.Equal(t, -1, p.Compare(base))
		case tt.n > 0:
			assert.True(t, base.Less(p))
			assert.Equal(t, 1, p.Compare(base))
		default:
			assert.Equal(t, 0, p.Compare(base))
		}
	}
}

func TestPointerIncMatchesAdd(t *testing.T) {
	words := make([]uint32, 4)
	p := NewPointer(&words[0], 0)

	for i := range 4*32 - 1 {
		q := NewPointer(&words[0], 0).Add(i + 1)
		p.Inc()
		require.True(t, p.Equal(q), "step %d", i)
	}
	for range 4*32 - 1 {
		p.Dec()
	}
	assert.True(t, p.Equal(NewPointer(&words[0], 0)))
}

func TestPointerAtAndRef(t *testing.T) {
	words := []uint8{0x00, 0x00}
	p := NewPointer(&words[0], 4)

	p.At(6).Set()
	assert.Equal(t, []uint8{0x00, 0x04}, words)

	p.Ref().Set()
	assert.Equal(t, uint8(0x10), words[0])
	assert.True(t, p.Deref().Get())
}

func TestPointerAddAssociative(t *testing.T) {
	// Every sum stays inside words.
	words := make([]uint8, 160)
	base := NewPointer(&words[80], 3)
	offsets := []int{-300, -65, -8, -4, -3, -1, 0, 1, 4, 5, 9, 64, 300}

	for _, n := range offsets {
		for _, m := range offsets {
			got := base.Add(n).Add(m)
			want := base.Add(n + m)
			require.True(t, got.Equal(want), "(p%+d)%+d", n, m)
			require.Equal(t, n+m, got.Distance(base), "(p%+d)%+d", n, m)
		}
	}
}
