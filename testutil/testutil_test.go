package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomWords(t *testing.T) {
	rng := NewRNG(4711)

	w := RandomWords[uint64](rng, 8)

	assert.Equal(t, 8, len(w))
	nonZero := 0
	for _, x := range w {
		if x != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, 0)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	w1 := RandomWords[uint32](rng, 4)
	rng.Reset()
	w2 := RandomWords[uint32](rng, 4)

	assert.Equal(t, w1, w2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestRange(t *testing.T) {
	rng := NewRNG(1)
	for range 100 {
		first, last := rng.Range(130)
		assert.LessOrEqual(t, 0, first)
		assert.LessOrEqual(t, first, last)
		assert.LessOrEqual(t, last, 130)
	}
}

func TestSparseBits(t *testing.T) {
	rng := NewRNG(1)
	assert.NotContains(t, rng.SparseBits(64, 0), true)
	assert.NotContains(t, rng.SparseBits(64, 1.1), false)
}

func TestPackBits(t *testing.T) {
	flat := make([]bool, 20)
	flat[0], flat[9], flat[19] = true, true, true

	words := PackBits[uint8](flat)

	require.Len(t, words, 3)
	assert.Equal(t, []uint8{0x01, 0x02, 0x08}, words)
	assert.True(t, GetBit(words, 9))
	assert.False(t, GetBit(words, 10))
}

func TestSetBit(t *testing.T) {
	words := make([]uint16, 2)
	SetBit(words, 17, true)
	assert.Equal(t, uint16(0x0002), words[1])
	SetBit(words, 17, false)
	assert.Equal(t, uint16(0), words[1])
}

func TestNaiveCount(t *testing.T) {
	words := []uint8{0xFF, 0x0F}

	assert.Equal(t, 12, NaiveCount(words, 0, 16, true))
	assert.Equal(t, 4, NaiveCount(words, 0, 16, false))
	assert.Equal(t, 4, NaiveCount(words, 4, 8, true))
	assert.Equal(t, 0, NaiveCount(words, 5, 5, true))
}

func TestNaiveReverse(t *testing.T) {
	words := []uint8{0x01, 0x00}

	NaiveReverse(words, 0, 16)
	assert.Equal(t, []uint8{0x00, 0x80}, words)

	NaiveReverse(words, 8, 16)
	assert.Equal(t, []uint8{0x00, 0x01}, words)
}
