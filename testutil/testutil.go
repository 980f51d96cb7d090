package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/bitkit/word"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Range returns a random half-open range [first, last) with
// 0 <= first <= last <= n. Empty ranges are included.
func (r *RNG) Range(n int) (first, last int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, b := r.rand.Intn(n+1), r.rand.Intn(n+1)
	if a > b {
		a, b = b, a
	}
	return a, b
}

// SparseBits returns n booleans, each true with probability density.
func (r *RNG) SparseBits(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range n {
		out[i] = r.rand.Float64() < density
	}
	return out
}

// RandomWords returns n words filled with uniformly random bits.
func RandomWords[W word.Word](r *RNG, n int) []W {
	r.mu.Lock()
	defer r.mu.Unlock()

	words := make([]W, n)
	for i := range words {
		words[i] = W(r.rand.Uint64())
	}
	return words
}

// PackBits packs flat bits into words, least significant bit first.
func PackBits[W word.Word](flat []bool) []W {
	d := int(word.Digits[W]())
	words := make([]W, (len(flat)+d-1)/d)
	for i, b := range flat {
		if b {
			SetBit(words, i, true)
		}
	}
	return words
}

// GetBit returns flat bit i of words.
func GetBit[W word.Word](words []W, i int) bool {
	d := int(word.Digits[W]())
	return words[i/d]>>(uint(i%d))&1 == 1
}

// SetBit sets flat bit i of words to b.
func SetBit[W word.Word](words []W, i int, b bool) {
	d := int(word.Digits[W]())
	mask := W(1) << uint(i%d)
	if b {
		words[i/d] |= mask
	} else {
		words[i/d] &^= mask
	}
}

// NaiveCount counts the bits in [first, last) equal to value one bit at a time.
func NaiveCount[W word.Word](words []W, first, last int, value bool) int {
	n := 0
	for i := first; i < last; i++ {
		if GetBit(words, i) == value {
			n++
		}
	}
	return n
}

// NaiveReverse reverses the bits in [first, last) one bit at a time.
func NaiveReverse[W word.Word](words []W, first, last int) {
	for i, j := first, last-1; i < j; i, j = i+1, j-1 {
		a, b := GetBit(words, i), GetBit(words, j)
		SetBit(words, i, b)
		SetBit(words, j, a)
	}
}
