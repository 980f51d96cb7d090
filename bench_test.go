package bitkit

import (
	"context"
	"strconv"
	"testing"

	"github.com/hupe1980/bitkit/testutil"
)

func BenchmarkCount(b *testing.B) {
	rng := testutil.NewRNG(1)
	for _, n := range []int{4, 64, 4096} {
		words := testutil.RandomWords[uint64](rng, n)
		first, last := IteratorAt(words, 3), IteratorAt(words, n*64-5)
		b.Run("words="+strconv.Itoa(n), func(b *testing.B) {
			b.SetBytes(int64(n * 8))
			var sink int
			for i := 0; i < b.N; i++ {
				sink += Count(first, last, One)
			}
			_ = sink
		})
	}
}

func BenchmarkReverse(b *testing.B) {
	rng := testutil.NewRNG(1)
	for _, n := range []int{4, 64, 4096} {
		words := testutil.RandomWords[uint64](rng, n)
		b.Run("aligned/words="+strconv.Itoa(n), func(b *testing.B) {
			b.SetBytes(int64(n * 8))
			for i := 0; i < b.N; i++ {
				Reverse(Begin(words), End(words))
			}
		})
		b.Run("misaligned/words="+strconv.Itoa(n), func(b *testing.B) {
			b.SetBytes(int64(n * 8))
			first, last := IteratorAt(words, 3), IteratorAt(words, n*64-5)
			for i := 0; i < b.N; i++ {
				Reverse(first, last)
			}
		})
	}
}

func BenchmarkParallelCount(b *testing.B) {
	rng := testutil.NewRNG(1)
	words := testutil.RandomWords[uint64](rng, 1<<16)
	ctx := context.Background()
	b.SetBytes(int64(len(words) * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParallelCount(ctx, words, 0, len(words)*64, One); err != nil {
			b.Fatal(err)
		}
	}
}
