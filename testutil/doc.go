// Package testutil provides testing utilities for bitkit.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random word sequences and bit-by-bit
// reference implementations that the word-level algorithms are checked
// against.
//
// # Random Words
//
//	rng := testutil.NewRNG(seed)
//	words := testutil.RandomWords[uint64](rng, 16)
//	first, last := rng.Range(len(words) * 64)
//
// # Reference Algorithms
//
//	want := testutil.NaiveCount(words, first, last, true)
//	testutil.NaiveReverse(words, first, last)
package testutil
