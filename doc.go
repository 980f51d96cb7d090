// Package bitkit provides bit-level proxies over sequences of unsigned words.
//
// Bits are numbered from the least significant bit of the first word
// upwards, so bit i of a sequence lives in word i/digits at position
// i%digits, where digits is the width of the word type.
//
// # Proxies
//
// Four types stand in for the native value, reference, pointer and
// iterator over a single bit:
//
//	Value         detached bit, a plain bool
//	Reference[W]  word address + single-bit mask; writes go to the word
//	Pointer[W]    nullable Reference with bit-granular arithmetic
//	Iterator[W,C] word cursor + bit position, walks a flattened bit sequence
//
// Every proxy operation is O(1) and allocation-free.
//
// # Cursors
//
// An Iterator inherits the capabilities of its cursor. SliceCursor is random
// access and supports Add, Sub, Index, Distance, Less and Compare;
// ListCursor over a container/list is bidirectional and supports Prev.
//
//	words := []uint64{0xF0F0, 0x0F0F}
//	first := bitkit.IteratorAt(words, 4)
//	last := bitkit.IteratorAt(words, 100)
//	n := bitkit.Count(first, last, bitkit.One)
//	bitkit.Reverse(first, last)
//
// # Algorithms
//
// Count and Reverse work a word at a time using the primitives of the word
// package. ParallelCount splits large slices into word-aligned chunks and
// counts them concurrently:
//
//	n, err := bitkit.ParallelCount(ctx, words, 0, len(words)*64, bitkit.One,
//		bitkit.WithWorkers(8),
//		bitkit.WithLogger(bitkit.NewJSONLogger(slog.LevelDebug)),
//	)
//
// # Preconditions
//
// Positions must be less than the word width and ranges must not be
// reversed. Violations are undefined behavior in release builds; building
// with -tags invariants (or -race) turns them into panics.
package bitkit
