// Package bitmap converts bit ranges addressed by bitkit iterators to and
// from compressed roaring bitmaps.
//
// Offsets in the bitmap are relative to the first bit of the range, so a
// range can be exported from one storage and applied to another.
//
//	bm, err := bitmap.FromRange(bitkit.Begin(words), bitkit.End(words))
//	...
//	err = bitmap.Apply(bitkit.Begin(other), bitkit.End(other), bm)
package bitmap
