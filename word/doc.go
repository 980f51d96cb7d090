// Package word provides pure bit-manipulation primitives over a single
// unsigned machine word.
//
// Every function is generic over the Word constraint and uses the width of
// the concrete type (see Digits) for its arithmetic. Where a hardware
// instruction exists for the concrete width the compiler intrinsic or the
// internal/simd kernel is used; otherwise an O(digits) loop is the portable
// fallback. The loops are the semantic reference for every accelerated path.
//
// # Operations
//
//   - Counting: Popcount, LeadingZeros, TrailingZeros, PopcountSlice
//   - Fields: FieldExtract, FieldMask, Deposit, Extract, Compare
//   - Reordering: ByteSwap, BitSwap, ReverseField
//   - Combining: Blend, BlendRange, DoubleShiftLeft, DoubleShiftRight
package word
