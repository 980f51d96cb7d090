package bitkit

import "github.com/hupe1980/bitkit/word"

// Value is a detached one-bit value that does not refer to any storage.
// The zero value is Zero.
type Value bool

const (
	// Zero is the cleared bit.
	Zero Value = false
	// One is the set bit.
	One Value = true
)

// ValueOf returns the least significant bit of w.
func ValueOf[W word.Word](w W) Value {
	return w&1 != 0
}

// ValueAt returns bit pos of w. pos must be less than the width of W.
func ValueAt[W word.Word](w W, pos uint) Value {
	assertPosition[W](pos)
	return (w>>pos)&1 != 0
}

// Bool returns v as a bool.
func (v Value) Bool() bool { return bool(v) }

// Uint returns 1 for One and 0 for Zero.
func (v Value) Uint() uint {
	if v {
		return 1
	}
	return 0
}

// Set sets the bit to one.
func (v *Value) Set() { *v = One }

// SetTo sets the bit to b.
func (v *Value) SetTo(b bool) { *v = Value(b) }

// Reset clears the bit.
func (v *Value) Reset() { *v = Zero }

// Flip toggles the bit.
func (v *Value) Flip() { *v = !*v }

// And returns the conjunction of v and o.
func (v Value) And(o Value) Value { return v && o }

// Or returns the disjunction of v and o.
func (v Value) Or(o Value) Value { return v || o }

// Xor returns the exclusive or of v and o.
func (v Value) Xor(o Value) Value { return v != o }

// Not returns the complement of v.
func (v Value) Not() Value { return !v }

// Less reports whether v orders before o; Zero is less than One.
func (v Value) Less(o Value) bool { return bool(!v && o) }

// Compare returns -1, 0 or +1 depending on whether v is less than, equal to
// or greater than o.
func (v Value) Compare(o Value) int {
	switch {
	case v == o:
		return 0
	case v == One:
		return 1
	default:
		return -1
	}
}
