package bitkit

import (
	"github.com/cockroachdb/errors"
	"github.com/hupe1980/bitkit/internal/invariants"
	"github.com/hupe1980/bitkit/word"
)

// Pointer is a nullable handle to a bit with the arithmetic of a native
// pointer scaled to bit granularity. The zero value is the nil Pointer.
//
// Word addresses are advanced with unsafe.Add, so the rules of unsafe
// pointer arithmetic apply: a Pointer must stay within the allocation of
// the words it was created from. Use an Iterator to express one-past-the-end
// positions.
type Pointer[W word.Word] struct {
	ref Reference[W]
}

// NewPointer returns a Pointer to bit pos of *w. pos must be less than the
// width of W. A nil w yields the nil Pointer.
func NewPointer[W word.Word](w *W, pos uint) Pointer[W] {
	if w == nil {
		return Pointer[W]{}
	}
	return Pointer[W]{ref: NewReference(w, pos)}
}

// IsNil reports whether p points nowhere.
func (p Pointer[W]) IsNil() bool {
	return p.ref.addr == nil
}

// Deref returns the Reference p points to.
func (p Pointer[W]) Deref() Reference[W] {
	if invariants.Enabled && p.IsNil() {
		panic(errors.AssertionFailedf("dereference of nil bit pointer"))
	}
	return p.ref
}

// Ref gives access to the Reference held by p, like operator-> on a native
// pointer.
func (p *Pointer[W]) Ref() *Reference[W] {
	return &p.ref
}

// At returns the Reference n bits away from p.
func (p Pointer[W]) At(n int) Reference[W] {
	return p.Add(n).Deref()
}

// Address returns the word p points into.
func (p Pointer[W]) Address() *W {
	return p.ref.addr
}

// Position returns the bit index of p inside its word.
func (p Pointer[W]) Position() uint {
	return p.ref.Position()
}

// Inc moves p to the next bit, stepping to bit 0 of the next word after the
// last bit of a word.
func (p *Pointer[W]) Inc() {
	if top := W(1) << (word.Digits[W]() - 1); p.ref.mask != top {
		p.ref.mask <<= 1
		return
	}
	p.ref.addr = wordAdd(p.ref.addr, 1)
	p.ref.mask = 1
}

// Dec moves p to the previous bit, stepping to the last bit of the previous
// word from bit 0.
func (p *Pointer[W]) Dec() {
	if p.ref.mask != 1 {
		p.ref.mask >>= 1
		return
	}
	p.ref.addr = wordAdd(p.ref.addr, -1)
	p.ref.mask = W(1) << (word.Digits[W]() - 1)
}

// Add returns p moved by n bits. Negative n moves backwards.
func (p Pointer[W]) Add(n int) Pointer[W] {
	words, pos := split(p.ref.Position(), n, word.Digits[W]())
	return Pointer[W]{ref: Reference[W]{
		addr: wordAdd(p.ref.addr, words),
		mask: W(1) << pos,
	}}
}

// Sub returns p moved back by n bits.
func (p Pointer[W]) Sub(n int) Pointer[W] {
	return p.Add(-n)
}

// Distance returns the signed number of bits from o to p (p - o). Both
// pointers must point into the same allocation.
func (p Pointer[W]) Distance(o Pointer[W]) int {
	d := int(word.Digits[W]())
	return wordDiff(p.ref.addr, o.ref.addr)*d + int(p.Position()) - int(o.Position())
}

// Equal reports whether p and o point to the same bit.
func (p Pointer[W]) Equal(o Pointer[W]) bool {
	return p.ref.Same(o.ref)
}

// Less reports whether p points before o: word address first, then bit
// position.
func (p Pointer[W]) Less(o Pointer[W]) bool {
	return p.Compare(o) < 0
}

// Compare returns -1, 0 or +1 depending on whether p points before, to or
// after o.
func (p Pointer[W]) Compare(o Pointer[W]) int {
	switch d := wordDiff(p.ref.addr, o.ref.addr); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	switch {
	case p.ref.mask < o.ref.mask:
		return -1
	case p.ref.mask > o.ref.mask:
		return 1
	default:
		return 0
	}
}
