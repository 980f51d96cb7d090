package bitkit

import "github.com/hupe1980/bitkit/word"

// Reference is a handle to one bit inside a word it does not own.
//
// A Reference stays valid exactly as long as a *W to the same word would:
// it dangles once the word's storage is freed, moved or resized. Assigning
// through a Reference writes the referenced bit; it never rebinds.
type Reference[W word.Word] struct {
	addr *W
	mask W // exactly one bit set
}

// NewReference binds a Reference to bit pos of *w. pos must be less than
// the width of W.
func NewReference[W word.Word](w *W, pos uint) Reference[W] {
	assertPosition[W](pos)
	return Reference[W]{addr: w, mask: W(1) << pos}
}

// Get reads the referenced bit.
func (r Reference[W]) Get() bool {
	return *r.addr&r.mask != 0
}

// Value reads the referenced bit as a detached Value.
func (r Reference[W]) Value() Value {
	return Value(r.Get())
}

// Set sets the referenced bit.
func (r Reference[W]) Set() {
	*r.addr |= r.mask
}

// SetTo sets the referenced bit to b.
func (r Reference[W]) SetTo(b bool) {
	if b {
		r.Set()
	} else {
		r.Reset()
	}
}

// Assign writes v to the referenced bit.
func (r Reference[W]) Assign(v Value) {
	r.SetTo(bool(v))
}

// AssignRef copies the bit referenced by o into the bit referenced by r.
func (r Reference[W]) AssignRef(o Reference[W]) {
	r.SetTo(o.Get())
}

// Reset clears the referenced bit.
func (r Reference[W]) Reset() {
	*r.addr &^= r.mask
}

// Flip toggles the referenced bit.
func (r Reference[W]) Flip() {
	*r.addr ^= r.mask
}

// Swap exchanges the values of the bits referenced by r and o. The
// references themselves keep pointing where they did.
func (r Reference[W]) Swap(o Reference[W]) {
	if r.Get() != o.Get() {
		r.Flip()
		o.Flip()
	}
}

// Address returns the word holding the referenced bit.
func (r Reference[W]) Address() *W {
	return r.addr
}

// Mask returns the single-bit mask selecting the referenced bit.
func (r Reference[W]) Mask() W {
	return r.mask
}

// Position returns the index of the referenced bit inside its word.
func (r Reference[W]) Position() uint {
	return word.TrailingZeros(r.mask)
}

// Equal reports whether r and o reference bits with the same value.
// Use Same to compare identity.
func (r Reference[W]) Equal(o Reference[W]) bool {
	return r.Get() == o.Get()
}

// Same reports whether r and o reference the same bit of the same word.
func (r Reference[W]) Same(o Reference[W]) bool {
	return r.addr == o.addr && r.mask == o.mask
}

// Pointer returns a Pointer to the referenced bit.
func (r Reference[W]) Pointer() Pointer[W] {
	return Pointer[W]{ref: r}
}
