// Package invariants exposes whether expensive precondition checks are
// compiled into the binary.
//
// Build with -tags invariants (or -race) to turn position and range checks
// into panics. Without the tag the checks are constant-folded away and
// violating a precondition is undefined, exactly like dereferencing an
// invalid pointer.
package invariants
