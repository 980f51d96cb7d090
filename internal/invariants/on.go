//go:build invariants || race

package invariants

// Enabled is true when the binary was built with invariant checks.
const Enabled = true
