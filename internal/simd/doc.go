// Package simd provides hardware-accelerated word kernels.
//
// # Supported Platforms
//
//   - x86-64: BMI2 (PDEP/PEXT)
//
// Runtime CPU feature detection selects the optimal implementation.
// Build with -tags noasm to force the generic Go fallback, or set
// BITKIT_SIMD=generic to select it at startup.
//
// # Operations
//
//   - Scatter/gather: Pdep64, Pext64
//   - Utility: PopcountWords
//
// The generic kernels are the semantic reference; accelerated kernels are
// tested for equivalence against them.
package simd
