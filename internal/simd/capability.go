package simd

import (
	"os"
	"strings"
)

// ISA represents an instruction set extension used by the word kernels.
type ISA uint8

const (
	// Generic represents the pure Go implementation (no special instructions).
	Generic ISA = iota
	// BMI2 represents x86-64 Bit Manipulation Instruction Set 2 (PDEP/PEXT).
	BMI2
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case BMI2:
		return "bmi2"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "bmi2":
		return BMI2, true
	default:
		return Generic, false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeISA is the selected kernel implementation.
	activeISA ISA

	// hasOverride is true if BITKIT_SIMD was set.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasBMI2 bool // x86-64 PDEP/PEXT
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	activeISA = selectISA(os.Getenv("BITKIT_SIMD"))
	initKernels()
}

// selectISA picks the active ISA, honoring a valid override.
func selectISA(override string) ISA {
	hasOverride = false
	if override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			if isISAAvailable(isa) {
				return isa
			}
			// Unavailable override - fall through to auto-detection
		}
	}
	return selectBestISA()
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case BMI2:
		return hasBMI2
	default:
		return false
	}
}

// selectBestISA chooses the optimal ISA for the current platform.
func selectBestISA() ISA {
	if hasBMI2 {
		return BMI2
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if BITKIT_SIMD was set.
func IsOverridden() bool {
	return hasOverride
}

// HasBMI2 returns true if x86-64 BMI2 (PDEP/PEXT) is available.
func HasBMI2() bool {
	return hasBMI2
}
