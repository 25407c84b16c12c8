package simd

import (
	"os"
	"strings"
)

// ISA identifies a kernel implementation.
type ISA uint8

const (
	// Generic is the branch-free lane emulation in pure Go.
	Generic ISA = iota
	// Scalar uses four sequential compares and branches.
	Scalar
	// SSE2 is the x86-64 assembly kernel.
	SSE2
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case Scalar:
		return "scalar"
	case SSE2:
		return "sse2"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "scalar":
		return Scalar, true
	case "sse2":
		return SSE2, true
	default:
		return Generic, false
	}
}

// Package-level state, written once during init.
var (
	activeISA   ISA
	hasOverride bool
	hasSSE2     bool
)

// initCapabilities is called from the platform init after CPU features are
// detected.
func initCapabilities() {
	if override := os.Getenv("COTREE_SIMD"); override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			hasOverride = true
			activeISA = isa
			setKernels(activeISA)
			return
		}
	}

	activeISA = selectBestISA()
	setKernels(activeISA)
}

func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic, Scalar:
		return true
	case SSE2:
		return hasSSE2
	default:
		return false
	}
}

func selectBestISA() ISA {
	if hasSSE2 {
		return SSE2
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if COTREE_SIMD selected the ISA.
func IsOverridden() bool {
	return hasOverride
}

// HasSSE2 returns true if the SSE2 kernel is available.
func HasSSE2() bool {
	return hasSSE2
}
