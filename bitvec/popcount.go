// Package bitvec implements the bit-parallel primitives shared by every
// distance engine in this module: a pattern-match bitmap (C1) and a dense or
// banded bit matrix (C2). Nothing here understands strings, weights, or
// cutoffs — those live one layer up in distance/*.
package bitvec

import (
	"math/bits"

	"github.com/klauspost/cpuid/v2"
)

// hasHardwarePopcount records whether the running CPU exposes a native
// POPCNT instruction. math/bits.OnesCount64 already emits POPCNT when the Go
// compiler's target supports it, so this flag exists for the portable
// fallback spec.md §2 requires: when hardware support is absent we route
// through the explicit SWAR implementation instead of trusting the compiler
// to have picked one.
var hasHardwarePopcount = cpuid.CPU.Supports(cpuid.POPCNT)

// popcount64 returns the number of set bits in w.
func popcount64(w uint64) int {
	if hasHardwarePopcount {
		return bits.OnesCount64(w)
	}
	return swarPopcount64(w)
}

// Popcount64 is the exported form of popcount64, for distance engines
// outside this package that fold a bit-parallel state word into a count.
func Popcount64(w uint64) int { return popcount64(w) }

// Ctz64 is the exported form of ctz64.
func Ctz64(w uint64) int { return ctz64(w) }

// swarPopcount64 is the portable fallback: SWAR (SIMD within a register)
// popcount that doesn't assume a hardware POPCNT.
func swarPopcount64(w uint64) int {
	const (
		m1 = 0x5555555555555555
		m2 = 0x3333333333333333
		m4 = 0x0f0f0f0f0f0f0f0f
		h1 = 0x0101010101010101
	)
	w -= (w >> 1) & m1
	w = (w & m2) + ((w >> 2) & m2)
	w = (w + (w >> 4)) & m4
	return int((w * h1) >> 56)
}

// ctz64 returns the number of trailing zero bits in w, or 64 if w is zero.
func ctz64(w uint64) int {
	return bits.TrailingZeros64(w)
}
