// Package bitvec implements the bit-parallel primitives shared by every
// distance engine in this module.
//
// PatternMatchVector and BlockPatternMatchVector give O(1) lookup of
// "which positions of the pattern does this element occupy" for patterns up
// to 64 elements and beyond, respectively. Elements in the byte range [0,256)
// skip hashing entirely via a direct array, matching how the rest of the
// corpus treats byte-wide alphabets as a fast path rather than a special
// case; everything else lands in an open-addressed probe table using
// CPython's dict perturbation scheme so lookups stay close to O(1) even when
// the alphabet is sparse or adversarial.
//
// BitMatrix and ShiftedBitMatrix store one bit per (row, column) cell of a
// dynamic-programming trellis, dense or banded. No other package in this
// module uses them; editops reconstructs from its own integer DP matrix.
package bitvec
