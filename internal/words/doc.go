// Package words provides width-agnostic kernels over fixed []uint64 word arrays.
//
// Every bit set type in this module is a thin typed wrapper around an array of
// uint64 words; the array length is its capacity in 64-bit units. The kernels
// here never allocate and never read or write past len(dst).
//
// Layout:
//
//	┌──────────────────┬──────────────────┬─────┐
//	│  word 0          │  word 1          │ ... │
//	│  bits [0,63]     │  bits [64,127]   │     │
//	└──────────────────┴──────────────────┴─────┘
//
// Binary kernels require len(dst) == len(src). Callers pass slices of
// arrays of identical type, so the lengths always match.
package words
