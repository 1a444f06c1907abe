package bitset128

import (
	"iter"
	"log/slog"

	"github.com/hupe1980/bitset128/internal/words"
)

// Capacity is the number of positions in a BitSet.
const Capacity = 128

// BitSet is a set of positions in [0, 128) stored in two 64-bit words.
//
// The zero value is the empty set. BitSet is comparable: a == b iff both
// sets have exactly the same members.
type BitSet struct {
	w [2]uint64 // w[0] = bits [0,63], w[1] = bits [64,127]
}

// Empty returns a set with all 128 bits cleared.
func Empty() BitSet {
	return BitSet{}
}

// Full returns a set with all 128 bits set.
func Full() BitSet {
	return BitSet{w: [2]uint64{^uint64(0), ^uint64(0)}}
}

// FromRaw wraps a raw 128-bit value verbatim. Every bit pattern is valid.
func FromRaw(v Uint128) BitSet {
	return BitSet{w: [2]uint64{v.Lo, v.Hi}}
}

// FromWords is FromRaw with the halves passed separately.
func FromWords(lo, hi uint64) BitSet {
	return BitSet{w: [2]uint64{lo, hi}}
}

// FromUint64 returns a set holding the bits of v in positions [0,63].
func FromUint64(v uint64) BitSet {
	return BitSet{w: [2]uint64{v, 0}}
}

// FromIndices returns a set containing the given positions.
// It panics with an *IndexError if any position is >= Capacity.
func FromIndices(indices ...uint) BitSet {
	var b BitSet
	for _, i := range indices {
		b.Set(i)
	}
	return b
}

// Raw returns the underlying 128-bit value.
func (b BitSet) Raw() Uint128 {
	return Uint128{Lo: b.w[0], Hi: b.w[1]}
}

// Uint64 returns the low word. ok is false if any bit in [64,127] is set,
// in which case the value does not fit.
func (b BitSet) Uint64() (v uint64, ok bool) {
	return b.w[0], b.w[1] == 0
}

// Capacity returns 128.
func (BitSet) Capacity() uint {
	return Capacity
}

// CheckIndex returns an *IndexError if i is not a valid position.
func (BitSet) CheckIndex(i uint) error {
	return checkIndex(i, Capacity)
}

// Test reports whether bit i is set. It panics if i >= Capacity.
func (b BitSet) Test(i uint) bool {
	mustIndex(i, Capacity)
	return words.Test(b.w[:], i)
}

// Set sets bit i. It panics if i >= Capacity.
func (b *BitSet) Set(i uint) {
	mustIndex(i, Capacity)
	words.Set(b.w[:], i)
}

// Clear clears bit i. It panics if i >= Capacity.
func (b *BitSet) Clear(i uint) {
	mustIndex(i, Capacity)
	words.Clear(b.w[:], i)
}

// Flip toggles bit i. It panics if i >= Capacity.
func (b *BitSet) Flip(i uint) {
	mustIndex(i, Capacity)
	words.Flip(b.w[:], i)
}

// SetTo sets bit i to v. It panics if i >= Capacity.
func (b *BitSet) SetTo(i uint, v bool) {
	if v {
		b.Set(i)
	} else {
		b.Clear(i)
	}
}

// SetAll sets every bit.
func (b *BitSet) SetAll() {
	words.Fill(b.w[:])
}

// ClearAll clears every bit.
func (b *BitSet) ClearAll() {
	words.Zero(b.w[:])
}

// FlipAll complements the set in place.
func (b *BitSet) FlipAll() {
	words.Not(b.w[:])
}

// And returns the intersection of b and o.
func (b BitSet) And(o BitSet) BitSet {
	words.And(b.w[:], o.w[:])
	return b
}

// Or returns the union of b and o.
func (b BitSet) Or(o BitSet) BitSet {
	words.Or(b.w[:], o.w[:])
	return b
}

// Xor returns the symmetric difference of b and o.
func (b BitSet) Xor(o BitSet) BitSet {
	words.Xor(b.w[:], o.w[:])
	return b
}

// AndNot returns the members of b that are not in o.
func (b BitSet) AndNot(o BitSet) BitSet {
	words.AndNot(b.w[:], o.w[:])
	return b
}

// Not returns the complement of b over all 128 positions.
func (b BitSet) Not() BitSet {
	words.Not(b.w[:])
	return b
}

// ShiftLeft returns b logically shifted towards bit 127 by n positions.
// Bits moved past 127 are discarded; n >= 128 yields the empty set.
func (b BitSet) ShiftLeft(n uint32) BitSet {
	words.ShiftLeft(b.w[:], uint(n))
	return b
}

// ShiftRight returns b logically shifted towards bit 0 by n positions.
// Bits moved past 0 are discarded; n >= 128 yields the empty set.
func (b BitSet) ShiftRight(n uint32) BitSet {
	words.ShiftRight(b.w[:], uint(n))
	return b
}

// IsEmpty reports whether no bit is set.
func (b BitSet) IsEmpty() bool {
	return words.IsZero(b.w[:])
}

// Any reports whether at least one bit is set.
func (b BitSet) Any() bool {
	return !b.IsEmpty()
}

// IsFull reports whether all 128 bits are set.
func (b BitSet) IsFull() bool {
	return words.IsFull(b.w[:])
}

// Count returns the number of set bits, in [0, 128].
func (b BitSet) Count() uint32 {
	return uint32(words.OnesCount(b.w[:]))
}

// Equal reports whether b and o have the same members. Same as b == o.
func (b BitSet) Equal(o BitSet) bool {
	return b == o
}

// NextSet returns the first set position at or after i.
func (b BitSet) NextSet(i uint) (uint, bool) {
	return words.NextSet(b.w[:], i)
}

// Indices yields the set positions in ascending order.
func (b BitSet) Indices() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		words.ForEach(b.w[:], yield)
	}
}

// String renders the members, e.g. {0 3 127}.
func (b BitSet) String() string {
	return words.Format(b.w[:])
}

// LogValue implements slog.LogValuer.
func (b BitSet) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("count", uint64(b.Count())),
		slog.String("raw", b.Raw().String()),
	)
}
