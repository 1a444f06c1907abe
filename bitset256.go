package bitset128

import (
	"iter"
	"log/slog"

	"github.com/hupe1980/bitset128/internal/words"
)

// Capacity256 is the number of positions in a BitSet256.
const Capacity256 = 256

// BitSet256 is BitSet with four words instead of two. It follows the same
// index policy and shift rules, scaled to [0, 256).
type BitSet256 struct {
	w [4]uint64
}

// Empty256 returns a set with all 256 bits cleared.
func Empty256() BitSet256 {
	return BitSet256{}
}

// Full256 returns a set with all 256 bits set.
func Full256() BitSet256 {
	var b BitSet256
	words.Fill(b.w[:])
	return b
}

// FromWords256 wraps four raw words; w[0] holds bits [0,63].
func FromWords256(w [4]uint64) BitSet256 {
	return BitSet256{w: w}
}

// FromIndices256 returns a set containing the given positions.
// It panics with an *IndexError if any position is >= Capacity256.
func FromIndices256(indices ...uint) BitSet256 {
	var b BitSet256
	for _, i := range indices {
		b.Set(i)
	}
	return b
}

// Widen returns b as a BitSet256 with positions [128,255] cleared.
func (b BitSet) Widen() BitSet256 {
	return BitSet256{w: [4]uint64{b.w[0], b.w[1]}}
}

// Words returns the raw words; w[0] holds bits [0,63].
func (b BitSet256) Words() [4]uint64 {
	return b.w
}

// Narrow returns positions [0,127] as a BitSet. ok is false if any higher
// position was set.
func (b BitSet256) Narrow() (BitSet, bool) {
	return FromWords(b.w[0], b.w[1]), b.w[2] == 0 && b.w[3] == 0
}

// Capacity returns 256.
func (BitSet256) Capacity() uint {
	return Capacity256
}

// CheckIndex returns an *IndexError if i is not a valid position.
func (BitSet256) CheckIndex(i uint) error {
	return checkIndex(i, Capacity256)
}

// Test reports whether bit i is set. It panics if i >= Capacity256.
func (b BitSet256) Test(i uint) bool {
	mustIndex(i, Capacity256)
	return words.Test(b.w[:], i)
}

// Set sets bit i. It panics if i >= Capacity256.
func (b *BitSet256) Set(i uint) {
	mustIndex(i, Capacity256)
	words.Set(b.w[:], i)
}

// Clear clears bit i. It panics if i >= Capacity256.
func (b *BitSet256) Clear(i uint) {
	mustIndex(i, Capacity256)
	words.Clear(b.w[:], i)
}

// Flip toggles bit i. It panics if i >= Capacity256.
func (b *BitSet256) Flip(i uint) {
	mustIndex(i, Capacity256)
	words.Flip(b.w[:], i)
}

// SetTo sets bit i to v. It panics if i >= Capacity256.
func (b *BitSet256) SetTo(i uint, v bool) {
	if v {
		b.Set(i)
	} else {
		b.Clear(i)
	}
}

// SetAll sets every bit.
func (b *BitSet256) SetAll() {
	words.Fill(b.w[:])
}

// ClearAll clears every bit.
func (b *BitSet256) ClearAll() {
	words.Zero(b.w[:])
}

// FlipAll complements the set in place.
func (b *BitSet256) FlipAll() {
	words.Not(b.w[:])
}

// And returns the intersection of b and o.
func (b BitSet256) And(o BitSet256) BitSet256 {
	words.And(b.w[:], o.w[:])
	return b
}

// Or returns the union of b and o.
func (b BitSet256) Or(o BitSet256) BitSet256 {
	words.Or(b.w[:], o.w[:])
	return b
}

// Xor returns the symmetric difference of b and o.
func (b BitSet256) Xor(o BitSet256) BitSet256 {
	words.Xor(b.w[:], o.w[:])
	return b
}

// AndNot returns the members of b that are not in o.
func (b BitSet256) AndNot(o BitSet256) BitSet256 {
	words.AndNot(b.w[:], o.w[:])
	return b
}

// Not returns the complement of b over all 256 positions.
func (b BitSet256) Not() BitSet256 {
	words.Not(b.w[:])
	return b
}

// ShiftLeft returns b logically shifted towards bit 255 by n positions.
// n >= 256 yields the empty set.
func (b BitSet256) ShiftLeft(n uint32) BitSet256 {
	words.ShiftLeft(b.w[:], uint(n))
	return b
}

// ShiftRight returns b logically shifted towards bit 0 by n positions.
// n >= 256 yields the empty set.
func (b BitSet256) ShiftRight(n uint32) BitSet256 {
	words.ShiftRight(b.w[:], uint(n))
	return b
}

// IsEmpty reports whether no bit is set.
func (b BitSet256) IsEmpty() bool {
	return words.IsZero(b.w[:])
}

// Any reports whether at least one bit is set.
func (b BitSet256) Any() bool {
	return !b.IsEmpty()
}

// IsFull reports whether all 256 bits are set.
func (b BitSet256) IsFull() bool {
	return words.IsFull(b.w[:])
}

// Count returns the number of set bits, in [0, 256].
func (b BitSet256) Count() uint32 {
	return uint32(words.OnesCount(b.w[:]))
}

// Equal reports whether b and o have the same members. Same as b == o.
func (b BitSet256) Equal(o BitSet256) bool {
	return b == o
}

// NextSet returns the first set position at or after i.
func (b BitSet256) NextSet(i uint) (uint, bool) {
	return words.NextSet(b.w[:], i)
}

// Indices yields the set positions in ascending order.
func (b BitSet256) Indices() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		words.ForEach(b.w[:], yield)
	}
}

// String renders the members, e.g. {0 200 255}.
func (b BitSet256) String() string {
	return words.Format(b.w[:])
}

// LogValue implements slog.LogValuer.
func (b BitSet256) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("count", uint64(b.Count())),
		slog.Any("words", b.w),
	)
}
