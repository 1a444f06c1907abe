// Package bitset128 provides a fixed-capacity bit set backed by a single
// 128-bit word.
//
// A BitSet is a plain value: copying it copies the set, == compares sets, and
// the zero value is the empty set. Every operation is O(1), deterministic and
// allocation-free.
//
// # Typical Use
//
// Compact membership sets, e.g. which data components an entity depends on:
//
//	const (
//	    Position uint = iota
//	    Velocity
//	    Sprite
//	)
//
//	var deps bitset128.BitSet
//	deps.Set(Position)
//	deps.Set(Velocity)
//
//	required := bitset128.FromIndices(Position, Velocity)
//	if deps.And(required) == required {
//	    // entity has every required component
//	}
//
// # Layout
//
//	┌────────────────────────┬────────────────────────┐
//	│  Lo (bits [0,63])      │  Hi (bits [64,127])    │
//	└────────────────────────┴────────────────────────┘
//
// Bit i is element i, counted from the least significant bit of Lo. Go has no
// native 128-bit integer, so the raw value is exchanged as a Uint128.
//
// # Index Policy
//
// Positions outside [0, Capacity) are caller bugs. Test, Set, Clear, Flip,
// SetTo and FromIndices panic with an *IndexError wrapping ErrIndexOutOfRange.
// Nothing wraps around or is silently dropped. Use CheckIndex to validate
// untrusted positions first.
//
// # Shifts
//
// ShiftLeft and ShiftRight are logical shifts: vacated positions are filled
// with zeros and bits moved past either end are discarded. Shifting by
// Capacity or more yields the empty set.
//
// # Wider Sets
//
// BitSet256 offers the same contract over 256 positions. Both types are thin
// wrappers around the width-agnostic word kernels in internal/words.
//
// # Concurrency
//
// Values are independent. Mutating one BitSet from several goroutines needs
// external synchronization.
package bitset128
