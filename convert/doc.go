// Package convert moves membership between bitset128.BitSet and the
// general-purpose bitmaps used for index storage:
//
//   - github.com/RoaringBitmap/roaring/v2 (compressed, sparse universes)
//   - github.com/bits-and-blooms/bitset (dense, growable)
//
// Conversions into a BitSet never truncate: a source holding any position
// >= bitset128.Capacity is rejected with an error wrapping
// bitset128.ErrIndexOutOfRange.
package convert
