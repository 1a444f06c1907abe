package convert

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitset128"
)

// ToRoaring returns a new roaring bitmap holding the members of b.
func ToRoaring(b bitset128.BitSet) *roaring.Bitmap {
	var buf [bitset128.Capacity]uint32
	ids := buf[:0]
	for i := range b.Indices() {
		ids = append(ids, uint32(i))
	}

	rb := roaring.New()
	rb.AddMany(ids)
	return rb
}

// FromRoaring returns the members of rb as a BitSet.
func FromRoaring(rb *roaring.Bitmap) (bitset128.BitSet, error) {
	var b bitset128.BitSet
	if rb == nil || rb.IsEmpty() {
		return b, nil
	}

	if hi := rb.Maximum(); hi >= bitset128.Capacity {
		return b, fmt.Errorf("convert roaring bitmap: %w", &bitset128.IndexError{
			Index:    uint(hi),
			Capacity: bitset128.Capacity,
		})
	}

	it := rb.Iterator()
	for it.HasNext() {
		b.Set(uint(it.Next()))
	}
	return b, nil
}

// ToBitset returns a bits-and-blooms bitset of length 128 holding the
// members of b.
func ToBitset(b bitset128.BitSet) *bitset.BitSet {
	bs := bitset.New(bitset128.Capacity)
	for i := range b.Indices() {
		bs.Set(i)
	}
	return bs
}

// FromBitset returns the members of bs as a BitSet. The length of bs may
// exceed 128 as long as no position >= 128 is set.
func FromBitset(bs *bitset.BitSet) (bitset128.BitSet, error) {
	var b bitset128.BitSet
	if bs == nil {
		return b, nil
	}

	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if err := b.CheckIndex(i); err != nil {
			return bitset128.BitSet{}, fmt.Errorf("convert bitset: %w", err)
		}
		b.Set(i)
	}
	return b, nil
}
