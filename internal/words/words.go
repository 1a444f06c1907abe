package words

import (
	"math/bits"
	"strconv"
	"strings"
)

// WordBits is the number of bits per word.
const WordBits = 64

// Test reports whether bit i is set. i must be < len(w)*WordBits.
func Test(w []uint64, i uint) bool {
	return w[i>>6]&(1<<(i&63)) != 0
}

// Set sets bit i.
func Set(w []uint64, i uint) {
	w[i>>6] |= 1 << (i & 63)
}

// Clear clears bit i.
func Clear(w []uint64, i uint) {
	w[i>>6] &^= 1 << (i & 63)
}

// Flip toggles bit i.
func Flip(w []uint64, i uint) {
	w[i>>6] ^= 1 << (i & 63)
}

// And performs dst[i] &= src[i] for all words.
func And(dst, src []uint64) {
	for i := range dst {
		dst[i] &= src[i]
	}
}

// AndNot performs dst[i] &^= src[i] for all words.
func AndNot(dst, src []uint64) {
	for i := range dst {
		dst[i] &^= src[i]
	}
}

// Or performs dst[i] |= src[i] for all words.
func Or(dst, src []uint64) {
	for i := range dst {
		dst[i] |= src[i]
	}
}

// Xor performs dst[i] ^= src[i] for all words.
func Xor(dst, src []uint64) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// Not complements every word in place.
func Not(dst []uint64) {
	for i := range dst {
		dst[i] = ^dst[i]
	}
}

// Fill sets every bit.
func Fill(dst []uint64) {
	for i := range dst {
		dst[i] = ^uint64(0)
	}
}

// Zero clears every bit.
func Zero(dst []uint64) {
	for i := range dst {
		dst[i] = 0
	}
}

// ShiftLeft performs an in-place logical shift towards the most significant
// bit. Bits moved past the last word are discarded; n >= len(dst)*WordBits
// clears the whole array.
func ShiftLeft(dst []uint64, n uint) {
	if n >= uint(len(dst))*WordBits {
		Zero(dst)
		return
	}
	wordShift := int(n >> 6)
	bitShift := n & 63

	// Walk downwards: source words sit at lower indices and are read
	// before they are overwritten.
	for i := len(dst) - 1; i >= 0; i-- {
		src := i - wordShift
		var v uint64
		if src >= 0 {
			v = dst[src] << bitShift
			if bitShift != 0 && src > 0 {
				v |= dst[src-1] >> (WordBits - bitShift)
			}
		}
		dst[i] = v
	}
}

// ShiftRight performs an in-place logical shift towards the least significant
// bit. Bits moved past bit 0 are discarded; n >= len(dst)*WordBits clears the
// whole array.
func ShiftRight(dst []uint64, n uint) {
	if n >= uint(len(dst))*WordBits {
		Zero(dst)
		return
	}
	wordShift := int(n >> 6)
	bitShift := n & 63

	for i := range dst {
		src := i + wordShift
		var v uint64
		if src < len(dst) {
			v = dst[src] >> bitShift
			if bitShift != 0 && src+1 < len(dst) {
				v |= dst[src+1] << (WordBits - bitShift)
			}
		}
		dst[i] = v
	}
}

// OnesCount returns the number of set bits across all words.
func OnesCount(w []uint64) int {
	count := 0
	for _, x := range w {
		count += bits.OnesCount64(x)
	}
	return count
}

// IsZero reports whether no bit is set.
func IsZero(w []uint64) bool {
	for _, x := range w {
		if x != 0 {
			return false
		}
	}
	return true
}

// IsFull reports whether every bit is set.
func IsFull(w []uint64) bool {
	for _, x := range w {
		if x != ^uint64(0) {
			return false
		}
	}
	return true
}

// NextSet returns the first set bit at or after i.
func NextSet(w []uint64, i uint) (uint, bool) {
	wIdx := int(i >> 6)
	if wIdx >= len(w) {
		return 0, false
	}

	// first (maybe partial) word
	if word := w[wIdx] >> (i & 63); word != 0 {
		return i + uint(bits.TrailingZeros64(word)), true
	}

	for j := wIdx + 1; j < len(w); j++ {
		if w[j] != 0 {
			return uint(j)<<6 + uint(bits.TrailingZeros64(w[j])), true
		}
	}
	return 0, false
}

// ForEach calls fn for every set bit in ascending order and stops early when
// fn returns false. It reports whether the iteration ran to completion.
func ForEach(w []uint64, fn func(uint) bool) bool {
	for wIdx, word := range w {
		base := uint(wIdx) << 6
		for word != 0 {
			if !fn(base + uint(bits.TrailingZeros64(word))) {
				return false
			}
			word &= word - 1 // clear lowest bit
		}
	}
	return true
}

// Format renders the set positions in ascending order, e.g. {0 3 127}.
func Format(w []uint64) string {
	var sb strings.Builder
	sb.WriteByte('{')
	ForEach(w, func(i uint) bool {
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
