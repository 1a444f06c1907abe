package bitset128

import (
	"bytes"
	"log/slog"
	"math/big"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func random256(n int) []BitSet256 {
	rng := rand.New(rand.NewPCG(256, 1))
	sets := []BitSet256{Empty256(), Full256()}
	for range n {
		sets = append(sets, FromWords256([4]uint64{rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64()}))
	}
	return sets
}

func big256(b BitSet256) *big.Int {
	w := b.Words()
	v := new(big.Int)
	for i := len(w) - 1; i >= 0; i-- {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(w[i]))
	}
	return v
}

func TestBitSet256_Basic(t *testing.T) {
	b := Empty256()
	b.Set(0)
	b.Set(200)
	b.Set(255)

	assert.Equal(t, uint32(3), b.Count())
	assert.True(t, b.Test(200))
	assert.False(t, b.Test(201))
	assert.Equal(t, "{0 200 255}", b.String())
	assert.Equal(t, []uint{0, 200, 255}, slices.Collect(b.Indices()))

	b.Flip(200)
	b.Clear(255)
	b.SetTo(1, true)
	assert.Equal(t, FromIndices256(0, 1), b)

	assert.Equal(t, uint32(256), Empty256().Not().Count())
	assert.True(t, Full256().IsFull())
	assert.Equal(t, uint(Capacity256), b.Capacity())
}

func TestBitSet256_Algebra(t *testing.T) {
	sets := random256(16)
	for _, a := range sets {
		assert.Equal(t, a, a.And(a))
		assert.Equal(t, a, a.Or(a))
		assert.Equal(t, Empty256(), a.Xor(a))
		assert.Equal(t, a, a.Not().Not())
		for _, b := range sets {
			assert.Equal(t, a.Not().Or(b.Not()), a.And(b).Not())
			assert.Equal(t, a.Not().And(b.Not()), a.Or(b).Not())
			assert.Equal(t, a.And(b.Not()), a.AndNot(b))
		}
	}
}

func TestBitSet256_Shift(t *testing.T) {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), Capacity256), big.NewInt(1))

	for _, a := range random256(8) {
		for n := uint32(0); n <= 300; n++ {
			want := new(big.Int).Lsh(big256(a), uint(n))
			want.And(want, mask)
			require.Zero(t, want.Cmp(big256(a.ShiftLeft(n))), "ShiftLeft(%d)", n)

			want = new(big.Int).Rsh(big256(a), uint(n))
			require.Zero(t, want.Cmp(big256(a.ShiftRight(n))), "ShiftRight(%d)", n)
		}
		assert.True(t, a.ShiftLeft(256).IsEmpty())
		assert.True(t, a.ShiftRight(256).IsEmpty())
	}
}

func TestBitSet256_WidenNarrow(t *testing.T) {
	b := FromIndices(0, 64, 127)

	wide := b.Widen()
	assert.Equal(t, FromIndices256(0, 64, 127), wide)

	back, ok := wide.Narrow()
	assert.True(t, ok)
	assert.Equal(t, b, back)

	// 127 << 1 only fits in the wide set
	wide = wide.ShiftLeft(1)
	assert.True(t, wide.Test(128))
	_, ok = wide.Narrow()
	assert.False(t, ok)
}

func TestBitSet256_IndexOutOfRange(t *testing.T) {
	var b BitSet256
	assert.NoError(t, b.CheckIndex(255))
	assert.ErrorIs(t, b.CheckIndex(256), ErrIndexOutOfRange)

	err := recoverError(func() { b.Set(256) })
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.EqualError(t, err, "bitset128: index 256 out of range [0,256)")
	assert.True(t, b.IsEmpty())
}

func TestBitSet256_Whole(t *testing.T) {
	var b BitSet256
	assert.False(t, b.Any())

	b.SetAll()
	assert.Equal(t, Full256(), b)
	assert.True(t, b.Equal(Full256()))
	assert.True(t, b.Any())

	b.FlipAll()
	assert.Equal(t, Empty256(), b)

	b.Set(200)
	b.FlipAll()
	assert.Equal(t, uint32(255), b.Count())
	assert.False(t, b.Test(200))
	assert.False(t, b.Equal(Full256()))

	next, ok := b.NextSet(200)
	assert.True(t, ok)
	assert.Equal(t, uint(201), next)

	b.ClearAll()
	assert.True(t, b.IsEmpty())
	assert.False(t, b.Any())

	_, ok = b.NextSet(0)
	assert.False(t, ok)
}

func TestBitSet256_LogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("deps", "set", FromIndices256(0, 193))

	assert.Contains(t, buf.String(), "set.count=2")
	assert.Contains(t, buf.String(), "set.words=\"[1 0 0 2]\"")
}
