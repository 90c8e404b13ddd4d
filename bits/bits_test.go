package bits

import (
	stdbits "math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples[W Word](r *rand.Rand) []W {
	pattern := uint64(0xA5A5A5A5A5A5A5A5)
	out := []W{0, 1, ^W(0), W(1) << (Width[W]() - 1), W(pattern)}
	for i := 0; i < 64; i++ {
		out = append(out, W(r.Uint64()))
	}
	return out
}

// checkAgainstStd compares each operation with math/bits on one width
func checkAgainstStd[W Word](t *testing.T, ops Ops[W]) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(ops.Width())))
	w := ops.Width()

	for _, v := range samples[W](r) {
		u := uint64(v)
		assert.Equal(t, stdbits.OnesCount64(u), ops.Count(v), "count %#x", u)
		assert.Equal(t, W(stdbits.Reverse64(u)>>(64-w)), ops.Reverse(v), "reverse %#x", u)
		assert.Equal(t, v, ops.Reverse(ops.Reverse(v)))

		if v == 0 {
			assert.Equal(t, -1, ops.First(v))
			assert.Equal(t, -1, ops.Last(v))
		} else {
			assert.Equal(t, stdbits.TrailingZeros64(u), ops.First(v), "first %#x", u)
			assert.Equal(t, stdbits.Len64(u)-1, ops.Last(v), "last %#x", u)
		}

		var rebuilt W
		for i := ops.Next(v, 0); i >= 0; i = ops.Next(v, i+1) {
			rebuilt = ops.Set(rebuilt, i)
		}
		assert.Equal(t, v, rebuilt, "next walk %#x", u)

		parsed, err := ops.Parse(ops.Format(v))
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
		assert.Len(t, ops.Format(v), w)

		for i := 0; i < w; i++ {
			assert.Equal(t, u&(1<<i) != 0, ops.IsSet(v, i))
			assert.True(t, ops.IsSet(ops.Set(v, i), i))
			assert.False(t, ops.IsSet(ops.Clear(v, i), i))
			assert.Equal(t, !ops.IsSet(v, i), ops.IsSet(ops.Toggle(v, i), i))
			assert.Equal(t, v, ops.Toggle(ops.Toggle(v, i), i))
		}
	}
}

// TestFamiliesMatchMathBits tests each word width against math/bits
func TestFamiliesMatchMathBits(t *testing.T) {
	t.Run("ByteBit", func(t *testing.T) { checkAgainstStd(t, ByteBit) })
	t.Run("ShortBit", func(t *testing.T) { checkAgainstStd(t, ShortBit) })
	t.Run("IntBit", func(t *testing.T) { checkAgainstStd(t, IntBit) })
	t.Run("LongBit", func(t *testing.T) { checkAgainstStd(t, LongBit) })
}

// TestWidth tests word widths
func TestWidth(t *testing.T) {
	type flags uint16

	assert.Equal(t, 8, ByteBit.Width())
	assert.Equal(t, 16, ShortBit.Width())
	assert.Equal(t, 32, IntBit.Width())
	assert.Equal(t, 64, LongBit.Width())
	assert.Equal(t, 16, Width[flags]())
}

// TestMask tests half-open masks and range updates
func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		expected uint8
	}{
		{"Empty", 3, 3, 0},
		{"Low", 0, 4, 0x0F},
		{"High", 4, 8, 0xF0},
		{"Middle", 2, 5, 0x1C},
		{"Full", 0, 8, 0xFF},
		{"Single", 7, 8, 0x80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ByteBit.Mask(tt.from, tt.to))
			assert.Equal(t, tt.expected, ByteBit.SetRange(0, tt.from, tt.to))
			assert.Equal(t, ^tt.expected, ByteBit.ClearRange(0xFF, tt.from, tt.to))
		})
	}

	assert.Equal(t, ^uint64(0), LongBit.Mask(0, 64))
	assert.Equal(t, uint64(1)<<63, LongBit.Mask(63, 64))
	assert.Equal(t, uint32(0xFFFF0000), IntBit.Mask(16, 32))
}

// TestNext tests forward scanning
func TestNext(t *testing.T) {
	v := ShortBit.SetRange(0, 3, 5) | 1<<12

	assert.Equal(t, 3, ShortBit.Next(v, -5))
	assert.Equal(t, 3, ShortBit.Next(v, 0))
	assert.Equal(t, 4, ShortBit.Next(v, 4))
	assert.Equal(t, 12, ShortBit.Next(v, 5))
	assert.Equal(t, -1, ShortBit.Next(v, 13))
	assert.Equal(t, -1, ShortBit.Next(v, 16))
	assert.Equal(t, -1, ShortBit.Next(v, 100))
}

// TestFormatParse tests the text form
func TestFormatParse(t *testing.T) {
	assert.Equal(t, "00001010", ByteBit.Format(10))
	assert.Equal(t, "1000000000000000", ShortBit.Format(1<<15))

	v, err := IntBit.Parse("101")
	require.NoError(t, err)
	assert.Equal(t, uint32(5), v)

	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"TooLong", "111111111"},
		{"NotBinary", "10201"},
		{"Sign", "-1"},
		{"Spaces", " 101"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ByteBit.Parse(tt.input)
			assert.ErrorIs(t, err, ErrInvalidWord)
		})
	}
}

// TestIndexPanics tests out-of-range indexes
func TestIndexPanics(t *testing.T) {
	assert.Panics(t, func() { ByteBit.Set(0, 8) })
	assert.Panics(t, func() { ShortBit.IsSet(0, -1) })
	assert.Panics(t, func() { IntBit.Toggle(0, 32) })
	assert.Panics(t, func() { LongBit.Clear(0, 64) })
	assert.Panics(t, func() { ByteBit.Mask(5, 4) })
	assert.Panics(t, func() { ByteBit.SetRange(0, 0, 9) })
	assert.NotPanics(t, func() { LongBit.Set(0, 63) })
}
