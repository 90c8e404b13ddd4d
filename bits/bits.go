// Package bits provides bit manipulation on fixed-width unsigned words.
//
// Indexes are 0-based from the least significant bit. An index outside
// [0, width) panics with the same kind of message as an out-of-range
// slice index. Ranges are half-open: [from, to).
//
// The generic functions work on any Word. ByteBit, ShortBit, IntBit and
// LongBit bind them to 8, 16, 32 and 64-bit words:
//
//	flags := bits.IntBit.Set(0, 3)       // 0b1000
//	bits.IntBit.IsSet(flags, 3)          // true
//	bits.IntBit.Format(flags)            // "00000000000000000000000000001000"
package bits

import (
	"errors"
	"fmt"
	stdbits "math/bits"
	"strconv"
	"strings"
)

// ErrInvalidWord is returned by Parse for text that is not a binary word
// of the requested width.
var ErrInvalidWord = errors.New("invalid binary word")

// Word is the set of unsigned fixed-width integer types.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the number of bits in W.
func Width[W Word]() int {
	return stdbits.OnesCount64(uint64(^W(0)))
}

func checkIndex[W Word](i int) {
	if w := Width[W](); i < 0 || i >= w {
		panic(fmt.Sprintf("bits: index %d out of range [0:%d]", i, w))
	}
}

func checkRange[W Word](from, to int) {
	if w := Width[W](); from < 0 || to > w || from > to {
		panic(fmt.Sprintf("bits: range [%d:%d] out of range [0:%d]", from, to, w))
	}
}

// Set returns v with bit i set.
func Set[W Word](v W, i int) W {
	checkIndex[W](i)
	return v | W(1)<<i
}

// Clear returns v with bit i cleared.
func Clear[W Word](v W, i int) W {
	checkIndex[W](i)
	return v &^ (W(1) << i)
}

// Toggle returns v with bit i flipped.
func Toggle[W Word](v W, i int) W {
	checkIndex[W](i)
	return v ^ W(1)<<i
}

// IsSet reports whether bit i of v is set.
func IsSet[W Word](v W, i int) bool {
	checkIndex[W](i)
	return v&(W(1)<<i) != 0
}

// Mask returns a word with bits [from, to) set.
func Mask[W Word](from, to int) W {
	checkRange[W](from, to)
	n := to - from
	if n == Width[W]() {
		return ^W(0)
	}
	return (W(1)<<n - 1) << from
}

// SetRange returns v with bits [from, to) set.
func SetRange[W Word](v W, from, to int) W {
	return v | Mask[W](from, to)
}

// ClearRange returns v with bits [from, to) cleared.
func ClearRange[W Word](v W, from, to int) W {
	return v &^ Mask[W](from, to)
}

// Count returns the number of set bits.
func Count[W Word](v W) int {
	return stdbits.OnesCount64(uint64(v))
}

// Reverse returns v with its bits in reverse order within the word.
func Reverse[W Word](v W) W {
	return W(stdbits.Reverse64(uint64(v)) >> (64 - Width[W]()))
}

// First returns the index of the lowest set bit, or -1 if v is zero.
func First[W Word](v W) int {
	if v == 0 {
		return -1
	}
	return stdbits.TrailingZeros64(uint64(v))
}

// Last returns the index of the highest set bit, or -1 if v is zero.
func Last[W Word](v W) int {
	if v == 0 {
		return -1
	}
	return 63 - stdbits.LeadingZeros64(uint64(v))
}

// Next returns the index of the lowest set bit at or above from, or -1.
// A negative from starts at bit 0.
func Next[W Word](v W, from int) int {
	w := Width[W]()
	if from >= w {
		return -1
	}
	if from > 0 {
		v &^= Mask[W](0, from)
	}
	return First(v)
}

// Format renders v as a binary string zero-padded to the word width.
func Format[W Word](v W) string {
	s := strconv.FormatUint(uint64(v), 2)
	return strings.Repeat("0", Width[W]()-len(s)) + s
}

// Parse reads a binary string of 1 to width digits.
func Parse[W Word](s string) (W, error) {
	w := Width[W]()
	if len(s) == 0 || len(s) > w {
		return 0, fmt.Errorf("%w: %q is not 1 to %d binary digits", ErrInvalidWord, s, w)
	}
	u, err := strconv.ParseUint(s, 2, w)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidWord, s, err)
	}
	return W(u), nil
}
