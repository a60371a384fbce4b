// Package arith implements the word-level and vector-level primitives of the
// fixed-width integer engine.
//
// Every vector function operates on a slice of words whose index 0 holds the
// most significant word. Slices passed together must have the same length;
// the length is the fixed width of the value and is never changed. All
// arithmetic is modulo 2^(len·bits(W)).
package arith

import "math/bits"

// Word is the set of native unsigned types a fixed-width integer can be built
// from.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits returns the width of W in bits.
func Bits[W Word]() uint {
	return uint(bits.Len64(uint64(^W(0))))
}

// MulWide returns the double-width product of a and b split into its high and
// low words.
func MulWide[W Word](a, b W) (hi, lo W) {
	switch n := Bits[W](); n {
	case 64:
		h, l := bits.Mul64(uint64(a), uint64(b))
		return W(h), W(l)
	default:
		// 8, 16 and 32-bit products fit in a uint64.
		p := uint64(a) * uint64(b)
		return W(p >> n), W(p)
	}
}

// AddWord adds v to *dst and reports whether the addition wrapped.
func AddWord[W Word](dst *W, v W) (carry bool) {
	*dst += v
	return *dst < v
}

// SubWord subtracts v from *dst and reports whether v exceeded the previous
// value of *dst.
func SubWord[W Word](dst *W, v W) (borrow bool) {
	borrow = v > *dst
	*dst -= v
	return borrow
}

// topBit returns the index of the highest set bit of w. w must be non-zero.
func topBit[W Word](w W) uint {
	return uint(bits.Len64(uint64(w))) - 1
}
