package scalar

import (
	"fmt"

	"github.com/agbru/fixcalc/internal/arith"
	apperrors "github.com/agbru/fixcalc/internal/errors"
)

// Add sets z to x + y mod 2^N and returns z.
func (z *Scalar[W]) Add(x, y *Scalar[W]) *Scalar[W] {
	z.AddOverflow(x, y)
	return z
}

// AddOverflow sets z to x + y mod 2^N and reports whether the sum wrapped.
func (z *Scalar[W]) AddOverflow(x, y *Scalar[W]) (*Scalar[W], bool) {
	z.prepare(x, y)
	if alias(z.words, y.words) && !alias(z.words, x.words) {
		return z, arith.AddInPlace(z.words, x.words)
	}
	return z, arith.Add(z.words, x.words, y.words)
}

// Sub sets z to x - y mod 2^N and returns z.
func (z *Scalar[W]) Sub(x, y *Scalar[W]) *Scalar[W] {
	z.SubUnderflow(x, y)
	return z
}

// SubUnderflow sets z to x - y mod 2^N and reports whether y exceeded x.
func (z *Scalar[W]) SubUnderflow(x, y *Scalar[W]) (*Scalar[W], bool) {
	z.prepare(x, y)
	if alias(z.words, y.words) {
		y = y.Clone()
	}
	return z, arith.Sub(z.words, x.words, y.words)
}

// Mul sets z to x * y mod 2^N and returns z.
func (z *Scalar[W]) Mul(x, y *Scalar[W]) *Scalar[W] {
	z.prepare(x, y)
	zx, zy := alias(z.words, x.words), alias(z.words, y.words)
	switch {
	case zx && zy:
		arith.MulInPlace(z.words, x.Words())
	case zx:
		arith.MulInPlace(z.words, y.words)
	case zy:
		arith.MulInPlace(z.words, x.words)
	default:
		arith.Mul(z.words, x.words, y.words)
	}
	return z
}

// QuoRem sets z to x / y and r to x % y and returns (z, r). It returns
// ErrDivisionByZero and leaves z and r untouched when y is zero. z and r must
// be distinct.
func (z *Scalar[W]) QuoRem(x, y, r *Scalar[W]) (*Scalar[W], *Scalar[W], error) {
	if y.IsZero() {
		return z, r, apperrors.ErrDivisionByZero
	}
	z.prepare(x, y)
	r.prepare(x)
	if alias(z.words, r.words) {
		panic("scalar: QuoRem quotient and remainder share storage")
	}
	den := y.words
	if alias(den, z.words) || alias(den, r.words) {
		den = y.Words()
	}
	arith.QuoRem(z.words, r.words, x.words, den)
	return z, r, nil
}

// Quo sets z to x / y and returns z, or ErrDivisionByZero when y is zero.
func (z *Scalar[W]) Quo(x, y *Scalar[W]) (*Scalar[W], error) {
	_, _, err := z.QuoRem(x, y, new(Scalar[W]))
	return z, err
}

// Rem sets z to x % y and returns z, or ErrDivisionByZero when y is zero.
func (z *Scalar[W]) Rem(x, y *Scalar[W]) (*Scalar[W], error) {
	_, _, err := new(Scalar[W]).QuoRem(x, y, z)
	return z, err
}

// Lsh sets z to x << n and returns z. Shifting by N or more bits yields zero.
func (z *Scalar[W]) Lsh(x *Scalar[W], n uint) *Scalar[W] {
	z.Set(x)
	arith.Shl(z.words, n)
	return z
}

// Rsh sets z to x >> n and returns z.
func (z *Scalar[W]) Rsh(x *Scalar[W], n uint) *Scalar[W] {
	z.Set(x)
	arith.Shr(z.words, n)
	return z
}

// Inc sets z to x + 1 mod 2^N and returns z.
func (z *Scalar[W]) Inc(x *Scalar[W]) *Scalar[W] {
	z.Set(x)
	arith.Increment(z.words)
	return z
}

// Not sets z to the bitwise complement of x and returns z.
func (z *Scalar[W]) Not(x *Scalar[W]) *Scalar[W] {
	z.Set(x)
	arith.Not(z.words)
	return z
}

// Neg sets z to 0 - x mod 2^N and returns z.
func (z *Scalar[W]) Neg(x *Scalar[W]) *Scalar[W] {
	z.Set(x)
	arith.Negate(z.words)
	return z
}

// Cmp compares z and y and returns -1, 0 or +1.
func (z *Scalar[W]) Cmp(y *Scalar[W]) int {
	if len(z.words) != len(y.words) {
		panic(fmt.Sprintf("scalar: width mismatch: %d vs %d words", len(z.words), len(y.words)))
	}
	return arith.Cmp(z.words, y.words)
}

// Eq reports whether z == y.
func (z *Scalar[W]) Eq(y *Scalar[W]) bool { return z.Cmp(y) == 0 }

// Gt reports whether z > y.
func (z *Scalar[W]) Gt(y *Scalar[W]) bool { return z.Cmp(y) > 0 }

// GtEq reports whether z >= y.
func (z *Scalar[W]) GtEq(y *Scalar[W]) bool { return z.Cmp(y) >= 0 }

// Lt reports whether z < y.
func (z *Scalar[W]) Lt(y *Scalar[W]) bool { return z.Cmp(y) < 0 }

// LtEq reports whether z <= y.
func (z *Scalar[W]) LtEq(y *Scalar[W]) bool { return z.Cmp(y) <= 0 }

// BitLen returns the number of significant bits of z; 0 for zero.
func (z *Scalar[W]) BitLen() int { return int(arith.BitLen(z.words)) }

// SetBit sets bit n of z, counting from the least significant bit, and
// returns z. Bits at or beyond the width are ignored.
func (z *Scalar[W]) SetBit(n uint) *Scalar[W] {
	z.mustHaveWidth()
	arith.SetBit(z.words, n)
	return z
}

// Bit returns bit n of z.
func (z *Scalar[W]) Bit(n uint) uint { return arith.Bit(z.words, n) }

// IsZero reports whether z is zero.
func (z *Scalar[W]) IsZero() bool { return arith.IsZero(z.words) }

// Bool reports whether any word of z is non-zero.
func (z *Scalar[W]) Bool() bool { return !z.IsZero() }

// IsOdd reports whether the least significant bit of z is set.
func (z *Scalar[W]) IsOdd() bool {
	return len(z.words) > 0 && z.words[len(z.words)-1]&1 == 1
}
