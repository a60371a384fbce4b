package scalar

import (
	"github.com/agbru/fixcalc/internal/arith"
	apperrors "github.com/agbru/fixcalc/internal/errors"
)

// ModInverse sets z to the multiplicative inverse of x modulo 2^N and returns
// z. Only odd values are invertible; for any other x it returns a
// NoInverseError and leaves z unchanged.
//
// 2^N does not fit in N bits, so the GCD runs one word wider: the modulus is
// a one in the extra top word and x is zero-extended beneath it. The
// coefficient of x, truncated back to N bits, is the inverse up to sign.
func (z *Scalar[W]) ModInverse(x *Scalar[W]) (*Scalar[W], error) {
	if !x.IsOdd() {
		return z, apperrors.NoInverseError{Value: x.String(), Bits: x.Width()}
	}
	n := x.Len()

	modulus := New[W](n + 1)
	modulus.words[0] = 1
	value := New[W](n + 1)
	copy(value.words[1:], x.words)

	_, y, err := ExtendedGCD(modulus, value)
	if err != nil {
		return z, err
	}

	candidate := FromWords(y.words[1:]...)
	if isInverse(x, candidate) {
		return z.Set(candidate), nil
	}
	arith.Negate(candidate.words)
	if isInverse(x, candidate) {
		return z.Set(candidate), nil
	}
	return z, apperrors.NoInverseError{Value: x.String(), Bits: x.Width()}
}

func isInverse[W arith.Word](x, candidate *Scalar[W]) bool {
	p := new(Scalar[W]).Mul(x, candidate)
	return p.Eq(FromWord[W](p.Len(), 1))
}
