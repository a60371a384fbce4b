package scalar

import (
	"github.com/agbru/fixcalc/internal/arith"
	apperrors "github.com/agbru/fixcalc/internal/errors"
)

// ExtendedGCD returns Bezout coefficients x and y such that
// a*x + b*y = gcd(a, b) mod 2^N. It returns ErrDivisionByZero when b is zero.
//
// The recurrence alternates between reducing a by b and b by a. Each step
// keeps a0*A + b0*B = a and a1*A + b1*B = b for the original inputs A and
// B; the loop ends as soon as one remainder reaches zero, at which point the
// other pair of coefficients belongs to the gcd.
func ExtendedGCD[W arith.Word](a, b *Scalar[W]) (x, y *Scalar[W], err error) {
	if b.IsZero() {
		return nil, nil, apperrors.ErrDivisionByZero
	}
	n := a.Len()
	a, b = a.Clone(), b.Clone()
	a0, a1 := FromWord[W](n, 1), New[W](n)
	b0, b1 := New[W](n), FromWord[W](n, 1)

	q, r := New[W](n), New[W](n)
	for {
		arith.QuoRem(q.words, r.words, a.words, b.words)
		a, r = r, a
		a0.FM2InvAdd(q, a1)
		b0.FM2InvAdd(q, b1)
		if a.IsZero() {
			return a1, b1, nil
		}

		arith.QuoRem(q.words, r.words, b.words, a.words)
		b, r = r, b
		a1.FM2InvAdd(q, a0)
		b1.FM2InvAdd(q, b0)
		if b.IsZero() {
			return a0, b0, nil
		}
	}
}
