package arith

// QuoRem performs restoring long division: q = num / den and r = num % den.
// den must be non-zero; the caller is responsible for that check. q and r
// must not alias each other or den; r may alias num.
func QuoRem[W Word](q, r, num, den []W) {
	copy(r, num)
	Clear(q)
	if Cmp(r, den) < 0 {
		return
	}

	shift := BitLen(r) - BitLen(den)
	d := make([]W, len(den))
	copy(d, den)
	Shl(d, shift)

	for b := int(shift); b >= 0; b-- {
		if GreaterEqual(r, d) {
			SubInPlace(r, d)
			SetBit(q, uint(b))
		}
		Shr(d, 1)
	}
}

// QuoRemSlow divides by repeated subtraction. It runs in O(num/den) and
// exists as an independent oracle for QuoRem; it must not be used outside
// tests and tooling.
func QuoRemSlow[W Word](q, r, num, den []W) {
	copy(r, num)
	Clear(q)
	for !IsZero(r) && GreaterEqual(r, den) {
		Increment(q)
		SubInPlace(r, den)
	}
}
