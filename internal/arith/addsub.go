package arith

// Add stores v1 + v2 in dst and reports whether the sum wrapped. dst may alias
// v1 but not v2.
func Add[W Word](dst, v1, v2 []W) (overflow bool) {
	copy(dst, v1)
	return AddInPlace(dst, v2)
}

// AddInPlace adds v2 into v1 and reports whether the sum wrapped. v1 and v2
// may be the same slice.
func AddInPlace[W Word](v1, v2 []W) (overflow bool) {
	for i := range v1 {
		// Reading v2[i] before the ripple keeps v1 == v2 correct: the ripple
		// only touches indices below i, which v2 has already supplied.
		if PropagateAdd(v1, i, v2[i]) {
			overflow = true
		}
	}
	return overflow
}

// Sub stores v1 - v2 in dst and reports whether the difference wrapped. dst
// may alias v1 but not v2.
func Sub[W Word](dst, v1, v2 []W) (underflow bool) {
	copy(dst, v1)
	return SubInPlace(dst, v2)
}

// SubInPlace subtracts v2 from v1 and reports whether the difference
// wrapped.
func SubInPlace[W Word](v1, v2 []W) (underflow bool) {
	for i := range v1 {
		if PropagateSub(v1, i, v2[i]) {
			underflow = true
		}
	}
	return underflow
}

// Increment adds one to v and reports whether it wrapped to zero.
func Increment[W Word](v []W) (overflow bool) {
	return PropagateAdd(v, len(v)-1, 1)
}

// Not replaces every word of v with its bitwise complement.
func Not[W Word](v []W) {
	for i := range v {
		v[i] = ^v[i]
	}
}

// Negate replaces v with its two's complement, 0 - v mod 2^N.
func Negate[W Word](v []W) {
	Not(v)
	Increment(v)
}

// Clear sets every word of v to zero.
func Clear[W Word](v []W) {
	for i := range v {
		v[i] = 0
	}
}

// IsZero reports whether every word of v is zero.
func IsZero[W Word](v []W) bool {
	for _, w := range v {
		if w != 0 {
			return false
		}
	}
	return true
}
