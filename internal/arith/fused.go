package arith

// InvAdd adds the two's complement of m into acc, i.e. acc -= m mod 2^N.
//
// Words are negated from the least significant end. The lowest non-zero word
// of m negates to 0-m[i]; every word above it negates to ^m[i], which is
// 0-m[i]-1. take records whether a non-zero word has been seen yet. acc must
// not alias m.
func InvAdd[W Word](acc, m []W) {
	take := false
	for i := len(acc) - 1; i >= 0; i-- {
		inv := -m[i]
		if take {
			inv--
		}
		if m[i] != 0 {
			take = true
		}
		PropagateAdd(acc, i, inv)
	}
}

// FM2InvAdd subtracts v1*v2 from acc in one pass without materialising the
// product. acc must not alias v1 or v2.
//
// Result words are produced from the least significant end. Each column sum
// is kept in three chained words: c0 is the current column, c1 and c2 collect
// carries bound for the next two columns. A column holds at most S products,
// so c2 stays below S+1; wider vectors fall back to FM2InvAddBasic.
func FM2InvAdd[W Word](acc, v1, v2 []W) {
	s := len(acc)
	if uint64(s) >= uint64(^W(0)) {
		FM2InvAddBasic(acc, v1, v2)
		return
	}

	var c0, c1, c2 W
	take := false

	for i := s - 1; i >= 0; i-- {
		for j, k := i, s-1; j < s; j, k = j+1, k-1 {
			if i == 0 {
				c0 += v1[j] * v2[k]
				continue
			}
			hi, lo := MulWide(v1[j], v2[k])
			if AddWord(&c0, lo) && AddWord(&c1, 1) {
				c2++
			}
			if AddWord(&c1, hi) {
				c2++
			}
		}

		inv := -c0
		if take {
			inv--
		}
		if c0 != 0 {
			take = true
		}
		PropagateAdd(acc, i, inv)

		c0, c1, c2 = c1, c2, 0
	}
}

// FM2InvAddBasic is the reference form of FM2InvAdd: multiply, then InvAdd.
func FM2InvAddBasic[W Word](acc, v1, v2 []W) {
	t := make([]W, len(acc))
	Mul(t, v1, v2)
	InvAdd(acc, t)
}

// FM3InvAdd subtracts v1*v2*v3 from acc. v2*v3 is formed in a scratch vector
// and the remaining product is fused through FM2InvAdd. acc must not alias
// any operand.
func FM3InvAdd[W Word](acc, v1, v2, v3 []W) {
	t := make([]W, len(acc))
	Mul(t, v2, v3)
	FM2InvAdd(acc, v1, t)
}

// FM3InvAddBasic is the reference form of FM3InvAdd: the full product is
// computed modulo 2^N and then negated into acc.
func FM3InvAddBasic[W Word](acc, v1, v2, v3 []W) {
	t := make([]W, len(acc))
	Mul(t, v2, v3)
	MulInPlace(t, v1)
	InvAdd(acc, t)
}
