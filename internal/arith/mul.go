package arith

// The schoolbook grid is walked by result index. For a result index i the
// contributing word pairs (j, k) satisfy j+k = S-1+i; the low half of each
// widening product lands on index i and the high half on index i-1. Index 0
// only needs the low halves since anything above it is truncated.
//
//	    6 7 4
//	 x  1 1 1
//	---------
//	    4 4 4   i = S-1
//	  7 7       i = S-2
//	6           i = 0 (low halves only)

// Mul stores the low S words of v1*v2 in dst. dst must not alias v1 or v2.
func Mul[W Word](dst, v1, v2 []W) {
	Clear(dst)
	mulAccumulate(dst, v1, v2)
}

// MulInPlace replaces v1 with the low S words of v1*v2. v2 must not alias v1.
//
// Row i reads v1[j] only for j >= i while writes stay at indices <= i, so
// the product can be assembled inside v1 without a scratch buffer.
func MulInPlace[W Word](v1, v2 []W) {
	s := len(v1)

	var top W
	for j, k := 0, s-1; j < s; j, k = j+1, k-1 {
		top += v1[j] * v2[k]
	}
	v1[0] = top

	for i := 1; i < s; i++ {
		for j, k := i, s-1; j < s; j, k = j+1, k-1 {
			hi, lo := MulWide(v1[j], v2[k])
			if j == i {
				v1[i] = 0
			}
			PropagateAdd(v1, i, lo)
			PropagateAdd(v1, i-1, hi)
		}
	}
}

// FMAdd adds v1*v2 into acc without forming the product: every half of every
// widening product is carried straight into acc. The result is identical to
// acc + v1*v2 mod 2^N. acc must not alias v1 or v2.
func FMAdd[W Word](acc, v1, v2 []W) {
	mulAccumulate(acc, v1, v2)
}

func mulAccumulate[W Word](acc, v1, v2 []W) {
	s := len(v1)

	for j, k := 0, s-1; j < s; j, k = j+1, k-1 {
		acc[0] += v1[j] * v2[k]
	}

	for i := 1; i < s; i++ {
		for j, k := i, s-1; j < s; j, k = j+1, k-1 {
			hi, lo := MulWide(v1[j], v2[k])
			PropagateAdd(acc, i, lo)
			PropagateAdd(acc, i-1, hi)
		}
	}
}
