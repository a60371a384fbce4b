package arith

// Cmp compares v1 and v2 as unsigned values and returns -1, 0 or +1. Words
// are compared from index 0, the most significant end.
func Cmp[W Word](v1, v2 []W) int {
	for i := range v1 {
		switch {
		case v1[i] > v2[i]:
			return 1
		case v1[i] < v2[i]:
			return -1
		}
	}
	return 0
}

// GreaterEqual reports whether v1 >= v2. Two zero vectors compare equal.
func GreaterEqual[W Word](v1, v2 []W) bool {
	return Cmp(v1, v2) >= 0
}

// Greater reports whether v1 > v2.
func Greater[W Word](v1, v2 []W) bool {
	return Cmp(v1, v2) > 0
}

// BitLen returns the number of significant bits in v; zero for the zero
// vector.
func BitLen[W Word](v []W) uint {
	for i, w := range v {
		if w != 0 {
			return uint(len(v)-1-i)*Bits[W]() + topBit(w) + 1
		}
	}
	return 0
}

// SetBit sets bit n of v, counting from the least significant bit. Bits at
// or beyond the width of v are ignored.
func SetBit[W Word](v []W, n uint) {
	w := Bits[W]()
	q := n / w
	if q >= uint(len(v)) {
		return
	}
	v[uint(len(v))-1-q] |= W(1) << (n % w)
}

// Bit returns bit n of v, counting from the least significant bit.
func Bit[W Word](v []W, n uint) uint {
	w := Bits[W]()
	q := n / w
	if q >= uint(len(v)) {
		return 0
	}
	return uint(v[uint(len(v))-1-q]>>(n%w)) & 1
}
