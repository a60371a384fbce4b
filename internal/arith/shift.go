package arith

// Shl shifts v left by n bits in place. Bits shifted past the most
// significant word are discarded and zeros fill from the right.
func Shl[W Word](v []W, n uint) {
	w := Bits[W]()
	s := uint(len(v))
	q, r := n/w, n%w
	if q >= s {
		Clear(v)
		return
	}

	if q > 0 {
		copy(v, v[q:])
		Clear(v[s-q:])
	}

	if r == 0 {
		return
	}
	var carry W
	for i := int(s) - 1; i >= 0; i-- {
		out := v[i] >> (w - r)
		v[i] = v[i]<<r | carry
		carry = out
	}
}

// Shr shifts v right by n bits in place. Bits shifted past the least
// significant word are discarded and zeros fill from the left.
func Shr[W Word](v []W, n uint) {
	w := Bits[W]()
	s := uint(len(v))
	q, r := n/w, n%w
	if q >= s {
		Clear(v)
		return
	}

	if q > 0 {
		copy(v[q:], v[:s-q])
		Clear(v[:q])
	}

	if r == 0 {
		return
	}
	var carry W
	for i := range v {
		out := v[i] << (w - r)
		v[i] = v[i]>>r | carry
		carry = out
	}
}
