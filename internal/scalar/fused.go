package scalar

import "github.com/agbru/fixcalc/internal/arith"

// The fused operations accumulate into the receiver. Operands that share
// storage with z are copied first, so z.FMAdd(z, z) computes z + z*z.

// FMAdd sets z to z + x*y mod 2^N and returns z.
func (z *Scalar[W]) FMAdd(x, y *Scalar[W]) *Scalar[W] {
	z.prepare(x, y)
	x, y = z.detach(x), z.detach(y)
	arith.FMAdd(z.words, x.words, y.words)
	return z
}

// InvAdd sets z to z - m mod 2^N by adding the two's complement of m, and
// returns z.
func (z *Scalar[W]) InvAdd(m *Scalar[W]) *Scalar[W] {
	z.prepare(m)
	m = z.detach(m)
	arith.InvAdd(z.words, m.words)
	return z
}

// FM2InvAdd sets z to z - x*y mod 2^N without forming the product, and
// returns z.
func (z *Scalar[W]) FM2InvAdd(x, y *Scalar[W]) *Scalar[W] {
	z.prepare(x, y)
	x, y = z.detach(x), z.detach(y)
	arith.FM2InvAdd(z.words, x.words, y.words)
	return z
}

// FM3InvAdd sets z to z - x*y*v mod 2^N and returns z.
func (z *Scalar[W]) FM3InvAdd(x, y, v *Scalar[W]) *Scalar[W] {
	z.prepare(x, y, v)
	x, y, v = z.detach(x), z.detach(y), z.detach(v)
	arith.FM3InvAdd(z.words, x.words, y.words, v.words)
	return z
}

// FM3InvAddBasic computes the same value as FM3InvAdd by forming the
// product first. It is the reference the fused form is checked against.
func (z *Scalar[W]) FM3InvAddBasic(x, y, v *Scalar[W]) *Scalar[W] {
	z.prepare(x, y, v)
	x, y, v = z.detach(x), z.detach(y), z.detach(v)
	arith.FM3InvAddBasic(z.words, x.words, y.words, v.words)
	return z
}

// detach returns x, or a copy of it when x shares storage with z.
func (z *Scalar[W]) detach(x *Scalar[W]) *Scalar[W] {
	if alias(z.words, x.words) {
		return x.Clone()
	}
	return x
}
