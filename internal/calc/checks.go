package calc

import (
	"fmt"

	"github.com/agbru/fixcalc/internal/arith"
	apperrors "github.com/agbru/fixcalc/internal/errors"
	"github.com/agbru/fixcalc/internal/scalar"
)

// Check compares one optimized routine against a reference composition of
// simpler operations on random operands.
type Check interface {
	Name() string
	// Trial runs one comparison with operands drawn from src. It returns an
	// apperrors.MismatchError when the two forms disagree.
	Trial(src scalar.Source) error
}

type check[W arith.Word] struct {
	name  string
	words int
	trial func(c *check[W], src scalar.Source) error
}

func (c *check[W]) Name() string                  { return c.name }
func (c *check[W]) Trial(src scalar.Source) error { return c.trial(c, src) }

func (c *check[W]) random(src scalar.Source) *scalar.Scalar[W] {
	return scalar.Random[W](c.words, src)
}

func (c *check[W]) mismatch(got, want *scalar.Scalar[W], operands ...*scalar.Scalar[W]) error {
	ops := make([]string, len(operands))
	for i, x := range operands {
		ops[i] = x.String()
	}
	return apperrors.MismatchError{Check: c.name, Operands: ops, Got: got.String(), Want: want.String()}
}

func (e *engine[W]) Checks() []Check {
	mk := func(name string, trial func(c *check[W], src scalar.Source) error) Check {
		return &check[W]{name: name, words: e.words, trial: trial}
	}
	return []Check{
		mk("fmadd", trialFMAdd[W]),
		mk("invadd", trialInvAdd[W]),
		mk("fm2invadd", trialFM2InvAdd[W]),
		mk("fm3invadd", trialFM3InvAdd[W]),
		mk("quorem", trialQuoRem[W]),
		mk("inverse", trialInverse[W]),
		mk("shift", trialShift[W]),
	}
}

func trialFMAdd[W arith.Word](c *check[W], src scalar.Source) error {
	w, x, y := c.random(src), c.random(src), c.random(src)
	got := w.Clone().FMAdd(x, y)
	want := new(scalar.Scalar[W]).Mul(x, y)
	want.Add(w, want)
	if !got.Eq(want) {
		return c.mismatch(got, want, w, x, y)
	}
	return nil
}

func trialInvAdd[W arith.Word](c *check[W], src scalar.Source) error {
	w, m := c.random(src), c.random(src)
	got := w.Clone().InvAdd(m)
	want := new(scalar.Scalar[W]).Sub(w, m)
	if !got.Eq(want) {
		return c.mismatch(got, want, w, m)
	}
	return nil
}

func trialFM2InvAdd[W arith.Word](c *check[W], src scalar.Source) error {
	w, x, y := c.random(src), c.random(src), c.random(src)
	got := w.Clone().FM2InvAdd(x, y)
	want := new(scalar.Scalar[W]).Mul(x, y)
	want.Sub(w, want)
	if !got.Eq(want) {
		return c.mismatch(got, want, w, x, y)
	}
	return nil
}

func trialFM3InvAdd[W arith.Word](c *check[W], src scalar.Source) error {
	w, x, y, v := c.random(src), c.random(src), c.random(src), c.random(src)
	want := new(scalar.Scalar[W]).Mul(x, y)
	want.Mul(want, v)
	want.Sub(w, want)
	if got := w.Clone().FM3InvAdd(x, y, v); !got.Eq(want) {
		return c.mismatch(got, want, w, x, y, v)
	}
	if got := w.Clone().FM3InvAddBasic(x, y, v); !got.Eq(want) {
		return c.mismatch(got, want, w, x, y, v)
	}
	return nil
}

// trialQuoRem checks q*d + r == n and r < d.
func trialQuoRem[W arith.Word](c *check[W], src scalar.Source) error {
	n, d := c.random(src), c.random(src)
	// A random divisor keeps most quotients tiny; shorten it to reach
	// long quotients as well.
	d.Rsh(d, uint(src.Uint64()%uint64(d.Width())))
	if d.IsZero() {
		d.SetWord(1)
	}
	q, r, err := new(scalar.Scalar[W]).QuoRem(n, d, new(scalar.Scalar[W]))
	if err != nil {
		return err
	}
	got := new(scalar.Scalar[W]).Mul(q, d)
	got.Add(got, r)
	if !got.Eq(n) {
		return c.mismatch(got, n, n, d)
	}
	if !r.Lt(d) {
		return c.mismatch(r, d, n, d)
	}
	return nil
}

func trialInverse[W arith.Word](c *check[W], src scalar.Source) error {
	x := c.random(src).SetBit(0)
	inv, err := new(scalar.Scalar[W]).ModInverse(x)
	if err != nil {
		return err
	}
	got := new(scalar.Scalar[W]).Mul(x, inv)
	if one := scalar.FromWord[W](c.words, 1); !got.Eq(one) {
		return c.mismatch(got, one, x)
	}
	return nil
}

// trialShift checks x << k == x * 2^k for k in [0, N].
func trialShift[W arith.Word](c *check[W], src scalar.Source) error {
	x := c.random(src)
	k := uint(src.Uint64() % uint64(x.Width()+1))
	got := new(scalar.Scalar[W]).Lsh(x, k)
	want := new(scalar.Scalar[W]).Mul(x, scalar.New[W](c.words).SetBit(k))
	if !got.Eq(want) {
		err := c.mismatch(got, want, x).(apperrors.MismatchError)
		err.Operands = append(err.Operands, fmt.Sprintf("k=%d", k))
		return err
	}
	return nil
}
