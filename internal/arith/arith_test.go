package arith

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"testing"
)

func TestAdd_KnownValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		v1, v2, want []uint8
		overflow     bool
	}{
		{[]uint8{4, 4, 4, 4}, []uint8{1, 1, 1, 1}, []uint8{5, 5, 5, 5}, false},
		{[]uint8{4, 4, 4, 4}, []uint8{1, 2, 3, 4}, []uint8{5, 6, 7, 8}, false},
		{[]uint8{4, 3, 2, 1}, []uint8{1, 2, 3, 4}, []uint8{5, 5, 5, 5}, false},
		{[]uint8{255, 30, 20, 10}, []uint8{2, 2, 3, 4}, []uint8{1, 32, 23, 14}, true},
		{[]uint8{40, 3, 2, 1}, []uint8{10, 252, 253, 255}, []uint8{51, 0, 0, 0}, false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v+%v", tc.v1, tc.v2), func(t *testing.T) {
			t.Parallel()
			got := make([]uint8, 4)
			overflow := Add(got, tc.v1, tc.v2)
			if !vecEqual(got, tc.want) {
				t.Errorf("Add = %v, want %v", got, tc.want)
			}
			if overflow != tc.overflow {
				t.Errorf("overflow = %v, want %v", overflow, tc.overflow)
			}
		})
	}
}

func TestMul_KnownValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		v1, v2, want []uint8
	}{
		{[]uint8{4, 4, 4, 4}, []uint8{1, 1, 1, 1}, []uint8{16, 12, 8, 4}},
		{[]uint8{4, 4, 4, 4}, []uint8{1, 2, 3, 4}, []uint8{40, 36, 28, 16}},
		{[]uint8{4, 3, 2, 1}, []uint8{1, 2, 3, 4}, []uint8{30, 20, 11, 4}},
		{[]uint8{40, 30, 20, 10}, []uint8{1, 2, 3, 4}, []uint8{44, 200, 110, 40}},
		{[]uint8{40, 30, 20, 10}, []uint8{10, 20, 30, 40}, []uint8{191, 212, 77, 144}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%vx%v", tc.v1, tc.v2), func(t *testing.T) {
			t.Parallel()
			got := make([]uint8, 4)
			Mul(got, tc.v1, tc.v2)
			if !vecEqual(got, tc.want) {
				t.Errorf("Mul = %v, want %v", got, tc.want)
			}

			inPlace := clone(tc.v1)
			MulInPlace(inPlace, tc.v2)
			if !vecEqual(inPlace, tc.want) {
				t.Errorf("MulInPlace = %v, want %v", inPlace, tc.want)
			}
		})
	}
}

// TestSub_CarryOrder drives a 16-bit value below zero and back through a
// sequence of subtractions that borrow across the word boundary.
func TestSub_CarryOrder(t *testing.T) {
	t.Parallel()

	steps := [][]uint8{{0x00, 0x01}, {0x00, 0x02}, {0x10, 0x01}, {0x10, 0x00}, {0xf0, 0xf0}}
	acc := []uint8{0, 0}
	var ref uint16
	for _, step := range steps {
		SubInPlace(acc, step)
		ref -= uint16(step[0])<<8 | uint16(step[1])
		if got := uint16(acc[0])<<8 | uint16(acc[1]); got != ref {
			t.Fatalf("after -%v: got %#04x, want %#04x", step, got, ref)
		}
	}
	if want := []uint8{0xef, 0x0c}; !vecEqual(acc, want) {
		t.Errorf("final = %x, want %x", acc, want)
	}
}

func TestSub_OverflowToZero(t *testing.T) {
	t.Parallel()

	v := []uint8{26, 99}
	neg := make([]uint8, 2)
	if !Sub(neg, []uint8{0, 0}, v) {
		t.Error("0 - v should report underflow")
	}
	sum := make([]uint8, 2)
	Add(sum, v, neg)
	if !IsZero(sum) {
		t.Errorf("v + (0 - v) = %v, want zero", sum)
	}
}

func TestInvAdd_KnownValues(t *testing.T) {
	t.Parallel()

	cases := []struct{ r, m []uint8 }{
		{[]uint8{0xda, 0x11, 0xd2, 0x69}, []uint8{0x15, 0x00, 0x98, 0x5d}},
		{[]uint8{0xb1, 0x5f, 0x00, 0xec}, []uint8{0xc6, 0xe9, 0x00, 0x13}},
	}
	for _, tc := range cases {
		got := clone(tc.r)
		InvAdd(got, tc.m)

		neg := make([]uint8, 4)
		Sub(neg, make([]uint8, 4), tc.m)
		want := make([]uint8, 4)
		Add(want, tc.r, neg)

		if !vecEqual(got, want) {
			t.Errorf("InvAdd(%x, %x) = %x, want %x", tc.r, tc.m, got, want)
		}
	}
}

func TestFM3InvAdd_KnownValues(t *testing.T) {
	t.Parallel()

	cases := []struct{ r, m1, m2, m3 []uint8 }{
		{[]uint8{0xd0, 0x14, 0xef, 0x0c}, []uint8{0x21, 0x6d, 0xfd, 0x2b}, []uint8{0xc0, 0x98, 0xc7, 0x79}, []uint8{0x3d, 0x9f, 0x72, 0x7d}},
		{[]uint8{0xca, 0x92, 0xd9, 0xd5}, []uint8{0x95, 0x8f, 0x54, 0xe1}, []uint8{0xd1, 0xa8, 0x9b, 0x15}, []uint8{0x97, 0x9b, 0xdc, 0x89}},
		{[]uint8{0x31, 0x74, 0x3c, 0x31}, []uint8{0x78, 0x3c, 0xf5, 0x0a}, []uint8{0xf3, 0x19, 0xff, 0x4f}, []uint8{0xde, 0x66, 0xce, 0xb1}},
		{[]uint8{1, 1, 1}, []uint8{1, 1, 1}, []uint8{1, 1, 1}, []uint8{1, 1, 1}},
	}

	for _, tc := range cases {
		s := len(tc.r)
		prod := new(big.Int).Mul(toBig(tc.m1), toBig(tc.m2))
		prod.Mul(prod, toBig(tc.m3))
		want := fromBig[uint8](new(big.Int).Sub(toBig(tc.r), prod), s)

		fused := clone(tc.r)
		FM3InvAdd(fused, tc.m1, tc.m2, tc.m3)
		basic := clone(tc.r)
		FM3InvAddBasic(basic, tc.m1, tc.m2, tc.m3)

		if !vecEqual(fused, want) {
			t.Errorf("FM3InvAdd(%x) = %x, want %x", tc.r, fused, want)
		}
		if !vecEqual(basic, want) {
			t.Errorf("FM3InvAddBasic(%x) = %x, want %x", tc.r, basic, want)
		}
	}
}

func addSubMatchesBig[W Word](t *testing.T, rng *rand.Rand, s int) {
	mod := modulus[W](s)
	for range trials {
		a, b := randVec[W](rng, s), randVec[W](rng, s)
		sum := new(big.Int).Add(toBig(a), toBig(b))

		got := make([]W, s)
		overflow := Add(got, a, b)
		if !vecEqual(got, fromBig[W](sum, s)) {
			t.Fatalf("Add(%x, %x) = %x", a, b, got)
		}
		if overflow != (sum.Cmp(mod) >= 0) {
			t.Fatalf("Add(%x, %x) overflow = %v", a, b, overflow)
		}

		diff := new(big.Int).Sub(toBig(a), toBig(b))
		underflow := Sub(got, a, b)
		if !vecEqual(got, fromBig[W](diff, s)) {
			t.Fatalf("Sub(%x, %x) = %x", a, b, got)
		}
		if underflow != (diff.Sign() < 0) {
			t.Fatalf("Sub(%x, %x) underflow = %v", a, b, underflow)
		}

		doubled := clone(a)
		AddInPlace(doubled, doubled)
		if !vecEqual(doubled, fromBig[W](new(big.Int).Lsh(toBig(a), 1), s)) {
			t.Fatalf("AddInPlace(a, a) = %x", doubled)
		}
	}
}

func TestAddSub_MatchBig(t *testing.T) {
	t.Parallel()
	forEachWidth(t, addSubMatchesBig[uint8], addSubMatchesBig[uint16], addSubMatchesBig[uint32], addSubMatchesBig[uint64])
}

func mulMatchesBig[W Word](t *testing.T, rng *rand.Rand, s int) {
	for range trials {
		a, b, c := randVec[W](rng, s), randVec[W](rng, s), randVec[W](rng, s)
		want := fromBig[W](new(big.Int).Mul(toBig(a), toBig(b)), s)

		got := make([]W, s)
		Mul(got, a, b)
		if !vecEqual(got, want) {
			t.Fatalf("Mul(%x, %x) = %x, want %x", a, b, got, want)
		}

		inPlace := clone(a)
		MulInPlace(inPlace, b)
		if !vecEqual(inPlace, want) {
			t.Fatalf("MulInPlace(%x, %x) = %x, want %x", a, b, inPlace, want)
		}

		acc := clone(c)
		FMAdd(acc, a, b)
		sum := make([]W, s)
		Add(sum, c, want)
		if !vecEqual(acc, sum) {
			t.Fatalf("FMAdd(%x, %x, %x) = %x, want %x", c, a, b, acc, sum)
		}
	}
}

func TestMul_MatchBig(t *testing.T) {
	t.Parallel()
	forEachWidth(t, mulMatchesBig[uint8], mulMatchesBig[uint16], mulMatchesBig[uint32], mulMatchesBig[uint64])
}

func fusedMatchesBasic[W Word](t *testing.T, rng *rand.Rand, s int) {
	for range trials {
		acc, a, b, c := randVec[W](rng, s), randVec[W](rng, s), randVec[W](rng, s), randVec[W](rng, s)

		fused, basic := clone(acc), clone(acc)
		FM2InvAdd(fused, a, b)
		FM2InvAddBasic(basic, a, b)
		if !vecEqual(fused, basic) {
			t.Fatalf("FM2InvAdd(%x, %x, %x) = %x, basic %x", acc, a, b, fused, basic)
		}

		fused, basic = clone(acc), clone(acc)
		FM3InvAdd(fused, a, b, c)
		FM3InvAddBasic(basic, a, b, c)
		if !vecEqual(fused, basic) {
			t.Fatalf("FM3InvAdd(%x, %x, %x, %x) = %x, basic %x", acc, a, b, c, fused, basic)
		}

		prod := new(big.Int).Mul(toBig(a), toBig(b))
		prod.Mul(prod, toBig(c))
		want := fromBig[W](new(big.Int).Sub(toBig(acc), prod), s)
		if !vecEqual(fused, want) {
			t.Fatalf("FM3InvAdd = %x, want %x", fused, want)
		}
	}
}

func TestFused_MatchBasic(t *testing.T) {
	t.Parallel()
	forEachWidth(t, fusedMatchesBasic[uint8], fusedMatchesBasic[uint16], fusedMatchesBasic[uint32], fusedMatchesBasic[uint64])
}

// TestFM2InvAdd_AllOnes saturates every column so the three-word carry chain
// reaches its largest values.
func TestFM2InvAdd_AllOnes(t *testing.T) {
	t.Parallel()

	for _, s := range []int{2, 8, 64, 254, 255, 300} {
		t.Run(fmt.Sprintf("u8x%d", s), func(t *testing.T) {
			t.Parallel()
			ones := make([]uint8, s)
			Not(ones)
			fused := make([]uint8, s)
			FM2InvAdd(fused, ones, ones)
			basic := make([]uint8, s)
			FM2InvAddBasic(basic, ones, ones)
			if !vecEqual(fused, basic) {
				t.Errorf("FM2InvAdd(0, ~0, ~0) differs from basic at S=%d", s)
			}
		})
	}
}

func negateMatchesBig[W Word](t *testing.T, rng *rand.Rand, s int) {
	for range trials {
		a := randVec[W](rng, s)

		neg := clone(a)
		Negate(neg)
		if want := fromBig[W](new(big.Int).Neg(toBig(a)), s); !vecEqual(neg, want) {
			t.Fatalf("Negate(%x) = %x, want %x", a, neg, want)
		}

		acc := randVec[W](rng, s)
		viaInv := clone(acc)
		InvAdd(viaInv, a)
		viaSub := clone(acc)
		SubInPlace(viaSub, a)
		if !vecEqual(viaInv, viaSub) {
			t.Fatalf("InvAdd(%x, %x) = %x, want %x", acc, a, viaInv, viaSub)
		}
	}
}

func TestNegate_MatchBig(t *testing.T) {
	t.Parallel()
	forEachWidth(t, negateMatchesBig[uint8], negateMatchesBig[uint16], negateMatchesBig[uint32], negateMatchesBig[uint64])
}

func shiftsMatchBig[W Word](t *testing.T, rng *rand.Rand, s int) {
	total := Bits[W]() * uint(s)
	for range trials {
		a := randVec[W](rng, s)
		n := uint(rng.IntN(int(total) + 10))

		left := clone(a)
		Shl(left, n)
		if want := fromBig[W](new(big.Int).Lsh(toBig(a), n), s); !vecEqual(left, want) {
			t.Fatalf("Shl(%x, %d) = %x, want %x", a, n, left, want)
		}

		right := clone(a)
		Shr(right, n)
		if want := fromBig[W](new(big.Int).Rsh(toBig(a), n), s); !vecEqual(right, want) {
			t.Fatalf("Shr(%x, %d) = %x, want %x", a, n, right, want)
		}
	}
}

func TestShifts_MatchBig(t *testing.T) {
	t.Parallel()
	forEachWidth(t, shiftsMatchBig[uint8], shiftsMatchBig[uint16], shiftsMatchBig[uint32], shiftsMatchBig[uint64])
}

func TestShl_MatchesMulByPowerOfTwo(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 7))
	for n := uint(0); n < 64; n++ {
		a := randVec[uint16](rng, 4)
		pow := make([]uint16, 4)
		SetBit(pow, n)

		shifted := clone(a)
		Shl(shifted, n)
		product := make([]uint16, 4)
		Mul(product, a, pow)
		if !vecEqual(shifted, product) {
			t.Errorf("Shl(%x, %d) = %x, a*2^%d = %x", a, n, shifted, n, product)
		}
	}
}

func cmpMatchesBig[W Word](t *testing.T, rng *rand.Rand, s int) {
	for range trials {
		a, b := randVec[W](rng, s), randVec[W](rng, s)
		if rng.IntN(4) == 0 {
			b = clone(a)
		}
		want := toBig(a).Cmp(toBig(b))
		if got := Cmp(a, b); got != want {
			t.Fatalf("Cmp(%x, %x) = %d, want %d", a, b, got, want)
		}
		if GreaterEqual(a, b) != (want >= 0) {
			t.Fatalf("GreaterEqual(%x, %x) = %v", a, b, !(want >= 0))
		}
		if Greater(a, b) != (want > 0) {
			t.Fatalf("Greater(%x, %x) = %v", a, b, !(want > 0))
		}
		if got, want := BitLen(a), uint(toBig(a).BitLen()); got != want {
			t.Fatalf("BitLen(%x) = %d, want %d", a, got, want)
		}
	}
}

func TestCmp_MatchBig(t *testing.T) {
	t.Parallel()
	forEachWidth(t, cmpMatchesBig[uint8], cmpMatchesBig[uint16], cmpMatchesBig[uint32], cmpMatchesBig[uint64])
}

func TestCmp_ZeroEqualsZero(t *testing.T) {
	t.Parallel()

	z := make([]uint32, 3)
	if !GreaterEqual(z, z) {
		t.Error("GreaterEqual(0, 0) = false")
	}
	if Greater(z, z) {
		t.Error("Greater(0, 0) = true")
	}
	if BitLen(z) != 0 {
		t.Errorf("BitLen(0) = %d, want 0", BitLen(z))
	}
}

func TestSetBit(t *testing.T) {
	t.Parallel()

	v := make([]uint8, 2)
	SetBit(v, 0)
	SetBit(v, 9)
	SetBit(v, 16) // beyond the width
	if want := []uint8{0x02, 0x01}; !vecEqual(v, want) {
		t.Errorf("SetBit = %x, want %x", v, want)
	}
	if Bit(v, 9) != 1 || Bit(v, 8) != 0 || Bit(v, 40) != 0 {
		t.Errorf("Bit readback mismatch on %x", v)
	}
}

func quoRemMatchesBig[W Word](t *testing.T, rng *rand.Rand, s int) {
	for range trials {
		num, den := randVec[W](rng, s), randVec[W](rng, s)
		// Shorten the divisor half the time so quotients are non-trivial.
		if rng.IntN(2) == 0 {
			Shr(den, uint(rng.IntN(int(Bits[W]())*s)))
		}
		if IsZero(den) {
			den[s-1] = 1
		}

		q, r := make([]W, s), make([]W, s)
		QuoRem(q, r, num, den)

		wantQ, wantR := new(big.Int).QuoRem(toBig(num), toBig(den), new(big.Int))
		if !vecEqual(q, fromBig[W](wantQ, s)) || !vecEqual(r, fromBig[W](wantR, s)) {
			t.Fatalf("QuoRem(%x, %x) = (%x, %x), want (%s, %s)", num, den, q, r, wantQ.Text(16), wantR.Text(16))
		}
	}
}

func TestQuoRem_MatchBig(t *testing.T) {
	t.Parallel()
	forEachWidth(t, quoRemMatchesBig[uint8], quoRemMatchesBig[uint16], quoRemMatchesBig[uint32], quoRemMatchesBig[uint64])
}

func TestQuoRem_MatchesSlow(t *testing.T) {
	t.Parallel()

	for n := uint16(0); n < 600; n += 7 {
		for d := uint16(1); d < 40; d++ {
			num := []uint8{uint8(n >> 8), uint8(n)}
			den := []uint8{uint8(d >> 8), uint8(d)}

			q, r := make([]uint8, 2), make([]uint8, 2)
			QuoRem(q, r, num, den)
			qs, rs := make([]uint8, 2), make([]uint8, 2)
			QuoRemSlow(qs, rs, num, den)

			if !vecEqual(q, qs) || !vecEqual(r, rs) {
				t.Fatalf("%d / %d: QuoRem (%x, %x), slow (%x, %x)", n, d, q, r, qs, rs)
			}
		}
	}
}

func TestQuoRem_RemainderAliasesNumerator(t *testing.T) {
	t.Parallel()

	num := []uint32{0, 0, 1000}
	q := make([]uint32, 3)
	QuoRem(q, num, num, []uint32{0, 0, 7})
	if q[2] != 142 || num[2] != 6 {
		t.Errorf("1000 / 7 = (%d, %d), want (142, 6)", q[2], num[2])
	}
}

func TestMulWide(t *testing.T) {
	t.Parallel()

	if hi, lo := MulWide[uint8](0xff, 0xff); hi != 0xfe || lo != 0x01 {
		t.Errorf("MulWide[uint8] = (%x, %x)", hi, lo)
	}
	if hi, lo := MulWide[uint32](0xffffffff, 2); hi != 1 || lo != 0xfffffffe {
		t.Errorf("MulWide[uint32] = (%x, %x)", hi, lo)
	}
	if hi, lo := MulWide[uint64](1<<63, 4); hi != 2 || lo != 0 {
		t.Errorf("MulWide[uint64] = (%x, %x)", hi, lo)
	}
}

func TestPropagate_ReportsWrap(t *testing.T) {
	t.Parallel()

	v := []uint16{0xffff, 0xffff}
	if !PropagateAdd(v, 1, 1) {
		t.Error("PropagateAdd past index 0 should report overflow")
	}
	if !IsZero(v) {
		t.Errorf("v = %x, want zero", v)
	}
	if !PropagateSub(v, 1, 1) {
		t.Error("PropagateSub past index 0 should report underflow")
	}
	if v[0] != 0xffff || v[1] != 0xffff {
		t.Errorf("v = %x, want all ones", v)
	}
}
