package arith

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"testing"
)

// toBig interprets v as an unsigned integer, index 0 most significant.
func toBig[W Word](v []W) *big.Int {
	x := new(big.Int)
	w := Bits[W]()
	for _, word := range v {
		x.Lsh(x, w)
		x.Or(x, new(big.Int).SetUint64(uint64(word)))
	}
	return x
}

// fromBig reduces x modulo 2^N and stores it into a fresh vector of s words.
func fromBig[W Word](x *big.Int, s int) []W {
	w := Bits[W]()
	mod := new(big.Int).Lsh(big.NewInt(1), w*uint(s))
	r := new(big.Int).Mod(x, mod)
	mask := new(big.Int).SetUint64(uint64(^W(0)))

	v := make([]W, s)
	for i := s - 1; i >= 0; i-- {
		v[i] = W(new(big.Int).And(r, mask).Uint64())
		r.Rsh(r, w)
	}
	return v
}

func modulus[W Word](s int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), Bits[W]()*uint(s))
}

func randVec[W Word](rng *rand.Rand, s int) []W {
	v := make([]W, s)
	for i := range v {
		v[i] = W(rng.Uint64())
	}
	return v
}

func vecEqual[W Word](a, b []W) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func clone[W Word](v []W) []W {
	return append([]W(nil), v...)
}

// widths lists the word counts exercised for every word type.
var widths = []int{1, 2, 3, 4, 8, 16}

var wordKinds = []string{"u8", "u16", "u32", "u64"}

// widthCase is one generic check instantiated for a single word type.
type widthCase func(t *testing.T, rng *rand.Rand, s int)

// forEachWidth runs the instantiations of a check, given in the order
// uint8, uint16, uint32, uint64, as subtests for every word count.
func forEachWidth(t *testing.T, cases ...widthCase) {
	t.Helper()
	for i, fn := range cases {
		for _, s := range widths {
			t.Run(fmt.Sprintf("%sx%d", wordKinds[i], s), func(t *testing.T) {
				t.Parallel()
				rng := rand.New(rand.NewPCG(uint64(s), uint64(i)+0x5eed))
				fn(t, rng, s)
			})
		}
	}
}

const trials = 200
