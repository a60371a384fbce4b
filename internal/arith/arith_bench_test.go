package arith

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func BenchmarkMul(b *testing.B) {
	for _, s := range []int{4, 16, 64} {
		b.Run(fmt.Sprintf("u64x%d", s), func(b *testing.B) {
			rng := rand.New(rand.NewPCG(1, 2))
			x, y, dst := randVec[uint64](rng, s), randVec[uint64](rng, s), make([]uint64, s)
			b.ResetTimer()
			for range b.N {
				Mul(dst, x, y)
			}
		})
	}
}

func BenchmarkFM2InvAdd(b *testing.B) {
	for _, s := range []int{4, 16, 64} {
		rng := rand.New(rand.NewPCG(3, 4))
		x, y, acc := randVec[uint64](rng, s), randVec[uint64](rng, s), randVec[uint64](rng, s)

		b.Run(fmt.Sprintf("fused/u64x%d", s), func(b *testing.B) {
			for range b.N {
				FM2InvAdd(acc, x, y)
			}
		})
		b.Run(fmt.Sprintf("basic/u64x%d", s), func(b *testing.B) {
			for range b.N {
				FM2InvAddBasic(acc, x, y)
			}
		})
	}
}

func BenchmarkQuoRem(b *testing.B) {
	rng := rand.New(rand.NewPCG(5, 6))
	num, den := randVec[uint64](rng, 4), randVec[uint64](rng, 4)
	Shr(den, 130)
	q, r := make([]uint64, 4), make([]uint64, 4)
	b.ResetTimer()
	for range b.N {
		QuoRem(q, r, num, den)
	}
}
