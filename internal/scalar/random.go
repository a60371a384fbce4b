package scalar

import (
	mrand "math/rand/v2"

	"github.com/agbru/fixcalc/internal/arith"
	"github.com/decred/dcrd/crypto/rand"
)

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks github.com/agbru/fixcalc/internal/scalar Source

// Source produces uniformly distributed 64-bit values. Randomize truncates
// each value to one word.
type Source interface {
	Uint64() uint64
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() uint64

// Uint64 calls f.
func (f SourceFunc) Uint64() uint64 { return f() }

// DefaultSource returns the process-wide cryptographically secure source. It
// is safe for concurrent use.
func DefaultSource() Source {
	return SourceFunc(rand.Uint64)
}

// NewPRNGSource returns an independent cryptographically secure source. It
// is not safe for concurrent use and is meant to be owned by one goroutine.
func NewPRNGSource() (Source, error) {
	p, err := rand.NewPRNG()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// NewSeededSource returns a deterministic source for reproducible runs.
func NewSeededSource(seed uint64) Source {
	return mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Randomize fills every word of z independently from src and returns z. z
// must already have a width.
func (z *Scalar[W]) Randomize(src Source) *Scalar[W] {
	z.mustHaveWidth()
	for i := range z.words {
		z.words[i] = W(src.Uint64())
	}
	return z
}

// Random returns a new Scalar of the given word count filled from src.
func Random[W arith.Word](words int, src Source) *Scalar[W] {
	return New[W](words).Randomize(src)
}
