// Package scalar provides Scalar, a fixed-width unsigned integer made of a
// constant number of machine words.
//
// The width of a Scalar is fixed when it is created and all arithmetic is
// modulo 2^N, where N is the word count times the word size. Methods follow
// the math/big receiver convention: z.Op(x, y) stores the result in z and
// returns z, so operations can be chained and intermediate values reused.
//
// A zero Scalar has no width; the first operation that stores into it adopts
// the width of its operands. Mixing Scalars of different widths is a
// programming error and panics.
package scalar

import (
	"fmt"

	"github.com/agbru/fixcalc/internal/arith"
)

// Scalar is a fixed-width unsigned integer. Word index 0 is the most
// significant. Copying a Scalar by value shares its storage; use Clone for an
// independent copy.
type Scalar[W arith.Word] struct {
	words []W
}

// New returns a zero Scalar of the given word count.
func New[W arith.Word](words int) *Scalar[W] {
	if words <= 0 {
		panic(fmt.Sprintf("scalar: invalid word count %d", words))
	}
	return &Scalar[W]{words: make([]W, words)}
}

// FromWord returns a Scalar of the given word count holding v in its least
// significant word.
func FromWord[W arith.Word](words int, v W) *Scalar[W] {
	z := New[W](words)
	z.words[words-1] = v
	return z
}

// FromWords returns a Scalar whose words are ws, most significant first. The
// word count is len(ws).
func FromWords[W arith.Word](ws ...W) *Scalar[W] {
	z := New[W](len(ws))
	copy(z.words, ws)
	return z
}

// Len returns the word count of z.
func (z *Scalar[W]) Len() int { return len(z.words) }

// Width returns the bit width N of z.
func (z *Scalar[W]) Width() uint { return uint(len(z.words)) * arith.Bits[W]() }

// Words returns a copy of the words of z, most significant first.
func (z *Scalar[W]) Words() []W {
	return append([]W(nil), z.words...)
}

// Word returns word i of z, where index 0 is the most significant.
func (z *Scalar[W]) Word(i int) W { return z.words[i] }

// Set sets z to x and returns z.
func (z *Scalar[W]) Set(x *Scalar[W]) *Scalar[W] {
	z.prepare(x)
	if !alias(z.words, x.words) {
		copy(z.words, x.words)
	}
	return z
}

// SetWord sets z to the single word v and returns z. z must already have a
// width.
func (z *Scalar[W]) SetWord(v W) *Scalar[W] {
	z.mustHaveWidth()
	arith.Clear(z.words)
	z.words[len(z.words)-1] = v
	return z
}

// Clone returns an independent copy of z.
func (z *Scalar[W]) Clone() *Scalar[W] {
	return &Scalar[W]{words: z.Words()}
}

// prepare gives z the width of x when z has none yet and panics when the
// widths of z and any operand disagree.
func (z *Scalar[W]) prepare(xs ...*Scalar[W]) {
	n := len(xs[0].words)
	for _, x := range xs[1:] {
		if len(x.words) != n {
			panic(fmt.Sprintf("scalar: width mismatch: %d vs %d words", n, len(x.words)))
		}
	}
	if z.words == nil {
		z.words = make([]W, n)
		return
	}
	if len(z.words) != n {
		panic(fmt.Sprintf("scalar: width mismatch: receiver has %d words, operand %d", len(z.words), n))
	}
}

func (z *Scalar[W]) mustHaveWidth() {
	if z.words == nil {
		panic("scalar: operation on a Scalar without width")
	}
}

// alias reports whether x and y share storage.
func alias[W arith.Word](x, y []W) bool {
	return len(x) > 0 && len(y) > 0 && &x[0] == &y[0]
}
