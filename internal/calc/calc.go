// Package calc exposes the fixed-width engine at the string level used by the
// command line and the REPL. An Engine is bound to one word type and word
// count; New selects the instantiation.
package calc

import (
	"fmt"

	"github.com/agbru/fixcalc/internal/arith"
	apperrors "github.com/agbru/fixcalc/internal/errors"
	"github.com/agbru/fixcalc/internal/scalar"
)

// Engine evaluates expressions over scalars of one fixed width. Operands and
// results are hex strings in the scalar package's notation.
type Engine interface {
	// Describe reports the width the engine operates on.
	Describe() Description
	// Eval evaluates one expression given as tokens: "A op B", "op A", or a
	// fused form "fma A B C", "fms A B C", "fms3 A B C D".
	Eval(tokens ...string) (Result, error)
	// Normalize parses s and renders it back in canonical grouped form.
	Normalize(s string) (string, error)
	// Inverse returns the multiplicative inverse of s modulo 2^N.
	Inverse(s string) (string, error)
	// Random returns a uniformly random scalar drawn from src.
	Random(src scalar.Source) string
	// Checks returns the fused-vs-reference checks run by the bench command.
	Checks() []Check
}

// Description is the width of an engine.
type Description struct {
	WordBits uint
	Words    int
}

// Bits returns the total width N.
func (d Description) Bits() uint { return d.WordBits * uint(d.Words) }

// String renders the width as "64x4 (256 bits)".
func (d Description) String() string {
	return fmt.Sprintf("%dx%d (%d bits)", d.WordBits, d.Words, d.Bits())
}

// New returns an engine for words words of wordBits bits each.
func New(wordBits, words int) (Engine, error) {
	if words <= 0 {
		return nil, apperrors.ValidationError{Field: "words", Message: fmt.Sprintf("must be positive, got %d", words)}
	}
	switch wordBits {
	case 8:
		return newEngine[uint8](words), nil
	case 16:
		return newEngine[uint16](words), nil
	case 32:
		return newEngine[uint32](words), nil
	case 64:
		return newEngine[uint64](words), nil
	default:
		return nil, apperrors.ValidationError{Field: "word", Message: fmt.Sprintf("unsupported word size %d", wordBits)}
	}
}

type engine[W arith.Word] struct {
	words int
}

func newEngine[W arith.Word](words int) *engine[W] {
	return &engine[W]{words: words}
}

func (e *engine[W]) Describe() Description {
	return Description{WordBits: arith.Bits[W](), Words: e.words}
}

func (e *engine[W]) parse(s string) (*scalar.Scalar[W], error) {
	return scalar.Parse[W](e.words, s)
}

func (e *engine[W]) Normalize(s string) (string, error) {
	x, err := e.parse(s)
	if err != nil {
		return "", err
	}
	return x.String(), nil
}

func (e *engine[W]) Inverse(s string) (string, error) {
	x, err := e.parse(s)
	if err != nil {
		return "", err
	}
	inv, err := new(scalar.Scalar[W]).ModInverse(x)
	if err != nil {
		return "", err
	}
	return inv.String(), nil
}

func (e *engine[W]) Random(src scalar.Source) string {
	return scalar.Random[W](e.words, src).String()
}
