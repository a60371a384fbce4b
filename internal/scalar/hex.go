package scalar

import (
	"strconv"
	"strings"

	"github.com/agbru/fixcalc/internal/arith"
	apperrors "github.com/agbru/fixcalc/internal/errors"
)

// Parse decodes a hexadecimal string into a Scalar of the given word count.
//
// A single group of digits, optionally prefixed with 0x, is read as one
// number and right-aligned; leading zeros beyond the width are accepted but
// any other excess is an error. Two or more whitespace-separated groups are
// read as one word each, most significant first, and fill the value from its
// least significant word.
func Parse[W arith.Word](words int, s string) (*Scalar[W], error) {
	z := New[W](words)
	groups := strings.Fields(s)
	switch len(groups) {
	case 0:
		return nil, apperrors.ParseError{Input: s, Group: -1, Reason: "empty input"}
	case 1:
		if err := z.parseNumber(s, groups[0]); err != nil {
			return nil, err
		}
	default:
		if err := z.parseGroups(s, groups); err != nil {
			return nil, err
		}
	}
	return z, nil
}

func (z *Scalar[W]) parseNumber(input, g string) error {
	digits := digitsPerWord[W]()
	if len(g) > 2 && (g[:2] == "0x" || g[:2] == "0X") {
		g = g[2:]
	}
	trimmed := strings.TrimLeft(g, "0")
	if len(trimmed) > digits*len(z.words) {
		return apperrors.ParseError{Input: input, Group: 0, Reason: "value exceeds " + strconv.FormatUint(uint64(z.Width()), 10) + " bits"}
	}

	i := len(z.words) - 1
	for end := len(g); end > 0 && i >= 0; end -= digits {
		start := max(end-digits, 0)
		w, err := strconv.ParseUint(g[start:end], 16, int(arith.Bits[W]()))
		if err != nil {
			return apperrors.ParseError{Input: input, Group: 0, Reason: "invalid hex digits " + strconv.Quote(g[start:end])}
		}
		z.words[i] = W(w)
		i--
	}
	// Digits left over past the top word can only be leading zeros here, but
	// they still need to be valid hex.
	if i < 0 {
		rest := g[:max(len(g)-digits*len(z.words), 0)]
		if strings.Trim(rest, "0") != "" {
			return apperrors.ParseError{Input: input, Group: 0, Reason: "invalid hex digits " + strconv.Quote(rest)}
		}
	}
	return nil
}

func (z *Scalar[W]) parseGroups(input string, groups []string) error {
	if len(groups) > len(z.words) {
		return apperrors.ParseError{Input: input, Group: -1, Reason: "too many groups for " + strconv.Itoa(len(z.words)) + " words"}
	}
	offset := len(z.words) - len(groups)
	for i, g := range groups {
		if len(g) > digitsPerWord[W]() {
			return apperrors.ParseError{Input: input, Group: i, Reason: "group wider than one word"}
		}
		w, err := strconv.ParseUint(g, 16, int(arith.Bits[W]()))
		if err != nil {
			return apperrors.ParseError{Input: input, Group: i, Reason: "invalid hex digits " + strconv.Quote(g)}
		}
		z.words[offset+i] = W(w)
	}
	return nil
}

// String renders z word by word, most significant first, each word zero
// padded and separated by a space. The output parses back with Parse.
func (z *Scalar[W]) String() string {
	var b strings.Builder
	for i, w := range z.words {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeWord(&b, w)
	}
	return b.String()
}

// Hex renders z as one contiguous zero-padded run of hex digits.
func (z *Scalar[W]) Hex() string {
	var b strings.Builder
	b.Grow(len(z.words) * digitsPerWord[W]())
	for _, w := range z.words {
		writeWord(&b, w)
	}
	return b.String()
}

func writeWord[W arith.Word](b *strings.Builder, w W) {
	s := strconv.FormatUint(uint64(w), 16)
	for range digitsPerWord[W]() - len(s) {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

func digitsPerWord[W arith.Word]() int {
	return int(arith.Bits[W]() / 4)
}
