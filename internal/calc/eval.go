package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agbru/fixcalc/internal/arith"
	apperrors "github.com/agbru/fixcalc/internal/errors"
	"github.com/agbru/fixcalc/internal/scalar"
)

// Kind tells how a Result is rendered.
type Kind int

const (
	KindScalar Kind = iota
	KindBool
	KindInt
)

// Result is the outcome of one evaluated expression.
type Result struct {
	Kind Kind
	// Value is the grouped hex rendering for KindScalar, "true" or "false"
	// for KindBool and a decimal number for KindInt.
	Value string
	// Hex is the contiguous hex rendering for KindScalar.
	Hex string
	// Carry reports a carry out of + or a borrow out of -.
	Carry bool
}

// String returns Value, flagged when the operation wrapped.
func (r Result) String() string {
	if r.Carry {
		return r.Value + " (wrapped)"
	}
	return r.Value
}

// Operators lists every operator Eval accepts, grouped by arity.
var Operators = struct {
	Unary, Binary, Fused []string
}{
	Unary:  []string{"~", "neg", "inc", "inv", "bitlen"},
	Binary: []string{"+", "-", "*", "/", "%", "<<", ">>", "==", "!=", "<", "<=", ">", ">="},
	Fused:  []string{"fma", "fms", "fms3"},
}

// fusedArity is the number of operands each fused operator takes.
var fusedArity = map[string]int{"fma": 3, "fms": 3, "fms3": 4}

func badExpression(tokens []string, format string, a ...any) error {
	return fmt.Errorf("%w: %q: %s", apperrors.ErrBadExpression, strings.Join(tokens, " "), fmt.Sprintf(format, a...))
}

func (e *engine[W]) Eval(tokens ...string) (Result, error) {
	if len(tokens) == 0 {
		return Result{}, badExpression(tokens, "empty expression")
	}
	op := strings.ToLower(tokens[0])
	if n, ok := fusedArity[op]; ok {
		if len(tokens) != n+1 {
			return Result{}, badExpression(tokens, "%s takes %d operands", op, n)
		}
		return e.evalFused(op, tokens[1:])
	}
	switch len(tokens) {
	case 1:
		x, err := e.parse(tokens[0])
		if err != nil {
			return Result{}, err
		}
		return scalarResult(x, false), nil
	case 2:
		return e.evalUnary(tokens, op, tokens[1])
	case 3:
		return e.evalBinary(tokens, tokens[0], tokens[1], tokens[2])
	}
	return Result{}, badExpression(tokens, "too many tokens")
}

func (e *engine[W]) evalUnary(tokens []string, op, a string) (Result, error) {
	x, err := e.parse(a)
	if err != nil {
		return Result{}, err
	}
	z := new(scalar.Scalar[W])
	switch op {
	case "~":
		z.Not(x)
	case "neg":
		z.Neg(x)
	case "inc":
		z.Inc(x)
	case "inv":
		if _, err := z.ModInverse(x); err != nil {
			return Result{}, err
		}
	case "bitlen":
		return Result{Kind: KindInt, Value: strconv.Itoa(x.BitLen())}, nil
	default:
		return Result{}, badExpression(tokens, "unknown unary operator %q", op)
	}
	return scalarResult(z, false), nil
}

func (e *engine[W]) evalBinary(tokens []string, a, op, b string) (Result, error) {
	x, err := e.parse(a)
	if err != nil {
		return Result{}, err
	}
	if op == "<<" || op == ">>" {
		n, err := strconv.ParseUint(b, 0, 32)
		if err != nil {
			return Result{}, badExpression(tokens, "shift count %q is not a number", b)
		}
		z := new(scalar.Scalar[W])
		if op == "<<" {
			return scalarResult(z.Lsh(x, uint(n)), false), nil
		}
		return scalarResult(z.Rsh(x, uint(n)), false), nil
	}

	y, err := e.parse(b)
	if err != nil {
		return Result{}, err
	}
	z := new(scalar.Scalar[W])
	switch op {
	case "+":
		_, carry := z.AddOverflow(x, y)
		return scalarResult(z, carry), nil
	case "-":
		_, borrow := z.SubUnderflow(x, y)
		return scalarResult(z, borrow), nil
	case "*":
		return scalarResult(z.Mul(x, y), false), nil
	case "/":
		if _, err := z.Quo(x, y); err != nil {
			return Result{}, err
		}
		return scalarResult(z, false), nil
	case "%":
		if _, err := z.Rem(x, y); err != nil {
			return Result{}, err
		}
		return scalarResult(z, false), nil
	case "==":
		return boolResult(x.Eq(y)), nil
	case "!=":
		return boolResult(!x.Eq(y)), nil
	case "<":
		return boolResult(x.Lt(y)), nil
	case "<=":
		return boolResult(x.LtEq(y)), nil
	case ">":
		return boolResult(x.Gt(y)), nil
	case ">=":
		return boolResult(x.GtEq(y)), nil
	}
	return Result{}, badExpression(tokens, "unknown operator %q", op)
}

// evalFused computes fma (A + B*C), fms (A - B*C) and fms3 (A - B*C*D).
func (e *engine[W]) evalFused(op string, operands []string) (Result, error) {
	xs := make([]*scalar.Scalar[W], len(operands))
	for i, s := range operands {
		x, err := e.parse(s)
		if err != nil {
			return Result{}, apperrors.WrapError(err, "%s operand %d", op, i+1)
		}
		xs[i] = x
	}
	z := xs[0]
	switch op {
	case "fma":
		z.FMAdd(xs[1], xs[2])
	case "fms":
		z.FM2InvAdd(xs[1], xs[2])
	case "fms3":
		z.FM3InvAdd(xs[1], xs[2], xs[3])
	}
	return scalarResult(z, false), nil
}

func scalarResult[W arith.Word](x *scalar.Scalar[W], carry bool) Result {
	return Result{Kind: KindScalar, Value: x.String(), Hex: x.Hex(), Carry: carry}
}

func boolResult(b bool) Result {
	return Result{Kind: KindBool, Value: strconv.FormatBool(b)}
}
