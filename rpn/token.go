package rpn

import (
	"fmt"

	"github.com/robbyt/go-rpncalc/numeric"
)

// Operator is one of the four arithmetic operator symbols.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

// tokenKind discriminates the Token variants.
type tokenKind int

const (
	kindInvalid tokenKind = iota
	kindOperator
	kindLiteral
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=kind

// Token is one unit of an RPN expression: an operator symbol or a
// numeric literal. Tokens are immutable values; the zero Token is
// invalid and only produced alongside an error.
type Token[N numeric.Number] struct {
	kind tokenKind
	op   Operator
	fn   func(a, b N) (N, error)
	val  N
}

// newToken classifies one raw field of an expression. Resolution order
// is fixed: operator symbols first, then the substitution bindings, then
// the kind's literal syntax. A binding can therefore shadow a literal
// spelling ("0", "1", ...) but never an operator symbol.
func newToken[N numeric.Number](raw string, ops *numeric.Ops[N], bindings map[string]N) (Token[N], error) {
	switch op := Operator(raw); op {
	case OpAdd:
		return Token[N]{kind: kindOperator, op: op, fn: ops.Add}, nil
	case OpSubtract:
		return Token[N]{kind: kindOperator, op: op, fn: ops.Sub}, nil
	case OpMultiply:
		return Token[N]{kind: kindOperator, op: op, fn: ops.Mul}, nil
	case OpDivide:
		return Token[N]{kind: kindOperator, op: op, fn: ops.Div}, nil
	}

	if v, exists := bindings[raw]; exists {
		return Token[N]{kind: kindLiteral, val: v}, nil
	}

	if v, ok := ops.Parse(raw); ok {
		return Token[N]{kind: kindLiteral, val: v}, nil
	}

	return Token[N]{}, fmt.Errorf("%w: %q", ErrBadToken, raw)
}

// IsOperator reports whether the token is an operator.
func (t Token[N]) IsOperator() bool {
	return t.kind == kindOperator
}

// Value returns the literal's value; the zero value for operators.
func (t Token[N]) Value() N {
	return t.val
}

func (t Token[N]) String() string {
	switch t.kind {
	case kindOperator:
		return string(t.op)
	case kindLiteral:
		return fmt.Sprint(t.val)
	default:
		return t.kind.String()
	}
}

// Operate applies the token's operator to two literal operands, first
// being the one that entered the stack earlier, and returns the result
// as a new literal token. Arithmetic failures pass through from the
// operation table unmodified.
//
// Calling Operate on a non-operator token is a programming error and
// panics.
func (t Token[N]) Operate(first, second Token[N]) (Token[N], error) {
	if t.kind != kindOperator {
		panic("rpn: Operate called on non-operator token")
	}
	v, err := t.fn(first.val, second.val)
	if err != nil {
		return Token[N]{}, err
	}
	return Token[N]{kind: kindLiteral, val: v}, nil
}
