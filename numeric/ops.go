package numeric

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Ops is the operation table for one supported numeric type. It decouples
// the evaluator from the concrete arithmetic: the evaluator only ever
// calls through this table, so adding a numeric type is a matter of
// building a new table, not touching the stack machine.
//
// Arithmetic follows the native semantics of the underlying type.
// Integer kinds wrap on overflow (two's complement) and truncate on
// division. Float kinds follow IEEE-754, so dividing by zero produces an
// infinity or NaN rather than an error. Decimal is exact for addition,
// subtraction and multiplication, and rounds division to
// decimal.DivisionPrecision digits.
type Ops[N Number] struct {
	// Kind identifies the concrete type this table was resolved for.
	Kind Kind

	// Add, Sub, Mul and Div apply one arithmetic operation to two
	// operands in order. Only Div can fail, and only for integer and
	// decimal kinds.
	Add func(a, b N) (N, error)
	Sub func(a, b N) (N, error)
	Mul func(a, b N) (N, error)
	Div func(a, b N) (N, error)

	// Parse converts a token to a value of N using the type's native
	// literal syntax, reporting ok=false when the token is not a valid
	// literal for this kind.
	Parse func(s string) (N, bool)
}

func (o *Ops[N]) String() string {
	return "numeric.Ops[" + string(o.Kind) + "]"
}

// integerOps builds the table shared by the signed and unsigned integer
// kinds. Division guards the zero divisor; the other operations keep
// Go's wraparound semantics untouched.
func integerOps[N constraints.Integer](kind Kind, parse func(string) (N, bool)) *Ops[N] {
	return &Ops[N]{
		Kind: kind,
		Add:  func(a, b N) (N, error) { return a + b, nil },
		Sub:  func(a, b N) (N, error) { return a - b, nil },
		Mul:  func(a, b N) (N, error) { return a * b, nil },
		Div: func(a, b N) (N, error) {
			if b == 0 {
				var zero N
				return zero, ErrDivisionByZero
			}
			return a / b, nil
		},
		Parse: parse,
	}
}

// parseSigned returns a Parse function for a signed integer kind of the
// given bit size.
func parseSigned[N constraints.Signed](bitSize int) func(string) (N, bool) {
	return func(s string) (N, bool) {
		v, err := strconv.ParseInt(s, 10, bitSize)
		return N(v), err == nil
	}
}

// parseUnsigned returns a Parse function for an unsigned integer kind of
// the given bit size.
func parseUnsigned[N constraints.Unsigned](bitSize int) func(string) (N, bool) {
	return func(s string) (N, bool) {
		v, err := strconv.ParseUint(s, 10, bitSize)
		return N(v), err == nil
	}
}

// floatOps builds the table for the float kinds. No operation can fail:
// division by zero follows IEEE-754 and produces ±Inf or NaN.
func floatOps[N constraints.Float](kind Kind, bitSize int) *Ops[N] {
	return &Ops[N]{
		Kind: kind,
		Add:  func(a, b N) (N, error) { return a + b, nil },
		Sub:  func(a, b N) (N, error) { return a - b, nil },
		Mul:  func(a, b N) (N, error) { return a * b, nil },
		Div:  func(a, b N) (N, error) { return a / b, nil },
		Parse: func(s string) (N, bool) {
			v, err := strconv.ParseFloat(s, bitSize)
			return N(v), err == nil
		},
	}
}

// decimalOps builds the table for shopspring decimals. The zero divisor
// is guarded here because decimal.Div panics on it.
func decimalOps() *Ops[decimal.Decimal] {
	return &Ops[decimal.Decimal]{
		Kind: Decimal,
		Add: func(a, b decimal.Decimal) (decimal.Decimal, error) {
			return a.Add(b), nil
		},
		Sub: func(a, b decimal.Decimal) (decimal.Decimal, error) {
			return a.Sub(b), nil
		},
		Mul: func(a, b decimal.Decimal) (decimal.Decimal, error) {
			return a.Mul(b), nil
		},
		Div: func(a, b decimal.Decimal) (decimal.Decimal, error) {
			if b.IsZero() {
				return decimal.Decimal{}, ErrDivisionByZero
			}
			return a.Div(b), nil
		},
		Parse: func(s string) (decimal.Decimal, bool) {
			v, err := decimal.NewFromString(s)
			return v, err == nil
		},
	}
}
