// Package rpncalc evaluates arithmetic expressions written in reverse
// Polish notation, generically over a caller-chosen numeric type.
//
// An expression is a string of tokens separated by ASCII spaces, such
// as "3 4 +". Tokens are the four operators (+, -, *, /), substitution
// keys bound at call time, and numeric literals in the chosen type's
// native syntax. Evaluation is a single left-to-right pass over a
// stack: literals push, operators pop two operands and push the result.
//
// The supported numeric types are the fixed-width integers int16,
// int32, int64, uint16, uint32 and uint64, the floats float32 and
// float64, and shopspring's decimal.Decimal. Arithmetic keeps each
// type's native semantics: integers wrap on overflow and fail on
// division by zero, floats follow IEEE-754 (division by zero yields an
// infinity or NaN), and decimals are exact until division rounds.
//
// One-shot helpers cover casual use:
//
//	sum, err := rpncalc.Calculate[int64]("3 4 +")
//
// For repeated evaluations, construct an Evaluator once and reuse it;
// substitutions can be named or positional:
//
//	calc, err := rpncalc.New[float64]()
//	area, err := calc.EvaluateNamed("w h *",
//		data.P("w", 3.5), data.P("h", 2.0))
//	same, err := calc.EvaluatePositional("0 1 *", 3.5, 2.0)
package rpncalc
