package rpncalc

import (
	"fmt"

	"github.com/robbyt/go-rpncalc/data"
	"github.com/robbyt/go-rpncalc/numeric"
	"github.com/robbyt/go-rpncalc/rpn"
)

// Evaluator wraps the core stack machine for one numeric type and adds
// the calling-convention sugar. This allows callers to follow the
// "resolve once, evaluate many times" pattern: construction resolves
// the numeric operation table, each Evaluate* call is then a single
// pass over the expression.
type Evaluator[N numeric.Number] struct {
	delegate *rpn.Evaluator[N]
}

// New creates an Evaluator for the numeric type N. Membership in the
// supported set is checked here: out-of-set types fail with
// ErrUnsupportedType before any expression is accepted.
func New[N numeric.Number](opts ...FunctionalOption) (*Evaluator[N], error) {
	// Initialize with defaults
	cfg := &Options{}
	ApplyDefaults(cfg)

	// Apply all options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	delegate, err := rpn.New[N](cfg.handler())
	if err != nil {
		return nil, err
	}

	return &Evaluator[N]{delegate: delegate}, nil
}

func (e *Evaluator[N]) String() string {
	return e.delegate.String()
}

// Kind returns the numeric kind the evaluator was instantiated for.
func (e *Evaluator[N]) Kind() numeric.Kind {
	return e.delegate.Kind()
}

// Evaluate computes a literal-only expression.
func (e *Evaluator[N]) Evaluate(expr string) (N, error) {
	return e.delegate.Evaluate(expr, nil)
}

// EvaluateNamed computes expr with named substitutions. A key repeated
// across the pairs fails with ErrDuplicateKey.
func (e *Evaluator[N]) EvaluateNamed(expr string, subs ...data.Pair[N]) (N, error) {
	return e.delegate.Evaluate(expr, data.Pairs(subs...))
}

// EvaluatePositional computes expr with the values bound to the keys
// "0", "1", ... in argument order.
func (e *Evaluator[N]) EvaluatePositional(expr string, values ...N) (N, error) {
	return e.delegate.Evaluate(expr, data.Values(values...))
}

// EvaluateWith computes expr with substitutions from any provider, such
// as data.FromMap or data.Composite.
func (e *Evaluator[N]) EvaluateWith(expr string, provider data.Provider[N]) (N, error) {
	return e.delegate.Evaluate(expr, provider)
}

// Calculate evaluates a literal-only expression with the default
// configuration. For repeated evaluations of the same numeric type,
// create an Evaluator with New and reuse it.
func Calculate[N numeric.Number](expr string) (N, error) {
	return calculate[N](expr, nil)
}

// CalculateNamed evaluates expr with named substitutions.
func CalculateNamed[N numeric.Number](expr string, subs ...data.Pair[N]) (N, error) {
	return calculate[N](expr, data.Pairs(subs...))
}

// CalculatePositional evaluates expr with positional substitutions.
func CalculatePositional[N numeric.Number](expr string, values ...N) (N, error) {
	return calculate[N](expr, data.Values(values...))
}

// calculate is the shared one-shot path behind the Calculate functions.
func calculate[N numeric.Number](expr string, provider data.Provider[N]) (N, error) {
	evaluator, err := New[N]()
	if err != nil {
		var zero N
		return zero, err
	}
	return evaluator.EvaluateWith(expr, provider)
}
