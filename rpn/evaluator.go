package rpn

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-rpncalc/data"
	"github.com/robbyt/go-rpncalc/internal/helpers"
	"github.com/robbyt/go-rpncalc/numeric"
)

// Evaluator is the stack machine that reduces a space-separated RPN
// expression to a single value of type N. The numeric operation table
// is resolved once at construction; after that the evaluator is
// stateless between calls and safe for concurrent use, since all
// per-evaluation state lives on the call stack.
type Evaluator[N numeric.Number] struct {
	ops *numeric.Ops[N]

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates an Evaluator for the numeric type N, resolving and caching
// its operation table. Types outside the supported set fail here with
// numeric.ErrUnsupportedType, before any expression is accepted. A nil
// handler falls back to a default stderr handler.
func New[N numeric.Number](handler slog.Handler) (*Evaluator[N], error) {
	ops, err := numeric.Resolve[N]()
	if err != nil {
		return nil, err
	}

	handler, logger := helpers.SetupLogger(handler, "rpn", "Evaluator")
	return &Evaluator[N]{
		ops:        ops,
		logHandler: handler,
		logger:     logger,
	}, nil
}

func (e *Evaluator[N]) String() string {
	return fmt.Sprintf("rpn.Evaluator[%s]", e.ops.Kind)
}

// Kind returns the numeric kind this evaluator was instantiated for.
func (e *Evaluator[N]) Kind() numeric.Kind {
	return e.ops.Kind
}

// Ops exposes the evaluator's resolved operation table, so front ends
// can parse or compute values exactly the way the evaluator does.
func (e *Evaluator[N]) Ops() *numeric.Ops[N] {
	return e.ops
}

// loadBindings collects the substitution map from the provider. A nil
// provider means the expression uses literals only.
func (e *Evaluator[N]) loadBindings(provider data.Provider[N]) (map[string]N, error) {
	logger := e.logger.WithGroup("loadBindings")

	if provider == nil {
		logger.Debug("no substitution provider, literals only")
		return nil, nil
	}
	bindings, err := provider.Bindings()
	if err != nil {
		logger.Warn("failed to collect substitution bindings", "error", err)
		return nil, err
	}
	if len(bindings) == 0 {
		logger.Warn("provider returned no substitution bindings")
	}
	logger.Debug("substitution bindings collected", "count", len(bindings))
	return bindings, nil
}

// Evaluate reduces expr to one value, with substitutions supplied by
// provider (nil for none). The walk is a single left-to-right pass:
// literals push onto the stack, operators pop the second operand, then
// the first, and push the operation's result. A well-formed expression
// leaves exactly one value on the stack.
func (e *Evaluator[N]) Evaluate(expr string, provider data.Provider[N]) (N, error) {
	logger := e.logger.WithGroup("Evaluate")
	var zero N

	bindings, err := e.loadBindings(provider)
	if err != nil {
		return zero, err
	}

	fields := tokenize(expr)
	if len(fields) == 0 {
		return zero, fmt.Errorf("%w: expression is empty", ErrMalformedExpression)
	}

	stack := make([]Token[N], 0, len(fields))
	for _, raw := range fields {
		token, err := newToken(raw, e.ops, bindings)
		if err != nil {
			return zero, err
		}

		if !token.IsOperator() {
			stack = append(stack, token)
			continue
		}

		if len(stack) < 2 {
			return zero, fmt.Errorf("%w: operator %q needs two operands, have %d",
				ErrMalformedExpression, raw, len(stack))
		}
		second := stack[len(stack)-1]
		first := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		result, err := token.Operate(first, second)
		if err != nil {
			return zero, err
		}
		stack = append(stack, result)
	}

	if len(stack) != 1 {
		return zero, fmt.Errorf("%w: %d operands left after evaluation",
			ErrMalformedExpression, len(stack))
	}

	result := stack[0].Value()
	logger.Debug("evaluation complete", "expr", expr, "result", stack[0].String())
	return result, nil
}
