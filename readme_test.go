package rpncalc_test

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-rpncalc"
	"github.com/robbyt/go-rpncalc/data"
)

func TestReadmeQuickStart(t *testing.T) {
	t.Parallel()

	result, err := rpncalc.Calculate[int64]("5 1 2 + 4 * + 3 -")
	require.NoError(t, err, "Should evaluate successfully")
	assert.Equal(t, int64(14), result, "Result should be 14")
}

func TestReadmeReusingAnEvaluator(t *testing.T) {
	t.Parallel()

	calc, err := rpncalc.New[float64]()
	require.NoError(t, err, "Should create evaluator successfully")

	want := []float64{3, 12, 2.5}
	for i, expr := range []string{"1 2 +", "3 4 *", "10 4 /"} {
		result, err := calc.Evaluate(expr)
		require.NoError(t, err, "Should evaluate %q successfully", expr)
		assert.Equal(t, want[i], result)
	}
}

func TestReadmeSubstitutions(t *testing.T) {
	t.Parallel()

	calc, err := rpncalc.New[float64]()
	require.NoError(t, err, "Should create evaluator successfully")

	named, err := calc.EvaluateNamed("price quantity *",
		data.P("price", 19.99),
		data.P("quantity", 3.0),
	)
	require.NoError(t, err, "Should evaluate named substitutions")
	assert.InDelta(t, 59.97, named, 1e-9)

	positional, err := calc.EvaluatePositional("0 1 *", 19.99, 3.0)
	require.NoError(t, err, "Should evaluate positional substitutions")
	assert.Equal(t, named, positional, "Both conventions should agree")

	_, err = calc.EvaluateNamed("x 1 +",
		data.P("x", 1.0),
		data.P("x", 2.0),
	)
	assert.ErrorIs(t, err, rpncalc.ErrDuplicateKey, "Duplicate keys should fail")
}

func TestReadmeCombinedProviders(t *testing.T) {
	t.Parallel()

	calc, err := rpncalc.New[int64]()
	require.NoError(t, err, "Should create evaluator successfully")

	provider := data.Composite[int64](
		data.FromMap(map[string]int64{"rate": 50}),
		data.Values(int64(3)),
	)

	result, err := calc.EvaluateWith("rate 0 *", provider)
	require.NoError(t, err, "Should evaluate with the composite provider")
	assert.Equal(t, int64(150), result)
}

func TestReadmeNumericSemantics(t *testing.T) {
	t.Parallel()

	wrapped, err := rpncalc.Calculate[uint32]("3 4 -")
	require.NoError(t, err, "Unsigned borrow should wrap, not fail")
	assert.Equal(t, uint32(4294967295), wrapped)

	inf, err := rpncalc.Calculate[float64]("1 0 /")
	require.NoError(t, err, "Float division by zero should not fail")
	assert.True(t, math.IsInf(inf, 1), "Result should be +Inf")

	exact, err := rpncalc.Calculate[decimal.Decimal]("0.1 0.2 +")
	require.NoError(t, err, "Decimal evaluation should succeed")
	assert.True(t, exact.Equal(decimal.RequireFromString("0.3")),
		"Decimal addition should be exact")
}

func TestReadmeErrorHandling(t *testing.T) {
	t.Parallel()

	_, err := rpncalc.Calculate[int64]("1 0 /")
	require.Error(t, err)
	assert.True(t, errors.Is(err, rpncalc.ErrDivisionByZero),
		"Error should be matchable with errors.Is")
}

func TestReadmeLogging(t *testing.T) {
	t.Parallel()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	calc, err := rpncalc.New[int64](rpncalc.WithLogHandler(handler))
	require.NoError(t, err, "Should create evaluator with a custom handler")

	result, err := calc.Evaluate("3 4 +")
	require.NoError(t, err)
	assert.Equal(t, int64(7), result)
}
