package rpncalc_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/robbyt/go-rpncalc"
	"github.com/robbyt/go-rpncalc/data"
)

func ExampleCalculate() {
	result, err := rpncalc.Calculate[int64]("3 4 + 2 *")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result)
	// Output: 14
}

func ExampleCalculateNamed() {
	result, err := rpncalc.CalculateNamed("price quantity *",
		data.P("price", int64(19)),
		data.P("quantity", int64(3)),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result)
	// Output: 57
}

func ExampleCalculatePositional() {
	result, err := rpncalc.CalculatePositional("0 1 * 2 +", int64(4), int64(2), int64(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result)
	// Output: 9
}

func ExampleNew() {
	calc, err := rpncalc.New[float64]()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	area, err := calc.EvaluateNamed("w h *", data.P("w", 3.5), data.P("h", 2.0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(area)
	// Output: 7
}

func ExampleEvaluator_EvaluateWith() {
	calc, err := rpncalc.New[int64]()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Static configuration merged with per-call values.
	provider := data.Composite[int64](
		data.FromMap(map[string]int64{"rate": 50}),
		data.Values(int64(3)),
	)

	total, err := calc.EvaluateWith("rate 0 *", provider)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(total)
	// Output: 150
}

func Example_decimal() {
	// Decimal arithmetic is exact where binary floats are not.
	sum, err := rpncalc.Calculate[decimal.Decimal]("0.1 0.2 +")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum)
	// Output: 0.3
}
