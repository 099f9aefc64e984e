// Command rpncalc evaluates reverse Polish notation expressions from
// the command line.
//
// Usage:
//
//	rpncalc [-type kind] [-given name=value]... [-value v]... [-debug] ["expression"...]
//
// Each positional argument is one expression. With no arguments,
// expressions are read from standard input, one per line. Setting the
// DEBUG environment variable also enables debug logging.
//
// Examples:
//
//	rpncalc -type int64 "3 4 +"
//	rpncalc -type uint32 "3 4 -"
//	rpncalc -type decimal "0.1 0.2 +"
//	rpncalc -type float64 -value 2.5 -value 4 "0 1 *"
//	rpncalc -type int64 -given x=4 -given y=2 "x y *"
//	echo "3 4 +" | rpncalc -type int64
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/robbyt/go-rpncalc"
	"github.com/robbyt/go-rpncalc/data"
	"github.com/robbyt/go-rpncalc/numeric"
)

// stringList collects repeatable flags.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	var (
		kind   = flag.String("type", "float64", "numeric type, one of: "+kindList())
		debug  = flag.Bool("debug", false, "enable debug logging")
		values stringList
		givens [][2]string
	)
	flag.Var(&values, "value", "positional substitution value, repeatable")
	flag.Func("given", "name=value substitution (any number of times)", func(s string) error {
		given, err := parseGiven(s)
		if err != nil {
			return err
		}
		givens = append(givens, given)
		return nil
	})
	flag.Parse()

	if _, ok := os.LookupEnv("DEBUG"); ok {
		*debug = true
	}
	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	exprs := flag.Args()
	if len(exprs) == 0 {
		lines, err := readExpressions(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "rpncalc:", err)
			os.Exit(1)
		}
		exprs = lines
	}

	results, err := run(numeric.Kind(*kind), exprs, values, givens, handler)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rpncalc:", err)
		os.Exit(1)
	}
	for _, result := range results {
		fmt.Println(result)
	}
}

// parseGiven splits a name=value substitution definition.
func parseGiven(s string) ([2]string, error) {
	name, value, found := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return [2]string{}, fmt.Errorf(`substitutions must be "name=value", not %q`, s)
	}
	return [2]string{name, strings.TrimSpace(value)}, nil
}

// readExpressions reads one expression per line, skipping blank lines.
func readExpressions(r io.Reader) ([]string, error) {
	var exprs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		exprs = append(exprs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return exprs, nil
}

// run dispatches the generic evaluation for the requested kind.
func run(kind numeric.Kind, exprs, values []string, givens [][2]string, handler slog.Handler) ([]string, error) {
	switch kind {
	case numeric.Int16:
		return evaluate[int16](exprs, values, givens, handler)
	case numeric.Int32:
		return evaluate[int32](exprs, values, givens, handler)
	case numeric.Int64:
		return evaluate[int64](exprs, values, givens, handler)
	case numeric.Uint16:
		return evaluate[uint16](exprs, values, givens, handler)
	case numeric.Uint32:
		return evaluate[uint32](exprs, values, givens, handler)
	case numeric.Uint64:
		return evaluate[uint64](exprs, values, givens, handler)
	case numeric.Float32:
		return evaluate[float32](exprs, values, givens, handler)
	case numeric.Float64:
		return evaluate[float64](exprs, values, givens, handler)
	case numeric.Decimal:
		return evaluate[decimal.Decimal](exprs, values, givens, handler)
	default:
		return nil, fmt.Errorf("unknown numeric type %q, supported: %s", kind, kindList())
	}
}

// evaluate builds the substitution providers from the raw flag values,
// then reduces every expression with one shared evaluator.
func evaluate[N numeric.Number](exprs, values []string, givens [][2]string, handler slog.Handler) ([]string, error) {
	calc, err := rpncalc.New[N](rpncalc.WithLogHandler(handler))
	if err != nil {
		return nil, err
	}
	ops, err := numeric.Resolve[N]()
	if err != nil {
		return nil, err
	}

	providers := make([]data.Provider[N], 0, 2)

	if len(givens) > 0 {
		pairs := make([]data.Pair[N], 0, len(givens))
		for _, given := range givens {
			v, ok := ops.Parse(given[1])
			if !ok {
				return nil, fmt.Errorf("invalid -given value %q for type %s", given[1], ops.Kind)
			}
			pairs = append(pairs, data.P(given[0], v))
		}
		providers = append(providers, data.Pairs(pairs...))
	}

	if len(values) > 0 {
		vals := make([]N, 0, len(values))
		for _, raw := range values {
			v, ok := ops.Parse(raw)
			if !ok {
				return nil, fmt.Errorf("invalid -value %q for type %s", raw, ops.Kind)
			}
			vals = append(vals, v)
		}
		providers = append(providers, data.Values(vals...))
	}

	var provider data.Provider[N]
	if len(providers) > 0 {
		provider = data.Composite(providers...)
	}

	results := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		result, err := calc.EvaluateWith(expr, provider)
		if err != nil {
			return nil, err
		}
		results = append(results, fmt.Sprint(result))
	}
	return results, nil
}

// kindList renders the supported kinds for flag help and errors.
func kindList() string {
	kinds := numeric.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
