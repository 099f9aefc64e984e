// Package data supplies substitution bindings to the evaluator. A
// binding maps a token string to a value of the evaluator's numeric
// type; during tokenization any token that is not an operator is looked
// up in the bindings before literal parsing is attempted.
//
// The package ships providers for the common calling conventions:
//
//   - Pairs: explicit key/value pairs ("x" is 4, "y" is 2)
//   - Values: positional values bound to "0", "1", ... in order
//   - FromMap: an existing map, copied on every call
//   - Composite: several providers merged, duplicates rejected
//
// Custom sources (configuration systems, request parameters, feature
// stores) only need to implement the one-method Provider interface.
package data

import "github.com/robbyt/go-rpncalc/numeric"

// Provider supplies the substitution bindings for one evaluation.
//
// Bindings must return a map built fresh on every call so the evaluator
// can never observe or cause mutation across evaluations. A nil map is
// treated as no bindings. Providers that can hold the same key twice
// must fail with ErrDuplicateKey rather than pick a winner.
type Provider[N numeric.Number] interface {
	Bindings() (map[string]N, error)
}
