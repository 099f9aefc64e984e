package data

import (
	"fmt"
	"strconv"

	"github.com/robbyt/go-rpncalc/numeric"
)

// ValuesProvider binds positional values to their zero-based index. It
// is the provider behind the positional calling convention: the first
// value is addressable in an expression as "0", the second as "1", and
// so on.
type ValuesProvider[N numeric.Number] struct {
	values []N
}

// Values creates a provider over positional values. The value slice is
// captured as-is; it must not be mutated while the provider is in use.
func Values[N numeric.Number](values ...N) *ValuesProvider[N] {
	return &ValuesProvider[N]{values: values}
}

func (p *ValuesProvider[N]) String() string {
	return fmt.Sprintf("data.ValuesProvider[%d values]", len(p.values))
}

// Bindings builds a fresh map keyed by each value's index rendered with
// strconv.Itoa, so the keys are plain ASCII digits regardless of locale.
// Indexes are unique by construction, so Bindings cannot fail here.
func (p *ValuesProvider[N]) Bindings() (map[string]N, error) {
	bindings := make(map[string]N, len(p.values))
	for i, v := range p.values {
		bindings[strconv.Itoa(i)] = v
	}
	return bindings, nil
}
