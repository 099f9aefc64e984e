package data

import (
	"fmt"

	"github.com/robbyt/go-rpncalc/numeric"
)

// Pair binds one substitution key to a value.
type Pair[N numeric.Number] struct {
	Key   string
	Value N
}

// P is a shorthand constructor for inline Pair literals:
//
//	data.Pairs(data.P("x", int64(4)), data.P("y", int64(2)))
func P[N numeric.Number](key string, value N) Pair[N] {
	return Pair[N]{Key: key, Value: value}
}

// PairsProvider builds bindings from a list of named pairs. It is the
// provider behind the named-substitution calling convention.
type PairsProvider[N numeric.Number] struct {
	pairs []Pair[N]
}

// Pairs creates a provider over named key/value pairs. The pair slice is
// captured as-is; it must not be mutated while the provider is in use.
func Pairs[N numeric.Number](pairs ...Pair[N]) *PairsProvider[N] {
	return &PairsProvider[N]{pairs: pairs}
}

func (p *PairsProvider[N]) String() string {
	return fmt.Sprintf("data.PairsProvider[%d pairs]", len(p.pairs))
}

// Bindings builds a fresh map from the pairs. A key appearing twice
// fails with ErrDuplicateKey rather than keeping either value.
func (p *PairsProvider[N]) Bindings() (map[string]N, error) {
	bindings := make(map[string]N, len(p.pairs))
	for _, pair := range p.pairs {
		if pair.Key == "" {
			return nil, ErrEmptyKey
		}
		if _, exists := bindings[pair.Key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, pair.Key)
		}
		bindings[pair.Key] = pair.Value
	}
	return bindings, nil
}
