package data

import (
	"fmt"
	"maps"

	"github.com/robbyt/go-rpncalc/numeric"
)

// MapProvider adapts an existing map into a Provider.
type MapProvider[N numeric.Number] struct {
	source map[string]N
}

// FromMap creates a provider over an existing map. The map is read on
// every Bindings call, so later changes to it are visible to later
// evaluations; pass a private copy for snapshot semantics.
func FromMap[N numeric.Number](source map[string]N) *MapProvider[N] {
	return &MapProvider[N]{source: source}
}

func (p *MapProvider[N]) String() string {
	return fmt.Sprintf("data.MapProvider[%d entries]", len(p.source))
}

// Bindings returns a copy of the source map so the evaluator and the
// caller can never mutate each other's view. Map keys are unique by
// construction, but the empty key is rejected like everywhere else.
func (p *MapProvider[N]) Bindings() (map[string]N, error) {
	if _, exists := p.source[""]; exists {
		return nil, ErrEmptyKey
	}
	bindings := make(map[string]N, len(p.source))
	maps.Copy(bindings, p.source)
	return bindings, nil
}
