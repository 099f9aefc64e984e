package data

import (
	"fmt"
	"strings"

	"github.com/robbyt/go-rpncalc/numeric"
)

// CompositeProvider merges the bindings of several providers into one
// map, querying them in the order given. Typical use is combining a
// static configuration map with per-call positional values:
//
//	data.Composite(data.FromMap(cfg), data.Values(v...))
type CompositeProvider[N numeric.Number] struct {
	providers []Provider[N]
}

// Composite creates a provider chaining the given providers. Nil entries
// are tolerated and skipped.
func Composite[N numeric.Number](providers ...Provider[N]) *CompositeProvider[N] {
	return &CompositeProvider[N]{providers: providers}
}

func (p *CompositeProvider[N]) String() string {
	names := make([]string, 0, len(p.providers))
	for _, provider := range p.providers {
		if provider == nil {
			continue
		}
		names = append(names, fmt.Sprintf("%v", provider))
	}
	return fmt.Sprintf("data.CompositeProvider[%s]", strings.Join(names, ", "))
}

// Bindings collects each provider's bindings into one fresh map. The
// first failure aborts the merge, tagged with the position of the
// provider that failed. A key supplied by two providers fails with
// ErrDuplicateKey.
func (p *CompositeProvider[N]) Bindings() (map[string]N, error) {
	merged := make(map[string]N)
	for i, provider := range p.providers {
		if provider == nil {
			continue
		}
		bindings, err := provider.Bindings()
		if err != nil {
			return nil, fmt.Errorf("provider %d: %w", i, err)
		}
		for k, v := range bindings {
			if _, exists := merged[k]; exists {
				return nil, fmt.Errorf("provider %d: %w: %q", i, ErrDuplicateKey, k)
			}
			merged[k] = v
		}
	}
	return merged, nil
}
