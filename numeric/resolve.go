package numeric

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/shopspring/decimal"
)

// opsCache memoizes one operation table per concrete type for the
// lifetime of the process, keyed by reflect.Type. LoadOrStore keeps
// concurrent first resolutions of the same type coherent: both callers
// may build a table, but both observe the same stored one.
var opsCache sync.Map

// Resolve returns the operation table for N, building and caching it on
// first use. Resolution happens once per type per process; every
// evaluator for the same type shares the same table.
//
// Types outside the supported set fail with ErrUnsupportedType. The
// match is exact: named types are rejected even when their underlying
// type is in the set, as is the platform-dependent int.
func Resolve[N Number]() (*Ops[N], error) {
	key := reflect.TypeOf((*N)(nil)).Elem()
	if v, ok := opsCache.Load(key); ok {
		return v.(*Ops[N]), nil
	}

	ops, err := buildOps[N]()
	if err != nil {
		return nil, err
	}

	stored, _ := opsCache.LoadOrStore(key, ops)
	return stored.(*Ops[N]), nil
}

// buildOps matches N against the supported set and constructs its table.
func buildOps[N Number]() (*Ops[N], error) {
	var zero N
	switch any(zero).(type) {
	case int16:
		return castOps[N](integerOps(Int16, parseSigned[int16](16))), nil
	case int32:
		return castOps[N](integerOps(Int32, parseSigned[int32](32))), nil
	case int64:
		return castOps[N](integerOps(Int64, parseSigned[int64](64))), nil
	case uint16:
		return castOps[N](integerOps(Uint16, parseUnsigned[uint16](16))), nil
	case uint32:
		return castOps[N](integerOps(Uint32, parseUnsigned[uint32](32))), nil
	case uint64:
		return castOps[N](integerOps(Uint64, parseUnsigned[uint64](64))), nil
	case float32:
		return castOps[N](floatOps[float32](Float32, 32)), nil
	case float64:
		return castOps[N](floatOps[float64](Float64, 64)), nil
	case decimal.Decimal:
		return castOps[N](decimalOps()), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, reflect.TypeOf((*N)(nil)).Elem())
	}
}

// castOps narrows a table built for a concrete type back to *Ops[N].
// Callers only reach it from the buildOps case arm where N is that
// concrete type, so the assertion cannot fail.
func castOps[N Number](table any) *Ops[N] {
	return table.(*Ops[N])
}
