package numeric

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Number is the type constraint for instantiating the calculator. It is
// deliberately wider than the supported set: the compiler only rules
// out types that could never work (strings, structs, complex numbers),
// while exact membership in the supported set is enforced at runtime by
// Resolve. Instantiating with an out-of-set type such as int8 or a
// named integer type compiles, then fails fast with ErrUnsupportedType.
type Number interface {
	constraints.Integer | constraints.Float | decimal.Decimal
}
