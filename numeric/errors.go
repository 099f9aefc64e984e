package numeric

import "errors"

var (
	// ErrUnsupportedType is returned by Resolve when the type parameter
	// is outside the supported set.
	ErrUnsupportedType = errors.New("unsupported numeric type")

	// ErrDivisionByZero is returned by integer and decimal division when
	// the divisor is zero. Float division never returns it: IEEE-754
	// yields an infinity or NaN instead.
	ErrDivisionByZero = errors.New("division by zero")
)
