package rpncalc

import (
	"github.com/robbyt/go-rpncalc/data"
	"github.com/robbyt/go-rpncalc/numeric"
	"github.com/robbyt/go-rpncalc/rpn"
)

// Aliases for the subpackage sentinel errors, so callers can match every
// failure kind with errors.Is without importing the subpackages.
var (
	ErrUnsupportedType     = numeric.ErrUnsupportedType
	ErrDivisionByZero      = numeric.ErrDivisionByZero
	ErrBadToken            = rpn.ErrBadToken
	ErrMalformedExpression = rpn.ErrMalformedExpression
	ErrDuplicateKey        = data.ErrDuplicateKey
)
