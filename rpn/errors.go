package rpn

import "errors"

var (
	ErrBadToken            = errors.New("token is not an operator, substitution, or literal")
	ErrMalformedExpression = errors.New("malformed rpn expression")
)
