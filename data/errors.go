package data

import "errors"

var (
	ErrDuplicateKey = errors.New("duplicate substitution key")
	ErrEmptyKey     = errors.New("empty substitution key")
)
