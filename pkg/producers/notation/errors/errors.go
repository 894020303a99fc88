package errors

import "errors"

var (
	ErrNilReflectType = errors.New("nil reflect type")
	ErrNilInfo        = errors.New("nil type parameter info")
)
