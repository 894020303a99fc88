package errors

import (
	"errors"
)

var (
	ErrNilValue        = errors.New("nil value")
	ErrUnsupportedKind = errors.New("unsupported kind")
	ErrNoStructField   = errors.New("no struct field")
)
