package ir

import (
	"errors"
	"fmt"
)

var (
	ErrBadType    = errors.New("bad type")
	ErrMissingKey = errors.New("missing key")
	ErrOutOfRange = errors.New("index out of range")
	ErrExtract    = errors.New("extraction error")
)

func badType(want, got Type) error {
	return fmt.Errorf("%w: have %s, want %s", ErrBadType, got, want)
}
