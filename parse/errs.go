package parse

import (
	"errors"

	"github.com/signadot/jsonobj/ir"
)

var (
	ErrParse   = errors.New("parse error")
	ErrExtract = ir.ErrExtract
)
