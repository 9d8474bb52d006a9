package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/jsonobj/ir"
)

func MustString(o *ir.Object) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(o, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
