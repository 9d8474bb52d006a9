package jsonobj

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/jsonobj/debug"
	"github.com/signadot/jsonobj/encode"
	"github.com/signadot/jsonobj/ir"
	"github.com/signadot/jsonobj/parse"
)

// Patch applies an RFC 6902 patch document to doc and returns the
// patched tree. doc is not modified.
func Patch(doc *ir.Object, patch []byte) (*ir.Object, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("applying %d ops to %s\n", len(ops), encode.MustString(doc))
	}
	out, err := ops.Apply([]byte(encode.Serialize(doc)))
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}
