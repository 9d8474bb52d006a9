package jsonobj

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jsonobj/debug"
	"github.com/signadot/jsonobj/encode"
	"github.com/signadot/jsonobj/ir"
)

// Diff renders a line diff between the pretty forms of a and b. Equal
// trees give "".
func Diff(a, b *ir.Object) string {
	if ir.Equal(a, b) {
		return ""
	}
	pa, pb := encode.Pretty(a, 4), encode.Pretty(b, 4)
	if pa == pb {
		return ""
	}
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(pa, pb)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	if debug.Diff() {
		debug.Logf("diff has %d segments\n", len(diffs))
	}
	return dmp.DiffPrettyText(diffs)
}
