package parse

// DefaultMaxDepth bounds input nesting: recursion depth equals the
// nesting depth of the document, so unbounded input could exhaust the
// call stack.
const DefaultMaxDepth = 200

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth overrides the nesting depth Parse accepts. More deeply
// nested input fails with ErrParse.
func MaxDepth(n int) ParseOption {
	return func(po *parseOpts) { po.maxDepth = n }
}
