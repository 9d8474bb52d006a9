package encode

type EncodeOption func(*EncState)

// Indent selects the multi-line form with the given indent step.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		es.indent = n
		es.compact = false
	}
}

func Compact() EncodeOption {
	return func(es *EncState) { es.compact = true }
}

// Depth sets the starting nesting depth, for embedding the output
// inside an already indented context.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
