package encode

// DefaultInlineLimit caps how many scalar elements an array may have
// and still render on a single inline line.  The cutoff is stylistic,
// not semantic, so it is an option rather than a law.
const DefaultInlineLimit = 5

type EncodeOption func(*EncState)

// Indent sets the number of spaces per indent level (default 2).
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.indent = n
		}
	}
}

// Depth sets the starting indent depth, for embedding encoded output
// inside an already-indented document.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// InlineLimit overrides DefaultInlineLimit.
func InlineLimit(n int) EncodeOption {
	return func(es *EncState) {
		if n >= 0 {
			es.inlineLimit = n
		}
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
