// Package align re-flows the tabular regions of an existing TOON
// document: align pads every column to its widest value, shrink trims
// the rows back to minimal whitespace.  Both operations preserve line
// count and document semantics; only intra-row whitespace changes.
package align

import (
	"github.com/toonfmt/toon-format/go-toon/syntax"
	"github.com/toonfmt/toon-format/go-toon/token"
)

// Region is one located tabular block.  StartLine/EndLine are a
// half-open range covering header and body; RowLines lists the data
// row indices, sorted ascending, all within the range.  Regions are
// ephemeral: they are recomputed from the syntax tree on every call
// and never cached across edits.
type Region struct {
	StartLine      int
	EndLine        int
	Delimiter      token.Delimiter
	DeclaredFields int
	RowLines       []int
}

// Locate finds the tabular regions of a document, ordered by position.
// The header's delimiter marker is authoritative; the declared field
// count is recovered from the field-list node's child shape (fields
// interleaved with delimiter tokens, so count = children/2 + 1).  Only
// regions with at least one data row are returned.  A nil tree yields
// nil.
func Locate(tree *syntax.Node, lines []string) []Region {
	if tree == nil {
		return nil
	}
	var regions []Region
	tree.Visit(func(n *syntax.Node) bool {
		if n.Kind != syntax.KindArrayHeader {
			return true
		}
		r := Region{
			StartLine: n.StartLine,
			EndLine:   n.EndLine,
			Delimiter: token.HeaderDelimiter(lines[n.StartLine]),
		}
		for _, c := range n.Children {
			switch c.Kind {
			case syntax.KindFieldList:
				r.DeclaredFields = len(c.Children)/2 + 1
			case syntax.KindRow:
				r.RowLines = append(r.RowLines, c.StartLine)
			}
		}
		if len(r.RowLines) > 0 {
			regions = append(regions, r)
		}
		// an array header's block cannot hold another tabular array
		return false
	})
	return regions
}
