// Package syntax defines the concrete-syntax-tree surface the
// alignment engine consumes.  The tree is deliberately small: typed
// nodes with half-open line ranges and ordered children.  Any parser
// able to produce this shape can drive region location; the built-in
// LineScanner recognizes just enough structure (array headers and
// their data rows) without being a TOON grammar parser.
package syntax

type Kind int

const (
	KindDocument Kind = iota
	KindArrayHeader
	KindFieldList
	KindRow
	KindOther
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindDocument:    "Document",
		KindArrayHeader: "ArrayHeader",
		KindFieldList:   "FieldList",
		KindRow:         "Row",
		KindOther:       "Other",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Node is one typed node of the concrete syntax tree.  StartLine and
// EndLine form a half-open range over the document's lines.
type Node struct {
	Kind      Kind
	StartLine int
	EndLine   int
	Children  []*Node
}

// Visit walks the tree pre-order; returning false stops descent into
// the node's children.
func (n *Node) Visit(f func(n *Node) bool) {
	if !f(n) {
		return
	}
	for _, c := range n.Children {
		c.Visit(f)
	}
}

// Provider turns document lines into a syntax tree.  A nil Provider is
// valid everywhere one is accepted and stands for "no parser
// available": consumers treat it as an empty tree.
type Provider interface {
	Outline(lines []string) (*Node, error)
}
