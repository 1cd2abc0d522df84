package encode

import (
	"slices"

	"github.com/toonfmt/toon-format/go-toon/ir"
)

// Analyze inspects a sequence for tabular shape.  A sequence is tabular
// when every element is an object and all elements share one key set;
// fields is that key set sorted ascending, so serialization does not
// depend on input insertion order.  It is flat when additionally every
// field value of every element is a scalar.  One nested object or array
// anywhere disqualifies flatness and forces list rendering.
func Analyze(node *ir.Node) (fields []string, tabular, flat bool) {
	if node.Type != ir.ArrayType || len(node.Values) == 0 {
		return nil, false, false
	}
	first := node.Values[0]
	if first.Type != ir.ObjectType {
		return nil, false, false
	}
	fields = make([]string, len(first.Fields))
	for i, f := range first.Fields {
		fields[i] = f.String
	}
	slices.Sort(fields)
	flat = true
	for _, elt := range node.Values {
		if elt.Type != ir.ObjectType {
			return nil, false, false
		}
		if len(elt.Fields) != len(fields) {
			return nil, false, false
		}
		for i, f := range elt.Fields {
			if _, ok := slices.BinarySearch(fields, f.String); !ok {
				return nil, false, false
			}
			if !elt.Values[i].Type.IsScalar() {
				flat = false
			}
		}
	}
	return fields, true, flat
}
