package encode

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/toonfmt/toon-format/go-toon/ir"
	"github.com/toonfmt/toon-format/go-toon/token"
)

type EncState struct {
	depth, indent int
	inlineLimit   int

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes node as TOON text.  It does not fail on well-formed
// input; the only errors are the writer's.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:      2,
		inlineLimit: DefaultInlineLimit,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = node.Type
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray("", "", node, w, es)
	case ir.StringType, ir.NumberType, ir.BoolType, ir.NullType:
		return writeLine(w, es, scalarText(node, es))
	default:
		panic("type")
	}
}

// Line writing

func writeLine(w io.Writer, es *EncState, line string) error {
	indent := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, indent+line+"\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// Scalar rendering

func scalarText(node *ir.Node, es *EncState) string {
	switch node.Type {
	case ir.NullType:
		return applyColor(es, ir.NullType, ValueColor, "null")
	case ir.BoolType:
		return applyColor(es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		return applyColor(es, ir.NumberType, ValueColor, node.NumberString())
	case ir.StringType:
		return applyColor(es, ir.StringType, ValueColor, token.Quote(node.String))
	default:
		panic("scalar")
	}
}

func keyText(key string, es *EncState) string {
	return applyColor(es, ir.ObjectType, FieldColor, token.QuoteKey(key))
}

func sepText(sep string, es *EncState) string {
	return applyColor(es, es.colorType, SepColor, sep)
}

// Object encoding

// sortedFieldIndices returns node's field positions ordered by key so
// emission order never depends on insertion order.
func sortedFieldIndices(node *ir.Node) []int {
	idx := make([]int, len(node.Fields))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return node.Fields[idx[a]].String < node.Fields[idx[b]].String
	})
	return idx
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	for _, i := range sortedFieldIndices(node) {
		key := node.Fields[i].String
		if err := encodeField(key, node.Values[i], w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeField(key string, val *ir.Node, w io.Writer, es *EncState) error {
	switch val.Type {
	case ir.ObjectType:
		if err := writeLine(w, es, keyText(key, es)+sepText(":", es)); err != nil {
			return err
		}
		es.depth++
		err := encodeObject(val, w, es)
		es.depth--
		return err
	case ir.ArrayType:
		return encodeArray(key, "", val, w, es)
	default:
		line := keyText(key, es) + sepText(":", es) + " " + scalarText(val, es)
		return writeLine(w, es, line)
	}
}

// Array encoding

type arrayMode int

const (
	emptyArray arrayMode = iota
	tabularArray
	inlineArray
	listArray
)

func arrayPlan(node *ir.Node, es *EncState) (mode arrayMode, fields []string, d token.Delimiter) {
	n := len(node.Values)
	if n == 0 {
		return emptyArray, nil, token.Comma
	}
	if fields, tabular, flat := Analyze(node); tabular && flat {
		return tabularArray, fields, token.ChooseDelimiter(node.Values)
	}
	allScalar := true
	for _, v := range node.Values {
		if !v.Type.IsScalar() {
			allScalar = false
			break
		}
	}
	if allScalar && n <= es.inlineLimit {
		return inlineArray, nil, token.ChooseDelimiter(node.Values)
	}
	return listArray, nil, token.Comma
}

// annotText renders the bracketed length annotation, with the delimiter
// marker when the delimiter is not the comma default.
func annotText(n int, d token.Delimiter, es *EncState) string {
	open := sepText("[", es)
	close := sepText("]", es)
	count := applyColor(es, ir.NumberType, ValueColor, strconv.Itoa(n))
	return open + count + d.Marker() + close
}

// encodeArray renders an array under the given key ("" at root) with
// prefix prepended to the header line (used for dash list entries).
// A dash prefix shifts the header text two columns right, so the body
// goes one extra indent level down to stay one level below the header.
func encodeArray(key, prefix string, node *ir.Node, w io.Writer, es *EncState) error {
	mode, fields, d := arrayPlan(node, es)
	n := len(node.Values)
	bodyDepth := 1
	if prefix != "" {
		bodyDepth = 2
	}
	head := prefix
	if key != "" {
		head += keyText(key, es)
	}
	switch mode {
	case emptyArray:
		return writeLine(w, es, head+annotText(0, token.Comma, es)+sepText(":", es))
	case tabularArray:
		head += annotText(n, d, es)
		head += sepText("{", es) + strings.Join(fieldTexts(fields, es), d.Bare()) + sepText("}", es)
		head += sepText(":", es)
		if err := writeLine(w, es, head); err != nil {
			return err
		}
		es.depth += bodyDepth
		err := encodeTabularRows(node, fields, d, w, es)
		es.depth -= bodyDepth
		return err
	case inlineArray:
		vals := make([]string, n)
		for i, v := range node.Values {
			vals[i] = scalarText(v, es)
		}
		head += annotText(n, d, es) + sepText(":", es) + " " + strings.Join(vals, d.Join())
		return writeLine(w, es, head)
	default:
		head += annotText(n, token.Comma, es) + sepText(":", es)
		if err := writeLine(w, es, head); err != nil {
			return err
		}
		es.depth += bodyDepth
		err := encodeListElements(node, w, es)
		es.depth -= bodyDepth
		return err
	}
}

func fieldTexts(fields []string, es *EncState) []string {
	res := make([]string, len(fields))
	for i, f := range fields {
		res[i] = applyColor(es, ir.ObjectType, FieldColor, token.QuoteKey(f))
	}
	return res
}

// encodeTabularRows writes one row per element, each field's scalar
// rendering joined by the delimiter, in header field order.
func encodeTabularRows(node *ir.Node, fields []string, d token.Delimiter, w io.Writer, es *EncState) error {
	vals := make([]string, len(fields))
	for _, elt := range node.Values {
		for i, f := range fields {
			vals[i] = scalarText(ir.Get(elt, f), es)
		}
		if err := writeLine(w, es, strings.Join(vals, d.Join())); err != nil {
			return err
		}
	}
	return nil
}

func encodeListElements(node *ir.Node, w io.Writer, es *EncState) error {
	for _, elt := range node.Values {
		if err := encodeListElement(elt, w, es); err != nil {
			return err
		}
	}
	return nil
}

// encodeListElement writes one dash-prefixed list entry.  An object
// element puts its first field on the dash line; the remaining fields
// sit at the object's own indent, one level below the dash.
func encodeListElement(elt *ir.Node, w io.Writer, es *EncState) error {
	dash := sepText("-", es) + " "
	switch elt.Type {
	case ir.ObjectType:
		if len(elt.Fields) == 0 {
			return writeLine(w, es, strings.TrimRight(dash, " "))
		}
		idx := sortedFieldIndices(elt)
		first, rest := idx[0], idx[1:]
		key := elt.Fields[first].String
		val := elt.Values[first]
		switch val.Type {
		case ir.ObjectType:
			if err := writeLine(w, es, dash+keyText(key, es)+sepText(":", es)); err != nil {
				return err
			}
			es.depth += 2
			if err := encodeObject(val, w, es); err != nil {
				es.depth -= 2
				return err
			}
			es.depth -= 2
		case ir.ArrayType:
			if err := encodeArray(key, dash, val, w, es); err != nil {
				return err
			}
		default:
			line := dash + keyText(key, es) + sepText(":", es) + " " + scalarText(val, es)
			if err := writeLine(w, es, line); err != nil {
				return err
			}
		}
		es.depth++
		for _, i := range rest {
			if err := encodeField(elt.Fields[i].String, elt.Values[i], w, es); err != nil {
				es.depth--
				return err
			}
		}
		es.depth--
		return nil
	case ir.ArrayType:
		if err := writeLine(w, es, sepText("-", es)); err != nil {
			return err
		}
		es.depth++
		err := encodeArray("", "", elt, w, es)
		es.depth--
		return err
	default:
		return writeLine(w, es, dash+scalarText(elt, es))
	}
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}
