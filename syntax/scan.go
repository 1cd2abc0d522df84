package syntax

import (
	"regexp"
	"strings"
)

// headerRE matches an array header line: optional key (bare or
// quoted), bracketed count with optional delimiter marker, optional
// brace-wrapped field list, then a colon.
var headerRE = regexp.MustCompile(
	`^(\s*)(?:"(?:[^"\\]|\\.)*"|[A-Za-z_][A-Za-z0-9_]*)?\[(\d+)(\||\t)?\](\{.*\})?:`)

// LineScanner is the built-in Provider.  It is a structural outline
// scanner, not a grammar parser: it recognizes array header lines and
// the indented block below each one, which is all the region locator
// needs.
type LineScanner struct{}

func (LineScanner) Outline(lines []string) (*Node, error) {
	doc := &Node{
		Kind:      KindDocument,
		StartLine: 0,
		EndLine:   len(lines),
	}
	for i := 0; i < len(lines); i++ {
		m := headerRE.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		header := &Node{
			Kind:      KindArrayHeader,
			StartLine: i,
			EndLine:   i + 1,
		}
		// Only a header carrying a field list can own tabular rows;
		// the block under a plain [N]: header holds list entries and
		// their continuations, which must not be mistaken for rows.
		withFields := m[4] != ""
		if withFields {
			header.Children = append(header.Children, fieldList(m[4], m[3], i))
		}
		indent := len(m[1])
		end := i + 1
		for end < len(lines) {
			ln := lines[end]
			if strings.TrimSpace(ln) == "" {
				end++
				continue
			}
			if lineIndent(ln) <= indent {
				break
			}
			if withFields && isRow(ln) {
				header.Children = append(header.Children, &Node{
					Kind:      KindRow,
					StartLine: end,
					EndLine:   end + 1,
				})
			}
			end++
		}
		header.EndLine = end
		doc.Children = append(doc.Children, header)
	}
	return doc, nil
}

// fieldList reproduces the child shape of a grammar parser's field
// list: one child per field name with the delimiter tokens
// interleaved.
func fieldList(braced, marker string, line int) *Node {
	body := braced[1 : len(braced)-1]
	sep := ","
	switch marker {
	case "|":
		sep = "|"
	case "\t":
		sep = "\t"
	}
	fl := &Node{
		Kind:      KindFieldList,
		StartLine: line,
		EndLine:   line + 1,
	}
	names := splitFields(body, sep[0])
	for i := range names {
		if i > 0 {
			fl.Children = append(fl.Children, &Node{
				Kind: KindOther, StartLine: line, EndLine: line + 1,
			})
		}
		fl.Children = append(fl.Children, &Node{
			Kind: KindOther, StartLine: line, EndLine: line + 1,
		})
	}
	return fl
}

// splitFields splits a field list body on the delimiter, honoring
// quoted field names.
func splitFields(body string, sep byte) []string {
	var (
		res      []string
		start    = 0
		inQuotes = false
	)
	for i := 0; i < len(body); i++ {
		switch {
		case body[i] == '"':
			inQuotes = !inQuotes
		case body[i] == '\\' && inQuotes:
			i++
		case body[i] == sep && !inQuotes:
			res = append(res, body[start:i])
			start = i + 1
		}
	}
	return append(res, body[start:])
}

func lineIndent(ln string) int {
	return len(ln) - len(strings.TrimLeft(ln, " "))
}

// isRow rejects block lines that cannot be tabular data rows: dash
// list entries and nested array headers.
func isRow(ln string) bool {
	t := strings.TrimLeft(ln, " ")
	if t == "-" || strings.HasPrefix(t, "- ") {
		return false
	}
	if headerRE.MatchString(ln) {
		return false
	}
	return true
}
