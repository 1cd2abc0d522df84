package token

import "strings"

// Field is one tokenized value of a tabular row, with its byte offsets
// in the source line.  Text keeps the original quoting; unescaping is a
// separate step.
type Field struct {
	Text  string
	Start int
	End   int
}

// SplitRow splits one row into fields on the given delimiter.  The scan
// is quote-aware: a double quote toggles quoting state and is retained
// in the token, a backslash inside quotes consumes the next character
// verbatim, and the delimiter only terminates a field outside quotes.
// The final token is always emitted, so a trailing delimiter produces
// an empty last field.  An unterminated quote does not fail; the rest
// of the line becomes one token.
func SplitRow(line string, d Delimiter) []Field {
	sep := d.Rune()
	var (
		fields   []Field
		b        strings.Builder
		start    = 0
		inQuotes = false
	)
	flush := func(end int) {
		fields = append(fields, Field{Text: b.String(), Start: start, End: end})
		b.Reset()
		start = end + 1
	}
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			b.WriteByte(c)
		case c == '\\' && inQuotes:
			b.WriteByte(c)
			if i+1 < len(line) {
				i++
				b.WriteByte(line[i])
			}
		case c == sep && !inQuotes:
			flush(i)
		default:
			b.WriteByte(c)
		}
		i++
	}
	flush(len(line))
	return fields
}

// RowValues returns the trimmed field texts of a row.
func RowValues(line string, d Delimiter) []string {
	fields := SplitRow(line, d)
	res := make([]string, len(fields))
	for i, f := range fields {
		res[i] = strings.TrimSpace(f.Text)
	}
	return res
}
