package token

import (
	"strings"

	"github.com/toonfmt/toon-format/go-toon/ir"
)

// Delimiter selects the field separator of a tabular or inline array.
// Comma is the default; pipe and tab are escape valves, in that order,
// for data that contains the cheaper delimiters.
type Delimiter int

const (
	Comma Delimiter = iota
	Pipe
	Tab
)

func (d Delimiter) String() string {
	switch d {
	case Comma:
		return "comma"
	case Pipe:
		return "pipe"
	case Tab:
		return "tab"
	default:
		return "<unknown delimiter>"
	}
}

// Rune returns the delimiter character itself.
func (d Delimiter) Rune() byte {
	switch d {
	case Pipe:
		return '|'
	case Tab:
		return '\t'
	default:
		return ','
	}
}

// Marker returns the text recorded inside the bracketed length
// annotation.  Comma, being the default, is not written.
func (d Delimiter) Marker() string {
	switch d {
	case Pipe:
		return "|"
	case Tab:
		return "\t"
	default:
		return ""
	}
}

// Join returns the separator used between rendered row values: the
// delimiter plus a space for comma and pipe, a bare tab for tab.
func (d Delimiter) Join() string {
	switch d {
	case Pipe:
		return "| "
	case Tab:
		return "\t"
	default:
		return ", "
	}
}

// Bare returns the separator with no trailing space, used by shrink.
func (d Delimiter) Bare() string {
	switch d {
	case Pipe:
		return "|"
	case Tab:
		return "\t"
	default:
		return ","
	}
}

// ChooseDelimiter scans the string values under the given nodes and
// picks the first delimiter whose character appears in none of them.
// Tab is the last resort and is always accepted.
func ChooseDelimiter(values []*ir.Node) Delimiter {
	hasComma, hasPipe := false, false
	for _, v := range values {
		scanStrings(v, &hasComma, &hasPipe)
	}
	switch {
	case !hasComma:
		return Comma
	case !hasPipe:
		return Pipe
	default:
		return Tab
	}
}

func scanStrings(y *ir.Node, hasComma, hasPipe *bool) {
	if y == nil {
		return
	}
	if y.Type == ir.StringType {
		if strings.ContainsRune(y.String, ',') {
			*hasComma = true
		}
		if strings.ContainsRune(y.String, '|') {
			*hasPipe = true
		}
		return
	}
	for _, v := range y.Values {
		scanStrings(v, hasComma, hasPipe)
	}
}

// DetectDelimiter guesses the delimiter of one row by character
// presence, in fixed priority pipe, tab, comma.
func DetectDelimiter(line string) Delimiter {
	switch {
	case strings.ContainsRune(line, '|'):
		return Pipe
	case strings.ContainsRune(line, '\t'):
		return Tab
	default:
		return Comma
	}
}

// HeaderDelimiter recovers the delimiter of a tabular region from its
// header line.  A marker inside the length annotation ([N|] or [N<tab>])
// is authoritative; without one the header falls back to per-line
// detection, so incidental pipes in header field names behave the same
// way they would in a data row.
func HeaderDelimiter(header string) Delimiter {
	// a quoted key may itself contain brackets; the annotation starts
	// after it
	rest := skipQuoted(strings.TrimLeft(header, " \t"))
	open := strings.IndexByte(rest, '[')
	close := strings.IndexByte(rest, ']')
	if open >= 0 && close > open {
		annot := rest[open+1 : close]
		if strings.HasSuffix(annot, "|") {
			return Pipe
		}
		if strings.HasSuffix(annot, "\t") {
			return Tab
		}
		if digits(annot) {
			return Comma
		}
	}
	return DetectDelimiter(header)
}

// skipQuoted steps over a leading quoted token, honoring backslash
// escapes.  Input without a leading quote passes through unchanged; an
// unterminated quote consumes the rest.
func skipQuoted(s string) string {
	if !strings.HasPrefix(s, `"`) {
		return s
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return s[i+1:]
		}
	}
	return ""
}

func digits(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}
