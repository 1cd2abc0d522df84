// Package token implements TOON's lexical surface: scalar quoting and
// escaping, the delimiter policy for tabular rows, and the quote-aware
// row splitter used when re-flowing existing documents.
package token

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NeedsQuote reports whether a string scalar must be quoted to survive
// a parse.  Unquoted strings may not be empty, collide with the keyword
// literals, look numeric, carry structural characters, or have leading
// or trailing whitespace.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v {
	case "true", "false", "null":
		return true
	}
	if looksNumeric(v) {
		return true
	}
	if strings.ContainsAny(v, ",|[]{}:\"\\\n\r\t") {
		return true
	}
	first, _ := utf8.DecodeRuneInString(v)
	last, _ := utf8.DecodeLastRuneInString(v)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return true
	}
	return false
}

// looksNumeric is a prefix check, not a full number parse: an optional
// minus sign followed by a digit is enough to confuse a reader.
func looksNumeric(v string) bool {
	if v[0] == '-' {
		v = v[1:]
		if v == "" {
			return false
		}
	}
	return v[0] >= '0' && v[0] <= '9'
}

var escaper = strings.NewReplacer(
	// backslash first so already-written escapes don't double up
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Quote returns v unchanged when it can stand bare, otherwise wrapped
// in double quotes with the escapable characters substituted.
func Quote(v string) string {
	if !NeedsQuote(v) {
		return v
	}
	return `"` + escaper.Replace(v) + `"`
}

// Unquote is the exact left inverse of Quote restricted to the escape
// set Quote emits.  It accepts both quoted and bare input; bare input
// is returned as-is.
func Unquote(v string) (string, error) {
	if len(v) < 2 || v[0] != '"' {
		return v, nil
	}
	if v[len(v)-1] != '"' {
		return "", ErrUnterminated
	}
	body := v[1 : len(v)-1]
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(body) {
			return "", fmt.Errorf("%w: trailing backslash", ErrBadEscape)
		}
		switch body[i] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			return "", fmt.Errorf("%w: \\%c", ErrBadEscape, body[i])
		}
	}
	return b.String(), nil
}

// bareKey matches the identifier syntax keys may use unquoted.
func bareKey(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// QuoteKey renders a mapping key: bare identifiers pass through, all
// other keys get string quoting.
func QuoteKey(v string) string {
	if bareKey(v) {
		return v
	}
	return `"` + escaper.Replace(v) + `"`
}
