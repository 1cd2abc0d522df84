package token

import "testing"

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"true", true},
		{"false", true},
		{"null", true},
		{"True", false},
		{"42abc", true},
		{"-7", true},
		{"-", false},
		{"hello", false},
		{"a,b", true},
		{"a|b", true},
		{"a:b", true},
		{"a[b", true},
		{"a]b", true},
		{"a{b", true},
		{"a}b", true},
		{`a"b`, true},
		{`a\b`, true},
		{"a\tb", true},
		{"a\nb", true},
		{" padded", true},
		{"padded ", true},
		{"mid space", false},
		{"café", false},
	}
	for _, tc := range tests {
		if got := NeedsQuote(tc.in); got != tc.want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"true",
		"a,b|c",
		`quote " inside`,
		`back \ slash`,
		"line\nbreak",
		"tab\there",
		"cr\rhere",
		` padded `,
		`already \"escaped\"`,
	}
	for _, in := range inputs {
		q := Quote(in)
		out, err := Unquote(q)
		if err != nil {
			t.Errorf("Unquote(Quote(%q)): %v", in, err)
			continue
		}
		if out != in {
			t.Errorf("round trip %q -> %q -> %q", in, q, out)
		}
	}
}

func TestQuotePassesBare(t *testing.T) {
	if got := Quote("hello"); got != "hello" {
		t.Errorf("Quote(hello) = %q", got)
	}
	if got := Quote("a,b"); got != `"a,b"` {
		t.Errorf("Quote(a,b) = %q", got)
	}
}

func TestUnquoteErrors(t *testing.T) {
	if _, err := Unquote(`"open`); err == nil {
		t.Error("expected unterminated error")
	}
	if _, err := Unquote(`"bad \x"`); err == nil {
		t.Error("expected bad escape error")
	}
	if _, err := Unquote(`"trail\`); err == nil {
		t.Error("expected error for trailing backslash")
	}
}

func TestQuoteKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"id", "id"},
		{"_private", "_private"},
		{"snake_case_9", "snake_case_9"},
		{"9lives", `"9lives"`},
		{"with space", `"with space"`},
		{"with:colon", `"with:colon"`},
		{"", `""`},
	}
	for _, tc := range tests {
		if got := QuoteKey(tc.in); got != tc.want {
			t.Errorf("QuoteKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
