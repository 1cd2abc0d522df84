package token

import (
	"testing"

	"github.com/toonfmt/toon-format/go-toon/ir"
)

func strs(vs ...string) []*ir.Node {
	res := make([]*ir.Node, len(vs))
	for i, v := range vs {
		res[i] = ir.FromString(v)
	}
	return res
}

func TestChooseDelimiter(t *testing.T) {
	tests := []struct {
		name   string
		values []*ir.Node
		want   Delimiter
	}{
		{"clean", strs("a", "b"), Comma},
		{"comma forces pipe", strs("a,b", "c"), Pipe},
		{"comma and pipe force tab", strs("a,b", "c|d"), Tab},
		{"pipe alone stays comma", strs("c|d"), Comma},
		{"empty", nil, Comma},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ChooseDelimiter(tc.values); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestChooseDelimiterScansNested(t *testing.T) {
	arr := ir.FromSlice(strs("x,y"))
	if got := ChooseDelimiter([]*ir.Node{arr}); got != Pipe {
		t.Errorf("nested comma not seen: got %s", got)
	}
}

func TestMarkerAndJoin(t *testing.T) {
	if Comma.Marker() != "" || Pipe.Marker() != "|" || Tab.Marker() != "\t" {
		t.Error("marker mismatch")
	}
	if Comma.Join() != ", " || Pipe.Join() != "| " || Tab.Join() != "\t" {
		t.Error("join mismatch")
	}
	if Comma.Bare() != "," || Pipe.Bare() != "|" || Tab.Bare() != "\t" {
		t.Error("bare mismatch")
	}
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		line string
		want Delimiter
	}{
		{"a, b, c", Comma},
		{"a| b| c", Pipe},
		{"a\tb\tc", Tab},
		{"a|\tb", Pipe},
		{"plain", Comma},
	}
	for _, tc := range tests {
		if got := DetectDelimiter(tc.line); got != tc.want {
			t.Errorf("DetectDelimiter(%q) = %s, want %s", tc.line, got, tc.want)
		}
	}
}

func TestHeaderDelimiter(t *testing.T) {
	tests := []struct {
		header string
		want   Delimiter
	}{
		{"users[2]{a,b}:", Comma},
		{"users[2|]{a|b}:", Pipe},
		{"users[2\t]{a\tb}:", Tab},
		// marker beats incidental characters in field names
		{"users[3]{note}:", Comma},
		{"[4|]{x|y}:", Pipe},
		// brackets inside a quoted key are not the annotation
		{`"a[1]b"[2|]{x|y}:`, Pipe},
		{`"a[9]"[3]{x,y}:`, Comma},
		{"  \"k[0]\"[2\t]{x\ty}:", Tab},
	}
	for _, tc := range tests {
		if got := HeaderDelimiter(tc.header); got != tc.want {
			t.Errorf("HeaderDelimiter(%q) = %s, want %s", tc.header, got, tc.want)
		}
	}
}
