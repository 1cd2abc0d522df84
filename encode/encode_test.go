package encode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/toonfmt/toon-format/go-toon/ir"
	"github.com/toonfmt/toon-format/go-toon/token"
)

func mustJSON(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, err := ir.FromJSON([]byte(in))
	if err != nil {
		t.Fatalf("FromJSON(%q): %v", in, err)
	}
	return node
}

func TestEncodeUsersTabular(t *testing.T) {
	in := `{"users":[
		{"id":1,"name":"Alice","role":"admin","active":true},
		{"id":2,"name":"Bob","role":"developer","active":true}]}`
	want := strings.Join([]string{
		"users[2]{active,id,name,role}:",
		"  true, 1, Alice, admin",
		"  true, 2, Bob, developer",
		"",
	}, "\n")
	got := render(t, mustJSON(t, in))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tabular output mismatch (-want +got):\n%s", diff)
	}
}

func render(t *testing.T, node *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	var b strings.Builder
	if err := Encode(node, &b, opts...); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return b.String()
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"null", ir.Null(), "null\n"},
		{"true", ir.FromBool(true), "true\n"},
		{"int", ir.FromInt(42), "42\n"},
		{"float", ir.FromFloat(2.5), "2.5\n"},
		{"string", ir.FromString("hi"), "hi\n"},
		{"quoted string", ir.FromString("a,b"), "\"a,b\"\n"},
		{"keyword string", ir.FromString("null"), "\"null\"\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := render(t, tc.node); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncodeMapping(t *testing.T) {
	node := mustJSON(t, `{"b":{"y":2,"x":1},"a":"v"}`)
	want := strings.Join([]string{
		"a: v",
		"b:",
		"  x: 1",
		"  y: 2",
		"",
	}, "\n")
	if got := render(t, node); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeEmptyArray(t *testing.T) {
	node := mustJSON(t, `{"items":[]}`)
	if got := render(t, node); got != "items[0]:\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeInlineArray(t *testing.T) {
	node := mustJSON(t, `{"nums":[1,2,3]}`)
	if got := render(t, node); got != "nums[3]: 1, 2, 3\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeInlineLimit(t *testing.T) {
	node := mustJSON(t, `{"nums":[1,2,3,4,5,6]}`)
	want := strings.Join([]string{
		"nums[6]:",
		"  - 1",
		"  - 2",
		"  - 3",
		"  - 4",
		"  - 5",
		"  - 6",
		"",
	}, "\n")
	if got := render(t, node); got != want {
		t.Errorf("six elements should expand:\n%s", got)
	}
	// raising the limit restores the inline form
	if got := render(t, node, InlineLimit(10)); got != "nums[6]: 1, 2, 3, 4, 5, 6\n" {
		t.Errorf("InlineLimit(10): got %q", got)
	}
}

func TestEncodePipeDelimiter(t *testing.T) {
	node := mustJSON(t, `{"rows":[{"a":"x,y","b":"p"},{"a":"z","b":"q"}]}`)
	want := strings.Join([]string{
		"rows[2|]{a|b}:",
		"  \"x,y\"| p",
		"  z| q",
		"",
	}, "\n")
	if got := render(t, node); got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestEncodeTabDelimiter(t *testing.T) {
	node := mustJSON(t, `{"rows":[{"a":"x,y","b":"p|q"}]}`)
	want := "rows[1\t]{a\tb}:\n  \"x,y\"\t\"p|q\"\n"
	if got := render(t, node); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeListOfMixed(t *testing.T) {
	node := mustJSON(t, `{"items":[{"a":1},"scalar",[1,2]]}`)
	want := strings.Join([]string{
		"items[3]:",
		"  - a: 1",
		"  - scalar",
		"  -",
		"    [2]: 1, 2",
		"",
	}, "\n")
	if got := render(t, node); got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestEncodeListObjectMultiField(t *testing.T) {
	node := mustJSON(t, `{"items":[{"b":2,"a":1,"c":{"d":3}}, {"a":9}]}`)
	want := strings.Join([]string{
		"items[2]:",
		"  - a: 1",
		"    b: 2",
		"    c:",
		"      d: 3",
		"  - a: 9",
		"",
	}, "\n")
	if got := render(t, node); got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestEncodeListObjectFirstFieldNested(t *testing.T) {
	node := mustJSON(t, `{"items":[{"a":{"x":1},"b":2}]}`)
	want := strings.Join([]string{
		"items[1]:",
		"  - a:",
		"      x: 1",
		"    b: 2",
		"",
	}, "\n")
	if got := render(t, node); got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestNestedArrayDisqualifiesTabular(t *testing.T) {
	node := mustJSON(t, `{"rows":[{"a":1,"b":[1]},{"a":2,"b":[2]}]}`)
	got := render(t, node)
	if strings.Contains(got, "{") {
		t.Errorf("expected list fallback, got tabular:\n%s", got)
	}
}

func TestDifferingKeySetsNotTabular(t *testing.T) {
	node := mustJSON(t, `{"rows":[{"a":1},{"b":2}]}`)
	got := render(t, node)
	if strings.Contains(got, "{") {
		t.Errorf("expected list fallback, got tabular:\n%s", got)
	}
}

func TestAnalyze(t *testing.T) {
	node := mustJSON(t, `[{"a":1,"b":2},{"b":4,"a":3}]`)
	fields, tabular, flat := Analyze(node)
	if !tabular || !flat {
		t.Fatalf("tabular=%v flat=%v", tabular, flat)
	}
	if diff := cmp.Diff([]string{"a", "b"}, fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}

	node = mustJSON(t, `[{"a":1},{"b":2}]`)
	if _, tabular, _ := Analyze(node); tabular {
		t.Error("differing key sets should not be tabular")
	}

	node = mustJSON(t, `[{"a":{"x":1}},{"a":{"x":2}}]`)
	_, tabular, flat = Analyze(node)
	if !tabular || flat {
		t.Errorf("nested values: tabular=%v flat=%v, want true/false", tabular, flat)
	}

	node = mustJSON(t, `[1,2]`)
	if _, tabular, _ := Analyze(node); tabular {
		t.Error("scalar elements should not be tabular")
	}
}

// Round trip: tokenizing the emitted rows with the emitted delimiter
// and unquoting each value recovers the original records up to the
// sorted field order.
func TestTabularRowRoundTrip(t *testing.T) {
	node := mustJSON(t, `{"recs":[
		{"msg":"a,b","who":"x|y","n":1},
		{"msg":"plain","who":"w","n":-2}]}`)
	out := render(t, node)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %q", lines)
	}
	d := token.HeaderDelimiter(lines[0])
	if d != token.Tab {
		t.Fatalf("expected tab delimiter, got %s", d)
	}
	wantRows := [][]string{
		{"a,b", "1", "x|y"},
		{"plain", "-2", "w"},
	}
	for i, row := range lines[1:] {
		vals := token.RowValues(row, d)
		for j := range vals {
			v, err := token.Unquote(vals[j])
			if err != nil {
				t.Fatalf("unquote %q: %v", vals[j], err)
			}
			vals[j] = v
		}
		if diff := cmp.Diff(wantRows[i], vals); diff != "" {
			t.Errorf("row %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestEncodeRootArray(t *testing.T) {
	node := mustJSON(t, `[{"a":1,"b":2},{"a":3,"b":4}]`)
	want := strings.Join([]string{
		"[2]{a,b}:",
		"  1, 2",
		"  3, 4",
		"",
	}, "\n")
	if got := render(t, node); got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestEncodeQuotedKey(t *testing.T) {
	node := mustJSON(t, `{"strange key":1}`)
	if got := render(t, node); got != "\"strange key\": 1\n" {
		t.Errorf("got %q", got)
	}
}

func TestIndentOption(t *testing.T) {
	node := mustJSON(t, `{"a":{"b":1}}`)
	want := "a:\n    b: 1\n"
	if got := render(t, node, Indent(4)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMustString(t *testing.T) {
	node := mustJSON(t, `{"a":1}`)
	if got := MustString(node); got != "a: 1" {
		t.Errorf("got %q", got)
	}
}
