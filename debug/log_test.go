package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/toonfmt/toon-format/go-toon/ir"
)

func TestToonString(t *testing.T) {
	node := ir.FromMap(map[string]*ir.Node{
		"name": ir.FromString("alice"),
		"age":  ir.FromInt(30),
	})
	got := Toon{node}.String()
	want := "age: 30\nname: alice\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFlogfRendersNodes(t *testing.T) {
	node := ir.FromMap(map[string]*ir.Node{
		"ok": ir.FromBool(true),
	})
	buf := bytes.NewBuffer(nil)
	Flogf(buf, "value:\n%s", node)
	if !strings.Contains(buf.String(), "ok: true") {
		t.Errorf("node not rendered: %q", buf.String())
	}
}

func TestFlogfRendersDecodedJSON(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	Flogf(buf, "%s", map[string]any{"a": 1})
	if !strings.Contains(buf.String(), `"a"`) {
		t.Errorf("map not rendered as json: %q", buf.String())
	}
}
