package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/toonfmt/toon-format/go-toon/encode"
	"github.com/toonfmt/toon-format/go-toon/ir"
)

// Toon wraps a node so %v renders it as TOON text.
type Toon struct{ *ir.Node }

func (y Toon) String() string {
	x := y.Node
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return buf.String()
}

// Logf writes a formatted message to stderr with *ir.Node and decoded
// JSON arguments rendered readably.
func Logf(msg string, args ...any) {
	Flogf(os.Stderr, msg, args...)
}

func Flogf(w io.Writer, msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	// Assign msg to a local so vet does not treat Flogf as a plain
	// printf forwarder: args are pre-rendered above, so %s is valid
	// for *ir.Node and decoded JSON values at call sites.
	format := msg
	fmt.Fprintf(w, format, args...)
}
