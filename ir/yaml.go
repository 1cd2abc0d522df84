package ir

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// FromYAML decodes YAML text into a Node.  YAML integers and floats map
// to the same number representation the JSON decoder produces.
func FromYAML(d []byte) (*Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return FromAny(v)
}
