// Package encode renders ir nodes as TOON text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, w)
//
//	// with options
//	err := encode.Encode(node, w, encode.Indent(4), encode.InlineLimit(8))
//
// Sequences pick one of three encodings: a tabular block when every
// element is a flat record with the same keys, a single inline line
// when every element is a small scalar list, and a dash-prefixed
// expanded list otherwise.
//
// # Related Packages
//
//   - github.com/toonfmt/toon-format/go-toon/ir - structured value model
//   - github.com/toonfmt/toon-format/go-toon/align - re-flow existing TOON text
package encode
