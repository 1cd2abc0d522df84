package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FromJSON decodes JSON text into a Node.  Malformed input surfaces as
// a wrapped ErrDecode with the decoder's message; the serializer is
// never handed a partially decoded value.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	// trailing garbage after the first value is still malformed input
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected trailing content", ErrDecode)
	}
	return FromAny(v)
}

// FromAny converts a generic decoded value (the any-typed shapes
// produced by encoding/json and friends) into a Node.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrDecode, x.String())
		}
		return FromFloat(f), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x > 1<<63-1 {
			return FromFloat(float64(x)), nil
		}
		return FromInt(int64(x)), nil
	case float64:
		if f := x; f == float64(int64(f)) && f < 1<<53 && f > -(1<<53) {
			return FromInt(int64(f)), nil
		}
		return FromFloat(x), nil
	case map[string]any:
		res := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res[k] = n
		}
		return FromMap(res), nil
	case map[any]any:
		res := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res[anyKey(k)] = n
		}
		return FromMap(res), nil
	case []any:
		res := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res[i] = n
		}
		return FromSlice(res), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrDecode, v)
	}
}

func anyKey(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// ToAny converts a Node back into the generic any-typed shape.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return 0
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("type")
	}
}

// MarshalJSON renders a Node as JSON.  encoding/json sorts map keys,
// which matches the serializer's key ordering.
func MarshalJSON(node *Node) ([]byte, error) {
	return json.Marshal(ToAny(node))
}
