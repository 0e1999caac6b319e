// Package codec reads serialized constant trees from their YAML document
// form. Plain scalars and sequences map straight to primitive and List
// constants; the remaining variants use single-key tagged mappings:
//
//	{symbol: name}
//	{typeref: qualified.Name}
//	{int: "123456789012345678901234567890"}   # beyond native int range
//	{set: [...]}
//	{map: [{key: ..., value: ...}, ...]}      # ordered pairs
//	{revive: {source, fragment, accessor, positional, named, enum_member, enum_index}}
package codec

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/revive/internal/constant"
)

// Decode parses a single YAML document into a constant tree.
func Decode(data []byte) (constant.Value, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("constant parse error: %v", err)
	}
	return infer(raw)
}

// DecodeAll parses a stream of YAML documents ("---" separated) into
// constant trees, in document order.
func DecodeAll(r io.Reader) ([]constant.Value, error) {
	dec := yaml.NewDecoder(r)
	var values []constant.Value
	for {
		var raw interface{}
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		if err != nil {
			return nil, fmt.Errorf("constant parse error: %v", err)
		}
		v, err := infer(raw)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}

// infer converts Go values (from yaml.Unmarshal) to constant values.
// yaml.v3 returns int for integers, not float64 like encoding/json.
func infer(data interface{}) (constant.Value, error) {
	switch v := data.(type) {
	case nil:
		return &constant.Null{}, nil
	case bool:
		return &constant.Bool{Value: v}, nil
	case int:
		return constant.NewInt(int64(v)), nil
	case int64:
		return constant.NewInt(v), nil
	case uint64:
		return &constant.Int{Value: new(big.Int).SetUint64(v)}, nil
	case float64:
		return &constant.Double{Value: v}, nil
	case string:
		return &constant.String{Value: v}, nil
	case []interface{}:
		elements, err := inferSlice(v)
		if err != nil {
			return nil, err
		}
		return &constant.List{Elements: elements}, nil
	case map[string]interface{}:
		return inferTagged(v)
	}
	return nil, fmt.Errorf("constant parse error: unsupported node %T", data)
}

func inferSlice(items []interface{}) ([]constant.Value, error) {
	elements := make([]constant.Value, len(items))
	for i, item := range items {
		el, err := infer(item)
		if err != nil {
			return nil, err
		}
		elements[i] = el
	}
	return elements, nil
}

func inferTagged(node map[string]interface{}) (constant.Value, error) {
	if len(node) != 1 {
		return nil, fmt.Errorf("constant parse error: tagged node must have exactly one key, got %d", len(node))
	}

	for tag, payload := range node {
		switch tag {
		case "symbol":
			s, ok := payload.(string)
			if !ok {
				return nil, fmt.Errorf("constant parse error: symbol wants a string, got %T", payload)
			}
			return &constant.Symbol{Value: s}, nil
		case "typeref":
			s, ok := payload.(string)
			if !ok {
				return nil, fmt.Errorf("constant parse error: typeref wants a string, got %T", payload)
			}
			return &constant.TypeRef{Name: s}, nil
		case "int":
			return inferBigInt(payload)
		case "set":
			items, ok := payload.([]interface{})
			if !ok {
				return nil, fmt.Errorf("constant parse error: set wants a sequence, got %T", payload)
			}
			elements, err := inferSlice(items)
			if err != nil {
				return nil, err
			}
			return &constant.Set{Elements: elements}, nil
		case "map":
			return inferMap(payload)
		case "revive":
			return inferRevivable(payload)
		default:
			return nil, fmt.Errorf("constant parse error: unknown tag %q", tag)
		}
	}
	return nil, fmt.Errorf("constant parse error: empty tagged node")
}

func inferBigInt(payload interface{}) (constant.Value, error) {
	switch v := payload.(type) {
	case int:
		return constant.NewInt(int64(v)), nil
	case int64:
		return constant.NewInt(v), nil
	case string:
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("constant parse error: invalid integer literal %q", v)
		}
		return &constant.Int{Value: n}, nil
	}
	return nil, fmt.Errorf("constant parse error: int wants digits, got %T", payload)
}

func inferMap(payload interface{}) (constant.Value, error) {
	items, ok := payload.([]interface{})
	if !ok {
		return nil, fmt.Errorf("constant parse error: map wants a sequence of pairs, got %T", payload)
	}
	pairs := make([]constant.Pair, len(items))
	for i, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("constant parse error: map pair %d is not a mapping", i)
		}
		rawKey, hasKey := entry["key"]
		rawVal, hasVal := entry["value"]
		if !hasKey || !hasVal || len(entry) != 2 {
			return nil, fmt.Errorf("constant parse error: map pair %d wants exactly key and value", i)
		}
		key, err := infer(rawKey)
		if err != nil {
			return nil, err
		}
		val, err := infer(rawVal)
		if err != nil {
			return nil, err
		}
		pairs[i] = constant.Pair{Key: key, Val: val}
	}
	return &constant.Map{Pairs: pairs}, nil
}

func inferRevivable(payload interface{}) (constant.Value, error) {
	fields, ok := payload.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("constant parse error: revive wants a mapping, got %T", payload)
	}

	rev := &constant.Revivable{EnumIndex: -1}

	for name, raw := range fields {
		switch name {
		case "source":
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("constant parse error: revive source wants a string")
			}
			rev.Source.Path = s
		case "fragment":
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("constant parse error: revive fragment wants a string")
			}
			rev.Source.Fragment = s
		case "accessor":
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("constant parse error: revive accessor wants a string")
			}
			rev.AccessorPath = s
		case "positional":
			items, ok := raw.([]interface{})
			if !ok {
				return nil, fmt.Errorf("constant parse error: revive positional wants a sequence")
			}
			args, err := inferSlice(items)
			if err != nil {
				return nil, err
			}
			rev.Positional = args
		case "named":
			entries, ok := raw.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("constant parse error: revive named wants a mapping")
			}
			rev.Named = make(map[string]constant.Value, len(entries))
			for argName, argRaw := range entries {
				arg, err := infer(argRaw)
				if err != nil {
					return nil, err
				}
				rev.Named[argName] = arg
			}
		case "enum_member":
			b, ok := raw.(bool)
			if !ok {
				return nil, fmt.Errorf("constant parse error: revive enum_member wants a bool")
			}
			rev.IsEnumMember = b
		case "enum_index":
			n, ok := raw.(int)
			if !ok {
				return nil, fmt.Errorf("constant parse error: revive enum_index wants an integer")
			}
			rev.EnumIndex = n
		default:
			return nil, fmt.Errorf("constant parse error: unknown revive field %q", name)
		}
	}

	return rev, nil
}
