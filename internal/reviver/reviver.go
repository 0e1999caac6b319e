package reviver

import (
	"errors"
	"fmt"

	"github.com/funvibe/revive/internal/constant"
	"github.com/funvibe/revive/internal/instance"
	"github.com/funvibe/revive/internal/registry"
)

var (
	ErrEnumIndexOutOfRange = errors.New("enum index out of range")
	ErrDepthExceeded       = errors.New("revival depth exceeded")
)

// DefaultMaxDepth bounds recursion for inputs of unknown origin. The
// constant trees a well-formed front end produces are finite and acyclic,
// so the limit only guards against hostile or corrupted input.
const DefaultMaxDepth = 1000

// Reviver reconstructs fully-typed instances from serialized constant
// trees. It holds no mutable state across calls: Revive is purely
// functional and one Reviver may serve concurrent callers as long as the
// registry was populated beforehand.
type Reviver struct {
	registry *registry.Registry

	// MaxDepth aborts revival of trees nested deeper than this with
	// ErrDepthExceeded. Zero disables the check.
	MaxDepth int
}

// New returns a Reviver backed by the given registry. The registry is an
// explicit dependency: the engine never consults ambient process state,
// so tests can inject hand-built registries.
func New(reg *registry.Registry) *Reviver {
	return &Reviver{registry: reg, MaxDepth: DefaultMaxDepth}
}

// Revive walks the constant tree and produces a fresh instance tree owned
// solely by the caller. Any failure aborts the whole call; no partial
// result is ever returned.
func (r *Reviver) Revive(v constant.Value) (instance.Object, error) {
	return r.revive(v, 0)
}

func (r *Reviver) revive(v constant.Value, depth int) (instance.Object, error) {
	if r.MaxDepth > 0 && depth > r.MaxDepth {
		return nil, fmt.Errorf("%w: limit %d", ErrDepthExceeded, r.MaxDepth)
	}

	switch val := v.(type) {
	case *constant.Null:
		return &instance.Nil{}, nil
	case *constant.Bool:
		return &instance.Boolean{Value: val.Value}, nil
	case *constant.Int:
		return &instance.Integer{Value: val.Value}, nil
	case *constant.Double:
		return &instance.Float{Value: val.Value}, nil
	case *constant.String:
		return &instance.String{Value: val.Value}, nil
	case *constant.Symbol:
		return &instance.Symbol{Value: val.Value}, nil
	case *constant.TypeRef:
		return &instance.TypeRef{Name: val.Name}, nil
	case *constant.List:
		elements := make([]instance.Object, len(val.Elements))
		for i, el := range val.Elements {
			obj, err := r.revive(el, depth+1)
			if err != nil {
				return nil, err
			}
			elements[i] = obj
		}
		return &instance.List{Elements: elements}, nil
	case *constant.Set:
		set := instance.NewSet()
		for _, el := range val.Elements {
			obj, err := r.revive(el, depth+1)
			if err != nil {
				return nil, err
			}
			set.Add(obj)
		}
		return set, nil
	case *constant.Map:
		m := instance.NewMap()
		for _, pair := range val.Pairs {
			// Key revived before value; equal keys overwrite (last wins)
			key, err := r.revive(pair.Key, depth+1)
			if err != nil {
				return nil, err
			}
			value, err := r.revive(pair.Val, depth+1)
			if err != nil {
				return nil, err
			}
			m.Set(key, value)
		}
		return m, nil
	case *constant.Revivable:
		return r.reviveObject(val, depth)
	}

	return nil, fmt.Errorf("%w: unhandled constant kind %s", constant.ErrShapeMismatch, v.Kind())
}

func (r *Reviver) reviveObject(val *constant.Revivable, depth int) (instance.Object, error) {
	mod, err := r.registry.Resolve(val.Source.FirstSegment())
	if err != nil {
		return nil, err
	}

	key := val.Source.Fragment
	if val.IsEnumMember {
		key = val.EnumName()
	}

	desc, err := mod.Declaration(key)
	if err != nil {
		return nil, err
	}

	if desc.IsEnum {
		// Enum members are singletons selected by position; no
		// constructor invocation, no argument revival.
		members, err := desc.EnumMembers()
		if err != nil {
			return nil, err
		}
		if val.EnumIndex < 0 || val.EnumIndex >= len(members) {
			return nil, fmt.Errorf("%w: index %d of %s.%s (%d members)",
				ErrEnumIndexOutOfRange, val.EnumIndex, mod.Name, desc.Name, len(members))
		}
		return members[val.EnumIndex], nil
	}

	positional := make([]instance.Object, len(val.Positional))
	for i, arg := range val.Positional {
		obj, err := r.revive(arg, depth+1)
		if err != nil {
			return nil, err
		}
		positional[i] = obj
	}

	named := make(map[string]instance.Object, len(val.Named))
	for name, arg := range val.Named {
		obj, err := r.revive(arg, depth+1)
		if err != nil {
			return nil, err
		}
		named[name] = obj
	}

	return desc.Construct(val.AccessorPath, positional, named)
}
