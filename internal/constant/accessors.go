package constant

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrShapeMismatch is returned when a typed accessor is applied to a value
// of the wrong variant.
var ErrShapeMismatch = errors.New("shape mismatch")

func shapeError(want Kind, got Value) error {
	return fmt.Errorf("%w: want %s, got %s", ErrShapeMismatch, want, got.Kind())
}

func IsNull(v Value) bool {
	_, ok := v.(*Null)
	return ok
}

func AsBool(v Value) (bool, error) {
	b, ok := v.(*Bool)
	if !ok {
		return false, shapeError(BOOL_VAL, v)
	}
	return b.Value, nil
}

func AsInt(v Value) (*big.Int, error) {
	i, ok := v.(*Int)
	if !ok {
		return nil, shapeError(INT_VAL, v)
	}
	return i.Value, nil
}

func AsDouble(v Value) (float64, error) {
	d, ok := v.(*Double)
	if !ok {
		return 0, shapeError(DOUBLE_VAL, v)
	}
	return d.Value, nil
}

func AsString(v Value) (string, error) {
	s, ok := v.(*String)
	if !ok {
		return "", shapeError(STRING_VAL, v)
	}
	return s.Value, nil
}

func AsSymbol(v Value) (string, error) {
	s, ok := v.(*Symbol)
	if !ok {
		return "", shapeError(SYMBOL_VAL, v)
	}
	return s.Value, nil
}

func AsTypeRef(v Value) (string, error) {
	t, ok := v.(*TypeRef)
	if !ok {
		return "", shapeError(TYPEREF_VAL, v)
	}
	return t.Name, nil
}

func AsList(v Value) ([]Value, error) {
	l, ok := v.(*List)
	if !ok {
		return nil, shapeError(LIST_VAL, v)
	}
	return l.Elements, nil
}

func AsSet(v Value) ([]Value, error) {
	s, ok := v.(*Set)
	if !ok {
		return nil, shapeError(SET_VAL, v)
	}
	return s.Elements, nil
}

func AsMap(v Value) ([]Pair, error) {
	m, ok := v.(*Map)
	if !ok {
		return nil, shapeError(MAP_VAL, v)
	}
	return m.Pairs, nil
}

func AsRevivable(v Value) (*Revivable, error) {
	r, ok := v.(*Revivable)
	if !ok {
		return nil, shapeError(REVIVABLE_VAL, v)
	}
	return r, nil
}
