package instance

import (
	"fmt"
	"math"
	"math/big"
)

// Nil
type Nil struct{}

func (n *Nil) Kind() ObjectKind { return NIL_OBJ }
func (n *Nil) Inspect() string  { return "nil" }
func (n *Nil) Hash() uint32     { return 0 }

// Boolean
type Boolean struct {
	Value bool
}

func (b *Boolean) Kind() ObjectKind { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }
func (b *Boolean) Hash() uint32 {
	if b.Value {
		return 1
	}
	return 0
}

// Integer carries an arbitrary-precision integer, mirroring the constant
// model's Int payload.
type Integer struct {
	Value *big.Int
}

func (i *Integer) Kind() ObjectKind { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return i.Value.String() }
func (i *Integer) Hash() uint32 {
	return hashString(i.Value.String())
}

// NewInteger wraps a native integer.
func NewInteger(v int64) *Integer {
	return &Integer{Value: big.NewInt(v)}
}

// Float
type Float struct {
	Value float64
}

func (f *Float) Kind() ObjectKind { return FLOAT_OBJ }
func (f *Float) Inspect() string  { return fmt.Sprintf("%g", f.Value) }
func (f *Float) Hash() uint32 {
	if f.Value == 0 {
		// 0.0 and -0.0 compare equal and must hash alike
		return 0
	}
	bits := math.Float64bits(f.Value)
	return uint32(bits ^ (bits >> 32))
}

// String
type String struct {
	Value string
}

func (s *String) Kind() ObjectKind { return STRING_OBJ }
func (s *String) Inspect() string  { return fmt.Sprintf("%q", s.Value) }
func (s *String) Hash() uint32     { return hashString(s.Value) }

// Symbol
type Symbol struct {
	Value string
}

func (s *Symbol) Kind() ObjectKind { return SYMBOL_OBJ }
func (s *Symbol) Inspect() string  { return "#" + s.Value }
func (s *Symbol) Hash() uint32     { return 31*hashString("#") + hashString(s.Value) }

// TypeRef
type TypeRef struct {
	Name string
}

func (t *TypeRef) Kind() ObjectKind { return TYPEREF_OBJ }
func (t *TypeRef) Inspect() string  { return "<type " + t.Name + ">" }
func (t *TypeRef) Hash() uint32     { return 31*hashString("type") + hashString(t.Name) }
