package constant

import (
	"math/big"
	"strings"
)

type Kind string

const (
	NULL_VAL      = "NULL"
	BOOL_VAL      = "BOOL"
	INT_VAL       = "INT"
	DOUBLE_VAL    = "DOUBLE"
	STRING_VAL    = "STRING"
	SYMBOL_VAL    = "SYMBOL"
	TYPEREF_VAL   = "TYPEREF"
	LIST_VAL      = "LIST"
	SET_VAL       = "SET"
	MAP_VAL       = "MAP"
	REVIVABLE_VAL = "REVIVABLE"
)

// Value is a serialized compile-time constant, produced by an upstream
// analyzer front end. Trees are read-only once built; nothing in this
// package mutates a Value after construction.
type Value interface {
	Kind() Kind
}

// Null
type Null struct{}

func (n *Null) Kind() Kind { return NULL_VAL }

// Bool
type Bool struct {
	Value bool
}

func (b *Bool) Kind() Kind { return BOOL_VAL }

// Int carries an arbitrary-precision integer.
type Int struct {
	Value *big.Int
}

func (i *Int) Kind() Kind { return INT_VAL }

// NewInt wraps a native integer as an Int value.
func NewInt(v int64) *Int {
	return &Int{Value: big.NewInt(v)}
}

// Double
type Double struct {
	Value float64
}

func (d *Double) Kind() Kind { return DOUBLE_VAL }

// String
type String struct {
	Value string
}

func (s *String) Kind() Kind { return STRING_VAL }

// Symbol is an identifier captured as a constant (e.g. #fieldName).
type Symbol struct {
	Value string
}

func (s *Symbol) Kind() Kind { return SYMBOL_VAL }

// TypeRef is a reference to a type by its qualified name.
type TypeRef struct {
	Name string
}

func (t *TypeRef) Kind() Kind { return TYPEREF_VAL }

// List is an ordered sequence of values. Order is preserved, duplicates kept.
type List struct {
	Elements []Value
}

func (l *List) Kind() Kind { return LIST_VAL }

// Set is an unordered collection. Duplicates may still be present at this
// layer; the revived instance removes them by equality.
type Set struct {
	Elements []Value
}

func (s *Set) Kind() Kind { return SET_VAL }

// Pair is one key/value entry of a Map.
type Pair struct {
	Key Value
	Val Value
}

// Map is an ordered sequence of key/value pairs. Keys need not be unique
// here; uniqueness is enforced by the revived mapping's insertion semantics.
type Map struct {
	Pairs []Pair
}

func (m *Map) Kind() Kind { return MAP_VAL }

// SourceLocation identifies the module path and declaration fragment a
// Revivable was captured from, e.g. {Path: "geometry/shapes", Fragment: "Point"}.
type SourceLocation struct {
	Path     string
	Fragment string
}

// FirstSegment returns the leading path segment, which is the module lookup
// key. Lookup deliberately uses only this segment: the source design assumes
// the first segment uniquely identifies a loaded module. Returns "" for
// anonymous locations.
func (s SourceLocation) FirstSegment() string {
	path := strings.TrimLeft(s.Path, "/")
	if idx := strings.IndexByte(path, '/'); idx >= 0 {
		return path[:idx]
	}
	return path
}

// Revivable is a constant object instantiation (constructor call) or an
// enum member selection.
type Revivable struct {
	Source       SourceLocation
	AccessorPath string // constructor name, or "EnumName.memberName"
	Positional   []Value
	Named        map[string]Value
	IsEnumMember bool
	EnumIndex    int // -1 when absent
}

func (r *Revivable) Kind() Kind { return REVIVABLE_VAL }

// EnumName returns the declaration key for an enum member: the first
// dot-separated component of the accessor path.
func (r *Revivable) EnumName() string {
	if idx := strings.IndexByte(r.AccessorPath, '.'); idx >= 0 {
		return r.AccessorPath[:idx]
	}
	return r.AccessorPath
}
