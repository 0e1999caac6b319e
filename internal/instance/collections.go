package instance

import "strings"

// List is a fixed-size ordered sequence. Order is preserved exactly and
// duplicates are kept.
type List struct {
	Elements []Object
}

func (l *List) Kind() ObjectKind { return LIST_OBJ }
func (l *List) Inspect() string {
	var out strings.Builder
	out.WriteString("[")
	for i, el := range l.Elements {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(el.Inspect())
	}
	out.WriteString("]")
	return out.String()
}
func (l *List) Hash() uint32 {
	h := uint32(7)
	for _, el := range l.Elements {
		h = 31*h + el.Hash()
	}
	return h
}

func (l *List) Len() int { return len(l.Elements) }

// Set is a collection deduplicated by deep equality. Insertion order is
// retained for iteration and printing but carries no meaning.
type Set struct {
	elements []Object
	buckets  map[uint32][]int
}

func NewSet() *Set {
	return &Set{buckets: make(map[uint32][]int)}
}

// Add inserts obj unless an equal element is already present.
func (s *Set) Add(obj Object) {
	h := obj.Hash()
	for _, idx := range s.buckets[h] {
		if ObjectsEqual(s.elements[idx], obj) {
			return
		}
	}
	s.buckets[h] = append(s.buckets[h], len(s.elements))
	s.elements = append(s.elements, obj)
}

func (s *Set) Contains(obj Object) bool {
	for _, idx := range s.buckets[obj.Hash()] {
		if ObjectsEqual(s.elements[idx], obj) {
			return true
		}
	}
	return false
}

func (s *Set) Len() int { return len(s.elements) }

// Elements returns the distinct elements in insertion order.
func (s *Set) Elements() []Object { return s.elements }

func (s *Set) Kind() ObjectKind { return SET_OBJ }
func (s *Set) Inspect() string {
	var out strings.Builder
	out.WriteString("#{")
	for i, el := range s.elements {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(el.Inspect())
	}
	out.WriteString("}")
	return out.String()
}

// Hash is order-insensitive so that sets built in different insertion
// orders hash alike.
func (s *Set) Hash() uint32 {
	var h uint32
	for _, el := range s.elements {
		h += el.Hash()
	}
	return h ^ uint32(len(s.elements))
}

// MapEntry is one key/value binding of a Map.
type MapEntry struct {
	Key   Object
	Value Object
}

// Map is an insertion-ordered mapping. Setting an equal key again
// overwrites the value in place (last write wins, position of the first
// insertion kept).
type Map struct {
	entries []MapEntry
	buckets map[uint32][]int
}

func NewMap() *Map {
	return &Map{buckets: make(map[uint32][]int)}
}

func (m *Map) Set(key, value Object) {
	h := key.Hash()
	for _, idx := range m.buckets[h] {
		if ObjectsEqual(m.entries[idx].Key, key) {
			m.entries[idx].Value = value
			return
		}
	}
	m.buckets[h] = append(m.buckets[h], len(m.entries))
	m.entries = append(m.entries, MapEntry{Key: key, Value: value})
}

func (m *Map) Get(key Object) (Object, bool) {
	for _, idx := range m.buckets[key.Hash()] {
		if ObjectsEqual(m.entries[idx].Key, key) {
			return m.entries[idx].Value, true
		}
	}
	return nil, false
}

func (m *Map) Len() int { return len(m.entries) }

// Entries returns the bindings in insertion order.
func (m *Map) Entries() []MapEntry { return m.entries }

func (m *Map) Kind() ObjectKind { return MAP_OBJ }
func (m *Map) Inspect() string {
	var out strings.Builder
	out.WriteString("{")
	for i, e := range m.entries {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(e.Key.Inspect())
		out.WriteString(": ")
		out.WriteString(e.Value.Inspect())
	}
	out.WriteString("}")
	return out.String()
}

func (m *Map) Hash() uint32 {
	var h uint32
	for _, e := range m.entries {
		h += 31*e.Key.Hash() + e.Value.Hash()
	}
	return h ^ uint32(len(m.entries))
}
