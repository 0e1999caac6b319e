package instance

import "reflect"

// ObjectsEqual performs a deep structural equality check between two
// revived objects. Two independently revived trees of the same constant
// compare equal even though they share no memory.
func ObjectsEqual(a, b Object) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch aVal := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Boolean:
		if bVal, ok := b.(*Boolean); ok {
			return aVal.Value == bVal.Value
		}
	case *Integer:
		if bVal, ok := b.(*Integer); ok {
			return aVal.Value.Cmp(bVal.Value) == 0
		}
	case *Float:
		if bVal, ok := b.(*Float); ok {
			return aVal.Value == bVal.Value
		}
	case *String:
		if bVal, ok := b.(*String); ok {
			return aVal.Value == bVal.Value
		}
	case *Symbol:
		if bVal, ok := b.(*Symbol); ok {
			return aVal.Value == bVal.Value
		}
	case *TypeRef:
		if bVal, ok := b.(*TypeRef); ok {
			return aVal.Name == bVal.Name
		}
	case *List:
		if bVal, ok := b.(*List); ok {
			if len(aVal.Elements) != len(bVal.Elements) {
				return false
			}
			for i := range aVal.Elements {
				if !ObjectsEqual(aVal.Elements[i], bVal.Elements[i]) {
					return false
				}
			}
			return true
		}
	case *Set:
		if bVal, ok := b.(*Set); ok {
			if aVal.Len() != bVal.Len() {
				return false
			}
			for _, el := range aVal.elements {
				if !bVal.Contains(el) {
					return false
				}
			}
			return true
		}
	case *Map:
		if bVal, ok := b.(*Map); ok {
			if aVal.Len() != bVal.Len() {
				return false
			}
			// Map equality iterates bindings, insertion order irrelevant
			for _, e := range aVal.entries {
				v2, ok := bVal.Get(e.Key)
				if !ok || !ObjectsEqual(e.Value, v2) {
					return false
				}
			}
			return true
		}
	case *Data:
		if bVal, ok := b.(*Data); ok {
			if aVal.TypeName != bVal.TypeName || aVal.Constructor != bVal.Constructor {
				return false
			}
			if len(aVal.Fields) != len(bVal.Fields) || len(aVal.Named) != len(bVal.Named) {
				return false
			}
			for i := range aVal.Fields {
				if !ObjectsEqual(aVal.Fields[i], bVal.Fields[i]) {
					return false
				}
			}
			for name, v := range aVal.Named {
				v2, ok := bVal.Named[name]
				if !ok || !ObjectsEqual(v, v2) {
					return false
				}
			}
			return true
		}
	case *Host:
		if bVal, ok := b.(*Host); ok {
			return aVal.TypeName == bVal.TypeName &&
				reflect.DeepEqual(aVal.Value, bVal.Value)
		}
	}

	return false
}
