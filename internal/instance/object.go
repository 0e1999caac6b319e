package instance

import (
	"fmt"
	"sort"
	"strings"
)

// Data is a constructed product value: the result of invoking a named
// constructor of a declaration, or an enum member singleton. Metadata-only
// registries produce these directly; host registries may return Host
// objects instead.
type Data struct {
	TypeName    string
	Constructor string // "" for the default constructor, member name for enums
	Fields      []Object
	Named       map[string]Object
}

func (d *Data) Kind() ObjectKind { return DATA_OBJ }

func (d *Data) Inspect() string {
	var out strings.Builder
	out.WriteString(d.TypeName)
	if d.Constructor != "" {
		out.WriteString(".")
		out.WriteString(d.Constructor)
	}
	if len(d.Fields) == 0 && len(d.Named) == 0 {
		return out.String()
	}
	out.WriteString("(")
	for i, f := range d.Fields {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(f.Inspect())
	}
	for i, name := range d.namedOrder() {
		if i > 0 || len(d.Fields) > 0 {
			out.WriteString(", ")
		}
		out.WriteString(name)
		out.WriteString(": ")
		out.WriteString(d.Named[name].Inspect())
	}
	out.WriteString(")")
	return out.String()
}

func (d *Data) Hash() uint32 {
	h := hashString(d.TypeName)
	h = 31*h + hashString(d.Constructor)
	for _, f := range d.Fields {
		h = 31*h + f.Hash()
	}
	for _, name := range d.namedOrder() {
		h = 31*h + hashString(name)
		h = 31*h + d.Named[name].Hash()
	}
	return h
}

func (d *Data) namedOrder() []string {
	names := make([]string, 0, len(d.Named))
	for name := range d.Named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Host wraps an arbitrary Go value built by a host-supplied constructor.
// Equality and hashing are best effort: hosts that need structural
// equality should return Data or implement their values as comparable.
type Host struct {
	TypeName string
	Value    interface{}
}

func (h *Host) Kind() ObjectKind { return HOST_OBJ }
func (h *Host) Inspect() string {
	return fmt.Sprintf("<%s %+v>", h.TypeName, h.Value)
}
func (h *Host) Hash() uint32 {
	return 31*hashString(h.TypeName) + hashString(fmt.Sprintf("%v", h.Value))
}
