package codec

import (
	"strings"
	"testing"

	"github.com/funvibe/revive/internal/constant"
)

func TestDecodeScalars(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want constant.Kind
	}{
		{"null", "null", constant.NULL_VAL},
		{"bool", "true", constant.BOOL_VAL},
		{"int", "42", constant.INT_VAL},
		{"double", "2.5", constant.DOUBLE_VAL},
		{"string", `"hello"`, constant.STRING_VAL},
		{"sequence", "[1, 2]", constant.LIST_VAL},
		{"symbol", "{symbol: field}", constant.SYMBOL_VAL},
		{"typeref", "{typeref: geo.Point}", constant.TYPEREF_VAL},
		{"set", "{set: [1, 2]}", constant.SET_VAL},
		{"map", "{map: [{key: 1, value: 2}]}", constant.MAP_VAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Decode(%q): %v", tt.doc, err)
			}
			if v.Kind() != tt.want {
				t.Errorf("Decode(%q).Kind() = %s, want %s", tt.doc, v.Kind(), tt.want)
			}
		})
	}
}

func TestDecodeBigInt(t *testing.T) {
	v, err := Decode([]byte(`{int: "123456789012345678901234567890"}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	n, err := constant.AsInt(v)
	if err != nil {
		t.Fatalf("AsInt: %v", err)
	}
	if n.String() != "123456789012345678901234567890" {
		t.Errorf("big int = %s", n.String())
	}
}

func TestDecodeListOrder(t *testing.T) {
	v, err := Decode([]byte("[3, 1, 2]"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	elements, err := constant.AsList(v)
	if err != nil {
		t.Fatalf("AsList: %v", err)
	}
	for i, want := range []int64{3, 1, 2} {
		n, err := constant.AsInt(elements[i])
		if err != nil || n.Int64() != want {
			t.Errorf("element %d = %v (%v), want %d", i, n, err, want)
		}
	}
}

func TestDecodeRevivable(t *testing.T) {
	doc := `
revive:
  source: geometry/shapes
  fragment: Point
  accessor: make
  positional: [3]
  named:
    y: "q"
`
	v, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	rev, err := constant.AsRevivable(v)
	if err != nil {
		t.Fatalf("AsRevivable: %v", err)
	}
	if rev.Source.Path != "geometry/shapes" || rev.Source.Fragment != "Point" {
		t.Errorf("source = %+v", rev.Source)
	}
	if rev.AccessorPath != "make" || rev.IsEnumMember {
		t.Errorf("accessor = %q, enum member = %v", rev.AccessorPath, rev.IsEnumMember)
	}
	if rev.EnumIndex != -1 {
		t.Errorf("absent enum index = %d, want -1", rev.EnumIndex)
	}
	if len(rev.Positional) != 1 || len(rev.Named) != 1 {
		t.Errorf("arguments = %d positional, %d named", len(rev.Positional), len(rev.Named))
	}
	if _, ok := rev.Named["y"]; !ok {
		t.Errorf("named argument y missing")
	}
}

func TestDecodeEnumRevivable(t *testing.T) {
	doc := `
revive:
  source: paint/palette
  fragment: Color
  accessor: Color.green
  enum_member: true
  enum_index: 1
`
	v, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	rev, err := constant.AsRevivable(v)
	if err != nil {
		t.Fatalf("AsRevivable: %v", err)
	}
	if !rev.IsEnumMember || rev.EnumIndex != 1 {
		t.Errorf("enum_member = %v, enum_index = %d", rev.IsEnumMember, rev.EnumIndex)
	}
	if rev.EnumName() != "Color" {
		t.Errorf("EnumName = %q", rev.EnumName())
	}
}

func TestDecodeAll(t *testing.T) {
	docs := "1\n---\n\"two\"\n---\n{symbol: three}\n"
	values, err := DecodeAll(strings.NewReader(docs))
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("len(values) = %d, want 3", len(values))
	}
	kinds := []constant.Kind{constant.INT_VAL, constant.STRING_VAL, constant.SYMBOL_VAL}
	for i, want := range kinds {
		if values[i].Kind() != want {
			t.Errorf("document %d = %s, want %s", i, values[i].Kind(), want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown tag", "{frob: 1}"},
		{"multi-key tagged node", "{symbol: a, typeref: b}"},
		{"bad symbol payload", "{symbol: [1]}"},
		{"bad int literal", `{int: "12x"}`},
		{"map pair without value", "{map: [{key: 1}]}"},
		{"revive with unknown field", "{revive: {source: a, frag: b}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.doc)); err == nil {
				t.Errorf("Decode(%q) should fail", tt.doc)
			}
		})
	}
}
