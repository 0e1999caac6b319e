package instance

import "hash/fnv"

type ObjectKind string

const (
	NIL_OBJ     = "NIL"
	BOOLEAN_OBJ = "BOOLEAN"
	INTEGER_OBJ = "INTEGER"
	FLOAT_OBJ   = "FLOAT"
	STRING_OBJ  = "STRING"
	SYMBOL_OBJ  = "SYMBOL"
	TYPEREF_OBJ = "TYPEREF"
	LIST_OBJ    = "LIST"
	SET_OBJ     = "SET"
	MAP_OBJ     = "MAP"
	DATA_OBJ    = "DATA"
	HOST_OBJ    = "HOST"
)

// Object is a fully-typed revived value. The set of implementations is
// closed: callers can switch over Kind() exhaustively instead of relying
// on runtime type tests.
type Object interface {
	Kind() ObjectKind
	Inspect() string
	Hash() uint32
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
