package element

import "fmt"

// SymbolID is a position within a symbol table.
type SymbolID uint64

// Type is the categorical type tag of an element. For null elements the
// tag is embedded in the value itself, so a typed null exists for every
// category ("null.string" has Type StringType and IsNull true).
type Type int

const (
	NullType Type = iota
	IntType
	StringType
	SymbolType
	SExpType
	ListType
	StructType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		IntType:    "Int",
		StringType: "String",
		SymbolType: "Symbol",
		SExpType:   "SExp",
		ListType:   "List",
		StructType: "Struct",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Int":    IntType,
		"String": StringType,
		"Symbol": SymbolType,
		"SExp":   SExpType,
		"List":   ListType,
		"Struct": StructType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		IntType,
		StringType,
		SymbolType,
		SExpType,
		ListType,
		StructType,
	}
}

func (t Type) IsContainer() bool {
	switch t {
	case SExpType, ListType, StructType:
		return true
	default:
		return false
	}
}
