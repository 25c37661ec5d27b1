package element

import "iter"

// ImportSource identifies where an imported symbol's definition comes
// from: a shared symbol table and a position within it.
type ImportSource interface {
	// Table returns the name of the shared symbol table.
	Table() string
	// SID returns the position within the shared table.
	SID() SymbolID
}

// SymbolToken is a symbol identity expressed through three independently
// optional facets. A token built from literal text has only Text set (a
// "transient" symbol). A token with a local id but no text is an
// "unresolved" symbol: valid here, and left for symbol table resolution
// downstream. A token with neither facet is likewise permitted.
type SymbolToken interface {
	// Text returns the symbol text, or false when the text is unknown.
	Text() (string, bool)
	// LocalSID returns the symbol id in the local symbol table, or false
	// when no local id is attached.
	LocalSID() (SymbolID, bool)
	// Source returns where the symbol was imported from, or false when
	// the token has no import source.
	Source() (ImportSource, bool)
}

// Sequence is an ordered container of child elements. It backs both
// ListType and SExpType values; the distinction lives in the Type of the
// element wrapping it, not here.
type Sequence interface {
	// Len returns the number of children.
	Len() int
	// Elements iterates the children in exact construction order. The
	// returned Seq is restartable and non-consuming.
	Elements() iter.Seq[Element]
}

// Struct is a container of named fields. Iteration preserves insertion
// order, and duplicate field names are permitted and preserved.
type Struct interface {
	// Len returns the number of fields, duplicates included.
	Len() int
	// Fields iterates (field name, field value) pairs in insertion order.
	// The returned Seq2 is restartable and non-consuming.
	Fields() iter.Seq2[SymbolToken, Element]
}

// Element is an annotated value: the unit consumers operate on. The
// narrowing accessors return the payload when the element holds the
// matching kind of value and false otherwise; they never panic and never
// error. A null element answers false to every narrowing accessor.
type Element interface {
	// IonType returns the categorical type of the value. For null values
	// this is the embedded null type tag, so IonType alone does not
	// distinguish "null.int" from an int; see IsNull.
	IonType() Type
	// Annotations iterates the annotation tokens in attachment order.
	Annotations() iter.Seq[SymbolToken]
	// IsNull reports whether the value is a null of any type.
	IsNull() bool

	// AsAnyInt returns the integer payload of an IntType element.
	AsAnyInt() (AnyInt, bool)
	// AsText returns the text of a StringType element, or of a SymbolType
	// element whose token carries text. Textless symbols answer false.
	AsText() (string, bool)
	// AsSymbol returns the token of a SymbolType element.
	AsSymbol() (SymbolToken, bool)
	// AsSequence returns the children of a ListType or SExpType element.
	AsSequence() (Sequence, bool)
	// AsStruct returns the fields of a StructType element.
	AsStruct() (Struct, bool)
}
