package borrowed

import (
	"math/big"

	"github.com/iondoc/iondoc/element"
)

// Value is the payload of an element: a tagged union with exactly one
// active variant. Values are placed in fields depending on the type tag.
// The null marker is orthogonal to the tag, which is how a typed null
// ("null.string", "null.list", ...) exists for every category.
type Value struct {
	typ  element.Type
	null bool

	num  element.AnyInt
	text []byte
	sym  *SymbolToken
	seq  *Sequence
	strc *Struct
}

// FromNull returns a null value of the given type. FromNull(NullType) is
// the untyped null.
func FromNull(t element.Type) Value {
	return Value{typ: t, null: true}
}

func FromInt(v int64) Value {
	return Value{typ: element.IntType, num: element.Int64(v)}
}

// FromBigInt returns an integer value holding v. The caller must not
// mutate v afterwards.
func FromBigInt(v *big.Int) Value {
	return Value{typ: element.IntType, num: element.Big(v)}
}

// FromString returns a string value borrowing text from the backing
// buffer.
func FromString(text []byte) Value {
	return Value{typ: element.StringType, text: text}
}

func FromSymbol(sym *SymbolToken) Value {
	return Value{typ: element.SymbolType, sym: sym}
}

func FromList(children ...*Element) Value {
	return Value{typ: element.ListType, seq: NewSequence(children...)}
}

func FromSExp(children ...*Element) Value {
	return Value{typ: element.SExpType, seq: NewSequence(children...)}
}

func FromStruct(fields ...Field) Value {
	return Value{typ: element.StructType, strc: NewStruct(fields...)}
}

// Element wraps the value as an element without annotations.
func (v Value) Element() *Element {
	return New(v)
}
