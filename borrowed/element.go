package borrowed

import (
	"iter"

	"github.com/iondoc/iondoc/element"
	"github.com/iondoc/iondoc/internal/bytesview"
)

// Element is an annotated value. It is immutable once constructed;
// changing anything means building a new Element.
type Element struct {
	annotations []*SymbolToken
	value       Value
}

var _ element.Element = (*Element)(nil)

// New returns an element holding value with the given annotations in
// attachment order. Construction is total: no validation is performed on
// the value or the annotation tokens.
func New(value Value, annotations ...*SymbolToken) *Element {
	return &Element{annotations: annotations, value: value}
}

func (e *Element) IonType() element.Type {
	return e.value.typ
}

// Annotations iterates the annotation tokens in attachment order. The
// returned Seq can be ranged over any number of times.
func (e *Element) Annotations() iter.Seq[element.SymbolToken] {
	return func(yield func(element.SymbolToken) bool) {
		for _, a := range e.annotations {
			if !yield(a) {
				return
			}
		}
	}
}

func (e *Element) IsNull() bool {
	return e.value.null
}

func (e *Element) AsAnyInt() (element.AnyInt, bool) {
	if e.value.null || e.value.typ != element.IntType {
		return element.AnyInt{}, false
	}
	return e.value.num, true
}

// AsText returns string text, or symbol text when the symbol token
// carries any. Everything else, textless symbols included, answers false.
func (e *Element) AsText() (string, bool) {
	if e.value.null {
		return "", false
	}
	switch e.value.typ {
	case element.StringType:
		return bytesview.String(e.value.text), true
	case element.SymbolType:
		return e.value.sym.Text()
	}
	return "", false
}

func (e *Element) AsSymbol() (element.SymbolToken, bool) {
	if e.value.null || e.value.typ != element.SymbolType {
		return nil, false
	}
	return e.value.sym, true
}

func (e *Element) AsSequence() (element.Sequence, bool) {
	if e.value.null {
		return nil, false
	}
	switch e.value.typ {
	case element.ListType, element.SExpType:
		return e.value.seq, true
	}
	return nil, false
}

func (e *Element) AsStruct() (element.Struct, bool) {
	if e.value.null || e.value.typ != element.StructType {
		return nil, false
	}
	return e.value.strc, true
}
