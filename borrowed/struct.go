package borrowed

import (
	"iter"

	"github.com/iondoc/iondoc/element"
	"github.com/iondoc/iondoc/internal/bytesview"
)

// Field is a named struct member.
type Field struct {
	Name  *SymbolToken
	Value *Element
}

// Struct is a container of named fields. Names and values live in
// parallel slices so that iteration preserves insertion order exactly,
// duplicates included; a side index keyed on field text serves lookups
// without disturbing that order. Field names without text are reachable
// only by iteration.
type Struct struct {
	names  []*SymbolToken
	values []*Element
	index  map[string][]int
}

var _ element.Struct = (*Struct)(nil)

// NewStruct returns a struct over fields in the given order. Duplicate
// names are kept as given. A nil field name is replaced with the
// fully-absent token so iteration always yields a token.
func NewStruct(fields ...Field) *Struct {
	s := &Struct{
		names:  make([]*SymbolToken, len(fields)),
		values: make([]*Element, len(fields)),
		index:  make(map[string][]int, len(fields)),
	}
	for i := range fields {
		f := &fields[i]
		if f.Name == nil {
			f.Name = &SymbolToken{}
		}
		s.names[i] = f.Name
		s.values[i] = f.Value
		if f.Name.text != nil {
			name := bytesview.String(f.Name.text)
			s.index[name] = append(s.index[name], i)
		}
	}
	return s
}

func (s *Struct) Len() int {
	return len(s.names)
}

// Fields iterates (name, value) pairs in insertion order, duplicates
// included. The returned Seq2 can be ranged over any number of times.
func (s *Struct) Fields() iter.Seq2[element.SymbolToken, element.Element] {
	return func(yield func(element.SymbolToken, element.Element) bool) {
		for i := range s.names {
			if !yield(s.names[i], s.values[i]) {
				return
			}
		}
	}
}

// Get returns the value of the first field whose name text is name, or
// nil when there is none.
func (s *Struct) Get(name string) *Element {
	ixs := s.index[name]
	if len(ixs) == 0 {
		return nil
	}
	return s.values[ixs[0]]
}

// GetAll returns the values of every field whose name text is name, in
// insertion order.
func (s *Struct) GetAll(name string) []*Element {
	ixs := s.index[name]
	if len(ixs) == 0 {
		return nil
	}
	res := make([]*Element, len(ixs))
	for i, ix := range ixs {
		res[i] = s.values[ix]
	}
	return res
}
