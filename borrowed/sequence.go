package borrowed

import (
	"iter"

	"github.com/iondoc/iondoc/element"
)

// Sequence is an ordered container of child elements. The container
// itself is owned; whatever text the children reference stays borrowed.
// Whether it reads as a list or an s-expression is decided by the value
// wrapping it.
type Sequence struct {
	children []*Element
}

var _ element.Sequence = (*Sequence)(nil)

// NewSequence returns a sequence over children in the given order. The
// sequence takes ownership of the slice.
func NewSequence(children ...*Element) *Sequence {
	return &Sequence{children: children}
}

func (s *Sequence) Len() int {
	return len(s.children)
}

// Elements iterates the children in construction order. The returned Seq
// can be ranged over any number of times.
func (s *Sequence) Elements() iter.Seq[element.Element] {
	return func(yield func(element.Element) bool) {
		for _, c := range s.children {
			if !yield(c) {
				return
			}
		}
	}
}
