// Package element defines the capability contracts for a read-only,
// self-describing Ion data tree.
//
// # Overview
//
// An Ion document is a tree of typed values. Each value may carry
// annotations, and symbolic names (field names, annotations, symbol values)
// are represented as symbol tokens whose text may or may not be resolved.
// This package defines that model as a small set of interfaces so that
// algorithms (traversal, equality, printing, re-encoding) can be written
// once and run over any storage family.
//
// Two storage families are anticipated:
//
//   - a borrowed family, which references text living in an externally
//     owned buffer without copying (see the borrowed package)
//   - an owned family, which holds independent copies of all text
//
// Both satisfy the same five contracts defined here:
//
//   - ImportSource: where an imported symbol's definition comes from
//     (a shared symbol table name and a position within it)
//   - SymbolToken: a symbol identity as three independently optional
//     facets: text, a local symbol id, and an import source
//   - Sequence: an ordered, iterable view over child elements, backing
//     both lists and s-expressions
//   - Struct: an iterable view over (symbol token, element) field pairs,
//     insertion ordered, duplicate names permitted
//   - Element: a value plus its ordered annotation tokens, the unit
//     consumers operate on
//
// # Totality
//
// Every operation in this package's contracts is total. Absence of data is
// reported with a comma-ok result, never with an error or a panic. In
// particular, a SymbolToken with neither text nor a local id is a valid
// "unresolved symbol" state: this layer neither resolves nor rejects it,
// and downstream consumers must handle it explicitly.
//
// # Iteration
//
// Sequence.Elements, Struct.Fields and Element.Annotations return
// iter.Seq values. Iteration is lazy, finite, non-consuming and
// restartable: ranging over the same Seq twice yields the same items in
// the same order. Order is always exact construction order.
//
// # Thread safety
//
// Values behind these contracts are immutable once constructed, so they
// may be read from multiple goroutines without synchronization. There is
// no mutation surface: building a different tree means constructing a new
// one.
//
// # Related packages
//
//   - github.com/iondoc/iondoc/borrowed - the borrowed realization
package element
